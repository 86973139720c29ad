package locale_test

import (
	"testing"

	"practice-catalog/pkg/locale"
)

func TestLoadEmbedded(t *testing.T) {
	b, err := locale.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	msg := b.Message("en-US", "validation.max_linked_items", 1)
	if msg != "a catalog item may reference at most 1 linked item" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestMatch(t *testing.T) {
	b, err := locale.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{"empty header", "", "en-US"},
		{"garbage header", ";;;", "en-US"},
		{"spanish", "es-ES,es;q=0.9", "es-ES"},
		{"spanish region variant", "es-MX", "es-ES"},
		{"unsupported", "fr-FR", "en-US"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Match(tt.accept); got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.accept, got, tt.want)
			}
		})
	}
}

func TestMessageFallback(t *testing.T) {
	b, err := locale.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Unknown locale falls back to the base catalog.
	if got := b.Message("de-DE", "validation.item_not_found"); got != "catalog item not found" {
		t.Errorf("unexpected fallback message: %q", got)
	}
	// Unknown key falls back to the key itself.
	if got := b.Message("en-US", "no.such.key"); got != "no.such.key" {
		t.Errorf("unexpected missing-key result: %q", got)
	}
}
