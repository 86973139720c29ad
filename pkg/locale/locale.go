package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the canonical source locale; every message key must exist here.
const BaseLocale = "en-US"

//go:embed locales/*.yaml
var embeddedFS embed.FS

// Bundle holds all message catalogs keyed by locale.
type Bundle struct {
	messages map[string]map[string]string
	matcher  language.Matcher
	tags     []language.Tag
	locales  []string
}

// Load parses the embedded locale catalogs.
func Load() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS parses locale catalogs from the provided filesystem.
// Files are named locales/<locale>.yaml and contain a flat key: message map.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale catalogs found")
	}

	b := &Bundle{messages: make(map[string]map[string]string)}
	for _, p := range paths {
		loc := strings.TrimSuffix(path.Base(p), ".yaml")
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		msgs := make(map[string]string)
		if err := yaml.Unmarshal(raw, &msgs); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		tag, err := language.Parse(loc)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", loc, err)
		}
		b.messages[loc] = msgs
		b.locales = append(b.locales, loc)
		b.tags = append(b.tags, tag)
	}

	if _, ok := b.messages[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s missing", BaseLocale)
	}

	// Matcher order determines preference; pin the base locale first.
	ordered := make([]language.Tag, 0, len(b.tags))
	orderedLocales := make([]string, 0, len(b.locales))
	for i, loc := range b.locales {
		if loc == BaseLocale {
			ordered = append([]language.Tag{b.tags[i]}, ordered...)
			orderedLocales = append([]string{loc}, orderedLocales...)
			continue
		}
		ordered = append(ordered, b.tags[i])
		orderedLocales = append(orderedLocales, loc)
	}
	b.tags = ordered
	b.locales = orderedLocales
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

// Match resolves an Accept-Language header to the best supported locale.
func (b *Bundle) Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return BaseLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return BaseLocale
	}
	_, idx, _ := b.matcher.Match(tags...)
	if idx < 0 || idx >= len(b.locales) {
		return BaseLocale
	}
	return b.locales[idx]
}

// Message formats the message for (locale, key). Missing keys fall back to
// the base locale, then to the key itself so a gap is visible but harmless.
func (b *Bundle) Message(loc, key string, args ...any) string {
	tmpl, ok := b.messages[loc][key]
	if !ok {
		tmpl, ok = b.messages[BaseLocale][key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}
