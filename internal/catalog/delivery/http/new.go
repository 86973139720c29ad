package http

import (
	"practice-catalog/internal/catalog"
	"practice-catalog/pkg/locale"
	"practice-catalog/pkg/log"
)

type handler struct {
	l       log.Logger
	uc      catalog.UseCase
	locales *locale.Bundle
}

// New creates a new HTTP handler for the catalog domain.
func New(l log.Logger, uc catalog.UseCase, locales *locale.Bundle) *handler {
	return &handler{
		l:       l,
		uc:      uc,
		locales: locales,
	}
}
