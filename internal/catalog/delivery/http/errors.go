package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"practice-catalog/internal/catalog"
	pkgErrors "practice-catalog/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors with a
// localized message. Conflicts and validation failures are rejected
// requests; anything unrecognized is an unexpected persistence fault.
func (h *handler) mapError(c *gin.Context, err error) error {
	loc := h.locales.Match(c.GetHeader("Accept-Language"))

	var conflict *catalog.ConflictError
	var invalid *catalog.ValidationError
	switch {
	case errors.As(err, &conflict):
		if conflict.Field == "key" {
			return pkgErrors.NewHTTPError(409,
				h.locales.Message(loc, "conflict.key", conflict.Value, conflict.ItemType))
		}
		return pkgErrors.NewHTTPError(409,
			h.locales.Message(loc, "conflict.code", conflict.Value))
	case errors.As(err, &invalid):
		return pkgErrors.NewHTTPError(400,
			h.locales.Message(loc, invalid.MessageKey, invalid.Args...))
	case errors.Is(err, catalog.ErrItemNotFound):
		return pkgErrors.NewHTTPError(404,
			h.locales.Message(loc, "validation.item_not_found"))
	default:
		return pkgErrors.NewHTTPError(500,
			h.locales.Message(loc, "fault.persistence"))
	}
}
