package http

import (
	"github.com/gin-gonic/gin"

	"practice-catalog/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// All routes are protected by the Auth middleware by convention.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items")
	{
		items.POST("", mw.Auth(), h.Create)
		items.GET("", mw.Auth(), h.List)
		items.GET("/:key", mw.Auth(), h.Detail)
		items.PUT("/:key", mw.Auth(), h.Upsert)
		items.PATCH("/:key", mw.Auth(), h.Update)
		items.DELETE("/:key", mw.Auth(), h.Delete)
		items.POST("/:key/restore", mw.Auth(), h.Restore)
		items.POST("/:key/activate", mw.Auth(), h.Activate)
		items.POST("/:key/deactivate", mw.Auth(), h.Deactivate)
	}
}
