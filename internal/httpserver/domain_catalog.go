package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	catalogHTTP "practice-catalog/internal/catalog/delivery/http"
	catalogDispatcher "practice-catalog/internal/catalog/dispatcher/redis"
	catalogCached "practice-catalog/internal/catalog/repository/cached"
	catalogRepo "practice-catalog/internal/catalog/repository/postgre"
	"practice-catalog/internal/catalog/uow"
	catalogUC "practice-catalog/internal/catalog/usecase"
	"practice-catalog/internal/middleware"
)

// setupCatalogDomain initializes the catalog domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc, srv.locales)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(rg.Group("/myresource"), h, mw)
func (srv HTTPServer) setupCatalogDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository: Postgres, with an LRU cache over reference lookups
	repo := catalogCached.New(catalogRepo.New(srv.postgresDB, srv.l))

	// 2. Event dispatcher + unit of work
	dispatcher := catalogDispatcher.New(srv.redisClient, srv.eventStream, srv.l)
	executor := uow.New(repo, dispatcher, srv.l)

	// 3. UseCase: current user comes from the auth middleware
	uc := catalogUC.New(repo, executor, middleware.ContextUserResolver{}, srv.l)

	// 4. HTTP Handler
	h := catalogHTTP.New(srv.l, uc, srv.locales)

	// 5. Routes: registers /api/v1/catalog/items
	catalogHTTP.RegisterRoutes(api.Group("/catalog"), h, mw)

	srv.l.Infof(ctx, "Catalog domain registered")
	return nil
}
