package httpserver

import (
	"context"

	catalogHTTP "catalog-api/internal/catalog/delivery/http"
	catalogUC "catalog-api/internal/catalog/usecase"
)

// registerDomainRoutes wires the catalog domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.l)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(group, h)
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	uc := catalogUC.New(srv.l)
	h := catalogHTTP.New(srv.l, uc)

	// Registers /items/, /items/:item_id
	catalogHTTP.RegisterRoutes(srv.gin.Group(""), h)

	srv.l.Infof(ctx, "Catalog domain registered")
	return nil
}
