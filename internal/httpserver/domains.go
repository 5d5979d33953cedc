package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	extractionHTTP "univio/internal/extraction/delivery/http"
	"univio/internal/middleware"
	priorityHTTP "univio/internal/priority/delivery/http"
)

// setupPriorityDomain registers /api/v1/priority.
func (srv HTTPServer) setupPriorityDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := priorityHTTP.New(srv.l, srv.priorityUC)
	priorityHTTP.RegisterRoutes(api.Group("/priority"), h, mw)

	srv.l.Infof(ctx, "Priority domain registered")
}

// setupExtractionDomain registers /api/v1/extraction.
func (srv HTTPServer) setupExtractionDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := extractionHTTP.New(srv.l, srv.extractionUC)
	extractionHTTP.RegisterRoutes(api.Group("/extraction"), h, mw)

	srv.l.Infof(ctx, "Extraction domain registered")
}
