package http

import (
	"github.com/gin-gonic/gin"

	"univio/internal/middleware"
)

// RegisterRoutes maps the priority endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.RequestID(), mw.RateLimit())

	rg.POST("/score", h.Score)
	rg.POST("/estimate", h.Estimate)
	rg.GET("/best-time", h.BestTime)
	rg.POST("/rank", h.Rank)
}
