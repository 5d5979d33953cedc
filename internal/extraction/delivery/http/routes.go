package http

import (
	"github.com/gin-gonic/gin"

	"univio/internal/middleware"
)

// RegisterRoutes maps the extraction endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.RequestID(), mw.RateLimit())

	rg.POST("/detect", h.Detect)
	rg.POST("/task", h.ParseTask)
	rg.POST("/schedule", h.ParseSchedule)
	rg.POST("/auto", h.Extract)
	rg.POST("/task/export", h.ExportTask)
	rg.POST("/schedule/export", h.ExportSchedule)
}
