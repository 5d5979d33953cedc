package httpserver

import (
	"github.com/gin-gonic/gin"

	"univio/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Univio study planner API"
	HealthVersion = "1.0.0"
	ServiceName   = "univio"
)

type healthResp struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Version     string `json:"version"`
	Service     string `json:"service"`
	Environment string `json:"environment"`
}

func (srv HTTPServer) newHealthResp(status string) healthResp {
	return healthResp{
		Status:      status,
		Message:     HealthMessage,
		Version:     HealthVersion,
		Service:     ServiceName,
		Environment: srv.environment,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.newHealthResp("healthy"))
}

// readyCheck reports ready once routes are mapped. The engines hold no
// external connections, so there is nothing else to wait for.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, srv.newHealthResp("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.newHealthResp("alive"))
}
