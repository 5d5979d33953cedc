package http

import (
	"github.com/gin-gonic/gin"
)

// processTextReq binds and validates a request carrying free text.
func (h *handler) processTextReq(c *gin.Context) (textReq, error) {
	var req textReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processExportReq binds and validates an export request.
func (h *handler) processExportReq(c *gin.Context) (exportReq, error) {
	var req exportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
