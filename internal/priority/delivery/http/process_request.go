package http

import (
	"github.com/gin-gonic/gin"
)

// processScoreReq binds the single-task body shared by score and estimate.
func (h *handler) processScoreReq(c *gin.Context) (scoreReq, error) {
	var req scoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processRankReq binds the task list body.
func (h *handler) processRankReq(c *gin.Context) (rankReq, error) {
	var req rankReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
