package http

import (
	"github.com/gin-gonic/gin"

	"univio/pkg/response"
)

// Score godoc
// @Summary     Score a task
// @Description Computes the priority score, tier, reason and recommendation of a task, plus an effort estimate.
// @Tags        Priority
// @Accept      json
// @Produce     json
// @Param       body body     scoreReq true "Task to score"
// @Success     200  {object} scoreResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/priority/score [POST]
func (h *handler) Score(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScoreReq(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.priority.delivery.http.Score: invalid request: %v", err)
		response.Error(c, err, nil)
		return
	}

	task := req.Task.toTask()
	res := h.uc.Calculate(ctx, task)
	est := h.uc.EstimateTime(ctx, task)

	response.OK(c, h.newScoreResp(res, est))
}

// Estimate godoc
// @Summary     Estimate effort
// @Description Estimates the hours needed to finish a task.
// @Tags        Priority
// @Accept      json
// @Produce     json
// @Param       body body     scoreReq true "Task to estimate"
// @Success     200  {object} estimateResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/priority/estimate [POST]
func (h *handler) Estimate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScoreReq(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.priority.delivery.http.Estimate: invalid request: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newEstimateResp(h.uc.EstimateTime(ctx, req.Task.toTask())))
}

// BestTime godoc
// @Summary     Best time to work
// @Description Suggests a time-of-day slot based on the current hour.
// @Tags        Priority
// @Produce     json
// @Success     200 {object} bestTimeResp
// @Router      /api/v1/priority/best-time [GET]
func (h *handler) BestTime(c *gin.Context) {
	response.OK(c, bestTimeResp{BestTime: h.uc.BestTimeToWork(c.Request.Context())})
}

// Rank godoc
// @Summary     Rank tasks
// @Description Scores every task that is not done and returns the highest priorities first.
// @Tags        Priority
// @Accept      json
// @Produce     json
// @Param       body body     rankReq true "Tasks and optional limit"
// @Success     200  {object} rankResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/priority/rank [POST]
func (h *handler) Rank(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRankReq(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.priority.delivery.http.Rank: invalid request: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newRankResp(h.uc.Rank(ctx, req.toInput())))
}
