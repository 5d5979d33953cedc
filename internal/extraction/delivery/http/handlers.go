package http

import (
	"github.com/gin-gonic/gin"

	"univio/pkg/response"
)

// Detect godoc
// @Summary     Detect text type
// @Description Classifies free text as a task, a schedule or unknown.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body     textReq true "Free text"
// @Success     200  {object} detectResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/extraction/detect [POST]
func (h *handler) Detect(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTextReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	response.OK(c, detectResp{Type: string(h.uc.DetectType(ctx, req.Text))})
}

// ParseTask godoc
// @Summary     Extract a task
// @Description Builds a task draft (title, course, deadline, priority, confidence) from free text.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body     textReq true "Free text"
// @Success     200  {object} taskResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Not enough information"
// @Router      /api/v1/extraction/task [POST]
func (h *handler) ParseTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTextReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	t, err := h.uc.ParseTask(ctx, req.Text)
	if err != nil {
		h.fail(c, "uc.ParseTask", err)
		return
	}

	response.OK(c, newTaskResp(t))
}

// ParseSchedule godoc
// @Summary     Extract a class schedule
// @Description Builds a weekly class slot (course, weekday, times, location, confidence) from free text.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body     textReq true "Free text"
// @Success     200  {object} scheduleResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "No weekday found"
// @Router      /api/v1/extraction/schedule [POST]
func (h *handler) ParseSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTextReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	s, err := h.uc.ParseSchedule(ctx, req.Text)
	if err != nil {
		h.fail(c, "uc.ParseSchedule", err)
		return
	}

	response.OK(c, newScheduleResp(s))
}

// Extract godoc
// @Summary     Detect and extract
// @Description Detects whether free text is a task or a schedule and returns the matching draft.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body     textReq true "Free text"
// @Success     200  {object} extractResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Unknown text type or missing fields"
// @Router      /api/v1/extraction/auto [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTextReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	out, err := h.uc.Extract(ctx, req.Text)
	if err != nil {
		h.fail(c, "uc.Extract", err)
		return
	}

	response.OK(c, h.newExtractResp(out))
}

// ExportSchedule godoc
// @Summary     Export a class schedule
// @Description Extracts a class slot and adds it to Google Calendar as a weekly event.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body     exportReq true "Free text and optional calendar id"
// @Success     200  {object} exportResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "No weekday found"
// @Failure     503  {object} response.Resp "Calendar not configured"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/extraction/schedule/export [POST]
func (h *handler) ExportSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	out, err := h.uc.ExportSchedule(ctx, req.toScheduleInput())
	if err != nil {
		h.fail(c, "uc.ExportSchedule", err)
		return
	}

	response.OK(c, h.newExportResp(out))
}

// ExportTask godoc
// @Summary     Export a task deadline
// @Description Extracts a task and adds a deadline event to Google Calendar.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body     exportReq true "Free text and optional calendar id"
// @Success     200  {object} exportResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     503  {object} response.Resp "Calendar not configured"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/extraction/task/export [POST]
func (h *handler) ExportTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	out, err := h.uc.ExportTask(ctx, req.toTaskInput())
	if err != nil {
		h.fail(c, "uc.ExportTask", err)
		return
	}

	response.OK(c, h.newExportResp(out))
}

// badRequest reports a binding or validation failure.
func (h *handler) badRequest(c *gin.Context, err error) {
	if mapped := h.mapError(err); mapped != nil {
		err = mapped
	}
	h.l.Warnf(c.Request.Context(), "internal.extraction.delivery.http: invalid request: %v", err)
	response.Error(c, err, nil)
}

// fail reports a use-case error; unknown errors become 500.
func (h *handler) fail(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	if mapped := h.mapError(err); mapped != nil {
		h.l.Infof(ctx, "internal.extraction.delivery.http.%s: %v", op, err)
		response.Error(c, mapped, nil)
		return
	}
	h.l.Errorf(ctx, "internal.extraction.delivery.http.%s: %v", op, err)
	response.InternalError(c, err)
}
