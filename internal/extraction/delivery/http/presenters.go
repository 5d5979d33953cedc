package http

import (
	"strings"

	"univio/internal/extraction"
)

// --- Request DTOs ---

type textReq struct {
	Text string `json:"text" binding:"required,max=20000"`
}

func (r textReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return extraction.ErrEmptyInput
	}
	return nil
}

type exportReq struct {
	Text       string `json:"text"        binding:"required,max=20000"`
	CalendarID string `json:"calendar_id" binding:"max=255"`
}

func (r exportReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return extraction.ErrEmptyInput
	}
	return nil
}

func (r exportReq) toScheduleInput() extraction.ExportScheduleInput {
	return extraction.ExportScheduleInput{Text: r.Text, CalendarID: r.CalendarID}
}

func (r exportReq) toTaskInput() extraction.ExportTaskInput {
	return extraction.ExportTaskInput{Text: r.Text, CalendarID: r.CalendarID}
}

// --- Response DTOs ---

type detectResp struct {
	Type string `json:"type"`
}

type taskResp struct {
	Title       string `json:"title"`
	Course      string `json:"course"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	DueTime     string `json:"due_time"`
	Priority    string `json:"priority"`
	Confidence  int    `json:"confidence"`
}

func newTaskResp(t extraction.ExtractedTask) *taskResp {
	return &taskResp{
		Title:       t.Title,
		Course:      t.Course,
		Description: t.Description,
		DueDate:     t.DueDate,
		DueTime:     t.DueTime,
		Priority:    string(t.Priority),
		Confidence:  t.Confidence,
	}
}

type scheduleResp struct {
	CourseName string `json:"course_name"`
	Day        string `json:"day"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Location   string `json:"location"`
	Confidence int    `json:"confidence"`
}

func newScheduleResp(s extraction.ExtractedSchedule) *scheduleResp {
	return &scheduleResp{
		CourseName: s.CourseName,
		Day:        s.Day,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		Location:   s.Location,
		Confidence: s.Confidence,
	}
}

type extractResp struct {
	Type     string        `json:"type"`
	Task     *taskResp     `json:"task,omitempty"`
	Schedule *scheduleResp `json:"schedule,omitempty"`
}

func (h *handler) newExtractResp(out extraction.ExtractOutput) extractResp {
	resp := extractResp{Type: string(out.Type)}
	if out.Task != nil {
		resp.Task = newTaskResp(*out.Task)
	}
	if out.Schedule != nil {
		resp.Schedule = newScheduleResp(*out.Schedule)
	}
	return resp
}

type exportResp struct {
	EventID   string        `json:"event_id"`
	EventLink string        `json:"event_link"`
	Existing  bool          `json:"existing"`
	Task      *taskResp     `json:"task,omitempty"`
	Schedule  *scheduleResp `json:"schedule,omitempty"`
}

func (h *handler) newExportResp(out extraction.ExportOutput) exportResp {
	resp := exportResp{
		EventID:   out.EventID,
		EventLink: out.EventLink,
		Existing:  out.Existing,
	}
	if out.Task != nil {
		resp.Task = newTaskResp(*out.Task)
	}
	if out.Schedule != nil {
		resp.Schedule = newScheduleResp(*out.Schedule)
	}
	return resp
}
