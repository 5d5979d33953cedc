package http

import (
	"univio/internal/model"
	"univio/internal/priority"
	"univio/pkg/response"
)

// --- Request DTOs ---

type taskReq struct {
	ID          string `json:"id"`
	Title       string `json:"title"       binding:"max=500"`
	Course      string `json:"course"`
	Description string `json:"description" binding:"max=10000"`
	DueDate     string `json:"due_date"    binding:"required"`
	DueTime     string `json:"due_time"`
	Priority    string `json:"priority"    binding:"omitempty,oneof=high medium low"`
	Status      string `json:"status"      binding:"omitempty,oneof=todo in-progress done"`
}

func (r taskReq) toTask() model.Task {
	return model.Task{
		ID:          r.ID,
		Title:       r.Title,
		Course:      r.Course,
		Description: r.Description,
		DueDate:     r.DueDate,
		DueTime:     r.DueTime,
		Priority:    model.Priority(r.Priority),
		Status:      model.Status(r.Status),
	}
}

type scoreReq struct {
	Task taskReq `json:"task" binding:"required"`
}

type rankReq struct {
	Tasks []taskReq `json:"tasks" binding:"required,dive"`
	Limit int       `json:"limit" binding:"min=0,max=100"`
}

func (r rankReq) toInput() priority.RankInput {
	tasks := make([]model.Task, len(r.Tasks))
	for i, t := range r.Tasks {
		tasks[i] = t.toTask()
	}
	return priority.RankInput{Tasks: tasks, Limit: r.Limit}
}

// --- Response DTOs ---

type breakdownResp struct {
	DeadlineScore    int `json:"deadline_score"`
	GradeWeightScore int `json:"grade_weight_score"`
	ComplexityScore  int `json:"complexity_score"`
}

type resultResp struct {
	Score          int           `json:"score"`
	Priority       string        `json:"priority"`
	Breakdown      breakdownResp `json:"breakdown"`
	Reason         string        `json:"reason"`
	Recommendation string        `json:"recommendation"`
	DaysUntilDue   *int          `json:"days_until_due,omitempty"`
}

func newResultResp(r priority.Result) resultResp {
	resp := resultResp{
		Score:    r.Score,
		Priority: string(r.Tier),
		Breakdown: breakdownResp{
			DeadlineScore:    r.Breakdown.DeadlineScore,
			GradeWeightScore: r.Breakdown.GradeWeightScore,
			ComplexityScore:  r.Breakdown.ComplexityScore,
		},
		Reason:         r.Reason,
		Recommendation: r.Recommendation,
	}
	if r.DaysUntilDue != priority.NoDeadline {
		days := r.DaysUntilDue
		resp.DaysUntilDue = &days
	}
	return resp
}

type estimateResp struct {
	Hours    int    `json:"hours"`
	MultiDay bool   `json:"multi_day"`
	Label    string `json:"label"`
}

func newEstimateResp(e priority.Estimate) estimateResp {
	return estimateResp{Hours: e.Hours, MultiDay: e.MultiDay, Label: e.Label}
}

type scoreResp struct {
	Result   resultResp   `json:"result"`
	Estimate estimateResp `json:"estimate"`
}

func (h *handler) newScoreResp(res priority.Result, est priority.Estimate) scoreResp {
	return scoreResp{Result: newResultResp(res), Estimate: newEstimateResp(est)}
}

type bestTimeResp struct {
	BestTime string `json:"best_time"`
}

type rankedTaskResp struct {
	ID       string       `json:"id,omitempty"`
	Title    string       `json:"title"`
	Course   string       `json:"course,omitempty"`
	DueDate  string       `json:"due_date"`
	Result   resultResp   `json:"result"`
	Estimate estimateResp `json:"estimate"`
}

type rankResp struct {
	Tasks    []rankedTaskResp  `json:"tasks"`
	Open     int               `json:"open"`
	ScoredAt response.DateTime `json:"scored_at"`
}

func (h *handler) newRankResp(out priority.RankOutput) rankResp {
	tasks := make([]rankedTaskResp, len(out.Tasks))
	for i, rt := range out.Tasks {
		tasks[i] = rankedTaskResp{
			ID:       rt.Task.ID,
			Title:    rt.Task.Title,
			Course:   rt.Task.Course,
			DueDate:  rt.Task.DueDate,
			Result:   newResultResp(rt.Result),
			Estimate: newEstimateResp(rt.Estimate),
		}
	}
	return rankResp{
		Tasks:    tasks,
		Open:     out.Open,
		ScoredAt: response.DateTime(out.ScoredAt),
	}
}
