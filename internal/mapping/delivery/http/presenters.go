package http

import (
	"task-metadata-sync/internal/checklist"
	"task-metadata-sync/internal/mapping"
	"task-metadata-sync/internal/model"
)

// --- Request DTOs ---

type resolveReq struct {
	Content string         `json:"content"`
	Rules   *mapping.Rules `json:"rules"`
}

// --- Response DTOs ---

type taskResp struct {
	Line          int    `json:"line"`
	Status        string `json:"status"`
	Done          bool   `json:"done"`
	Description   string `json:"description"`
	DueDate       string `json:"due_date,omitempty"`
	ScheduledDate string `json:"scheduled_date,omitempty"`
	StartDate     string `json:"start_date,omitempty"`
	CreatedDate   string `json:"created_date,omitempty"`
	DoneDate      string `json:"done_date,omitempty"`
	Recurrence    string `json:"recurrence,omitempty"`
	Priority      string `json:"priority,omitempty"`
}

type statsResp struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Pending    int `json:"pending"`
	Percentage int `json:"percentage"`
}

type resolveResp struct {
	Tasks   []taskResp     `json:"tasks"`
	Stats   statsResp      `json:"stats"`
	Updates []model.Update `json:"updates"`
	Changed bool           `json:"changed"`
	Content string         `json:"content"`

	// Frontmatter is the merged header decoded back into key/values.
	Frontmatter map[string]any `json:"frontmatter"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		Line:          t.LineIndex,
		Status:        t.StatusChar,
		Done:          t.IsDone,
		Description:   t.Description,
		DueDate:       t.Due,
		ScheduledDate: t.Scheduled,
		StartDate:     t.Start,
		CreatedDate:   t.Created,
		DoneDate:      t.Done,
		Recurrence:    t.Recurrence,
		Priority:      string(t.Priority),
	}
}

func newStatsResp(s checklist.Stats) statsResp {
	return statsResp{
		Total:      s.Total,
		Completed:  s.Completed,
		Pending:    s.Pending,
		Percentage: s.Percentage,
	}
}

func (h *handler) newResolveResp(out mapping.ResolveOutput, merged string, changed bool, header map[string]any) resolveResp {
	tasks := make([]taskResp, 0, len(out.Tasks))
	for _, t := range out.Tasks {
		tasks = append(tasks, newTaskResp(t))
	}
	updates := out.Updates
	if updates == nil {
		updates = []model.Update{}
	}
	return resolveResp{
		Tasks:       tasks,
		Stats:       newStatsResp(out.Stats),
		Updates:     updates,
		Changed:     changed,
		Content:     merged,
		Frontmatter: header,
	}
}
