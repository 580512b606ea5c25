package http

import (
	"task-metadata-sync/internal/model"
	"task-metadata-sync/internal/sync"
)

// --- Request DTOs ---

type syncReq struct {
	ID string `json:"id" binding:"required"`
}

// --- Response DTOs ---

type syncResp struct {
	ID      string         `json:"id"`
	Tasks   int            `json:"tasks"`
	Updates []model.Update `json:"updates"`
	Changed bool           `json:"changed"`
	Written bool           `json:"written"`
}

type syncAllResp struct {
	Processed int               `json:"processed"`
	Written   int               `json:"written"`
	Documents []syncResp        `json:"documents"`
	Failed    map[string]string `json:"failed,omitempty"`
}

func newSyncResp(out sync.ProcessOutput) syncResp {
	updates := out.Updates
	if updates == nil {
		updates = []model.Update{}
	}
	return syncResp{
		ID:      out.ID,
		Tasks:   out.Tasks,
		Updates: updates,
		Changed: out.Changed,
		Written: out.Written,
	}
}

func newSyncAllResp(out sync.ProcessAllOutput) syncAllResp {
	docs := make([]syncResp, 0, len(out.Results))
	for _, r := range out.Results {
		docs = append(docs, newSyncResp(r))
	}
	return syncAllResp{
		Processed: len(out.Results),
		Written:   out.Written(),
		Documents: docs,
		Failed:    out.Failed,
	}
}
