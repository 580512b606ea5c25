package mapping

import (
	"time"

	"task-metadata-sync/internal/checklist"
	"task-metadata-sync/pkg/datemath"
	"task-metadata-sync/pkg/log"
)

// implResolver is the private implementation of Resolver.
type implResolver struct {
	checklist checklist.Service
	dates     *datemath.Parser
	now       func() time.Time
	l         log.Logger
}

// New creates a Resolver. dates may be nil, which disables date literal
// expansion; now defaults to time.Now.
func New(l log.Logger, checklistSvc checklist.Service, dates *datemath.Parser, now func() time.Time) Resolver {
	if now == nil {
		now = time.Now
	}
	return &implResolver{
		checklist: checklistSvc,
		dates:     dates,
		now:       now,
		l:         l,
	}
}
