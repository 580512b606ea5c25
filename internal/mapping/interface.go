package mapping

import (
	"context"

	"task-metadata-sync/internal/model"
)

//go:generate mockery --name Resolver
type Resolver interface {
	// Resolve turns a document's tasks into ordered header updates
	Resolve(ctx context.Context, tasks []model.Task, rules Rules) []model.Update

	// ResolveDocument parses content and resolves it in one step
	ResolveDocument(ctx context.Context, content string, rules Rules) ResolveOutput
}
