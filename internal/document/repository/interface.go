package repository

import (
	"context"

	"task-metadata-sync/internal/document"
)

// Repository is the storage a sync pass reads from and writes back to.
//
//go:generate mockery --name Repository
type Repository interface {
	List(ctx context.Context) ([]document.Document, error)
	Get(ctx context.Context, id string) (document.Document, error)
	Update(ctx context.Context, id string, content string) error
}
