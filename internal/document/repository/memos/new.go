package memos

import (
	"task-metadata-sync/internal/document/repository"
	pkgLog "task-metadata-sync/pkg/log"
)

const defaultPageSize = 50

type implRepository struct {
	client   *Client
	pageSize int
	l        pkgLog.Logger
}

// New creates a document repository backed by a Memos server.
func New(client *Client, pageSize int, l pkgLog.Logger) repository.Repository {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &implRepository{
		client:   client,
		pageSize: pageSize,
		l:        l,
	}
}
