package vault

import (
	"task-metadata-sync/internal/document/repository"
	pkgLog "task-metadata-sync/pkg/log"
)

// MarkdownExt is the only extension treated as a document.
const MarkdownExt = ".md"

type implRepository struct {
	root string
	l    pkgLog.Logger
}

// New creates a repository over the markdown files below root.
func New(root string, l pkgLog.Logger) repository.Repository {
	return &implRepository{root: root, l: l}
}
