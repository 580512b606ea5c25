package memos

import (
	"context"
	"errors"
	"strings"
	"time"

	"task-metadata-sync/internal/document"
)

// maxPages bounds List when a server keeps returning tokens.
const maxPages = 1000

func (r *implRepository) List(ctx context.Context) ([]document.Document, error) {
	var docs []document.Document
	token := ""
	for page := 0; page < maxPages; page++ {
		memos, next, err := r.client.ListMemos(ctx, r.pageSize, token)
		if err != nil {
			r.l.Errorf(ctx, "memos repository: failed to list page %d: %v", page, err)
			return nil, err
		}
		for _, m := range memos {
			docs = append(docs, toDocument(m))
		}
		if next == "" {
			return docs, nil
		}
		token = next
	}
	r.l.Warnf(ctx, "memos repository: stopped listing after %d pages", maxPages)
	return docs, nil
}

func (r *implRepository) Get(ctx context.Context, id string) (document.Document, error) {
	if err := validateID(id); err != nil {
		return document.Document{}, err
	}
	memo, err := r.client.GetMemo(ctx, id)
	if err != nil {
		return document.Document{}, mapError(err)
	}
	return toDocument(*memo), nil
}

func (r *implRepository) Update(ctx context.Context, id string, content string) error {
	if err := validateID(id); err != nil {
		return err
	}
	_, err := r.client.UpdateMemo(ctx, id, UpdateMemoRequest{
		Content:    content,
		UpdateMask: "content",
	})
	if err != nil {
		r.l.Errorf(ctx, "memos repository: failed to update memo %s: %v", id, err)
		return mapError(err)
	}
	return nil
}

func validateID(id string) error {
	if id == "" || strings.ContainsAny(id, "/?#") {
		return document.ErrInvalidDocumentID
	}
	return nil
}

func mapError(err error) error {
	if errors.Is(err, ErrMemoNotFound) {
		return document.ErrDocumentNotFound
	}
	return err
}

func toDocument(m Memo) document.Document {
	updated, _ := time.Parse(time.RFC3339, m.UpdateTime)
	return document.Document{
		ID:        m.ID(),
		Content:   m.Content,
		UpdatedAt: updated,
	}
}
