package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"task-metadata-sync/internal/document"
	"task-metadata-sync/internal/model"
	"task-metadata-sync/pkg/frontmatter"
	pkgLog "task-metadata-sync/pkg/log"
)

func (u *implUseCase) ProcessDocument(ctx context.Context, id string) (ProcessOutput, error) {
	ctx = withRunID(ctx)

	doc, err := u.repo.Get(ctx, id)
	if err != nil {
		u.metrics.observe(resultError, 0, 0)
		return ProcessOutput{ID: id}, err
	}
	return u.processLoaded(ctx, doc)
}

func (u *implUseCase) ProcessAll(ctx context.Context) (ProcessAllOutput, error) {
	ctx = withRunID(ctx)

	docs, err := u.repo.List(ctx)
	if err != nil {
		u.l.Errorf(ctx, "sync.ProcessAll: failed to list documents: %v", err)
		return ProcessAllOutput{}, err
	}

	out := ProcessAllOutput{Results: make([]ProcessOutput, 0, len(docs))}
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		res, err := u.processLoaded(ctx, doc)
		if err != nil {
			if out.Failed == nil {
				out.Failed = map[string]string{}
			}
			out.Failed[doc.ID] = err.Error()
			continue
		}
		out.Results = append(out.Results, res)
	}

	u.l.Infof(ctx, "sync.ProcessAll: %d documents, %d written, %d failed",
		len(docs), out.Written(), len(out.Failed))
	return out, nil
}

func (u *implUseCase) Notify(id string) {
	u.debouncer.Trigger(id)
}

func (u *implUseCase) Close() {
	u.debouncer.Stop()
}

// processNotified runs after a change notification settled.
func (u *implUseCase) processNotified(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()
	ctx = withRunID(ctx)

	if u.guard.InCooldown(id) {
		u.l.Debugf(ctx, "sync: ignoring %s during cooldown", id)
		u.metrics.skip(skipCooldown)
		return
	}

	doc, err := u.fetchWithRetry(ctx, id)
	if err != nil {
		u.l.Errorf(ctx, "sync: failed to fetch %s after %d retries: %v", id, u.opts.MaxRetries, err)
		u.metrics.observe(resultError, 0, 0)
		return
	}

	if u.guard.IsOwnWrite(id, doc.Content) {
		u.l.Debugf(ctx, "sync: ignoring %s, content matches our last write", id)
		u.metrics.skip(skipOwnWrite)
		return
	}

	if _, err := u.processLoaded(ctx, doc); err != nil && !errors.Is(err, ErrAlreadyProcessing) {
		u.l.Errorf(ctx, "sync: failed to process %s: %v", id, err)
	}
}

// fetchWithRetry reads a document with exponential backoff. Missing
// documents are not retried.
func (u *implUseCase) fetchWithRetry(ctx context.Context, id string) (document.Document, error) {
	backoff := u.opts.RetryBackoff
	var lastErr error

	for i := 0; i < u.opts.MaxRetries; i++ {
		doc, err := u.repo.Get(ctx, id)
		if err == nil {
			return doc, nil
		}
		if errors.Is(err, document.ErrDocumentNotFound) || errors.Is(err, document.ErrInvalidDocumentID) {
			return document.Document{}, err
		}
		lastErr = err
		u.l.Warnf(ctx, "sync: fetch %s failed (retry %d/%d): %v", id, i+1, u.opts.MaxRetries, err)

		select {
		case <-ctx.Done():
			return document.Document{}, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return document.Document{}, lastErr
}

func (u *implUseCase) processLoaded(ctx context.Context, doc document.Document) (ProcessOutput, error) {
	if err := u.guard.Begin(doc.ID); err != nil {
		u.metrics.skip(skipInFlight)
		return ProcessOutput{ID: doc.ID}, err
	}

	start := time.Now()
	out, err := u.apply(ctx, doc)

	written := ""
	if out.Written {
		written = out.Content
	}
	u.guard.End(doc.ID, written)
	u.metrics.observe(resultOf(out, err, u.opts.DryRun), len(out.Updates), time.Since(start))

	if err != nil {
		u.l.Errorf(ctx, "sync: %s: %v", doc.ID, err)
	}
	return out, err
}

func (u *implUseCase) apply(ctx context.Context, doc document.Document) (ProcessOutput, error) {
	res := u.resolver.ResolveDocument(ctx, doc.Content, u.rules)
	out := ProcessOutput{
		ID:      doc.ID,
		Tasks:   len(res.Tasks),
		Stats:   res.Stats,
		Updates: res.Updates,
		Content: doc.Content,
	}

	merged, changed, err := frontmatter.Merge(doc.Content, toFields(res.Updates))
	if err != nil {
		return out, fmt.Errorf("merge frontmatter: %w", err)
	}
	out.Changed = changed
	out.Content = merged

	if !changed || u.opts.DryRun {
		return out, nil
	}

	if err := u.repo.Update(ctx, doc.ID, merged); err != nil {
		return out, fmt.Errorf("write document: %w", err)
	}
	out.Written = true
	u.l.Infof(ctx, "sync: wrote %d updates to %s", len(res.Updates), doc.ID)
	return out, nil
}

func toFields(updates []model.Update) []frontmatter.Field {
	fields := make([]frontmatter.Field, 0, len(updates))
	for _, up := range updates {
		fields = append(fields, frontmatter.Field{
			Key:       up.Key,
			Value:     up.Value.Interface(),
			Overwrite: up.Overwrite,
		})
	}
	return fields
}

func withRunID(ctx context.Context) context.Context {
	if pkgLog.RunIDFromContext(ctx) != "" {
		return ctx
	}
	return pkgLog.WithRunID(ctx, uuid.NewString())
}
