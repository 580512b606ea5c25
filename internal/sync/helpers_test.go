package sync_test

import (
	"context"
	"errors"
	gosync "sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"task-metadata-sync/internal/checklist"
	"task-metadata-sync/internal/document"
	"task-metadata-sync/internal/mapping"
	"task-metadata-sync/internal/model"
	"task-metadata-sync/pkg/datemath"
	pkgLog "task-metadata-sync/pkg/log"
)

var errUnavailable = errors.New("store unavailable")

// memRepo is an in-memory document repository.
type memRepo struct {
	mu       gosync.Mutex
	docs     map[string]string
	order    []string
	gets     int
	updates  int
	failGets int
}

func newMemRepo(docs map[string]string, order ...string) *memRepo {
	return &memRepo{docs: docs, order: order}
}

func (r *memRepo) List(ctx context.Context) ([]document.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]document.Document, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, document.Document{ID: id, Content: r.docs[id]})
	}
	return out, nil
}

func (r *memRepo) Get(ctx context.Context, id string) (document.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gets++
	if r.failGets > 0 {
		r.failGets--
		return document.Document{}, errUnavailable
	}
	content, ok := r.docs[id]
	if !ok {
		return document.Document{}, document.ErrDocumentNotFound
	}
	return document.Document{ID: id, Content: content}, nil
}

func (r *memRepo) Update(ctx context.Context, id string, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates++
	r.docs[id] = content
	return nil
}

func (r *memRepo) content(id string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.docs[id]
}

func (r *memRepo) counts() (gets, updates int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gets, r.updates
}

func newResolver(t *testing.T) mapping.Resolver {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	now := time.Date(2025, 4, 15, 9, 0, 0, 0, time.UTC)
	return mapping.New(pkgLog.NewNop(), checklist.New(), dates, func() time.Time { return now })
}

func progressRules() mapping.Rules {
	return mapping.Rules{
		OperationMappings: []model.OperationMapping{
			{Operation: model.OperationPercentageDone, Key: "progress", Overwrite: true, Enabled: true},
			{
				Property:  model.PropertyDueDate,
				Operation: model.OperationMin,
				Key:       "next_due",
				Overwrite: true,
				Enabled:   true,
				Conditions: []model.Condition{
					{Property: model.PropertyStatus, Operator: model.OperatorEquals, Value: " "},
				},
			},
		},
	}
}
