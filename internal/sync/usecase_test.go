package sync_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-metadata-sync/internal/document"
	"task-metadata-sync/internal/sync"
	pkgLog "task-metadata-sync/pkg/log"
)

func TestProcessDocument_WritesOnlyWhenChanged(t *testing.T) {
	repo := newMemRepo(map[string]string{
		"plan.md": "---\ntitle: Plan\n---\n- [x] a 📅 2025-04-01\n- [ ] b 📅 2025-05-01\n- [ ] c 📅 2025-04-20\n",
	}, "plan.md")
	reg := prometheus.NewRegistry()
	metrics := sync.NewMetrics(reg)
	uc := sync.New(pkgLog.NewNop(), repo, newResolver(t), progressRules(), metrics, sync.Options{})
	defer uc.Close()

	out, err := uc.ProcessDocument(context.Background(), "plan.md")
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.True(t, out.Written)
	assert.Equal(t, 3, out.Tasks)
	require.Len(t, out.Updates, 2)
	assert.Equal(t,
		"---\ntitle: Plan\nprogress: 33\nnext_due: 2025-04-20\n---\n- [x] a 📅 2025-04-01\n- [ ] b 📅 2025-05-01\n- [ ] c 📅 2025-04-20\n",
		repo.content("plan.md"))

	out, err = uc.ProcessDocument(context.Background(), "plan.md")
	require.NoError(t, err)
	assert.False(t, out.Changed)
	assert.False(t, out.Written)

	_, updates := repo.counts()
	assert.Equal(t, 1, updates)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.DocumentsTotal.WithLabelValues("written")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.DocumentsTotal.WithLabelValues("unchanged")))
	assert.Equal(t, 4.0, testutil.ToFloat64(metrics.UpdatesTotal))
}

func TestProcessDocument_DryRun(t *testing.T) {
	original := "- [ ] a\n"
	repo := newMemRepo(map[string]string{"a.md": original}, "a.md")
	uc := sync.New(pkgLog.NewNop(), repo, newResolver(t), progressRules(), nil, sync.Options{DryRun: true})
	defer uc.Close()

	out, err := uc.ProcessDocument(context.Background(), "a.md")
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.False(t, out.Written)
	assert.Equal(t, "---\nprogress: 0\n---\n- [ ] a\n", out.Content)
	assert.Equal(t, original, repo.content("a.md"))
}

func TestProcessDocument_NotFound(t *testing.T) {
	repo := newMemRepo(map[string]string{})
	uc := sync.New(pkgLog.NewNop(), repo, newResolver(t), progressRules(), nil, sync.Options{})
	defer uc.Close()

	_, err := uc.ProcessDocument(context.Background(), "missing.md")
	assert.ErrorIs(t, err, document.ErrDocumentNotFound)
}

func TestProcessAll_CollectsFailures(t *testing.T) {
	repo := newMemRepo(map[string]string{
		"ok.md":     "- [x] done\n",
		"broken.md": "---\nkey: [unclosed\n---\n- [ ] a\n",
		"plain.md":  "no tasks here\n",
	}, "broken.md", "ok.md", "plain.md")
	uc := sync.New(pkgLog.NewNop(), repo, newResolver(t), progressRules(), nil, sync.Options{})
	defer uc.Close()

	out, err := uc.ProcessAll(context.Background())
	require.NoError(t, err)

	require.Len(t, out.Results, 2)
	assert.Contains(t, out.Failed, "broken.md")
	assert.Equal(t, 2, out.Written())
	assert.Equal(t, "---\nprogress: 100\n---\n- [x] done\n", repo.content("ok.md"))
	assert.Equal(t, "---\nprogress: 0\n---\nno tasks here\n", repo.content("plain.md"))
}

func TestNotify_DebouncesAndSuppressesOwnWrites(t *testing.T) {
	repo := newMemRepo(map[string]string{"a.md": "- [ ] a\n- [x] b\n"}, "a.md")
	metrics := sync.NewMetrics(prometheus.NewRegistry())
	uc := sync.New(pkgLog.NewNop(), repo, newResolver(t), progressRules(), metrics, sync.Options{
		Debounce: 20 * time.Millisecond,
		Cooldown: 100 * time.Millisecond,
	})
	defer uc.Close()

	for i := 0; i < 5; i++ {
		uc.Notify("a.md")
	}

	require.Eventually(t, func() bool {
		_, updates := repo.counts()
		return updates == 1
	}, time.Second, 5*time.Millisecond)

	// The watcher reports our own write while the cooldown is active.
	uc.Notify("a.md")
	require.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.SkippedTotal.WithLabelValues("cooldown")) == 1
	}, time.Second, 5*time.Millisecond)

	// A late report of the same content after the cooldown is still ours.
	time.Sleep(150 * time.Millisecond)
	uc.Notify("a.md")
	require.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.SkippedTotal.WithLabelValues("own_write")) == 1
	}, time.Second, 5*time.Millisecond)

	_, updates := repo.counts()
	assert.Equal(t, 1, updates)
}

func TestNotify_RetriesTransientFetchErrors(t *testing.T) {
	repo := newMemRepo(map[string]string{"a.md": "- [x] a\n"}, "a.md")
	repo.failGets = 2
	uc := sync.New(pkgLog.NewNop(), repo, newResolver(t), progressRules(), nil, sync.Options{
		Debounce:     time.Millisecond,
		RetryBackoff: time.Millisecond,
	})
	defer uc.Close()

	uc.Notify("a.md")

	require.Eventually(t, func() bool {
		return repo.content("a.md") == "---\nprogress: 100\n---\n- [x] a\n"
	}, time.Second, 5*time.Millisecond)

	gets, _ := repo.counts()
	assert.Equal(t, 3, gets)
}
