package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-metadata-sync/internal/checklist"
	"task-metadata-sync/internal/mapping"
	mappingHTTP "task-metadata-sync/internal/mapping/delivery/http"
	"task-metadata-sync/internal/model"
	"task-metadata-sync/pkg/datemath"
	"task-metadata-sync/pkg/log"
)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Errors    []string        `json:"errors"`
}

type resolveData struct {
	Tasks []struct {
		Line        int    `json:"line"`
		Description string `json:"description"`
		DueDate     string `json:"due_date"`
	} `json:"tasks"`
	Stats struct {
		Total      int `json:"total"`
		Percentage int `json:"percentage"`
	} `json:"stats"`
	Updates []struct {
		Key   string `json:"key"`
		Value any    `json:"value"`
	} `json:"updates"`
	Changed     bool           `json:"changed"`
	Content     string         `json:"content"`
	Frontmatter map[string]any `json:"frontmatter"`
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dates, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	resolver := mapping.New(log.NewNop(), checklist.New(), dates, time.Now)

	defaults := mapping.Rules{
		OperationMappings: []model.OperationMapping{
			{Operation: model.OperationPercentageDone, Key: "progress", Overwrite: true, Enabled: true},
		},
	}

	r := gin.New()
	mappingHTTP.RegisterRoutes(r.Group("/api/v1"), mappingHTTP.New(log.NewNop(), resolver, defaults))
	return r
}

func post(r *gin.Engine, body string) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resolve", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestResolve_DefaultRules(t *testing.T) {
	r := newRouter(t)

	w, env := post(r, `{"content":"- [x] a 📅 2025-01-01\n- [ ] b\n"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var data resolveData
	require.NoError(t, json.Unmarshal(env.Data, &data))

	require.Len(t, data.Tasks, 2)
	assert.Equal(t, "a", data.Tasks[0].Description)
	assert.Equal(t, "2025-01-01", data.Tasks[0].DueDate)
	assert.Equal(t, 1, data.Tasks[1].Line)
	assert.Equal(t, 50, data.Stats.Percentage)

	require.Len(t, data.Updates, 1)
	assert.Equal(t, "progress", data.Updates[0].Key)
	assert.Equal(t, float64(50), data.Updates[0].Value)
	assert.True(t, data.Changed)
	assert.Equal(t, "---\nprogress: 50\n---\n- [x] a 📅 2025-01-01\n- [ ] b\n", data.Content)
	assert.Equal(t, map[string]any{"progress": float64(50)}, data.Frontmatter)
}

func TestResolve_SuppliedRules(t *testing.T) {
	r := newRouter(t)

	body := `{
		"content": "- [ ] a 📅 2025-03-01\n- [ ] b 📅 2025-02-01\n",
		"rules": {"operation_mappings": [
			{"property":"due_date","operation":"list","key":"dues","overwrite":true,"enabled":true}
		]}
	}`
	w, env := post(r, body)
	require.Equal(t, http.StatusOK, w.Code)

	var data resolveData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Updates, 1)
	assert.Equal(t, "dues", data.Updates[0].Key)
	assert.Equal(t, "2025-03-01, 2025-02-01", data.Updates[0].Value)
}

func TestResolve_OutOfRangeDateInHeader(t *testing.T) {
	r := newRouter(t)

	body := `{
		"content": "---\ntitle: plan\n---\n- [ ] a 📅 2025-99-99\n",
		"rules": {"direct_mappings": [{"property":"due_date","key":"due","overwrite":true,"enabled":true}]}
	}`
	w, env := post(r, body)
	require.Equal(t, http.StatusOK, w.Code)

	var data resolveData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.Changed)
	assert.Equal(t, "---\ntitle: plan\ndue: 2025-99-99\n---\n- [ ] a 📅 2025-99-99\n", data.Content)
	assert.Equal(t, map[string]any{"title": "plan", "due": "2025-99-99"}, data.Frontmatter)
}

func TestResolve_EmptyDocumentWithoutCountingRules(t *testing.T) {
	r := newRouter(t)

	w, env := post(r, `{"content":"","rules":{"direct_mappings":[{"property":"due_date","key":"due","enabled":true}]}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var data resolveData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Empty(t, data.Updates)
	assert.False(t, data.Changed)
}

func TestResolve_BadRequests(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		name       string
		body       string
		wantErrors int
	}{
		{name: "malformed json", body: `{`},
		{
			name:       "invalid rules",
			body:       `{"content":"","rules":{"operation_mappings":[{"property":"due","operation":"median","key":"x","enabled":true}]}}`,
			wantErrors: 2,
		},
		{name: "invalid header", body: `{"content":"---\n- a\n---\n- [ ] a\n"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := post(r, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, env.Message)
			assert.Len(t, env.Errors, tt.wantErrors)
		})
	}
}
