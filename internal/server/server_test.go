package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/estla/skillserver/internal/adapter/utils"
	"github.com/estla/skillserver/internal/api"
	"github.com/estla/skillserver/internal/content"
	"github.com/estla/skillserver/internal/data/store"
	"github.com/estla/skillserver/internal/domain/jobModel"
	"github.com/estla/skillserver/internal/handlers"
	"github.com/estla/skillserver/internal/job"
	"github.com/estla/skillserver/internal/mcptools"
	"github.com/estla/skillserver/internal/middleware"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	fsys := afero.NewMemMapFs()
	path := filepath.Join("site", "QnA-crawl", "리모컨 사용법", "index.html")
	require.NoError(t, afero.WriteFile(fsys, path, []byte("<p>페어링 방법을 안내합니다.</p>"), 0o644))

	contentSvc := content.NewService(content.ServiceConfig{
		Fs:       fsys,
		Root:     "site",
		HostBase: "http://localhost:8081/static",
	})
	_, err := contentSvc.Reload(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = contentSvc.Close() })

	jobSvc := job.InitJobService(job.ServiceConfig{
		JobChannel: make(chan jobModel.Job, 2),
		JobStore:   store.InitInMemoryJobStore(),
	})
	h, err := handlers.NewHandler(contentSvc, jobSvc)
	require.NoError(t, err)

	r := utils.NewRouter()
	RegisterRoutes(r, Routes{
		Handler:     h,
		Middleware:  middleware.New(middleware.Config{AdminToken: "tok", RateLimit: 100, RateBurst: 100}),
		MCP:         mcptools.Handler(mcptools.NewServer(contentSvc)),
		Fs:          fsys,
		ContentRoot: "site",
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestRoutes_SkillRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	body := `{"userRequest":{"utterance":"리모컨"}}`
	resp, err := http.Post(srv.URL+"/api/fallback", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Trace-Id"))

	var skill api.SkillResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&skill))
	require.Len(t, skill.Template.Outputs, 2)
	card := skill.Template.Outputs[1].BasicCard
	require.NotNil(t, card)
	assert.Equal(t, "리모컨 사용법", card.Title)
	assert.Equal(t, "페어링 방법을 안내합니다.", card.Description)
}

func TestRoutes_HealthAndStatic(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/static/QnA-crawl/%EB%A6%AC%EB%AA%A8%EC%BB%A8%20%EC%82%AC%EC%9A%A9%EB%B2%95/index.html")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp2, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}

func TestRoutes_ReloadNeedsToken(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/reload", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/reload", nil)
	req.Header.Set("Authorization", "Bearer tok")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
}
