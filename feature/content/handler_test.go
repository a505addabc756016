package content

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"content-sync/core/middleware/auth"
	"content-sync/core/server"
	contentsync "content-sync/feature/content/sync"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRunner struct {
	calls atomic.Int32
	err   error
}

func (r *fakeRunner) Run(ctx context.Context) (*contentsync.Result, error) {
	r.calls.Add(1)
	if r.err != nil {
		return nil, r.err
	}
	return &contentsync.Result{
		RunID:  "run-1",
		Counts: map[string]int{"products": 2, "tours": 1, "donations": 0, "posts": 3},
	}, nil
}

type fakeHistory struct {
	runs []contentsync.Run
	err  error
}

func (h *fakeHistory) Record(ctx context.Context, run *contentsync.Run) error { return nil }

func (h *fakeHistory) Recent(ctx context.Context, limit int) ([]contentsync.Run, error) {
	if h.err != nil {
		return nil, h.err
	}
	if limit < len(h.runs) {
		return h.runs[:limit], nil
	}
	return h.runs, nil
}

func setupTestApp(t *testing.T, runner Runner, history contentsync.Recorder, cfg server.Config) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: cfg.ApiKey, Next: IsPublicRoute}))

	feature := NewFeature(runner, history, cfg, zap.NewNop())
	assert.Equal(t, "content", feature.Name())
	assert.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))
	return app
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHandleBuildData(t *testing.T) {
	runner := &fakeRunner{}
	app := setupTestApp(t, runner, nil, server.Config{ApiKey: "key"})

	req := httptest.NewRequest("POST", "/api/build-data", nil)
	req.Header.Set(auth.Header, "key")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "run-1", body["runId"])
	assert.Equal(t, float64(3), body["counts"].(map[string]any)["posts"])
	assert.Equal(t, int32(1), runner.calls.Load())
}

func TestHandleBuildData_RequiresKey(t *testing.T) {
	runner := &fakeRunner{}
	app := setupTestApp(t, runner, nil, server.Config{ApiKey: "key"})

	resp, err := app.Test(httptest.NewRequest("POST", "/api/build-data", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
	assert.Equal(t, int32(0), runner.calls.Load())
}

func TestHandleBuildData_Error(t *testing.T) {
	app := setupTestApp(t, &fakeRunner{err: errors.New("contentful request failed")}, nil, server.Config{})

	resp, err := app.Test(httptest.NewRequest("POST", "/api/build-data", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	assert.Equal(t, "contentful request failed", decode(t, resp)["error"])
}

func TestHandleRevalidate(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		query      string
		wantStatus int
		wantCalls  int32
	}{
		{"Valid Secret", "s3cret", "?secret=s3cret", 200, 1},
		{"Wrong Secret", "s3cret", "?secret=nope", 401, 0},
		{"Missing Secret", "s3cret", "", 401, 0},
		{"Unconfigured", "", "?secret=", 401, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{}
			app := setupTestApp(t, runner, nil, server.Config{ApiKey: "key", RevalidateSecret: tt.configured})

			resp, err := app.Test(httptest.NewRequest("GET", "/api/revalidate"+tt.query, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantCalls, runner.calls.Load())

			body := decode(t, resp)
			if tt.wantStatus == 200 {
				assert.Equal(t, true, body["revalidated"])
				assert.NotNil(t, body["counts"])
			} else {
				assert.Equal(t, "Invalid secret", body["error"])
			}
		})
	}
}

func TestHandleWebhook(t *testing.T) {
	var hookCalls atomic.Int32
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		hookCalls.Add(1)
		w.WriteHeader(http.StatusCreated)
	}))
	defer hook.Close()

	t.Run("Missing Topic", func(t *testing.T) {
		runner := &fakeRunner{}
		app := setupTestApp(t, runner, nil, server.Config{ApiKey: "key", DeployHook: hook.URL})

		resp, err := app.Test(httptest.NewRequest("POST", "/api/contentful/webhook", nil))
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
		assert.Equal(t, "Unauthorized", decode(t, resp)["error"])
		assert.Equal(t, int32(0), runner.calls.Load())
	})

	t.Run("Secret Mismatch", func(t *testing.T) {
		app := setupTestApp(t, &fakeRunner{}, nil, server.Config{WebhookSecret: "hook-secret"})

		req := httptest.NewRequest("POST", "/api/contentful/webhook", nil)
		req.Header.Set(TopicHeader, "ContentManagement.Entry.publish")
		req.Header.Set(WebhookSecretHeader, "wrong")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("Deploy Only", func(t *testing.T) {
		runner := &fakeRunner{}
		app := setupTestApp(t, runner, nil, server.Config{ApiKey: "key", WebhookSecret: "hook-secret", DeployHook: hook.URL})

		req := httptest.NewRequest("POST", "/api/contentful/webhook", nil)
		req.Header.Set(TopicHeader, "ContentManagement.Entry.publish")
		req.Header.Set(WebhookSecretHeader, "hook-secret")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		body := decode(t, resp)
		assert.Equal(t, true, body["rebuilt"])
		assert.Equal(t, true, body["deployTriggered"])
		assert.NotContains(t, body, "counts")
		assert.Equal(t, int32(0), runner.calls.Load())
		assert.Equal(t, int32(1), hookCalls.Load())
	})

	t.Run("No Deploy Hook", func(t *testing.T) {
		runner := &fakeRunner{}
		app := setupTestApp(t, runner, nil, server.Config{})

		req := httptest.NewRequest("POST", "/api/contentful/webhook", nil)
		req.Header.Set(TopicHeader, "ContentManagement.Entry.publish")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, false, decode(t, resp)["deployTriggered"])
		assert.Equal(t, int32(0), runner.calls.Load())
	})
}

func TestHandleWebhook_DeployHookFailure(t *testing.T) {
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer hook.Close()

	app := setupTestApp(t, &fakeRunner{}, nil, server.Config{DeployHook: hook.URL})

	req := httptest.NewRequest("POST", "/api/contentful/webhook", nil)
	req.Header.Set(TopicHeader, "ContentManagement.Entry.publish")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 502, resp.StatusCode)
	assert.Contains(t, decode(t, resp)["error"], "deploy hook failed")
}

func TestHandleWebhook_NeverRunsSync(t *testing.T) {
	runner := &fakeRunner{err: errors.New("boom")}
	app := setupTestApp(t, runner, nil, server.Config{})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/api/contentful/webhook", nil)
		req.Header.Set(TopicHeader, "ContentManagement.Entry.publish")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	}
	assert.Equal(t, int32(0), runner.calls.Load())
}

func TestHandleListRuns(t *testing.T) {
	t.Run("History Disabled", func(t *testing.T) {
		app := setupTestApp(t, &fakeRunner{}, nil, server.Config{})

		resp, err := app.Test(httptest.NewRequest("GET", "/api/sync/runs", nil))
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)
	})

	t.Run("Lists Runs", func(t *testing.T) {
		history := &fakeHistory{runs: []contentsync.Run{
			{ID: "run-2", Status: contentsync.StatusFailed},
			{ID: "run-1", Status: contentsync.StatusSuccess, Products: 4},
		}}
		app := setupTestApp(t, &fakeRunner{}, history, server.Config{})

		resp, err := app.Test(httptest.NewRequest("GET", "/api/sync/runs?limit=1", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var runs []contentsync.Run
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&runs))
		require.Len(t, runs, 1)
		assert.Equal(t, "run-2", runs[0].ID)
	})

	t.Run("Store Error", func(t *testing.T) {
		app := setupTestApp(t, &fakeRunner{}, &fakeHistory{err: errors.New("db down")}, server.Config{})

		resp, err := app.Test(httptest.NewRequest("GET", "/api/sync/runs", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
	})
}
