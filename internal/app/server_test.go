package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markdave123-py/blogai/internal/config"
)

func testConfig(apiKey, baseURL string) *config.Config {
	return &config.Config{
		Port:            "0",
		OpenAIAPIKey:    apiKey,
		OpenAIBaseURL:   baseURL,
		ChatModel:       "gpt-3.5-turbo",
		ImageModel:      "dall-e-2",
		ImageSize:       "512x512",
		TextProvider:    config.TextProviderOpenAI,
		MaxKeywords:     3,
		SummaryMaxWords: 120,
		AllowedOrigins:  []string{"*"},
		RequestTimeout:  5 * time.Second,
		ShutdownTimeout: time.Second,
	}
}

func fakeProvider(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/chat/completions":
			_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"seo, blogging,,writing tips\ncontent"}}]}`))
		case "/v1/images/generations":
			_, _ = w.Write([]byte(`{"created":1,"data":[{"url":"https://img.example/t.png"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestApp(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	a, err := NewApp(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a.Server.Handler()
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthWithoutConfiguration(t *testing.T) {
	h := newTestApp(t, testConfig("", ""))

	rec := do(h, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMissingCredentialFailsBeforeProviderCall(t *testing.T) {
	var hits atomic.Int32
	srv := fakeProvider(t, &hits)
	h := newTestApp(t, testConfig("", srv.URL+"/v1"))

	for _, tc := range []struct{ path, body string }{
		{"/ai/thumbnail", `{"prompt":"a desk"}`},
		{"/ai/keywords", `{"text":"go"}`},
		{"/ai/summarize", `{"content":"post"}`},
	} {
		rec := do(h, http.MethodPost, tc.path, tc.body)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, tc.path)
		assert.JSONEq(t, `{"detail":"OpenAI API key not configured on server"}`, rec.Body.String(), tc.path)
	}
	assert.Zero(t, hits.Load())
}

func TestAIRoutesEndToEnd(t *testing.T) {
	var hits atomic.Int32
	srv := fakeProvider(t, &hits)
	h := newTestApp(t, testConfig("sk-test", srv.URL+"/v1"))

	rec := do(h, http.MethodPost, "/ai/keywords", `{"text":"blogging with go"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"keywords":["seo","blogging","writing tips"]}`, rec.Body.String())

	rec = do(h, http.MethodPost, "/ai/thumbnail", `{"prompt":"a desk"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"image_url":"https://img.example/t.png"}`, rec.Body.String())

	rec = do(h, http.MethodPost, "/ai/summarize", `{"content":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.EqualValues(t, 2, hits.Load())

	rec = do(h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `blogai_provider_calls_total{operation="keywords",outcome="success"} 1`)
	assert.Contains(t, rec.Body.String(), `blogai_provider_calls_total{operation="summarize",outcome="validation_error"} 1`)
}

func TestWildcardCORS(t *testing.T) {
	h := newTestApp(t, testConfig("", ""))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/ai/keywords", nil)
	req.Header.Set("Origin", "https://blog.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestPreflightIsCounted(t *testing.T) {
	h := newTestApp(t, testConfig("", ""))

	req := httptest.NewRequest(http.MethodOptions, "/ai/summarize", nil)
	req.Header.Set("Origin", "https://blog.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	h.ServeHTTP(httptest.NewRecorder(), req)

	rec := do(h, http.MethodGet, "/metrics", "")
	assert.Contains(t, rec.Body.String(), `blogai_http_requests_total{method="OPTIONS"`)
}

func TestConfigWarningsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig("", "")
	cfg.Warnings = []string{`MAX_KEYWORDS="lots" not an int, using default 8`}

	a, err := NewApp(context.Background(), cfg, zerolog.New(&buf))
	require.NoError(t, err)
	defer a.Close()

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `MAX_KEYWORDS=\"lots\" not an int`)
}

func TestRunStopsOnCancel(t *testing.T) {
	a, err := NewApp(context.Background(), testConfig("", ""), zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
