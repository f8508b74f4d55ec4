package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/diary/internal/config"
	"github.com/conneroisu/diary/internal/logging"
)

func newChain(t *testing.T, env string, origins ...string) (*Chain, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default()
	cfg.Server.Environment = env
	cfg.Server.AllowedOrigins = origins

	var buf bytes.Buffer
	logger := logging.NewLogger(&logging.LoggerConfig{Level: logging.LevelDebug, Output: &buf})
	return NewChain(Dependencies{
		Config:          cfg,
		Logger:          logger,
		OriginValidator: NewOriginValidator(cfg),
	}), &buf
}

func TestOriginValidator(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		origins []string
		origin  string
		want    bool
	}{
		{"empty origin", "development", nil, "", false},
		{"configured", "production", []string{"https://diary.example/"}, "https://diary.example", true},
		{"configured case-insensitive", "production", []string{"https://Diary.example"}, "https://diary.example", true},
		{"localhost in development", "development", nil, "http://localhost:3000", true},
		{"loopback ip in development", "development", nil, "http://127.0.0.1:8080", true},
		{"localhost in production", "production", nil, "http://localhost:3000", false},
		{"foreign in development", "development", nil, "http://evil.example", false},
		{"non-http scheme", "development", nil, "file://localhost", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Server.Environment = tt.env
			cfg.Server.AllowedOrigins = tt.origins
			assert.Equal(t, tt.want, NewOriginValidator(cfg).IsAllowedOrigin(tt.origin))
		})
	}
}

func TestChainOrder(t *testing.T) {
	chain, _ := newChain(t, "development")
	assert.Equal(t, 4, chain.Count())

	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	chain.AddMiddleware(mark("first"))
	chain.AddMiddleware(mark("second"))

	h := chain.Apply(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestSecurityHeadersAndLogging(t *testing.T) {
	chain, buf := newChain(t, "development")

	h := chain.Apply(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/diaries?page=2", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "default-src 'self'")

	logged := buf.String()
	assert.Contains(t, logged, "HTTP request")
	assert.Contains(t, logged, "path=/diaries")
	assert.Contains(t, logged, "status=418")
	assert.Contains(t, logged, "bytes=15")
}

func TestRecovery(t *testing.T) {
	chain, buf := newChain(t, "development")

	h := chain.Apply(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/diaries/1", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "Handler panicked")
	assert.Contains(t, buf.String(), "ERR_INTERNAL")
	assert.Contains(t, buf.String(), "panic: boom")
	assert.Contains(t, buf.String(), "status=500")
}

func TestCORS(t *testing.T) {
	chain, _ := newChain(t, "production", "https://diary.example")
	h := chain.Apply(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/diaries", nil)
		req.Header.Set("Origin", "https://diary.example")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, "https://diary.example", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/diaries", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/diaries", nil)
		req.Header.Set("Origin", "https://diary.example")
		req.Header.Set("Access-Control-Request-Method", "POST")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
	})
}

func TestNewChainRequiresDependencies(t *testing.T) {
	assert.Panics(t, func() { NewChain(Dependencies{}) })
	assert.Panics(t, func() { NewChain(Dependencies{Config: config.Default()}) })
}
