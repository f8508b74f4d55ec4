// Package middleware builds the handler chain wrapped around every route:
// request logging, panic recovery, CORS and security headers.
package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/conneroisu/diary/internal/config"
	"github.com/conneroisu/diary/internal/errors"
	"github.com/conneroisu/diary/internal/logging"
)

// Chain manages the HTTP middleware stack.
//
// Middlewares run in the order they were added: the first one added is the
// outermost wrapper and sees the request first.
type Chain struct {
	config          *config.Config
	logger          logging.Logger
	originValidator OriginValidator
	middlewares     []Middleware
}

// Middleware represents a single middleware function
type Middleware func(http.Handler) http.Handler

// Dependencies contains everything needed to build the default stack.
type Dependencies struct {
	Config          *config.Config
	Logger          logging.Logger
	OriginValidator OriginValidator
}

// NewChain builds the default stack. It panics on missing config or
// origin validator.
func NewChain(deps Dependencies) *Chain {
	if deps.Config == nil {
		panic("middleware.Chain: config cannot be nil")
	}
	if deps.OriginValidator == nil {
		panic("middleware.Chain: originValidator cannot be nil (required for CORS)")
	}
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}

	chain := &Chain{
		config:          deps.Config,
		logger:          deps.Logger.WithComponent("http"),
		originValidator: deps.OriginValidator,
		middlewares:     make([]Middleware, 0, 4),
	}
	chain.buildDefaultStack()

	return chain
}

func (c *Chain) buildDefaultStack() {
	c.AddMiddleware(c.loggingMiddleware())
	c.AddMiddleware(c.recoveryMiddleware())
	c.AddMiddleware(c.corsMiddleware())
	c.AddMiddleware(SecurityHeaders())
}

// AddMiddleware appends m inside the existing middlewares.
func (c *Chain) AddMiddleware(m Middleware) {
	c.middlewares = append(c.middlewares, m)
}

// Apply wraps handler with the whole chain.
func (c *Chain) Apply(handler http.Handler) http.Handler {
	if handler == nil {
		panic("middleware.Chain.Apply: handler cannot be nil")
	}

	wrapped := handler
	for i := len(c.middlewares) - 1; i >= 0; i-- {
		m := c.middlewares[i]
		if m == nil {
			panic(fmt.Sprintf("middleware.Chain.Apply: middleware at index %d is nil", i))
		}
		wrapped = m(wrapped)
	}

	return wrapped
}

// Count returns the number of middlewares in the chain.
func (c *Chain) Count() int {
	return len(c.middlewares)
}

func (c *Chain) loggingMiddleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}

			next.ServeHTTP(rec, r)

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			fields := []interface{}{
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", rec.bytes,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if status >= http.StatusInternalServerError {
				c.logger.Warn(r.Context(), nil, "HTTP request", fields...)
				return
			}
			c.logger.Info(r.Context(), "HTTP request", fields...)
		})
	}
}

func (c *Chain) recoveryMiddleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rv := recover(); rv != nil {
					if rv == http.ErrAbortHandler {
						panic(rv)
					}
					err := errors.NewInternalError(errors.ErrCodeInternalError, "handler panicked", fmt.Errorf("panic: %v", rv))
					c.logger.Error(r.Context(), err, "Handler panicked",
						"path", r.URL.Path,
						"stack", string(debug.Stack()))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func (c *Chain) corsMiddleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			// Production default: no CORS header for unknown origins.
			if c.originValidator.IsAllowedOrigin(origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// contentSecurityPolicy allows the inline live reload and copy scripts.
const contentSecurityPolicy = "default-src 'self'; " +
	"script-src 'self' 'unsafe-inline'; " +
	"style-src 'self' 'unsafe-inline'; " +
	"img-src 'self' data:; " +
	"connect-src 'self' ws: wss:; " +
	"frame-ancestors 'none'"

// SecurityHeaders sets the response headers every page carries.
func SecurityHeaders() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "same-origin")
			h.Set("Content-Security-Policy", contentSecurityPolicy)
			next.ServeHTTP(w, r)
		})
	}
}
