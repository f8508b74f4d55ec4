// Package http owns the diary's route table and the HTTP server lifecycle.
package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/conneroisu/diary/internal/config"
)

// shutdownTimeout bounds the graceful drain when Start's context ends.
const shutdownTimeout = 30 * time.Second

// Router registers the diary routes and runs the server.
//
// Invariants:
//   - config, mux and handlers are never nil after construction
//   - httpServer is created once by NewRouter
//   - isShutdown only goes from false to true
type Router struct {
	config     *config.Config
	httpServer *http.Server
	mux        *http.ServeMux
	handler    http.Handler

	serverMutex sync.RWMutex
	isShutdown  bool
	listenAddr  string

	handlers Handlers
}

// Handlers is everything the route table dispatches to.
type Handlers interface {
	HandleRoot(w http.ResponseWriter, r *http.Request)
	HandleNotFound(w http.ResponseWriter, r *http.Request)

	HandleDiaryList(w http.ResponseWriter, r *http.Request)
	HandleDiaryCreate(w http.ResponseWriter, r *http.Request)
	HandleDiaryDetail(w http.ResponseWriter, r *http.Request)
	HandleRetrospectCreate(w http.ResponseWriter, r *http.Request)
	HandleDiaryDelete(w http.ResponseWriter, r *http.Request)
	HandlePictures(w http.ResponseWriter, r *http.Request)

	HandleTheme(w http.ResponseWriter, r *http.Request)
	HandleStylesheet(w http.ResponseWriter, r *http.Request)
	HandleHealth(w http.ResponseWriter, r *http.Request)
	HandleWebSocket(w http.ResponseWriter, r *http.Request)
}

// MiddlewareProvider wraps the mux with cross-cutting handlers.
type MiddlewareProvider interface {
	Apply(handler http.Handler) http.Handler
}

// NewRouter registers every route and prepares the server. It panics on
// nil dependencies or an invalid port.
func NewRouter(cfg *config.Config, handlers Handlers, middlewareProvider MiddlewareProvider) *Router {
	if cfg == nil {
		panic("Router: config cannot be nil")
	}
	if handlers == nil {
		panic("Router: handlers cannot be nil")
	}
	if middlewareProvider == nil {
		panic("Router: middlewareProvider cannot be nil")
	}
	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		panic(fmt.Sprintf("Router: invalid port %d, must be 0-65535", cfg.Server.Port))
	}
	if cfg.Server.Host == "" {
		panic("Router: host cannot be empty")
	}

	router := &Router{
		config:   cfg,
		mux:      http.NewServeMux(),
		handlers: handlers,
	}
	router.registerRoutes()

	router.handler = middlewareProvider.Apply(router.mux)
	router.httpServer = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return router
}

func (r *Router) registerRoutes() {
	h := r.handlers

	r.mux.HandleFunc("GET /{$}", h.HandleRoot)

	r.mux.HandleFunc("GET /diaries", h.HandleDiaryList)
	r.mux.HandleFunc("POST /diaries", h.HandleDiaryCreate)
	r.mux.HandleFunc("GET /diaries/{id}", h.HandleDiaryDetail)
	r.mux.HandleFunc("POST /diaries/{id}/retrospects", h.HandleRetrospectCreate)
	r.mux.HandleFunc("POST /diaries/{id}/delete", h.HandleDiaryDelete)
	r.mux.HandleFunc("GET /pictures", h.HandlePictures)

	r.mux.HandleFunc("POST /theme", h.HandleTheme)
	r.mux.HandleFunc("GET /static/theme.css", h.HandleStylesheet)
	r.mux.HandleFunc("GET /health", h.HandleHealth)

	if r.config.Development.HotReload {
		r.mux.HandleFunc("GET /ws", h.HandleWebSocket)
	}

	r.mux.HandleFunc("/", h.HandleNotFound)
}

// Handler returns the mux wrapped in middleware, for tests and in-process
// rendering.
func (r *Router) Handler() http.Handler {
	return r.handler
}

// Start listens and serves until ctx is done, then shuts down gracefully.
// It returns nil after a clean shutdown.
func (r *Router) Start(ctx context.Context) error {
	r.serverMutex.RLock()
	server := r.httpServer
	isShutdown := r.isShutdown
	r.serverMutex.RUnlock()

	if isShutdown {
		return errors.New("Router.Start: router has been shut down")
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return fmt.Errorf("Router.Start: listen on %s: %w", server.Addr, err)
	}

	r.serverMutex.Lock()
	r.listenAddr = ln.Addr().String()
	r.serverMutex.Unlock()

	errChan := make(chan error, 1)
	go func() {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("Router: server error: %w", err)
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return r.Shutdown(shutdownCtx)
	case err, ok := <-errChan:
		if !ok {
			return nil
		}
		return err
	}
}

// Shutdown drains in-flight requests. It is idempotent.
func (r *Router) Shutdown(ctx context.Context) error {
	r.serverMutex.Lock()
	defer r.serverMutex.Unlock()

	if r.isShutdown {
		return nil
	}
	r.isShutdown = true

	if err := r.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("Router.Shutdown: server shutdown failed: %w", err)
	}

	return nil
}

// Addr returns the bound address once Start is listening, otherwise the
// configured one.
func (r *Router) Addr() string {
	r.serverMutex.RLock()
	defer r.serverMutex.RUnlock()

	if r.listenAddr != "" {
		return r.listenAddr
	}
	return r.httpServer.Addr
}

// IsShutdown returns whether the router has been shut down
func (r *Router) IsShutdown() bool {
	r.serverMutex.RLock()
	defer r.serverMutex.RUnlock()
	return r.isShutdown
}
