// Package server wires the diary store, pages and live reload into the
// HTTP router.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/conneroisu/diary/internal/config"
	"github.com/conneroisu/diary/internal/diary"
	"github.com/conneroisu/diary/internal/errors"
	httprouter "github.com/conneroisu/diary/internal/http"
	"github.com/conneroisu/diary/internal/logging"
	"github.com/conneroisu/diary/internal/middleware"
	"github.com/conneroisu/diary/internal/watcher"
	"github.com/conneroisu/diary/internal/websocket"
)

// reloadDebounce is how long the data file must be quiet before a reload.
const reloadDebounce = 300 * time.Millisecond

// Server serves the diary pages with optional live reload.
type Server struct {
	config  *config.Config
	logger  logging.Logger
	errors  *errors.ErrorHandler
	store   diary.Store
	hub     *websocket.Manager
	watcher *watcher.FileWatcher
	router  *httprouter.Router

	stylesheetOnce sync.Once
	stylesheet     string

	shutdownOnce sync.Once
}

// Option customises a Server.
type Option func(*Server)

// WithStore replaces the fixture-backed store.
func WithStore(store diary.Store) Option {
	return func(s *Server) { s.store = store }
}

// New builds a server from cfg. Unless WithStore is given, the store is
// seeded from cfg.Data.Path, or from the embedded fixture when it is empty.
func New(cfg *config.Config, logger logging.Logger, opts ...Option) (*Server, error) {
	if cfg == nil {
		return nil, errors.NewConfigError(errors.ErrCodeConfigInvalid, "server: config cannot be nil")
	}
	if logger == nil {
		logger = logging.NewLogger(cfg.LoggerConfig())
	}

	s := &Server{
		config: cfg,
		logger: logger.WithComponent("server"),
	}
	s.errors = errors.NewErrorHandler(s.logger)
	for _, opt := range opts {
		opt(s)
	}

	if s.store == nil {
		data, err := loadFixture(cfg.Data.Path)
		if err != nil {
			return nil, err
		}
		store, err := diary.NewMemoryStore(data)
		if err != nil {
			return nil, fmt.Errorf("loading diary data: %w", err)
		}
		s.store = store
	}

	origins := middleware.NewOriginValidator(cfg)
	s.hub = websocket.NewManager(origins, logger)

	chain := middleware.NewChain(middleware.Dependencies{
		Config:          cfg,
		Logger:          logger,
		OriginValidator: origins,
	})
	s.router = httprouter.NewRouter(cfg, s, chain)

	return s, nil
}

func loadFixture(path string) ([]byte, error) {
	if path == "" {
		return diary.DefaultFixture(), nil
	}
	return diary.ReadFixtureFile(path)
}

// Handler returns the fully wrapped handler.
func (s *Server) Handler() http.Handler {
	return s.router.Handler()
}

// Addr is the address the server listens on.
func (s *Server) Addr() string {
	return s.router.Addr()
}

// Start serves until ctx is done. With hot reload enabled and a data file
// configured, edits to the file reload the store and refresh browsers.
func (s *Server) Start(ctx context.Context) error {
	if s.config.Development.HotReload && s.config.Data.Path != "" {
		if err := s.setupFileWatcher(ctx); err != nil {
			s.logger.Warn(ctx, err, "Live reload disabled", "path", s.config.Data.Path)
		}
	}

	s.logger.Info(ctx, "Diary server listening",
		"addr", s.config.Addr(),
		"environment", s.config.Server.Environment,
		"hot_reload", s.config.Development.HotReload)

	err := s.router.Start(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if serr := s.Shutdown(shutdownCtx); err == nil {
		err = serr
	}

	return err
}

func (s *Server) setupFileWatcher(ctx context.Context) error {
	fw, err := watcher.NewFileWatcher(reloadDebounce, s.logger)
	if err != nil {
		return err
	}

	fw.AddFilter(watcher.YAMLFilter)
	fw.AddFilter(watcher.NoEditorTempFilter)
	fw.AddHandler(s.handleDataChange)
	if err := fw.WatchFile(s.config.Data.Path); err != nil {
		_ = fw.Stop()
		return err
	}
	if err := fw.Start(ctx); err != nil {
		_ = fw.Stop()
		return err
	}

	s.watcher = fw
	return nil
}

// handleDataChange reloads the store from the data file. A broken file
// leaves the previous data in place.
func (s *Server) handleDataChange(events []watcher.ChangeEvent) (err error) {
	ctx := context.Background()
	path := s.config.Data.Path

	op := logging.StartOperation(s.logger, "reload_data")
	defer func() {
		if err != nil {
			op.EndWithError(ctx, err)
			return
		}
		op.End(ctx)
	}()

	for _, e := range events {
		s.logger.Debug(ctx, "Data file changed", "path", e.Path, "type", e.Type.String())
	}

	data, err := diary.ReadFixtureFile(path)
	if err != nil {
		return err
	}
	if err := s.store.Reload(ctx, data); err != nil {
		return fmt.Errorf("reloading %s: %w", path, err)
	}

	s.logger.Info(ctx, "Reloaded diary data", "path", path)
	s.hub.BroadcastReload(path)

	return nil
}

// Shutdown stops the watcher, closes live reload sockets and drains the
// HTTP server. Only the first call does anything.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error

	s.shutdownOnce.Do(func() {
		if s.watcher != nil {
			if werr := s.watcher.Stop(); werr != nil {
				s.logger.Warn(ctx, werr, "Stopping file watcher failed")
			}
		}
		_ = s.hub.Shutdown(ctx)
		err = s.router.Shutdown(ctx)
	})

	return err
}
