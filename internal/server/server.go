// Package server assembles the HTTP host: chi router, middleware stack and http.Server.
package server

import (
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMid "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/tmosimanyana/moofar.site/internal/config"
	"github.com/tmosimanyana/moofar.site/internal/handlers"
	mw "github.com/tmosimanyana/moofar.site/internal/middleware"
	"github.com/tmosimanyana/moofar.site/public"
)

const readHeaderTimeout = 10 * time.Second

// HealthPath is the only API endpoint the host exposes.
const HealthPath = "/api/health"

// NewRouter builds the request router over the site build in fsys.
func NewRouter(cfg config.ServerConfig, logger *zap.Logger, fsys fs.FS) (http.Handler, error) {
	if err := public.ValidateEntry(fsys); err != nil {
		return nil, err
	}
	spa, err := handlers.NewSPA(fsys)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(chiMid.RequestID)
	// RealIP trusts X-Forwarded-For; only run behind a proxy that sets it.
	r.Use(chiMid.RealIP)
	r.Use(mw.Logger(logger))
	r.Use(chiMid.Recoverer)
	r.Use(chiMid.GetHead)
	r.Use(chiMid.Compress(5))
	if cfg.WriteTimeout > 0 {
		r.Use(chiMid.Timeout(cfg.WriteTimeout))
	}

	r.Get(HealthPath, handlers.Health)
	r.Get("/*", spa.ServeHTTP)
	return r, nil
}

// New returns a configured server; the caller owns ListenAndServe and Shutdown.
func New(cfg config.ServerConfig, logger *zap.Logger, fsys fs.FS) (*http.Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	router, err := NewRouter(cfg, logger, fsys)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ErrorLog:          zap.NewStdLog(logger.Named("http")),
	}, nil
}
