// Package handlers implements the host endpoints: the health check and the SPA fallback.
package handlers

import (
	"fmt"
	"io/fs"
	"net/http"
	"path"

	"go.uber.org/zap"

	"github.com/tmosimanyana/moofar.site/internal/middleware"
	"github.com/tmosimanyana/moofar.site/internal/observability"
	"github.com/tmosimanyana/moofar.site/public"
)

// SPA serves files that exist in the build and the entry document for every other path.
type SPA struct {
	assets *middleware.Assets
	entry  []byte
}

// NewSPA loads the entry document from fsys.
func NewSPA(fsys fs.FS) (*SPA, error) {
	entry, err := fs.ReadFile(fsys, public.EntryName)
	if err != nil {
		return nil, fmt.Errorf("handlers: read entry document: %w", err)
	}
	return &SPA{assets: middleware.AssetsWithCache(fsys), entry: entry}, nil
}

func (s *SPA) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p := path.Clean("/" + r.URL.Path)
	if p != "/"+public.EntryName && s.assets.Exists(p) {
		s.assets.ServeHTTP(w, r)
		return
	}
	s.serveEntry(w, r)
}

// serveEntry answers 200 so the client router decides what the path shows.
func (s *SPA) serveEntry(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(s.entry); err != nil {
		observability.FromContext(r.Context()).Debug("write entry document", zap.Error(err))
	}
}
