// Package app drives the client: it owns the mounted page, routes navigation and writes
// rendered markup to the document.
package app

import (
	"bytes"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tmosimanyana/moofar.site/internal/ui/pages"
	"github.com/tmosimanyana/moofar.site/internal/ui/router"
	"github.com/tmosimanyana/moofar.site/internal/ui/shell"
)

// ErrNotStarted is returned by Dispatch before the first navigation.
var ErrNotStarted = errors.New("app: no page mounted")

// Document receives rendered pages.
type Document interface {
	Replace(title, body string)
}

// History records client route changes.
type History interface {
	Push(path string)
}

// Scroller moves the viewport.
type Scroller interface {
	// ScrollIntoView smooth-scrolls to the element with id. It reports whether the element exists.
	ScrollIntoView(id string) bool
	ScrollTop()
}

// App is the client application. It is not safe for concurrent use; the browser delivers
// every event on a single goroutine.
type App struct {
	router   *router.Router
	doc      Document
	history  History
	scroller Scroller
	scroll   shell.ScrollSource
	logger   *zap.Logger

	path string
	page pages.Page
}

// Option configures an App.
type Option func(*App)

// WithHistory records route changes in h.
func WithHistory(h History) Option { return func(a *App) { a.history = h } }

// WithScroller lets the app move the viewport.
func WithScroller(s Scroller) Option { return func(a *App) { a.scroller = s } }

// WithScrollSource feeds scroll offsets to mounted pages.
func WithScrollSource(src shell.ScrollSource) Option { return func(a *App) { a.scroll = src } }

// WithLogger sets the logger. The default discards output.
func WithLogger(l *zap.Logger) Option { return func(a *App) { a.logger = l } }

// New builds an app rendering into doc. A nil router uses the site route table.
func New(r *router.Router, doc Document, opts ...Option) *App {
	if r == nil {
		r = router.Default()
	}
	a := &App{router: r, doc: doc, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Path returns the normalized path of the mounted page.
func (a *App) Path() string { return a.path }

// Page returns the mounted page, or nil before Start.
func (a *App) Page() pages.Page { return a.page }

// Start mounts the page for the initial location without touching history.
func (a *App) Start(path string) error { return a.mount(path, false) }

// Navigate performs a client route change and records it in history.
func (a *App) Navigate(path string) error { return a.mount(path, true) }

// Restore mounts the page for a history entry the browser already moved to.
func (a *App) Restore(path string) error { return a.mount(path, false) }

func (a *App) mount(raw string, push bool) error {
	path := router.Normalize(raw)
	if a.page != nil {
		a.page.Unmount()
	}
	page := a.router.Resolve(path)
	a.page = page
	a.path = path
	page.SetRenderer(a)
	page.Mount(a.scroll)

	if push && a.history != nil {
		a.history.Push(path)
	}
	if a.scroller != nil {
		a.scroller.ScrollTop()
	}
	a.logger.Debug("page mounted", zap.String("path", path), zap.Bool("push", push))
	return a.render()
}

// Dispatch routes an action. Navigation and scrolling are handled here; everything else
// goes to the mounted page. It reports whether the page was re-rendered.
func (a *App) Dispatch(act pages.Action) (bool, error) {
	if a.page == nil {
		return false, ErrNotStarted
	}
	switch act.Name {
	case pages.ActionNavigate:
		if router.Normalize(act.Target) == a.path {
			return false, nil
		}
		return true, a.Navigate(act.Target)
	case pages.ActionScrollTo:
		if a.scroller != nil && !a.scroller.ScrollIntoView(act.Target) {
			a.logger.Debug("scroll target missing", zap.String("id", act.Target))
		}
		return false, nil
	}
	if !a.page.Dispatch(act) {
		return false, nil
	}
	return true, a.render()
}

// ReRender redraws the mounted page. Pages call it through StateHasChanged.
func (a *App) ReRender() {
	if err := a.render(); err != nil {
		a.logger.Error("render failed", zap.String("path", a.path), zap.Error(err))
	}
}

func (a *App) render() error {
	if a.page == nil {
		return ErrNotStarted
	}
	var buf bytes.Buffer
	if err := a.page.Render(&buf); err != nil {
		return fmt.Errorf("app: render %s: %w", a.path, err)
	}
	a.doc.Replace(a.page.Title(), buf.String())
	return nil
}
