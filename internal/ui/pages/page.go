// Package pages implements the client page components. Each page owns its state, reacts to
// actions dispatched from the markup and renders itself to HTML.
package pages

import (
	"io"

	"github.com/tmosimanyana/moofar.site/internal/ui/shell"
)

// Action names carried in data-action attributes.
const (
	ActionToggleMenu        = "toggle-menu"
	ActionToggleCategory    = "toggle-category"
	ActionToggleIntegration = "toggle-integration"
	ActionNavigate          = "navigate"
	ActionScrollTo          = "scroll-to"
)

// Action is a user interaction delivered to a page. Target carries the data-target value.
type Action struct {
	Name   string
	Target string
}

// Renderer re-runs the render cycle after a page changes state on its own.
type Renderer interface {
	ReRender()
}

// Page is a mounted client view.
type Page interface {
	Title() string
	// Mount attaches the page to the scroll source. Pages without scroll behaviour ignore it.
	Mount(src shell.ScrollSource)
	// Unmount releases listeners registered by Mount.
	Unmount()
	// Dispatch applies an action and reports whether the page state changed.
	Dispatch(a Action) bool
	Render(w io.Writer) error
	SetRenderer(r Renderer)
}

// Base gives pages access to StateHasChanged.
type Base struct {
	renderer Renderer
}

// SetRenderer attaches the renderer. It is called by the app, not by page code.
func (b *Base) SetRenderer(r Renderer) {
	b.renderer = r
}

// StateHasChanged asks the renderer to redraw. It is a no-op until a renderer is attached.
func (b *Base) StateHasChanged() {
	if b.renderer == nil {
		return
	}
	b.renderer.ReRender()
}
