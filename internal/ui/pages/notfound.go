package pages

import (
	"io"

	"github.com/tmosimanyana/moofar.site/internal/ui/shell"
)

// NotFoundText is the heading shown for unmatched client routes.
const NotFoundText = "404 - Page Not Found"

// NotFoundPage is rendered for unmatched client routes. It has no state.
type NotFoundPage struct {
	Base
	path string
}

// NewNotFound builds the fallback page for path.
func NewNotFound(path string) *NotFoundPage { return &NotFoundPage{path: path} }

func (p *NotFoundPage) Title() string            { return "Page Not Found | Moofar" }
func (p *NotFoundPage) Mount(shell.ScrollSource) {}
func (p *NotFoundPage) Unmount()                 {}
func (p *NotFoundPage) Dispatch(Action) bool     { return false }

func (p *NotFoundPage) Render(w io.Writer) error {
	return execute(w, "notfound", struct {
		Heading string
		Path    string
	}{NotFoundText, p.path})
}
