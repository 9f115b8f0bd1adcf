package pages

import (
	"io"

	"github.com/tmosimanyana/moofar.site/internal/cms"
	"github.com/tmosimanyana/moofar.site/internal/nav"
	"github.com/tmosimanyana/moofar.site/internal/ui/shell"
)

// ContentPage renders a cms page inside the navigation shell.
type ContentPage struct {
	Base
	tmpl    string
	content cms.ContentPage
	shell   *shell.Shell
}

type contentView struct {
	Page  cms.ContentPage
	Shell shell.View
}

func newContentPage(tmpl, slug, path string, variant nav.Variant, opts ...shell.Option) *ContentPage {
	p := &ContentPage{
		tmpl:    tmpl,
		content: cms.MustPage(slug),
	}
	opts = append(opts, shell.OnChange(p.StateHasChanged))
	p.shell = shell.New(variant, path, opts...)
	return p
}

// NewHome builds the landing page. Its chrome stays transparent until the page scrolls.
func NewHome() *ContentPage {
	return newContentPage("home", "home", "/", nav.Landing, shell.ScrollReactive())
}

// NewAbout builds the about page.
func NewAbout() *ContentPage {
	return newContentPage("about", "about", "/about", nav.Site)
}

// NewServices builds the services page.
func NewServices() *ContentPage {
	return newContentPage("services", "services", "/services", nav.Site)
}

// NewContact builds the contact page.
func NewContact() *ContentPage {
	return newContentPage("contact", "contact", "/contact", nav.Site)
}

func (p *ContentPage) Title() string {
	if p.tmpl == "home" {
		return "Moofar Landscape & Nursery"
	}
	return p.content.Title + " | Moofar"
}

func (p *ContentPage) Mount(src shell.ScrollSource) { p.shell.Mount(src) }

func (p *ContentPage) Unmount() { p.shell.Unmount() }

// Shell exposes the navigation chrome.
func (p *ContentPage) Shell() *shell.Shell { return p.shell }

func (p *ContentPage) Dispatch(a Action) bool {
	switch a.Name {
	case ActionToggleMenu:
		p.shell.ToggleMobileMenu()
		return true
	default:
		return false
	}
}

func (p *ContentPage) Render(w io.Writer) error {
	return execute(w, p.tmpl, contentView{Page: p.content, Shell: p.shell.View()})
}
