package pages

import (
	"io"

	"github.com/tmosimanyana/moofar.site/internal/integrations"
	"github.com/tmosimanyana/moofar.site/internal/ui/shell"
)

// IntegrationsPage is the integration roadmap checklist.
type IntegrationsPage struct {
	Base
	selection *integrations.Selection
}

// NewIntegrations builds the checklist over catalog. A nil catalog uses the shipped one.
func NewIntegrations(catalog *integrations.Catalog) *IntegrationsPage {
	return &IntegrationsPage{selection: integrations.NewSelection(catalog)}
}

// Selection exposes the checklist state.
func (p *IntegrationsPage) Selection() *integrations.Selection { return p.selection }

func (p *IntegrationsPage) Title() string { return "Integration Strategies | Moofar" }

// Mount is a no-op; the checklist has no scroll behaviour.
func (p *IntegrationsPage) Mount(shell.ScrollSource) {}

func (p *IntegrationsPage) Unmount() {}

func (p *IntegrationsPage) Dispatch(a Action) bool {
	switch a.Name {
	case ActionToggleCategory:
		p.selection.SetExpandedCategory(a.Target)
		return true
	case ActionToggleIntegration:
		return p.selection.ToggleIntegration(a.Target)
	default:
		return false
	}
}

type integrationsView struct {
	Summary    integrations.Summary
	Categories []categoryView
	Selected   []string
}

type categoryView struct {
	integrations.Category
	Expanded bool
	Items    []integrationView
}

type integrationView struct {
	integrations.Integration
	ID       string
	Selected bool
}

func (p *IntegrationsPage) view() integrationsView {
	cats := p.selection.Catalog().Categories()
	out := integrationsView{
		Summary:    p.selection.Summary(),
		Categories: make([]categoryView, 0, len(cats)),
		Selected:   p.selection.Selected(),
	}
	for _, c := range cats {
		cv := categoryView{Category: c, Expanded: p.selection.IsExpanded(c.ID)}
		for _, it := range c.Integrations {
			cv.Items = append(cv.Items, integrationView{
				Integration: it,
				ID:          it.ElementID(),
				Selected:    p.selection.IsSelected(it.Name),
			})
		}
		out.Categories = append(out.Categories, cv)
	}
	return out
}

func (p *IntegrationsPage) Render(w io.Writer) error {
	return execute(w, "integrations", p.view())
}
