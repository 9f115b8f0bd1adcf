package nav

import (
    "path"
    "strings"
)

// Kind tells the client how to activate an entry.
type Kind int

const (
    // Route performs a client-side route change.
    Route Kind = iota
    // Anchor smooth-scrolls to an element id on the current page.
    Anchor
)

// Item represents a navigation entry.
type Item struct {
    Label  string
    Target string // "/about" for routes, "services" for anchors
    Kind   Kind
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
    Label  string
    Href   string
    Target string
    Kind   Kind
    Active bool
}

// IsAnchor reports whether the entry scrolls within the page.
func (r RenderedItem) IsAnchor() bool { return r.Kind == Anchor }

// Variant names one of the hardcoded navigation lists.
type Variant int

const (
    // Site links the content pages to each other.
    Site Variant = iota
    // Landing is the home page list: in-page sections plus the integrations roadmap.
    Landing
    // Bare has no entries.
    Bare
)

// Main is the route navigation shared by the content pages.
var Main = []Item{
    {Label: "Home", Target: "/", Kind: Route},
    {Label: "About Us", Target: "/about", Kind: Route},
    {Label: "Services", Target: "/services", Kind: Route},
    {Label: "Contact Us", Target: "/contact", Kind: Route},
}

// Sections is the landing-page navigation.
var Sections = []Item{
    {Label: "Services", Target: "services", Kind: Anchor},
    {Label: "About", Target: "about", Kind: Anchor},
    {Label: "Team", Target: "team", Kind: Anchor},
    {Label: "Contact", Target: "contact", Kind: Anchor},
    {Label: "Integrations", Target: "/integrations", Kind: Route},
}

// Items returns the entries of a variant.
func Items(v Variant) []Item {
    switch v {
    case Site:
        return Main
    case Landing:
        return Sections
    default:
        return nil
    }
}

// Build renders navigation items with active state given the current path.
// Anchor entries are never active.
func Build(v Variant, currentPath string) []RenderedItem {
    if currentPath == "" {
        currentPath = "/"
    }
    src := Items(v)
    items := make([]RenderedItem, 0, len(src))
    for _, it := range src {
        ri := RenderedItem{
            Label:  it.Label,
            Target: it.Target,
            Kind:   it.Kind,
        }
        if it.Kind == Anchor {
            ri.Href = "#" + it.Target
        } else {
            ri.Href = it.Target
            ri.Active = isActive(it.Target, currentPath)
        }
        items = append(items, ri)
    }
    return items
}

func isActive(itemPath, currentPath string) bool {
    currentPath = path.Clean(currentPath)
    if itemPath == "/" {
        return currentPath == "/"
    }
    // match exact or prefix boundary: "/services" or "/services/..."
    if currentPath == itemPath {
        return true
    }
    if strings.HasPrefix(currentPath, itemPath+"/") {
        return true
    }
    return false
}
