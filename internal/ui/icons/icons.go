// Package icons maps symbolic icon tags used in site data to inline SVG markup.
package icons

import (
	"fmt"
	"html/template"
	"strings"
)

// Kind identifies an icon. Data files refer to icons by name; markup is resolved at render time.
type Kind int

const (
	None Kind = iota
	Leaf
	Trees
	Fence
	Sprout
	Phone
	Mail
	MapPin
	Menu
	Close
	ArrowRight
	Award
	Users
	CheckCircle
	Circle
	ChevronDown
	ChevronRight
	Calendar
	ShoppingCart
	MessageSquare
	FileText
	CreditCard
)

var names = map[Kind]string{
	None:          "",
	Leaf:          "leaf",
	Trees:         "trees",
	Fence:         "fence",
	Sprout:        "sprout",
	Phone:         "phone",
	Mail:          "mail",
	MapPin:        "map-pin",
	Menu:          "menu",
	Close:         "x",
	ArrowRight:    "arrow-right",
	Award:         "award",
	Users:         "users",
	CheckCircle:   "check-circle",
	Circle:        "circle",
	ChevronDown:   "chevron-down",
	ChevronRight:  "chevron-right",
	Calendar:      "calendar",
	ShoppingCart:  "shopping-cart",
	MessageSquare: "message-square",
	FileText:      "file-text",
	CreditCard:    "credit-card",
}

var byName = func() map[string]Kind {
	m := make(map[string]Kind, len(names))
	for k, n := range names {
		m[n] = k
	}
	return m
}()

// Parse resolves an icon name such as "map-pin". Matching is case-insensitive.
func Parse(name string) (Kind, error) {
	k, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return None, fmt.Errorf("icons: unknown icon %q", name)
	}
	return k, nil
}

func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := names[k]; !ok {
		return nil, fmt.Errorf("icons: invalid kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// paths holds the inner SVG elements of each icon on a 24x24 stroke grid.
var paths = map[Kind]string{
	Leaf:          `<path d="M11 20A7 7 0 0 1 9.8 6.1C15.5 5 17 4.48 19 2c1 2 2 4.18 2 8 0 5.5-4.78 10-10 10Z"/><path d="M2 21c0-3 1.85-5.36 5.08-6C9.5 14.52 12 13 13 12"/>`,
	Trees:         `<path d="M10 10v.2A3 3 0 0 1 8.9 16H5a3 3 0 0 1-1-5.8V10a3 3 0 0 1 6 0Z"/><path d="M7 16v6"/><path d="M13 19v3"/><path d="M12 19h8.3a1 1 0 0 0 .7-1.7L18 14h.3a1 1 0 0 0 .7-1.7L16 9h.2a1 1 0 0 0 .8-1.7L13 3l-1.4 1.5"/>`,
	Fence:         `<path d="M4 3 2 5v15c0 .6.4 1 1 1h2c.6 0 1-.4 1-1V5Z"/><path d="M6 8h4"/><path d="M6 18h4"/><path d="m12 3-2 2v15c0 .6.4 1 1 1h2c.6 0 1-.4 1-1V5Z"/><path d="M14 8h4"/><path d="M14 18h4"/><path d="m20 3-2 2v15c0 .6.4 1 1 1h2c.6 0 1-.4 1-1V5Z"/>`,
	Sprout:        `<path d="M7 20h10"/><path d="M10 20c5.5-2.5.8-6.4 3-10"/><path d="M9.5 9.4c1.1.8 1.8 2.2 2.3 3.7-2 .4-3.5.4-4.8-.3-1.2-.6-2.3-1.9-3-4.2 2.8-.5 4.4 0 5.5.8z"/><path d="M14.1 6a7 7 0 0 0-1.1 4c1.9-.1 3.3-.6 4.3-1.4 1-1 1.6-2.3 1.7-4.6-2.7.1-4 1-4.9 2z"/>`,
	Phone:         `<path d="M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6 19.79 19.79 0 0 1-3.07-8.67A2 2 0 0 1 4.11 2h3a2 2 0 0 1 2 1.72c.13.96.36 1.9.7 2.81a2 2 0 0 1-.45 2.11L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45c.91.34 1.85.57 2.81.7A2 2 0 0 1 22 16.92z"/>`,
	Mail:          `<rect width="20" height="16" x="2" y="4" rx="2"/><path d="m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"/>`,
	MapPin:        `<path d="M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0Z"/><circle cx="12" cy="10" r="3"/>`,
	Menu:          `<line x1="4" x2="20" y1="12" y2="12"/><line x1="4" x2="20" y1="6" y2="6"/><line x1="4" x2="20" y1="18" y2="18"/>`,
	Close:         `<path d="M18 6 6 18"/><path d="m6 6 12 12"/>`,
	ArrowRight:    `<path d="M5 12h14"/><path d="m12 5 7 7-7 7"/>`,
	Award:         `<circle cx="12" cy="8" r="6"/><path d="M15.477 12.89 17 22l-5-3-5 3 1.523-9.11"/>`,
	Users:         `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M22 21v-2a4 4 0 0 0-3-3.87"/><path d="M16 3.13a4 4 0 0 1 0 7.75"/>`,
	CheckCircle:   `<circle cx="12" cy="12" r="10"/><path d="m9 12 2 2 4-4"/>`,
	Circle:        `<circle cx="12" cy="12" r="10"/>`,
	ChevronDown:   `<path d="m6 9 6 6 6-6"/>`,
	ChevronRight:  `<path d="m9 18 6-6-6-6"/>`,
	Calendar:      `<rect width="18" height="18" x="3" y="4" rx="2"/><line x1="16" x2="16" y1="2" y2="6"/><line x1="8" x2="8" y1="2" y2="6"/><line x1="3" x2="21" y1="10" y2="10"/>`,
	ShoppingCart:  `<circle cx="8" cy="21" r="1"/><circle cx="19" cy="21" r="1"/><path d="M2.05 2.05h2l2.66 12.42a2 2 0 0 0 2 1.58h9.78a2 2 0 0 0 1.95-1.57l1.65-7.43H5.12"/>`,
	MessageSquare: `<path d="M21 15a2 2 0 0 1-2 2H7l-4 4V5a2 2 0 0 1 2-2h14a2 2 0 0 1 2 2z"/>`,
	FileText:      `<path d="M15 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V7Z"/><path d="M14 2v4a2 2 0 0 0 2 2h4"/><path d="M10 9H8"/><path d="M16 13H8"/><path d="M16 17H8"/>`,
	CreditCard:    `<rect width="20" height="14" x="2" y="5" rx="2"/><line x1="2" x2="22" y1="10" y2="10"/>`,
}

// SVG renders the icon with the given CSS classes. Unknown or empty kinds render nothing.
func SVG(k Kind, class string) template.HTML {
	p, ok := paths[k]
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true" data-icon="`)
	b.WriteString(k.String())
	b.WriteString(`"`)
	if class != "" {
		b.WriteString(` class="`)
		b.WriteString(template.HTMLEscapeString(class))
		b.WriteString(`"`)
	}
	b.WriteString(`>`)
	b.WriteString(p)
	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}
