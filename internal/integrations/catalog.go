// Package integrations holds the integration roadmap catalog and the checklist selection state
// rendered on the integrations page.
package integrations

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"

	"github.com/tmosimanyana/moofar.site/internal/ui/icons"
)

// Priority ranks an integration on the roadmap.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return fmt.Sprintf("Priority(%d)", int(p))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Priority) MarshalText() ([]byte, error) {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return []byte(p.String()), nil
	}
	return nil, fmt.Errorf("integrations: invalid priority %d", int(p))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Priority) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "high":
		*p = PriorityHigh
	case "medium":
		*p = PriorityMedium
	case "low":
		*p = PriorityLow
	default:
		return fmt.Errorf("integrations: unknown priority %q", string(b))
	}
	return nil
}

// BadgeClass returns the badge colours used for the priority pill.
func (p Priority) BadgeClass() string {
	switch p {
	case PriorityHigh:
		return "text-red-600 bg-red-50 border-red-200"
	case PriorityMedium:
		return "text-yellow-600 bg-yellow-50 border-yellow-200"
	case PriorityLow:
		return "text-green-600 bg-green-50 border-green-200"
	default:
		return "text-gray-600 bg-gray-50 border-gray-200"
	}
}

// Integration is a single roadmap item.
type Integration struct {
	Name         string     `yaml:"name"`
	Icon         icons.Kind `yaml:"icon"`
	Priority     Priority   `yaml:"priority"`
	Timeframe    string     `yaml:"timeframe"`
	Description  string     `yaml:"description"`
	Technologies []string   `yaml:"technologies"`
	Steps        []string   `yaml:"steps"`
}

// ElementID returns a stable DOM id derived from the integration name.
func (i Integration) ElementID() string {
	return "integration-" + slug.Make(i.Name)
}

// Category groups related integrations.
type Category struct {
	ID           string        `yaml:"id"`
	Name         string        `yaml:"name"`
	Description  string        `yaml:"description"`
	Integrations []Integration `yaml:"integrations"`
}

// Catalog is an immutable, ordered list of categories. Accessors hand out copies.
type Catalog struct {
	categories []Category
	byName     map[string]Integration
	byID       map[string]int
}

// ErrEmptyCatalog is returned when a catalog document contains no categories.
var ErrEmptyCatalog = errors.New("integrations: catalog has no categories")

//go:embed catalog.yaml
var shippedCatalog []byte

var defaultCatalog = mustParse(shippedCatalog)

// Default returns the catalog compiled into the binary.
func Default() *Catalog { return defaultCatalog }

func mustParse(data []byte) *Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("integrations: shipped catalog: %v", err))
	}
	return c
}

// Parse decodes and validates a YAML catalog document. Category ids and integration names
// must be non-empty and unique across the whole catalog.
func Parse(data []byte) (*Catalog, error) {
	var cats []Category
	if err := yaml.Unmarshal(data, &cats); err != nil {
		return nil, fmt.Errorf("integrations: decode catalog: %w", err)
	}
	if len(cats) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		categories: cats,
		byName:     map[string]Integration{},
		byID:       map[string]int{},
	}
	for i, cat := range cats {
		if strings.TrimSpace(cat.ID) == "" {
			return nil, fmt.Errorf("integrations: category %d has no id", i)
		}
		if _, dup := c.byID[cat.ID]; dup {
			return nil, fmt.Errorf("integrations: duplicate category id %q", cat.ID)
		}
		c.byID[cat.ID] = i
		for _, it := range cat.Integrations {
			if strings.TrimSpace(it.Name) == "" {
				return nil, fmt.Errorf("integrations: unnamed integration in %q", cat.ID)
			}
			if _, dup := c.byName[it.Name]; dup {
				return nil, fmt.Errorf("integrations: duplicate integration %q", it.Name)
			}
			if it.Priority == 0 {
				return nil, fmt.Errorf("integrations: %q has no priority", it.Name)
			}
			c.byName[it.Name] = it
		}
	}
	return c, nil
}

// Categories returns the categories in catalog order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = cloneCategory(cat)
	}
	return out
}

// Category looks up a category by id.
func (c *Catalog) Category(id string) (Category, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Category{}, false
	}
	return cloneCategory(c.categories[i]), true
}

// FirstCategoryID is the id of the first category in catalog order.
func (c *Catalog) FirstCategoryID() string {
	if len(c.categories) == 0 {
		return ""
	}
	return c.categories[0].ID
}

// Lookup finds an integration by its name.
func (c *Catalog) Lookup(name string) (Integration, bool) {
	it, ok := c.byName[name]
	if !ok {
		return Integration{}, false
	}
	return cloneIntegration(it), true
}

// Contains reports whether name is an integration in the catalog.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Names lists every integration name in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.byName))
	for _, cat := range c.categories {
		for _, it := range cat.Integrations {
			out = append(out, it.Name)
		}
	}
	return out
}

// TotalCount is the number of integrations across all categories.
func (c *Catalog) TotalCount() int {
	n := 0
	for _, cat := range c.categories {
		n += len(cat.Integrations)
	}
	return n
}

// CountByPriority counts integrations with priority p across all categories.
func (c *Catalog) CountByPriority(p Priority) int {
	n := 0
	for _, cat := range c.categories {
		for _, it := range cat.Integrations {
			if it.Priority == p {
				n++
			}
		}
	}
	return n
}

// HighPriorityCount counts High priority integrations.
func (c *Catalog) HighPriorityCount() int { return c.CountByPriority(PriorityHigh) }

func cloneCategory(src Category) Category {
	cp := src
	cp.Integrations = make([]Integration, len(src.Integrations))
	for i, it := range src.Integrations {
		cp.Integrations[i] = cloneIntegration(it)
	}
	return cp
}

func cloneIntegration(src Integration) Integration {
	cp := src
	cp.Technologies = append([]string(nil), src.Technologies...)
	cp.Steps = append([]string(nil), src.Steps...)
	return cp
}
