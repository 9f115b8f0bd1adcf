package integrations

// Selection is the page-local checklist state: at most one expanded category and an
// insertion-ordered set of selected integration names.
type Selection struct {
	catalog  *Catalog
	expanded string
	order    []string
	members  map[string]struct{}
}

// NewSelection starts with the first category expanded and nothing selected.
func NewSelection(c *Catalog) *Selection {
	if c == nil {
		c = Default()
	}
	return &Selection{
		catalog:  c,
		expanded: c.FirstCategoryID(),
		members:  map[string]struct{}{},
	}
}

// Catalog returns the catalog the selection draws from.
func (s *Selection) Catalog() *Catalog { return s.catalog }

// ExpandedCategory returns the open category id, if any.
func (s *Selection) ExpandedCategory() (string, bool) {
	return s.expanded, s.expanded != ""
}

// IsExpanded reports whether id is the open category.
func (s *Selection) IsExpanded(id string) bool {
	return id != "" && s.expanded == id
}

// SetExpandedCategory collapses id when it is already open, otherwise opens it and
// implicitly closes whatever was open before.
func (s *Selection) SetExpandedCategory(id string) {
	if id == s.expanded {
		s.expanded = ""
		return
	}
	s.expanded = id
}

// ToggleIntegration adds name to the selection or removes it when already present.
// Names outside the catalog are ignored. It reports whether the selection changed.
func (s *Selection) ToggleIntegration(name string) bool {
	if !s.catalog.Contains(name) {
		return false
	}
	if _, ok := s.members[name]; ok {
		delete(s.members, name)
		for i, n := range s.order {
			if n == name {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return true
	}
	s.members[name] = struct{}{}
	s.order = append(s.order, name)
	return true
}

// IsSelected reports membership of name.
func (s *Selection) IsSelected(name string) bool {
	_, ok := s.members[name]
	return ok
}

// Selected returns the selected names in the order they were first toggled on.
func (s *Selection) Selected() []string {
	return append([]string(nil), s.order...)
}

// Summary is derived from the catalog and the selection; it is never stored.
type Summary struct {
	Total        int
	Selected     int
	HighPriority int
}

// Summary computes the header counters.
func (s *Selection) Summary() Summary {
	return Summary{
		Total:        s.catalog.TotalCount(),
		Selected:     len(s.members),
		HighPriority: s.catalog.HighPriorityCount(),
	}
}
