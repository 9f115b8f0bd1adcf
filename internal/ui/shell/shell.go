// Package shell holds the per-page navigation chrome state: whether the page has scrolled
// past the threshold and whether the mobile menu is open.
package shell

import "github.com/tmosimanyana/moofar.site/internal/nav"

// ScrollThreshold is the vertical offset, in CSS pixels, beyond which the chrome switches to
// its solid background.
const ScrollThreshold = 50

const (
	ChromeSolidClass       = "bg-[#1b5e20]/95 backdrop-blur-md shadow-lg"
	ChromeTransparentClass = "bg-transparent"
)

// ScrollSource delivers vertical scroll offsets. Subscribe returns a function that detaches
// the listener.
type ScrollSource interface {
	Subscribe(fn func(offsetY float64)) (unsubscribe func())
}

// ScrollFunc adapts a plain function to ScrollSource.
type ScrollFunc func(fn func(offsetY float64)) func()

// Subscribe calls f.
func (f ScrollFunc) Subscribe(fn func(offsetY float64)) func() { return f(fn) }

// State is the navigation state owned by a single page instance.
type State struct {
	IsScrolled       bool
	IsMobileMenuOpen bool
}

// Shell is the navigation chrome of one page.
type Shell struct {
	variant     nav.Variant
	path        string
	reactive    bool
	state       State
	unsubscribe func()
	onChange    func()
}

// Option configures a Shell.
type Option func(*Shell)

// ScrollReactive makes the chrome transparent until the page scrolls past ScrollThreshold.
// Without it the chrome is always solid and no scroll listener is registered.
func ScrollReactive() Option {
	return func(s *Shell) { s.reactive = true }
}

// OnChange registers fn to run after a scroll event changes the state.
func OnChange(fn func()) Option {
	return func(s *Shell) { s.onChange = fn }
}

// New builds a shell for the page at path using the given navigation variant.
func New(variant nav.Variant, path string, opts ...Option) *Shell {
	s := &Shell{variant: variant, path: path}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mount resets the state and, for scroll-reactive shells, registers a listener on src.
// Mounting an already mounted shell detaches the previous listener first.
func (s *Shell) Mount(src ScrollSource) {
	s.Unmount()
	s.state = State{}
	if !s.reactive || src == nil {
		return
	}
	s.unsubscribe = src.Subscribe(func(offsetY float64) {
		if s.OnScroll(offsetY) && s.onChange != nil {
			s.onChange()
		}
	})
}

// Unmount detaches the scroll listener. It is safe to call more than once.
func (s *Shell) Unmount() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Mounted reports whether a scroll listener is attached.
func (s *Shell) Mounted() bool { return s.unsubscribe != nil }

// OnScroll recomputes IsScrolled for the given offset. It reports whether the state changed.
func (s *Shell) OnScroll(offsetY float64) bool {
	scrolled := offsetY > ScrollThreshold
	if scrolled == s.state.IsScrolled {
		return false
	}
	s.state.IsScrolled = scrolled
	return true
}

// ToggleMobileMenu flips the mobile menu flag.
func (s *Shell) ToggleMobileMenu() {
	s.state.IsMobileMenuOpen = !s.state.IsMobileMenuOpen
}

// State returns a snapshot of the navigation state.
func (s *Shell) State() State { return s.state }

// Reactive reports whether the chrome follows the scroll position.
func (s *Shell) Reactive() bool { return s.reactive }

// ChromeClass is the background class of the navigation bar.
func (s *Shell) ChromeClass() string {
	if !s.reactive || s.state.IsScrolled {
		return ChromeSolidClass
	}
	return ChromeTransparentClass
}

// Items renders the navigation entries for the current path.
func (s *Shell) Items() []nav.RenderedItem {
	return nav.Build(s.variant, s.path)
}

// View is the template-facing snapshot of the shell.
type View struct {
	ChromeClass    string
	ScrollReactive bool
	MenuOpen       bool
	Items          []nav.RenderedItem
}

// View snapshots the shell for rendering.
func (s *Shell) View() View {
	return View{
		ChromeClass:    s.ChromeClass(),
		ScrollReactive: s.reactive,
		MenuOpen:       s.state.IsMobileMenuOpen,
		Items:          s.Items(),
	}
}
