package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tmosimanyana/moofar.site/internal/testutil"
	"github.com/tmosimanyana/moofar.site/internal/ui/pages"
	"github.com/tmosimanyana/moofar.site/internal/ui/shell"
)

type fakeDoc struct {
	title   string
	body    string
	renders int
}

func (d *fakeDoc) Replace(title, body string) {
	d.title, d.body = title, body
	d.renders++
}

type fakeHistory struct{ pushed []string }

func (h *fakeHistory) Push(path string) { h.pushed = append(h.pushed, path) }

type fakeScroller struct {
	ids  []string
	tops int
}

func (s *fakeScroller) ScrollIntoView(id string) bool {
	s.ids = append(s.ids, id)
	return id != "missing"
}

func (s *fakeScroller) ScrollTop() { s.tops++ }

type fakeScroll struct {
	listeners map[int]func(float64)
	next      int
}

func (f *fakeScroll) Subscribe(fn func(float64)) func() {
	if f.listeners == nil {
		f.listeners = map[int]func(float64){}
	}
	id := f.next
	f.next++
	f.listeners[id] = fn
	return func() { delete(f.listeners, id) }
}

func (f *fakeScroll) emit(y float64) {
	for _, fn := range f.listeners {
		fn(y)
	}
}

type harness struct {
	app      *App
	doc      *fakeDoc
	history  *fakeHistory
	scroller *fakeScroller
	scroll   *fakeScroll
}

func newHarness(opts ...Option) *harness {
	h := &harness{doc: &fakeDoc{}, history: &fakeHistory{}, scroller: &fakeScroller{}, scroll: &fakeScroll{}}
	opts = append([]Option{WithHistory(h.history), WithScroller(h.scroller), WithScrollSource(h.scroll)}, opts...)
	h.app = New(nil, h.doc, opts...)
	return h
}

func TestStartRendersWithoutHistory(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.app.Start("/"))
	require.Equal(t, "/", h.app.Path())
	require.Empty(t, h.history.pushed)
	require.Equal(t, 1, h.doc.renders)
	require.Contains(t, h.doc.body, `data-page="home"`)
	require.Len(t, h.scroll.listeners, 1)
}

func TestNavigateDetachesPreviousScrollListener(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.app.Start("/"))
	require.NoError(t, h.app.Navigate("/about/"))

	require.Equal(t, "/about", h.app.Path())
	require.Equal(t, []string{"/about"}, h.history.pushed)
	require.Empty(t, h.scroll.listeners)
	require.Equal(t, 2, h.scroller.tops)
	require.Contains(t, h.doc.body, `data-page="about"`)

	renders := h.doc.renders
	h.scroll.emit(400)
	require.Equal(t, renders, h.doc.renders)
}

func TestScrollPastThresholdReRenders(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.app.Start("/"))
	h.scroll.emit(10)
	require.Equal(t, 1, h.doc.renders)
	h.scroll.emit(51)
	require.Equal(t, 2, h.doc.renders)
	require.Contains(t, h.doc.body, shell.ChromeSolidClass)
	h.scroll.emit(70)
	require.Equal(t, 2, h.doc.renders)
}

func TestUnknownPathRendersNotFound(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.app.Start("/some/unmapped/path"))
	doc := testutil.ParseHTML(t, []byte(h.doc.body))
	require.Equal(t, pages.NotFoundText, strings.TrimSpace(doc.Find("h1").Text()))
}

func TestDispatchRoutesActions(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.app.Start("/"))

	changed, err := h.app.Dispatch(pages.Action{Name: pages.ActionToggleMenu})
	require.NoError(t, err)
	require.True(t, changed)
	require.Contains(t, h.doc.body, `data-menu="mobile"`)

	changed, err = h.app.Dispatch(pages.Action{Name: pages.ActionScrollTo, Target: "team"})
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, []string{"team"}, h.scroller.ids)
	// anchor navigation keeps the menu open
	require.Contains(t, h.doc.body, `data-menu="mobile"`)

	changed, err = h.app.Dispatch(pages.Action{Name: pages.ActionNavigate, Target: "/"})
	require.NoError(t, err)
	require.False(t, changed)

	changed, err = h.app.Dispatch(pages.Action{Name: pages.ActionNavigate, Target: "/integrations"})
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, []string{"/integrations"}, h.history.pushed)
	require.NotContains(t, h.doc.body, `data-menu="mobile"`)

	renders := h.doc.renders
	changed, err = h.app.Dispatch(pages.Action{Name: pages.ActionToggleIntegration, Target: "Live Chat Widget"})
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, renders+1, h.doc.renders)
	require.Contains(t, h.doc.body, "Your Selected Integration Plan")

	changed, err = h.app.Dispatch(pages.Action{Name: pages.ActionToggleIntegration, Target: "Nope"})
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, renders+1, h.doc.renders)
}

func TestRestoreSkipsHistory(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.app.Start("/about"))
	require.NoError(t, h.app.Navigate("/services"))
	require.NoError(t, h.app.Restore("/about"))
	require.Equal(t, []string{"/services"}, h.history.pushed)
	require.Equal(t, "/about", h.app.Path())
}

func TestDispatchBeforeStart(t *testing.T) {
	h := newHarness()
	_, err := h.app.Dispatch(pages.Action{Name: pages.ActionToggleMenu})
	require.ErrorIs(t, err, ErrNotStarted)
}

func TestMissingScrollTargetIsLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	h := newHarness(WithLogger(zap.New(core)))
	require.NoError(t, h.app.Start("/"))
	_, err := h.app.Dispatch(pages.Action{Name: pages.ActionScrollTo, Target: "missing"})
	require.NoError(t, err)
	require.Equal(t, 1, logs.FilterMessage("scroll target missing").Len())
}
