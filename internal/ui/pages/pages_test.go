package pages

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmosimanyana/moofar.site/internal/testutil"
	"github.com/tmosimanyana/moofar.site/internal/ui/shell"
)

type countingRenderer struct{ n int }

func (r *countingRenderer) ReRender() { r.n++ }

type fakeScroll struct{ fn func(float64) }

func (f *fakeScroll) Subscribe(fn func(float64)) func() {
	f.fn = fn
	return func() { f.fn = nil }
}

func render(t *testing.T, p Page) *goquery.Document {
	t.Helper()
	return testutil.Render(t, p.Render)
}

func TestEveryPageRenders(t *testing.T) {
	cases := []struct {
		page Page
		data string
	}{
		{NewHome(), "home"},
		{NewAbout(), "about"},
		{NewServices(), "services"},
		{NewContact(), "contact"},
		{NewIntegrations(nil), "integrations"},
		{NewNotFound("/nope"), "notfound"},
	}
	for _, tc := range cases {
		t.Run(tc.data, func(t *testing.T) {
			doc := render(t, tc.page)
			require.Equal(t, 1, doc.Find(`[data-page="`+tc.data+`"]`).Length())
			require.NotEmpty(t, tc.page.Title())
		})
	}
}

func TestHomeChromeFollowsScroll(t *testing.T) {
	home := NewHome()
	r := &countingRenderer{}
	home.SetRenderer(r)
	src := &fakeScroll{}
	home.Mount(src)

	doc := render(t, home)
	require.Contains(t, doc.Find("#site-nav").AttrOr("class", ""), shell.ChromeTransparentClass)

	src.fn(30)
	require.Equal(t, 0, r.n)
	src.fn(120)
	require.Equal(t, 1, r.n)

	doc = render(t, home)
	require.Contains(t, doc.Find("#site-nav").AttrOr("class", ""), shell.ChromeSolidClass)

	home.Unmount()
	require.Nil(t, src.fn)
}

func TestHomeNavUsesAnchors(t *testing.T) {
	doc := render(t, NewHome())
	links := doc.Find(`[data-menu="desktop"] a`)
	require.Equal(t, 5, links.Length())
	require.Equal(t, "scroll-to", links.First().AttrOr("data-action", ""))
	require.Equal(t, "services", links.First().AttrOr("data-target", ""))
	require.Equal(t, "/integrations", links.Last().AttrOr("data-target", ""))
	require.Equal(t, "navigate", links.Last().AttrOr("data-action", ""))

	for _, id := range []string{"services", "about", "team", "contact"} {
		assert.Equal(t, 1, doc.Find("#"+id).Length(), id)
	}
	require.Equal(t, 2, doc.Find("[data-member]").Length())
	require.Equal(t, "MM", strings.TrimSpace(doc.Find("[data-member] span").First().Text()))
}

func TestMobileMenuToggle(t *testing.T) {
	about := NewAbout()
	doc := render(t, about)
	require.Equal(t, 0, doc.Find(`[data-menu="mobile"]`).Length())
	require.Equal(t, "false", doc.Find(`[data-action="toggle-menu"]`).AttrOr("aria-expanded", ""))

	require.True(t, about.Dispatch(Action{Name: ActionToggleMenu}))
	doc = render(t, about)
	require.Equal(t, 1, doc.Find(`[data-menu="mobile"]`).Length())
	require.Equal(t, 1, doc.Find(`[data-action="toggle-menu"] svg[data-icon="x"]`).Length())

	require.True(t, about.Dispatch(Action{Name: ActionToggleMenu}))
	doc = render(t, about)
	require.Equal(t, 0, doc.Find(`[data-menu="mobile"]`).Length())

	require.False(t, about.Dispatch(Action{Name: ActionToggleCategory, Target: "essential"}))
}

func TestSitePagesAreSolidAndMarkActiveLink(t *testing.T) {
	for path, p := range map[string]*ContentPage{
		"/about":    NewAbout(),
		"/services": NewServices(),
		"/contact":  NewContact(),
	} {
		p.Mount(&fakeScroll{})
		doc := render(t, p)
		require.Contains(t, doc.Find("#site-nav").AttrOr("class", ""), shell.ChromeSolidClass, path)
		active := doc.Find(`[data-menu="desktop"] a[aria-current="page"]`)
		require.Equal(t, 1, active.Length(), path)
		require.Equal(t, path, active.AttrOr("href", ""))
		require.False(t, p.Shell().Mounted())
	}
}

func TestServicesPageRendersOfferings(t *testing.T) {
	doc := render(t, NewServices())
	require.Equal(t, 5, doc.Find("[data-service]").Length())
	require.Equal(t, 35, doc.Find("[data-service] li").Length())
	require.Equal(t, "tel:+26777723232", doc.Find(`[data-section="cta"] a[href^="tel:"]`).AttrOr("href", ""))
}

func TestContactChannelsKeepLinkSchemes(t *testing.T) {
	doc := render(t, NewContact())
	require.Equal(t, 3, doc.Find("[data-channel]").Length())
	require.Equal(t, 1, doc.Find(`[data-channel] a[href="mailto:Mookfara@gmail.com"]`).Length())
	require.Equal(t, 1, doc.Find(`[data-channel] a[href="tel:+26777723232"]`).Length())
}

func TestIntegrationsPageInitialState(t *testing.T) {
	p := NewIntegrations(nil)
	doc := render(t, p)

	require.Equal(t, "13", strings.TrimSpace(doc.Find(`[data-stat="total"]`).Text()))
	require.Equal(t, "0", strings.TrimSpace(doc.Find(`[data-stat="selected"]`).Text()))
	require.Equal(t, "5", strings.TrimSpace(doc.Find(`[data-stat="high"]`).Text()))

	expanded := doc.Find(`[data-category][data-expanded="true"]`)
	require.Equal(t, 1, expanded.Length())
	require.Equal(t, "essential", expanded.AttrOr("data-category", ""))
	require.Equal(t, 3, expanded.Find("[data-integration]").Length())
	require.Equal(t, 0, doc.Find(`[data-section="plan"]`).Length())
}

func TestIntegrationsPageSelection(t *testing.T) {
	p := NewIntegrations(nil)
	require.True(t, p.Dispatch(Action{Name: ActionToggleIntegration, Target: "Contact Form System"}))
	require.True(t, p.Dispatch(Action{Name: ActionToggleCategory, Target: "ecommerce"}))
	require.True(t, p.Dispatch(Action{Name: ActionToggleIntegration, Target: "Payment Processing"}))
	require.False(t, p.Dispatch(Action{Name: ActionToggleIntegration, Target: "Unknown"}))
	require.False(t, p.Dispatch(Action{Name: ActionToggleMenu}))

	doc := render(t, p)
	require.Equal(t, "2", strings.TrimSpace(doc.Find(`[data-stat="selected"]`).Text()))

	var plan []string
	doc.Find("[data-plan-item]").Each(func(_ int, s *goquery.Selection) {
		plan = append(plan, strings.TrimSpace(s.Text()))
	})
	require.Equal(t, []string{"Contact Form System", "Payment Processing"}, plan)

	expanded := doc.Find(`[data-category][data-expanded="true"]`)
	require.Equal(t, "ecommerce", expanded.AttrOr("data-category", ""))
	selected := doc.Find(`[data-integration="Payment Processing"]`)
	require.Equal(t, "true", selected.AttrOr("data-selected", ""))
	require.Equal(t, "integration-payment-processing", selected.AttrOr("id", ""))
	require.Contains(t, selected.Find("[data-priority]").AttrOr("class", ""), "text-red-600")

	require.True(t, p.Dispatch(Action{Name: ActionToggleCategory, Target: "ecommerce"}))
	doc = render(t, p)
	require.Equal(t, 0, doc.Find(`[data-category][data-expanded="true"]`).Length())
	require.Equal(t, 2, doc.Find("[data-plan-item]").Length())
}

func TestNotFoundHeading(t *testing.T) {
	doc := render(t, NewNotFound("/some/unmapped/path"))
	require.Equal(t, NotFoundText, strings.TrimSpace(doc.Find("h1").Text()))
	require.Equal(t, "/some/unmapped/path", doc.Find("[data-page]").AttrOr("data-path", ""))
}

func TestSafeHref(t *testing.T) {
	cases := map[string]string{
		"tel:+26777723232":    "tel:+26777723232",
		"mailto:a@b.co":       "mailto:a@b.co",
		"https://example.com": "https://example.com",
		"/services":           "/services",
		"javascript:alert(1)": "#",
	}
	for in, want := range cases {
		assert.Equal(t, want, string(safeHref(in)), in)
	}
}
