package cms

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/tmosimanyana/moofar.site/internal/ui/icons"
)

func TestEmbeddedPagesLoad(t *testing.T) {
	slugs, err := Default().Slugs()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"about", "contact", "home", "services"}, slugs)

	for _, slug := range slugs {
		page, err := Default().Page(slug)
		require.NoError(t, err, slug)
		require.NotEmpty(t, page.Title, slug)
		require.NotEmpty(t, page.Hero.Title, slug)
		require.NotEmpty(t, page.Body, slug)
	}
}

func TestServicesPageStructuredSections(t *testing.T) {
	page := MustPage("services")
	require.Len(t, page.Services, 5)
	require.Equal(t, icons.Fence, page.Services[3].Icon)
	require.Len(t, page.Services[0].Offerings, 7)
	require.NotNil(t, page.CTA)
	require.Equal(t, "+267 7772 3232", page.CTA.Phone)
	require.Contains(t, string(page.Body), `<h2 id="service-areas">Service Areas</h2>`)
}

func TestAboutPageFacts(t *testing.T) {
	page := MustPage("about")
	require.Len(t, page.Values, 3)
	require.Len(t, page.Facts, 6)
	require.Equal(t, "BW00009410484", page.Facts[1].Value)
	require.Contains(t, string(page.Body), "18 September 2025")
}

func TestPageReturnsCopies(t *testing.T) {
	first := MustPage("home")
	first.Team[0].Name = "mutated"
	first.Services[0].Title = "mutated"

	second := MustPage("home")
	require.Equal(t, "Mooketsi Mapungwa", second.Team[0].Name)
	require.Equal(t, "MM", second.Team[0].Initials())
	require.Equal(t, "Garden Maintenance", second.Services[0].Title)
}

func TestPageNotFound(t *testing.T) {
	for _, slug := range []string{"", "missing", "../home", "a/b"} {
		_, err := Default().Page(slug)
		require.True(t, errors.Is(err, ErrNotFound), "slug %q: %v", slug, err)
	}
}

func TestMarkdownIsSanitised(t *testing.T) {
	store := NewStore(fstest.MapFS{
		"unsafe.md": {Data: []byte("---\ntitle: Unsafe\n---\nHello <script>alert(1)</script> [x](https://example.com)\n")},
	})
	page, err := store.Page("unsafe")
	require.NoError(t, err)
	body := string(page.Body)
	require.False(t, strings.Contains(body, "<script>"), body)
	require.Contains(t, body, `rel="nofollow"`)
}

func TestTitleFallsBackToSlug(t *testing.T) {
	store := NewStore(fstest.MapFS{
		"garden-care.md": {Data: []byte("Plain body without front matter.\n")},
	})
	page, err := store.Page("garden-care")
	require.NoError(t, err)
	require.Equal(t, "Garden Care", page.Title)
	require.Equal(t, "Garden Care", page.Hero.Title)
}

func TestBadFrontMatter(t *testing.T) {
	store := NewStore(fstest.MapFS{
		"broken.md": {Data: []byte("---\nservices:\n  - icon: not-an-icon\n---\nbody\n")},
	})
	_, err := store.Page("broken")
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrNotFound))
}
