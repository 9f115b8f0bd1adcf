package icons

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRoundTripsEveryKind(t *testing.T) {
	for k, name := range names {
		if k == None {
			continue
		}
		got, err := Parse(strings.ToUpper(name))
		require.NoError(t, err)
		require.Equal(t, k, got)

		text, err := k.MarshalText()
		require.NoError(t, err)
		require.Equal(t, name, string(text))
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("rocket")
	require.Error(t, err)

	var k Kind
	require.Error(t, k.UnmarshalText([]byte("rocket")))
}

func TestEveryKindHasMarkup(t *testing.T) {
	for k := range names {
		if k == None {
			continue
		}
		require.NotEmpty(t, paths[k], "missing svg for %s", k)
	}
}

func TestSVG(t *testing.T) {
	out := string(SVG(MapPin, `w-4 h-4 "x"`))
	require.True(t, strings.HasPrefix(out, "<svg"))
	require.Contains(t, out, `data-icon="map-pin"`)
	require.Contains(t, out, `class="w-4 h-4 &#34;x&#34;"`)

	require.Empty(t, SVG(None, "w-4"))
}
