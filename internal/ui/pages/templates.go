package pages

import (
	"embed"
	"html/template"
	"io"
	"net/url"
	"strings"

	"github.com/tmosimanyana/moofar.site/internal/integrations"
	"github.com/tmosimanyana/moofar.site/internal/ui/icons"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("_root").Funcs(funcMap).ParseFS(templateFS, "templates/*.tmpl"),
)

var funcMap = template.FuncMap{
	"icon": func(k icons.Kind, class string) template.HTML { return icons.SVG(k, class) },
	"iconNamed": func(name, class string) template.HTML {
		k, err := icons.Parse(name)
		if err != nil {
			return ""
		}
		return icons.SVG(k, class)
	},
	"badge": func(p integrations.Priority) string { return p.BadgeClass() },
	"inc":   func(i int) int { return i + 1 },
	"odd":   func(i int) bool { return i%2 == 1 },
	"tel":   func(phone string) template.URL { return template.URL("tel:" + phoneDigits.Replace(phone)) },
	"href":  safeHref,
}

var phoneDigits = strings.NewReplacer(" ", "", "-", "")

// safeHref passes through the link schemes used in site content. Anything else becomes "#".
func safeHref(raw string) template.URL {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "#"
	}
	switch u.Scheme {
	case "", "http", "https", "mailto", "tel":
		return template.URL(u.String())
	default:
		return "#"
	}
}

func execute(w io.Writer, name string, data any) error {
	return templates.ExecuteTemplate(w, name, data)
}
