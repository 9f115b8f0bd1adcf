package cms

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v3"

	"github.com/tmosimanyana/moofar.site/internal/ui/icons"
)

// ErrNotFound is returned when no content file exists for a slug.
var ErrNotFound = errors.New("cms: not found")

//go:embed content/*.md
var embedded embed.FS

const contentDir = "content"

// ContentPage is the copy of one client page, sourced from markdown with YAML front matter.
type ContentPage struct {
	Slug     string
	Title    string
	Summary  string
	Hero     Hero
	Body     template.HTML
	Services []Service
	Values   []Value
	Benefits []Benefit
	Team     []Member
	Contacts []Channel
	Facts    []Fact
	CTA      *CTA
}

// Hero is the banner at the top of a page.
type Hero struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Image    string `yaml:"image"`
}

// Service is one offering card.
type Service struct {
	Icon        icons.Kind `yaml:"icon"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Offerings   []string   `yaml:"offerings"`
}

// Value is a company value with an emoji marker.
type Value struct {
	Emoji       string `yaml:"emoji"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Benefit is a "why choose us" entry.
type Benefit struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Member is a team member card.
type Member struct {
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
	Email string `yaml:"email"`
	Phone string `yaml:"phone"`
}

// Initials returns the first letter of every word in the name.
func (m Member) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(m.Name) {
		r := []rune(part)
		b.WriteRune(r[0])
	}
	return b.String()
}

// Channel is a way to reach the company.
type Channel struct {
	Icon  icons.Kind `yaml:"icon"`
	Label string     `yaml:"label"`
	Value string     `yaml:"value"`
	Href  string     `yaml:"href"`
}

// Fact is a label/value row of company information.
type Fact struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// CTA is the closing call-to-action band.
type CTA struct {
	Title     string `yaml:"title"`
	Text      string `yaml:"text"`
	LinkLabel string `yaml:"link_label"`
	LinkPath  string `yaml:"link_path"`
	Phone     string `yaml:"phone"`
}

type contentFrontMatter struct {
	Title    string    `yaml:"title"`
	Summary  string    `yaml:"summary"`
	Hero     Hero      `yaml:"hero"`
	Services []Service `yaml:"services"`
	Values   []Value   `yaml:"values"`
	Benefits []Benefit `yaml:"benefits"`
	Team     []Member  `yaml:"team"`
	Contacts []Channel `yaml:"contacts"`
	Facts    []Fact    `yaml:"facts"`
	CTA      *CTA      `yaml:"cta"`
}

// Store loads content pages from an fs.FS and caches the parsed result.
type Store struct {
	fsys   fs.FS
	md     goldmark.Markdown
	policy *bluemonday.Policy

	mu    sync.RWMutex
	items map[string]ContentPage
}

// NewStore returns a store reading "<slug>.md" files from fsys.
func NewStore(fsys fs.FS) *Store {
	return &Store{
		fsys: fsys,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		policy: newContentPolicy(),
		items:  map[string]ContentPage{},
	}
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
)

// Default returns the store backed by the content compiled into the binary.
func Default() *Store {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(embedded, contentDir)
		if err != nil {
			panic(err)
		}
		defaultStore = NewStore(sub)
	})
	return defaultStore
}

// MustPage returns the embedded page for slug and panics if it cannot be loaded.
func MustPage(slug string) ContentPage {
	page, err := Default().Page(slug)
	if err != nil {
		panic(err)
	}
	return page
}

// Page returns the content page for slug.
func (s *Store) Page(slug string) (ContentPage, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return ContentPage{}, ErrNotFound
	}
	if page, ok := s.cached(slug); ok {
		return page, nil
	}
	page, err := s.read(slug)
	if err != nil {
		return ContentPage{}, err
	}
	s.store(slug, page)
	return cloneContentPage(page), nil
}

// Slugs lists the pages available in the store.
func (s *Store) Slugs() ([]string, error) {
	matches, err := fs.Glob(s.fsys, "*.md")
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.TrimSuffix(path.Base(m), ".md"))
	}
	return out, nil
}

func (s *Store) read(slug string) (ContentPage, error) {
	file := slug + ".md"
	data, err := fs.ReadFile(s.fsys, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ContentPage{}, ErrNotFound
		}
		return ContentPage{}, err
	}
	fm, body := splitFrontMatter(string(data))
	front := contentFrontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return ContentPage{}, fmt.Errorf("cms: parse front matter %s: %w", file, err)
		}
	}
	html, err := s.render(body)
	if err != nil {
		return ContentPage{}, fmt.Errorf("cms: render %s: %w", file, err)
	}
	page := ContentPage{
		Slug:     slug,
		Title:    strings.TrimSpace(front.Title),
		Summary:  strings.TrimSpace(front.Summary),
		Hero:     front.Hero,
		Body:     html,
		Services: front.Services,
		Values:   front.Values,
		Benefits: front.Benefits,
		Team:     front.Team,
		Contacts: front.Contacts,
		Facts:    front.Facts,
		CTA:      front.CTA,
	}
	if page.Title == "" {
		page.Title = prettifySlug(slug)
	}
	if page.Hero.Title == "" {
		page.Hero.Title = page.Title
	}
	return page, nil
}

func (s *Store) render(body string) (template.HTML, error) {
	if strings.TrimSpace(body) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(body), &buf); err != nil {
		return "", err
	}
	return template.HTML(s.policy.SanitizeBytes(buf.Bytes())), nil
}

func newContentPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4")
	policy.AllowAttrs("class").OnElements("p", "span", "ul", "li")
	policy.RequireNoFollowOnLinks(true)
	return policy
}

func (s *Store) cached(slug string) (ContentPage, bool) {
	s.mu.RLock()
	page, ok := s.items[slug]
	s.mu.RUnlock()
	if !ok {
		return ContentPage{}, false
	}
	return cloneContentPage(page), true
}

func (s *Store) store(slug string, page ContentPage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[slug] = cloneContentPage(page)
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func prettifySlug(slug string) string {
	parts := strings.Split(strings.TrimSpace(slug), "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		runes[0] = asciiUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	slug = strings.Trim(slug, "/")
	if slug == "" || strings.Contains(slug, "..") || strings.ContainsAny(slug, `/\`) {
		return ""
	}
	return slug
}

func cloneContentPage(src ContentPage) ContentPage {
	cp := src
	cp.Services = make([]Service, len(src.Services))
	for i, svc := range src.Services {
		svc.Offerings = append([]string(nil), svc.Offerings...)
		cp.Services[i] = svc
	}
	cp.Values = append([]Value(nil), src.Values...)
	cp.Benefits = append([]Benefit(nil), src.Benefits...)
	cp.Team = append([]Member(nil), src.Team...)
	cp.Contacts = append([]Channel(nil), src.Contacts...)
	cp.Facts = append([]Fact(nil), src.Facts...)
	if src.CTA != nil {
		c := *src.CTA
		cp.CTA = &c
	}
	return cp
}

func asciiUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
