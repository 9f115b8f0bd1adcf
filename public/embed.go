// Package public holds the built site: the SPA entry document and its assets.
package public

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"golang.org/x/net/html"
)

// EntryName is the SPA entry document served for every client route.
const EntryName = "index.html"

// MountID is the element the client runtime renders into.
const MountID = "root"

// ErrMissingMount is returned when the entry document has no mount element.
var ErrMissingMount = errors.New("public: entry document has no #" + MountID + " element")

//go:generate sh -c "GOOS=js GOARCH=wasm go build -o static/assets/app.wasm ../cmd/wasm"
//go:generate sh -c "cp \"$(go env GOROOT)/lib/wasm/wasm_exec.js\" static/assets/"

//go:embed all:static
var static embed.FS

// StaticFS returns the embedded build rooted at the static directory.
func StaticFS() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// ValidateEntry checks that fsys carries a parseable entry document with the mount element.
func ValidateEntry(fsys fs.FS) error {
	f, err := fsys.Open(EntryName)
	if err != nil {
		return fmt.Errorf("public: open entry document: %w", err)
	}
	defer f.Close()
	return validateDocument(f)
}

func validateDocument(r io.Reader) error {
	doc, err := html.Parse(r)
	if err != nil {
		return fmt.Errorf("public: parse entry document: %w", err)
	}
	if !hasID(doc, MountID) {
		return ErrMissingMount
	}
	return nil
}

func hasID(n *html.Node, id string) bool {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Namespace == "" && attr.Key == "id" && attr.Val == id {
				return true
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if hasID(c, id) {
			return true
		}
	}
	return false
}
