//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/tmosimanyana/moofar.site/internal/ui/shell"
)

// document writes rendered pages into the mount element.
type document struct {
	root js.Value
	doc  js.Value
}

func newDocument(selector string) document {
	doc := js.Global().Get("document")
	return document{root: doc.Call("querySelector", selector), doc: doc}
}

func (d document) Replace(title, body string) {
	d.doc.Set("title", title)
	d.root.Set("innerHTML", body)
}

type history struct{}

func (history) Push(path string) {
	js.Global().Get("history").Call("pushState", nil, "", path)
}

type scroller struct{}

func (scroller) ScrollIntoView(id string) bool {
	el := js.Global().Get("document").Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return false
	}
	opts := js.Global().Get("Object").New()
	opts.Set("behavior", "smooth")
	el.Call("scrollIntoView", opts)
	return true
}

func (scroller) ScrollTop() {
	js.Global().Call("scrollTo", 0, 0)
}

// windowScroll delivers window.scrollY on every scroll event.
var windowScroll = shell.ScrollFunc(func(fn func(offsetY float64)) func() {
	window := js.Global()
	listener := js.FuncOf(func(js.Value, []js.Value) any {
		fn(window.Get("scrollY").Float())
		return nil
	})
	window.Call("addEventListener", "scroll", listener)
	fn(window.Get("scrollY").Float())
	return func() {
		window.Call("removeEventListener", "scroll", listener)
		listener.Release()
	}
})

func pathname() string {
	p := js.Global().Get("location").Get("pathname").String()
	if p == "" {
		return "/"
	}
	return p
}
