//go:build js && wasm

// Command wasm is the browser client. Build it with GOOS=js GOARCH=wasm and ship the output
// as public/static/assets/app.wasm (see go generate in package public).
package main

import (
	"syscall/js"

	"go.uber.org/zap"

	"github.com/tmosimanyana/moofar.site/internal/ui/app"
	"github.com/tmosimanyana/moofar.site/internal/ui/pages"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()

	client := app.New(nil, newDocument("#root"),
		app.WithHistory(history{}),
		app.WithScroller(scroller{}),
		app.WithScrollSource(windowScroll),
		app.WithLogger(logger),
	)

	doc := js.Global().Get("document")
	onClick := js.FuncOf(func(_ js.Value, args []js.Value) any {
		ev := args[0]
		el := ev.Get("target").Call("closest", "[data-action]")
		if el.IsNull() {
			return nil
		}
		ev.Call("preventDefault")
		data := el.Get("dataset")
		act := pages.Action{Name: data.Get("action").String()}
		if t := data.Get("target"); !t.IsUndefined() {
			act.Target = t.String()
		}
		if _, err := client.Dispatch(act); err != nil {
			logger.Error("dispatch failed", zap.String("action", act.Name), zap.Error(err))
		}
		return nil
	})
	doc.Call("addEventListener", "click", onClick)

	onPop := js.FuncOf(func(js.Value, []js.Value) any {
		if err := client.Restore(pathname()); err != nil {
			logger.Error("restore failed", zap.Error(err))
		}
		return nil
	})
	js.Global().Call("addEventListener", "popstate", onPop)

	if err := client.Start(pathname()); err != nil {
		logger.Error("start failed", zap.Error(err))
	}

	select {}
}
