//go:build js && wasm
// +build js,wasm

package gclipboard

import (
	"errors"
	"syscall/js"
)

type result struct {
	text string
	err  error
}

// await blocks on a JS promise.
func await(promise js.Value) result {
	ch := make(chan result, 1)
	then := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		var r result
		if len(args) > 0 && args[0].Type() == js.TypeString {
			r.text = args[0].String()
		}
		ch <- r
		return nil
	})
	catch := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		msg := "clipboard request rejected"
		if len(args) > 0 {
			msg = args[0].String()
		}
		ch <- result{err: errors.New(msg)}
		return nil
	})
	promise.Call("then", then).Call("catch", catch)
	r := <-ch
	then.Release()
	catch.Release()
	return r
}

func clipboardAPI(method string) (js.Value, bool) {
	nav := js.Global().Get("navigator")
	if !nav.Truthy() {
		return js.Value{}, false
	}
	cb := nav.Get("clipboard")
	if !cb.Truthy() || !cb.Get(method).Truthy() {
		return js.Value{}, false
	}
	return cb, true
}

func Available() bool {
	_, ok := clipboardAPI("readText")
	return ok
}

func readAll() (string, error) {
	cb, ok := clipboardAPI("readText")
	if !ok {
		return "", errors.New("navigator.clipboard.readText not available")
	}
	r := await(cb.Call("readText"))
	return r.text, r.err
}

func writeAll(text string) error {
	if cb, ok := clipboardAPI("writeText"); ok {
		return await(cb.Call("writeText", text)).err
	}

	// older browsers: copy from a hidden textarea
	doc := js.Global().Get("document")
	if !doc.Truthy() || !doc.Get("execCommand").Truthy() {
		return errors.New("clipboard write not available")
	}
	body := doc.Get("body")
	if !body.Truthy() {
		return errors.New("document.body not available for fallback copy")
	}
	ta := doc.Call("createElement", "textarea")
	ta.Get("style").Set("position", "fixed")
	ta.Get("style").Set("left", "-10000px")
	ta.Set("value", text)
	body.Call("appendChild", ta)
	ta.Call("select")
	ok := doc.Call("execCommand", "copy").Bool()
	body.Call("removeChild", ta)
	if !ok {
		return errors.New("fallback copy failed (execCommand returned false)")
	}
	return nil
}
