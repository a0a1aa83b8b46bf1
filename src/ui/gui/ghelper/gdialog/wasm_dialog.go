//go:build js && wasm
// +build js,wasm

package gdialog

import (
	"errors"
	"syscall/js"
)

var ErrNoFile = errors.New("no file selected")

type Result struct {
	Path string // always empty in the browser
	Name string
	Data []byte
}

type pick struct {
	res Result
	err error
}

// OpenFile shows an <input type="file"> restricted to positions and waits for its contents.
func OpenFile(title string) (Result, error) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return Result{}, errors.New("document not available")
	}
	body := doc.Get("body")
	if !body.Truthy() {
		return Result{}, errors.New("document.body not available")
	}

	ch := make(chan pick, 1)
	input := doc.Call("createElement", "input")
	input.Set("type", "file")
	input.Set("accept", ".fen,.txt")
	input.Set("title", title)

	var onchange, onload, onerror js.Func
	release := func() {
		onchange.Release()
		onload.Release()
		onerror.Release()
	}

	onchange = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		files := input.Get("files")
		if files.Length() == 0 {
			ch <- pick{err: ErrNoFile}
			return nil
		}
		file := files.Index(0)
		name := file.Get("name").String()
		reader := js.Global().Get("FileReader").New()

		onload = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			buf := js.Global().Get("Uint8Array").New(reader.Get("result"))
			data := make([]byte, buf.Get("length").Int())
			js.CopyBytesToGo(data, buf)
			ch <- pick{res: Result{Name: name, Data: data}}
			return nil
		})
		onerror = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			ch <- pick{err: errors.New("failed to read file")}
			return nil
		})
		reader.Set("onload", onload)
		reader.Set("onerror", onerror)
		reader.Call("readAsArrayBuffer", file)
		return nil
	})
	input.Set("onchange", onchange)

	body.Call("appendChild", input)
	input.Call("click")

	r := <-ch
	body.Call("removeChild", input)
	release()
	return r.res, r.err
}

func IsCancelled(err error) bool {
	return errors.Is(err, ErrNoFile)
}
