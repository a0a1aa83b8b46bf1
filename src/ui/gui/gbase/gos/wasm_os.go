//go:build js && wasm
// +build js,wasm

package gos

import (
	"errors"
	"os"
	"syscall/js"
)

type fetched struct {
	data []byte
	err  error
}

// fetchBytes runs fetch(path) and waits for the body.
func fetchBytes(path string) ([]byte, error) {
	fetch := js.Global().Get("fetch")
	if !fetch.Truthy() {
		return nil, errors.New("fetch() not supported")
	}

	ch := make(chan fetched, 1)
	var thenFn, catchFn, bodyFn, bodyErrFn js.Func
	bodyFn = js.FuncOf(func(this js.Value, args []js.Value) any {
		buf := js.Global().Get("Uint8Array").New(args[0])
		data := make([]byte, buf.Get("length").Int())
		js.CopyBytesToGo(data, buf)
		ch <- fetched{data: data}
		return nil
	})
	bodyErrFn = js.FuncOf(func(this js.Value, args []js.Value) any {
		ch <- fetched{err: errors.New("failed to read arrayBuffer")}
		return nil
	})
	thenFn = js.FuncOf(func(this js.Value, args []js.Value) any {
		resp := args[0]
		if !resp.Get("ok").Bool() {
			ch <- fetched{err: ErrNotExist}
			return nil
		}
		resp.Call("arrayBuffer").Call("then", bodyFn, bodyErrFn)
		return nil
	})
	catchFn = js.FuncOf(func(this js.Value, args []js.Value) any {
		ch <- fetched{err: errors.New("fetch() failed")}
		return nil
	})

	fetch.Invoke(path).Call("then", thenFn).Call("catch", catchFn)
	r := <-ch
	for _, f := range []js.Func{thenFn, catchFn, bodyFn, bodyErrFn} {
		f.Release()
	}
	return r.data, r.err
}

func ReadFile(name string) ([]byte, error) {
	return fetchBytes(name)
}

// the browser cannot write next to the page
func WriteFile(name string, data []byte, perm os.FileMode) error {
	return ErrReadOnly
}

func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist)
}
