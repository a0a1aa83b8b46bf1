//go:build !js && !wasm
// +build !js,!wasm

package gclipboard

import "github.com/atotto/clipboard"

var (
	readAll  = clipboard.ReadAll
	writeAll = clipboard.WriteAll
)

// Available is false on systems without xsel, xclip or wl-clipboard.
func Available() bool {
	return !clipboard.Unsupported
}
