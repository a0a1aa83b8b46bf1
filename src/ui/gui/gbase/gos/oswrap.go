// Package gos hides the file system differences between the desktop build and the browser.
package gos

import "errors"

var (
	ErrNotExist = errors.New("file does not exist (oswrap)")
	ErrReadOnly = errors.New("file system is read only (oswrap)")
)
