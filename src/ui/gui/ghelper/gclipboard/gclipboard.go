// Package gclipboard moves positions between the board and the system clipboard.
package gclipboard

import (
	"errors"
	"fmt"
	"strings"
)

var ErrEmpty = errors.New("clipboard holds no position")

// WriteFEN puts fen on the clipboard as a single line.
func WriteFEN(fen string) error {
	fen = strings.TrimSpace(fen)
	if fen == "" {
		return ErrEmpty
	}
	if err := writeAll(fen); err != nil {
		return fmt.Errorf("copy position: %w", err)
	}
	return nil
}

// ReadFEN returns the first non-blank line of the clipboard.
func ReadFEN() (string, error) {
	text, err := readAll()
	if err != nil {
		return "", fmt.Errorf("paste position: %w", err)
	}
	return FirstLine(text)
}

// FirstLine picks the first non-blank line of text, trimmed.
func FirstLine(text string) (string, error) {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
	}
	return "", ErrEmpty
}
