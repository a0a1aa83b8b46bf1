package gclipboard

import (
	"errors"
	"testing"
)

func TestFirstLine(t *testing.T) {
	tests := []struct {
		text    string
		want    string
		wantErr error
	}{
		{"8/8/8/8/8/8/8/K6k w - - 0 1", "8/8/8/8/8/8/8/K6k w - - 0 1", nil},
		{"\r\n  \n8/8/8/8/8/8/8/K6k b - - 3 9 \r\nsecond", "8/8/8/8/8/8/8/K6k b - - 3 9", nil},
		{"", "", ErrEmpty},
		{" \n\t\n", "", ErrEmpty},
	}
	for i, test := range tests {
		got, err := FirstLine(test.text)
		switch {
		case !errors.Is(err, test.wantErr):
			t.Errorf("Test %v: wanted error %v, got %v", i, test.wantErr, err)
		case got != test.want:
			t.Errorf("Test %v: wanted %q, got %q", i, test.want, got)
		}
	}
}

func TestClipboardRoundTrip(t *testing.T) {
	var stored string
	defer func(r func() (string, error), w func(string) error) {
		readAll, writeAll = r, w
	}(readAll, writeAll)
	readAll = func() (string, error) { return stored, nil }
	writeAll = func(text string) error { stored = text; return nil }

	const fen = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"
	if err := WriteFEN(fen + "\n"); err != nil {
		t.Fatalf("WriteFEN: %v", err)
	}
	got, err := ReadFEN()
	switch {
	case err != nil:
		t.Errorf("ReadFEN: %v", err)
	case got != fen:
		t.Errorf("wanted %q, got %q", fen, got)
	}
	if err := WriteFEN("  "); !errors.Is(err, ErrEmpty) {
		t.Errorf("wanted ErrEmpty for a blank position, got %v", err)
	}

	failure := errors.New("no clipboard utility")
	readAll = func() (string, error) { return "", failure }
	if _, err := ReadFEN(); !errors.Is(err, failure) {
		t.Errorf("wanted the clipboard error wrapped, got %v", err)
	}
}
