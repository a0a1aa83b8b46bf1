package base

import (
	"errors"
	"testing"
)

func TestSquareStringBijection(t *testing.T) {
	seen := make(map[string]Square, 64)
	for i := 0; i < 64; i++ {
		sq := Square(i)
		s := sq.String()
		if prev, ok := seen[s]; ok {
			t.Fatalf("squares %d and %d share the string %q", prev, sq, s)
		}
		seen[s] = sq
		got, err := ParseSquare(s)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", s, err)
		}
		if got != sq {
			t.Errorf("ParseSquare(%q): wanted %d, got %d", s, sq, got)
		}
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		want    Square
		wantErr bool
	}{
		{in: "a1", want: 0},
		{in: "h1", want: 7},
		{in: "e4", want: 28},
		{in: "a8", want: 56},
		{in: "h8", want: 63},
		{in: "i1", wantErr: true},
		{in: "a9", wantErr: true},
		{in: "a0", wantErr: true},
		{in: "E4", wantErr: true},
		{in: "e", wantErr: true},
		{in: "e44", wantErr: true},
	}
	for i, test := range tests {
		got, err := ParseSquare(test.in)
		switch {
		case test.wantErr:
			if !errors.Is(err, ErrInvalidSquare) {
				t.Errorf("Test %v: wanted ErrInvalidSquare for %q, got %v", i, test.in, err)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		case got != test.want:
			t.Errorf("Test %v: wanted %v, got %v", i, test.want, got)
		}
	}
}

func TestNewSquareOutOfRange(t *testing.T) {
	for _, fr := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		if got := NewSquare(fr[0], fr[1]); got != NoSquare {
			t.Errorf("NewSquare(%d, %d): wanted NoSquare, got %v", fr[0], fr[1], got)
		}
	}
}

func TestLayoutAtSet(t *testing.T) {
	var l Layout
	e4, _ := ParseSquare("e4")
	a8, _ := ParseSquare("a8")
	l.Set(PieceState{Kind: Pawn, Owner: White, Square: e4})
	l.Set(PieceState{Kind: Rook, Owner: Black, Square: a8})
	if got := l.At(e4); got.Kind != Pawn || got.Owner != White {
		t.Errorf("wanted white pawn on e4, got %+v", got)
	}
	if got := l[0][0]; got.Kind != Rook {
		t.Errorf("wanted a8 stored at row 0 col 0, got %+v", got)
	}
	if got := l[4][4]; got.Kind != Pawn {
		t.Errorf("wanted e4 stored at row 4 col 4, got %+v", got)
	}
	if got := len(l.Pieces()); got != 2 {
		t.Errorf("wanted 2 pieces, got %v", got)
	}
}

func TestLayoutReadsOnReturnedValue(t *testing.T) {
	e4, _ := ParseSquare("e4")
	layout := func() Layout {
		var l Layout
		l.Set(PieceState{Kind: Knight, Owner: Black, Square: e4})
		return l
	}
	if got := layout().At(e4); got.Kind != Knight || got.Owner != Black {
		t.Errorf("wanted black knight on e4, got %+v", got)
	}
	if got := len(layout().Pieces()); got != 1 {
		t.Errorf("wanted 1 piece, got %v", got)
	}
}

func TestMoveString(t *testing.T) {
	e7, _ := ParseSquare("e7")
	e8, _ := ParseSquare("e8")
	if got, want := (Move{From: e7, To: e8, Promotion: Queen}).String(), "e7e8q"; got != want {
		t.Errorf("wanted %v, got %v", want, got)
	}
	if got, want := (Move{From: e7, To: e8}).String(), "e7e8"; got != want {
		t.Errorf("wanted %v, got %v", want, got)
	}
}
