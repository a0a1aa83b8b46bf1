package gdraw

import (
	"testing"

	"dragchess/src/chesslib"
	"dragchess/src/chesslib/base"
	"dragchess/src/chesslib/interact"
)

func TestIsLightSquare(t *testing.T) {
	tests := map[string]bool{"a1": false, "h1": true, "a8": true, "h8": false, "e4": true, "d4": false}
	for name, want := range tests {
		sq, err := base.ParseSquare(name)
		if err != nil {
			t.Fatal(err)
		}
		if got := isLightSquare(sq); got != want {
			t.Errorf("%v: wanted light=%v, got %v", name, want, got)
		}
	}
}

func TestHighlightCells(t *testing.T) {
	origin := base.PixelPosition{X: 200, Y: 300}
	target := base.PixelPosition{X: 200, Y: 200}
	views := []chesslib.PieceView{
		{ID: "idle"},
		{ID: "lifted", Highlight: interact.Highlight{Origin: origin, Target: origin, ShowOrigin: true}},
		{ID: "moved", Highlight: interact.Highlight{Origin: origin, Target: target, ShowOrigin: true, ShowTarget: true}},
	}
	got := highlightCells(views)
	want := []highlightCell{{pos: origin}, {pos: origin}, {pos: target, target: true}}
	if len(got) != len(want) {
		t.Fatalf("wanted %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %v: wanted %v, got %v", i, want[i], got[i])
		}
	}
}
