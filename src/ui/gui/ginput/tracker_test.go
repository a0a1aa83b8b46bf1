package ginput

import (
	"testing"

	"dragchess/src/chesslib/base"
	"dragchess/src/chesslib/interact"
)

// columnBoard has one piece per 50px column, named "a".."h"; pieces in column h are disabled.
func columnBoard(translations map[base.PieceID]base.PixelPosition, ended map[base.PieceID]int) *mockBoard {
	return &mockBoard{
		HitTestFunc: func(pos base.PixelPosition) (base.PieceID, bool) {
			col := int(pos.X / 50)
			if pos.X < 0 || col > 7 {
				return "", false
			}
			return base.PieceID(string(rune('a' + col))), true
		},
		BeginDragFunc: func(id base.PieceID) bool {
			return id != "h"
		},
		UpdateDragFunc: func(id base.PieceID, translation base.PixelPosition) {
			translations[id] = translation
		},
		EndDragFunc: func(id base.PieceID) (interact.Resolution, bool) {
			ended[id]++
			return interact.Resolution{Legal: true}, true
		},
	}
}

func TestTrackerMouseGesture(t *testing.T) {
	translations := map[base.PieceID]base.PixelPosition{}
	ended := map[base.PieceID]int{}
	tr := NewTracker(columnBoard(translations, ended))

	tr.Handle(Event{Kind: Press, Pointer: MousePointer, Pos: base.PixelPosition{X: 120, Y: 30}})
	if tr.Active() != 1 {
		t.Fatalf("wanted one gesture, got %v", tr.Active())
	}
	tr.Handle(Event{Kind: Move, Pointer: MousePointer, Pos: base.PixelPosition{X: 140, Y: 90}})
	if want, got := (base.PixelPosition{X: 20, Y: 60}), translations["c"]; want != got {
		t.Errorf("wanted translation %v, got %v", want, got)
	}
	res, ok := tr.Handle(Event{Kind: Release, Pointer: MousePointer, Pos: base.PixelPosition{X: 150, Y: 100}})
	switch {
	case !ok || !res.Legal:
		t.Errorf("wanted the release to resolve the drag")
	case translations["c"] != (base.PixelPosition{X: 30, Y: 70}):
		t.Errorf("wanted the release position applied before EndDrag, got %v", translations["c"])
	case ended["c"] != 1:
		t.Errorf("wanted one EndDrag, got %v", ended["c"])
	case tr.Active() != 0:
		t.Errorf("gesture not cleared")
	}
}

func TestTrackerIgnores(t *testing.T) {
	translations := map[base.PieceID]base.PixelPosition{}
	ended := map[base.PieceID]int{}
	tr := NewTracker(columnBoard(translations, ended))

	tests := []struct {
		name string
		ev   Event
	}{
		{"press off the board", Event{Kind: Press, Pointer: MousePointer, Pos: base.PixelPosition{X: -5}}},
		{"press on a disabled piece", Event{Kind: Press, Pointer: MousePointer, Pos: base.PixelPosition{X: 375}}},
		{"move without press", Event{Kind: Move, Pointer: MousePointer, Pos: base.PixelPosition{X: 10}}},
		{"release without press", Event{Kind: Release, Pointer: MousePointer, Pos: base.PixelPosition{X: 10}}},
	}
	for _, test := range tests {
		if _, ok := tr.Handle(test.ev); ok {
			t.Errorf("%v: unwanted resolution", test.name)
		}
		if tr.Active() != 0 {
			t.Errorf("%v: unwanted gesture", test.name)
		}
	}
	if len(translations) != 0 || len(ended) != 0 {
		t.Errorf("board was driven: %v %v", translations, ended)
	}
}

func TestTrackerMultiTouch(t *testing.T) {
	translations := map[base.PieceID]base.PixelPosition{}
	ended := map[base.PieceID]int{}
	tr := NewTracker(columnBoard(translations, ended))

	tr.Handle(Event{Kind: Press, Pointer: 1, Pos: base.PixelPosition{X: 10}})
	tr.Handle(Event{Kind: Press, Pointer: 2, Pos: base.PixelPosition{X: 60}})
	// a third finger on a piece already held is ignored
	tr.Handle(Event{Kind: Press, Pointer: 3, Pos: base.PixelPosition{X: 20}})
	if tr.Active() != 2 {
		t.Fatalf("wanted two gestures, got %v", tr.Active())
	}
	tr.Handle(Event{Kind: Move, Pointer: 1, Pos: base.PixelPosition{X: 10, Y: 50}})
	tr.Handle(Event{Kind: Move, Pointer: 2, Pos: base.PixelPosition{X: 60, Y: -50}})
	if translations["a"].Y != 50 || translations["b"].Y != -50 {
		t.Errorf("touches were not tracked independently: %v", translations)
	}
	tr.Handle(Event{Kind: Release, Pointer: 2, Pos: base.PixelPosition{X: 60, Y: -50}})
	if ended["b"] != 1 || ended["a"] != 0 || tr.Active() != 1 {
		t.Errorf("wanted only the second touch resolved: %v", ended)
	}
	tr.Cancel()
	if tr.Active() != 0 {
		t.Errorf("Cancel left gestures behind")
	}
}
