// Package ginput turns raw pointer input into per-piece drag gestures.
// Every pointer (the mouse or one finger) owns at most one gesture.
package ginput

import (
	"dragchess/src/chesslib/base"
	"dragchess/src/chesslib/interact"
)

type PointerID int

const MousePointer PointerID = -1

type EventKind uint8

const (
	Press EventKind = iota
	Move
	Release
)

// Event positions are board-local pixels.
type Event struct {
	Kind    EventKind
	Pointer PointerID
	Pos     base.PixelPosition
}

// Board is what the tracker drives; chesslib.GameController implements it.
type Board interface {
	HitTest(pos base.PixelPosition) (base.PieceID, bool)
	BeginDrag(id base.PieceID) bool
	UpdateDrag(id base.PieceID, translation base.PixelPosition)
	EndDrag(id base.PieceID) (interact.Resolution, bool)
}

type gesture struct {
	piece base.PieceID
	start base.PixelPosition
}

type Tracker struct {
	board    Board
	gestures map[PointerID]gesture
}

func NewTracker(b Board) *Tracker {
	return &Tracker{board: b, gestures: make(map[PointerID]gesture)}
}

// Handle feeds one event and returns the resolution when it ended a drag.
func (t *Tracker) Handle(ev Event) (interact.Resolution, bool) {
	switch ev.Kind {
	case Press:
		t.press(ev)
	case Move:
		if g, ok := t.gestures[ev.Pointer]; ok {
			t.board.UpdateDrag(g.piece, ev.Pos.Sub(g.start))
		}
	case Release:
		g, ok := t.gestures[ev.Pointer]
		if !ok {
			return interact.Resolution{}, false
		}
		delete(t.gestures, ev.Pointer)
		t.board.UpdateDrag(g.piece, ev.Pos.Sub(g.start))
		return t.board.EndDrag(g.piece)
	}
	return interact.Resolution{}, false
}

func (t *Tracker) press(ev Event) {
	if _, ok := t.gestures[ev.Pointer]; ok {
		return
	}
	id, ok := t.board.HitTest(ev.Pos)
	if !ok || t.holding(id) {
		return
	}
	if t.board.BeginDrag(id) {
		t.gestures[ev.Pointer] = gesture{piece: id, start: ev.Pos}
	}
}

func (t *Tracker) holding(id base.PieceID) bool {
	for _, g := range t.gestures {
		if g.piece == id {
			return true
		}
	}
	return false
}

// Cancel forgets every gesture, used when the board is rebuilt under the pointer.
func (t *Tracker) Cancel() {
	for p := range t.gestures {
		delete(t.gestures, p)
	}
}

func (t *Tracker) Active() int {
	return len(t.gestures)
}
