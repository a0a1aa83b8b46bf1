package ginput

import (
	"dragchess/src/chesslib/base"
	"dragchess/src/chesslib/interact"
)

type mockBoard struct {
	HitTestFunc    func(pos base.PixelPosition) (base.PieceID, bool)
	BeginDragFunc  func(id base.PieceID) bool
	UpdateDragFunc func(id base.PieceID, translation base.PixelPosition)
	EndDragFunc    func(id base.PieceID) (interact.Resolution, bool)
}

func (m *mockBoard) HitTest(pos base.PixelPosition) (base.PieceID, bool) {
	return m.HitTestFunc(pos)
}

func (m *mockBoard) BeginDrag(id base.PieceID) bool {
	return m.BeginDragFunc(id)
}

func (m *mockBoard) UpdateDrag(id base.PieceID, translation base.PixelPosition) {
	m.UpdateDragFunc(id, translation)
}

func (m *mockBoard) EndDrag(id base.PieceID) (interact.Resolution, bool) {
	return m.EndDragFunc(id)
}
