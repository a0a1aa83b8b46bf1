package interact

import "dragchess/src/chesslib/base"

type mockMover struct {
	IsLegalFunc func(from, to base.Square) bool
	CommitFunc  func(id base.PieceID, from, to base.Square) error
}

func (m *mockMover) IsLegal(from, to base.Square) bool {
	return m.IsLegalFunc(from, to)
}

func (m *mockMover) Commit(id base.PieceID, from, to base.Square) error {
	return m.CommitFunc(id, from, to)
}
