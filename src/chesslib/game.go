// Package chesslib owns the canonical game: it keeps the rules engine and
// the per-piece drag machines in step and decides which pieces may move.
package chesslib

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"dragchess/src/chesslib/base"
	"dragchess/src/chesslib/interact"
	"dragchess/src/chesslib/notation"
	"dragchess/src/chesslib/rules"
	"dragchess/src/logx"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrNotYourTurn = errors.New("not your turn")
	ErrIllegalMove = errors.New("illegal move")
	ErrWrongPiece  = errors.New("piece is not on the move's origin")
)

type Options struct {
	BoardSize float64
	Flipped   bool
	Timing    interact.Timing
	StartFEN  string
}

// GameController is driven from a single goroutine (the GUI update loop or the replay CLI).
type GameController struct {
	engine rules.Engine
	mapper notation.Mapper
	timing interact.Timing
	logger logx.Logger

	pieces map[base.PieceID]*interact.Piece
	order  []base.PieceID // draw order
	layout base.Layout

	turn      base.Side
	startSide base.Side
	checkmate bool
	draw      bool
	moves     int
	name      string

	newID func() base.PieceID
}

func NewGameController(e rules.Engine, opts Options, logger logx.Logger) (*GameController, error) {
	if logger == nil {
		logger = logx.NewNop()
	}
	if opts.BoardSize <= 0 {
		opts.BoardSize = 480
	}
	gc := &GameController{
		engine: e,
		mapper: notation.NewMapper(opts.BoardSize, opts.Flipped),
		timing: opts.Timing,
		logger: logger.Named("board"),
		newID: func() base.PieceID {
			return base.PieceID(uuid.NewString())
		},
	}
	if opts.StartFEN != "" {
		if err := e.Load(opts.StartFEN); err != nil {
			return nil, fmt.Errorf("load start position: %w", err)
		}
	}
	gc.rebuild()
	return gc, nil
}

// OnReset starts over from the configured starting position with fresh piece identities.
func (gc *GameController) OnReset() {
	gc.engine.Reset()
	gc.rebuild()
}

func (gc *GameController) Reset() {
	gc.OnReset()
}

// LoadFEN makes fen the starting position and resets to it.
func (gc *GameController) LoadFEN(fen string) error {
	if err := gc.engine.Load(fen); err != nil {
		return err
	}
	gc.rebuild()
	return nil
}

func (gc *GameController) rebuild() {
	gc.layout = gc.engine.Layout()
	gc.turn = gc.engine.SideToMove()
	gc.startSide = gc.turn
	gc.moves = 0
	gc.name = petname.Generate(2, "-")

	gc.pieces = make(map[base.PieceID]*interact.Piece)
	gc.order = gc.order[:0]
	ids := make(map[base.Square]base.PieceID)
	for _, ps := range gc.layout.Pieces() {
		id := gc.newID()
		gc.pieces[id] = interact.NewPiece(id, ps, false, gc.pieceConfig())
		gc.order = append(gc.order, id)
		ids[ps.Square] = id
	}
	gc.evaluate()
	gc.syncPieces(ids)
	gc.logger.Infof("game %v started, %v to move", gc.name, gc.turn)
	if gc.GameOver() {
		gc.logger.Infof("game %v starts in a finished position: %v", gc.name, gc.Status())
	}
}

func (gc *GameController) pieceConfig() interact.Config {
	return interact.Config{
		Mapper: gc.mapper,
		Mover:  gc,
		Timing: gc.timing,
		Logger: gc.logger,
	}
}

// OnMoveCompleted re-reads the engine after mv was applied and carries piece identities over.
func (gc *GameController) OnMoveCompleted(mv base.Move) {
	next := gc.engine.Layout()
	ids := gc.reconcile(next, mv)

	pieces := make(map[base.PieceID]*interact.Piece, len(ids))
	var added []base.PieceID
	for _, ps := range next.Pieces() {
		id := ids[ps.Square]
		p, ok := gc.pieces[id]
		if !ok {
			p = interact.NewPiece(id, ps, false, gc.pieceConfig())
			added = append(added, id)
		}
		pieces[id] = p
	}
	order := gc.order[:0]
	for _, id := range gc.order {
		if _, ok := pieces[id]; ok {
			order = append(order, id)
			continue
		}
		gc.logger.Debugf("piece %v captured", id)
	}

	gc.layout = next
	gc.pieces = pieces
	gc.order = append(order, added...)
	gc.turn = gc.turn.Opponent()
	gc.moves++
	gc.evaluate()
	gc.syncPieces(ids)

	gc.logger.Infof("game %v: %v played %v", gc.name, gc.turn.Opponent(), mv)
	switch {
	case gc.checkmate:
		gc.logger.Infof("game %v: checkmate, %v wins", gc.name, gc.turn.Opponent())
	case gc.draw:
		gc.logger.Infof("game %v: draw", gc.name)
	}
}

// reconcile maps every occupied square of next to a piece identity.
// The mover keeps its identity (also when promoted), pieces that stayed put
// keep theirs, and a piece that appears on a new square takes the identity of
// an identical piece that left its square (the castling rook).
func (gc *GameController) reconcile(next base.Layout, mv base.Move) map[base.Square]base.PieceID {
	bySquare := make(map[base.Square]base.PieceID, len(gc.pieces))
	for id, p := range gc.pieces {
		bySquare[p.Square()] = id
	}
	ids := make(map[base.Square]base.PieceID)
	used := make(map[base.PieceID]bool)
	if id, ok := bySquare[mv.From]; ok {
		ids[mv.To] = id
		used[id] = true
	}
	var moved []base.PieceState
	for _, ps := range next.Pieces() {
		if ps.Square == mv.To {
			continue
		}
		prev := gc.layout.At(ps.Square)
		id, ok := bySquare[ps.Square]
		if ok && !used[id] && ps.Square != mv.From && prev.Kind == ps.Kind && prev.Owner == ps.Owner {
			ids[ps.Square] = id
			used[id] = true
			continue
		}
		moved = append(moved, ps)
	}
	for _, ps := range moved {
		ids[ps.Square] = gc.vacatedID(next, ps, bySquare, used)
	}
	return ids
}

func (gc *GameController) vacatedID(next base.Layout, ps base.PieceState, bySquare map[base.Square]base.PieceID, used map[base.PieceID]bool) base.PieceID {
	for _, prev := range gc.layout.Pieces() {
		id, ok := bySquare[prev.Square]
		if !ok || used[id] || prev.Kind != ps.Kind || prev.Owner != ps.Owner {
			continue
		}
		if !next.At(prev.Square).IsEmpty() {
			continue
		}
		used[id] = true
		return id
	}
	id := gc.newID()
	used[id] = true
	return id
}

func (gc *GameController) evaluate() {
	gc.checkmate = gc.engine.IsCheckmate()
	gc.draw = gc.engine.IsDraw()
}

// syncPieces puts every piece back at rest on the square ids assigns it.
func (gc *GameController) syncPieces(ids map[base.Square]base.PieceID) {
	for sq, id := range ids {
		ps := gc.layout.At(sq)
		gc.pieces[id].Reset(ps, gc.canMove(ps.Owner))
	}
}

func (gc *GameController) canMove(owner base.Side) bool {
	return owner == gc.turn && !gc.GameOver()
}

// IsLegal reports whether from->to is in the legal move set of the current position.
func (gc *GameController) IsLegal(from, to base.Square) bool {
	if gc.GameOver() {
		return false
	}
	for _, mv := range gc.engine.LegalMoves() {
		if mv.From == from && mv.To == to {
			return true
		}
	}
	return false
}

// Commit applies a resolved drag of piece id. It is the only path that mutates the rules engine.
func (gc *GameController) Commit(id base.PieceID, from, to base.Square) error {
	if gc.GameOver() {
		return ErrGameOver
	}
	if ps := gc.layout.At(from); ps.IsEmpty() || ps.Owner != gc.turn {
		return fmt.Errorf("%w: %v", ErrNotYourTurn, from)
	}
	if p, ok := gc.pieces[id]; !ok || p.Square() != from {
		return fmt.Errorf("%w: %v from %v", ErrWrongPiece, id, from)
	}
	if !gc.IsLegal(from, to) {
		return fmt.Errorf("%w: %v%v", ErrIllegalMove, from, to)
	}
	if err := gc.engine.ApplyMove(from, to); err != nil {
		return fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	gc.OnMoveCompleted(base.Move{From: from, To: to})
	return nil
}

// Tick advances every running animation; commits fired by it may rebuild the piece set.
func (gc *GameController) Tick(dt time.Duration) {
	order := append([]base.PieceID(nil), gc.order...)
	for _, id := range order {
		if p, ok := gc.pieces[id]; ok {
			p.Tick(dt)
		}
	}
}

// HitTest returns the piece drawn under pos, pieces in motion first.
func (gc *GameController) HitTest(pos base.PixelPosition) (base.PieceID, bool) {
	views := gc.views()
	for i := len(views) - 1; i >= 0; i-- {
		if p := gc.pieces[views[i].ID]; p.Contains(pos) {
			return p.ID, true
		}
	}
	return "", false
}

func (gc *GameController) BeginDrag(id base.PieceID) bool {
	p, ok := gc.pieces[id]
	if !ok {
		return false
	}
	return p.BeginDrag()
}

func (gc *GameController) UpdateDrag(id base.PieceID, translation base.PixelPosition) {
	if p, ok := gc.pieces[id]; ok {
		p.UpdateDrag(translation)
	}
}

func (gc *GameController) EndDrag(id base.PieceID) (interact.Resolution, bool) {
	p, ok := gc.pieces[id]
	if !ok {
		return interact.Resolution{}, false
	}
	return p.EndDrag()
}

// Flip turns the board around. It is only allowed before the first move.
func (gc *GameController) Flip() bool {
	if gc.moves > 0 {
		return false
	}
	gc.SetGeometry(gc.mapper.BoardSize(), !gc.mapper.Flipped)
	return true
}

func (gc *GameController) SetGeometry(boardSize float64, flipped bool) {
	gc.mapper = notation.NewMapper(boardSize, flipped)
	for _, p := range gc.pieces {
		p.SetMapper(gc.mapper)
	}
}

func (gc *GameController) Mapper() notation.Mapper {
	return gc.mapper
}

func (gc *GameController) Turn() base.Side {
	return gc.turn
}

func (gc *GameController) StartSide() base.Side {
	return gc.startSide
}

func (gc *GameController) GameOver() bool {
	return gc.checkmate || gc.draw
}

func (gc *GameController) Status() base.GameStatus {
	switch {
	case gc.checkmate:
		return base.Checkmate
	case gc.draw:
		return base.Draw
	default:
		return base.InProgress
	}
}

func (gc *GameController) FEN() string {
	return gc.engine.FEN()
}

func (gc *GameController) GameName() string {
	return gc.name
}

func (gc *GameController) MoveCount() int {
	return gc.moves
}

type PieceView struct {
	ID        base.PieceID
	Kind      base.PieceKind
	Owner     base.Side
	Square    base.Square
	Position  base.PixelPosition
	State     interact.State
	Active    bool
	Enabled   bool
	Highlight interact.Highlight
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Layout    base.Layout
	Turn      base.Side
	Status    base.GameStatus
	Winner    base.Side
	HasWinner bool
	Mapper    notation.Mapper
	Views     []PieceView // back to front
}

func (gc *GameController) Snapshot() Snapshot {
	s := Snapshot{
		Layout: gc.layout,
		Turn:   gc.turn,
		Status: gc.Status(),
		Mapper: gc.mapper,
		Views:  gc.views(),
	}
	if gc.checkmate {
		s.Winner, s.HasWinner = gc.turn.Opponent(), true
	}
	return s
}

func (gc *GameController) views() []PieceView {
	views := make([]PieceView, 0, len(gc.order))
	for _, id := range gc.order {
		p := gc.pieces[id]
		views = append(views, PieceView{
			ID:        id,
			Kind:      p.Kind,
			Owner:     p.Owner,
			Square:    p.Square(),
			Position:  p.Position(),
			State:     p.State(),
			Active:    p.Active(),
			Enabled:   p.Enabled(),
			Highlight: p.Highlight(),
		})
	}
	// pieces in motion are drawn last so they stay on top
	sort.SliceStable(views, func(i, j int) bool {
		return !views[i].Active && views[j].Active
	})
	return views
}
