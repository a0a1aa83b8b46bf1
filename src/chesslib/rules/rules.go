// Package rules adapts an external chess library to the board: legality,
// move application and terminal detection are never computed here.
package rules

import (
	"errors"
	"fmt"
	"strings"

	"dragchess/src/chesslib/base"

	"github.com/corentings/chess/v2"
)

var (
	ErrInvalidFEN  = errors.New("invalid FEN")
	ErrIllegalMove = errors.New("illegal move")
)

// Engine is everything the board needs from a rules implementation.
type Engine interface {
	Layout() base.Layout
	LegalMoves() []base.Move
	ApplyMove(from, to base.Square) error
	IsCheckmate() bool
	IsDraw() bool
	Reset()
	SideToMove() base.Side
	FEN() string
	Load(fen string) error
}

// ChessEngine is an Engine backed by corentings/chess.
type ChessEngine struct {
	game     *chess.Game
	startFEN string // empty means the standard starting position
}

func NewChessEngine() *ChessEngine {
	return &ChessEngine{game: chess.NewGame()}
}

// Load validates fen and makes it the position Reset returns to.
func (e *ChessEngine) Load(fen string) error {
	fen = strings.TrimSpace(fen)
	if fen == "" || fen == base.FEN_START_GAME {
		e.startFEN = ""
		e.game = chess.NewGame()
		return nil
	}
	opt, err := chess.FEN(fen)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	e.startFEN = fen
	e.game = chess.NewGame(opt)
	return nil
}

func (e *ChessEngine) Reset() {
	if e.startFEN == "" {
		e.game = chess.NewGame()
		return
	}
	// startFEN was validated by Load
	opt, err := chess.FEN(e.startFEN)
	if err != nil {
		e.startFEN = ""
		e.game = chess.NewGame()
		return
	}
	e.game = chess.NewGame(opt)
}

func (e *ChessEngine) Layout() base.Layout {
	var l base.Layout
	for sq, p := range e.game.Position().Board().SquareMap() {
		if p == chess.NoPiece {
			continue
		}
		l.Set(base.PieceState{
			Kind:   kindFrom(p.Type()),
			Owner:  sideFrom(p.Color()),
			Square: squareFrom(sq),
		})
	}
	return l
}

func (e *ChessEngine) LegalMoves() []base.Move {
	valid := e.game.ValidMoves()
	moves := make([]base.Move, 0, len(valid))
	for _, mv := range valid {
		moves = append(moves, base.Move{
			From:      squareFrom(mv.S1()),
			To:        squareFrom(mv.S2()),
			Promotion: kindFrom(mv.Promo()),
		})
	}
	return moves
}

// ApplyMove plays from->to, promoting to a queen when the move is a promotion.
func (e *ChessEngine) ApplyMove(from, to base.Square) error {
	var found *base.Move
	for _, mv := range e.LegalMoves() {
		if mv.From != from || mv.To != to {
			continue
		}
		if found == nil || mv.Promotion == base.Queen {
			m := mv
			found = &m
		}
	}
	if found == nil {
		return fmt.Errorf("%w: %s%s", ErrIllegalMove, from, to)
	}
	if err := e.game.PushNotationMove(found.String(), chess.UCINotation{}, nil); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIllegalMove, found, err)
	}
	return nil
}

func (e *ChessEngine) IsCheckmate() bool {
	return e.game.Method() == chess.Checkmate
}

// IsDraw covers automatic draws and positions where a draw can be claimed.
func (e *ChessEngine) IsDraw() bool {
	if e.game.Outcome() == chess.Draw {
		return true
	}
	for _, m := range e.game.EligibleDraws() {
		if m == chess.ThreefoldRepetition || m == chess.FiftyMoveRule {
			return true
		}
	}
	return false
}

func (e *ChessEngine) SideToMove() base.Side {
	return sideFrom(e.game.Position().Turn())
}

func (e *ChessEngine) FEN() string {
	return e.game.FEN()
}

func squareFrom(sq chess.Square) base.Square {
	return base.NewSquare(int(sq.File()), int(sq.Rank()))
}

func sideFrom(c chess.Color) base.Side {
	if c == chess.Black {
		return base.Black
	}
	return base.White
}

func kindFrom(pt chess.PieceType) base.PieceKind {
	switch pt {
	case chess.King:
		return base.King
	case chess.Queen:
		return base.Queen
	case chess.Rook:
		return base.Rook
	case chess.Bishop:
		return base.Bishop
	case chess.Knight:
		return base.Knight
	case chess.Pawn:
		return base.Pawn
	default:
		return base.NoPiece
	}
}
