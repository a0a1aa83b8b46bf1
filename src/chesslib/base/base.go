package base

import (
	"errors"
	"fmt"
)

// Forsyth–Edwards Notation
const FEN_START_GAME string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var ErrInvalidSquare = errors.New("invalid square")

type Side uint8

const (
	White Side = iota
	Black
)

func (s Side) String() string {
	if s == Black {
		return "black"
	}
	return "white"
}

func (s Side) Opponent() Side {
	if s == White {
		return Black
	}
	return White
}

type PieceKind uint8

const (
	NoPiece PieceKind = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

func (k PieceKind) String() string {
	switch k {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Pawn:
		return "pawn"
	default:
		return "empty"
	}
}

type GameStatus uint8

const (
	InProgress GameStatus = 10
	Checkmate  GameStatus = 11
	Draw       GameStatus = 12
)

func (gs GameStatus) String() string {
	switch gs {
	case InProgress:
		return "in progress"
	case Checkmate:
		return "checkmate"
	case Draw:
		return "draw"
	default:
		return "invalid"
	}
}

func (gs GameStatus) IsTerminal() bool {
	return gs == Checkmate || gs == Draw
}

// Square is rank*8+file: a1 == 0, h1 == 7, a8 == 56, h8 == 63.
type Square uint8

const NoSquare Square = 64

func NewSquare(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return Square(rank*8 + file)
}

func (sq Square) File() int {
	return int(sq) % 8
}

func (sq Square) Rank() int {
	return int(sq) / 8
}

func (sq Square) IsValid() bool {
	return sq < NoSquare
}

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// ParseSquare reads the algebraic form ("e4").
func ParseSquare(pos string) (Square, error) {
	// 'a' ~ 'h' to 0-7
	// '1' ~ '8' to 0-7
	if len(pos) != 2 || pos[0] < 'a' || pos[0] > 'h' || pos[1] < '1' || pos[1] > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, pos)
	}
	return NewSquare(int(pos[0]-'a'), int(pos[1]-'1')), nil
}

// GridCoordinate is the rendering-space dual of Square, row 0 is the top row.
type GridCoordinate struct {
	Row int
	Col int
}

func (g GridCoordinate) IsValid() bool {
	return g.Row >= 0 && g.Row <= 7 && g.Col >= 0 && g.Col <= 7
}

// PixelPosition is board-local: (0,0) is the top-left corner of the drawing surface.
type PixelPosition struct {
	X float64
	Y float64
}

func (p PixelPosition) Add(o PixelPosition) PixelPosition {
	return PixelPosition{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p PixelPosition) Sub(o PixelPosition) PixelPosition {
	return PixelPosition{X: p.X - o.X, Y: p.Y - o.Y}
}

// PieceID identifies one piece for the whole game, independent of where it stands.
type PieceID string

type PieceState struct {
	Kind   PieceKind
	Owner  Side
	Square Square
}

func (ps PieceState) IsEmpty() bool {
	return ps.Kind == NoPiece
}

// Layout is indexed [row][col] with row 0 holding rank 8.
type Layout [8][8]PieceState

func (l Layout) At(sq Square) PieceState {
	if !sq.IsValid() {
		return PieceState{Square: sq}
	}
	return l[7-sq.Rank()][sq.File()]
}

func (l *Layout) Set(ps PieceState) {
	if l == nil || !ps.Square.IsValid() {
		return
	}
	l[7-ps.Square.Rank()][ps.Square.File()] = ps
}

// Pieces returns the occupied cells from a8 to h1.
func (l Layout) Pieces() []PieceState {
	var pieces []PieceState
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if !l[row][col].IsEmpty() {
				pieces = append(pieces, l[row][col])
			}
		}
	}
	return pieces
}

type Move struct {
	From      Square
	To        Square
	Promotion PieceKind
}

func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if r := PromotionRune(m.Promotion); r != 0 {
		s += string(r)
	}
	return s
}

func PromotionRune(k PieceKind) rune {
	switch k {
	case Queen:
		return 'q'
	case Rook:
		return 'r'
	case Bishop:
		return 'b'
	case Knight:
		return 'n'
	default:
		return 0
	}
}

func ConvertRuneFromPiece(ps PieceState) rune {
	var r rune
	switch ps.Kind {
	case Pawn:
		r = 'P'
	case Knight:
		r = 'N'
	case Bishop:
		r = 'B'
	case Rook:
		r = 'R'
	case Queen:
		r = 'Q'
	case King:
		r = 'K'
	default:
		return '.'
	}
	if ps.Owner == Black {
		r += 'a' - 'A'
	}
	return r
}
