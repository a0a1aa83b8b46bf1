// Package notation maps between board pixels, grid cells and algebraic squares.
package notation

import (
	"math"

	"dragchess/src/chesslib/base"
)

// Mapper converts positions for one square drawing surface of 8*CellSize pixels.
// Rank 8 is drawn at the top unless Flipped.
type Mapper struct {
	CellSize float64
	Flipped  bool
}

func NewMapper(boardSize float64, flipped bool) Mapper {
	return Mapper{CellSize: boardSize / 8, Flipped: flipped}
}

func (m Mapper) BoardSize() float64 {
	return m.CellSize * 8
}

// PixelToGrid floor-divides each axis and clamps into [0,7], so releases outside the board land on the nearest edge cell.
func (m Mapper) PixelToGrid(pos base.PixelPosition) base.GridCoordinate {
	if m.CellSize <= 0 {
		return base.GridCoordinate{}
	}
	return base.GridCoordinate{
		Row: m.cell(pos.Y),
		Col: m.cell(pos.X),
	}
}

// GridToPixel returns the top-left pixel of the cell.
func (m Mapper) GridToPixel(g base.GridCoordinate) base.PixelPosition {
	return base.PixelPosition{
		X: float64(g.Col) * m.CellSize,
		Y: float64(g.Row) * m.CellSize,
	}
}

func (m Mapper) GridToSquare(g base.GridCoordinate) base.Square {
	if !g.IsValid() {
		return base.NoSquare
	}
	if m.Flipped {
		// top-left on screen is h1
		return base.NewSquare(7-g.Col, g.Row)
	}
	// row 0 on screen is rank 8
	return base.NewSquare(g.Col, 7-g.Row)
}

func (m Mapper) SquareToGrid(sq base.Square) base.GridCoordinate {
	if m.Flipped {
		return base.GridCoordinate{Row: sq.Rank(), Col: 7 - sq.File()}
	}
	return base.GridCoordinate{Row: 7 - sq.Rank(), Col: sq.File()}
}

func (m Mapper) PixelToSquare(pos base.PixelPosition) base.Square {
	return m.GridToSquare(m.PixelToGrid(pos))
}

// SquareToPixel is the animation target for a square, not the raw cursor position.
func (m Mapper) SquareToPixel(sq base.Square) base.PixelPosition {
	return m.GridToPixel(m.SquareToGrid(sq))
}

// Snap returns the top-left pixel of the cell containing pos.
func (m Mapper) Snap(pos base.PixelPosition) base.PixelPosition {
	return m.GridToPixel(m.PixelToGrid(pos))
}

// Contains reports whether pos is on the drawing surface.
func (m Mapper) Contains(pos base.PixelPosition) bool {
	size := m.BoardSize()
	return pos.X >= 0 && pos.Y >= 0 && pos.X < size && pos.Y < size
}

// cell clamps in float64 before converting to int. NaN maps to 0.
func (m Mapper) cell(v float64) int {
	i := math.Floor(v / m.CellSize)
	switch {
	case math.IsNaN(i) || i < 0:
		return 0
	case i > 7:
		return 7
	}
	return int(i)
}
