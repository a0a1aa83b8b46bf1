package cli

import (
	"fmt"
	"io"
	"os"

	"dragchess/src/chesslib/base"

	"github.com/fatih/color"
	"golang.org/x/term"
)

type DrawFunc func(out io.Writer, l base.Layout)

// cells[light][owner]
var cells = [2][2]*color.Color{
	{color.New(color.BgHiBlack, color.FgHiWhite, color.Bold), color.New(color.BgHiBlack, color.FgBlack, color.Bold)},
	{color.New(color.BgWhite, color.FgHiWhite, color.Bold), color.New(color.BgWhite, color.FgBlack, color.Bold)},
}

// UseColor turns ANSI colours off when f is not a terminal.
func UseColor(f *os.File) {
	if !term.IsTerminal(int(f.Fd())) {
		color.NoColor = true
	}
}

func pieceGlyph(ps base.PieceState) string {
	glyphs := map[base.PieceKind][2]string{
		base.King:   {"♔", "♚"},
		base.Queen:  {"♕", "♛"},
		base.Rook:   {"♖", "♜"},
		base.Bishop: {"♗", "♝"},
		base.Knight: {"♘", "♞"},
		base.Pawn:   {"♙", "♟"},
	}
	g, ok := glyphs[ps.Kind]
	if !ok {
		return " "
	}
	return g[ps.Owner]
}

// PrintLayout draws the board from white's side, rank 8 on top.
func PrintLayout(out io.Writer, l base.Layout) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "   a  b  c  d  e  f  g  h")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(out, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			ps := l.At(base.NewSquare(file, rank))
			cells[(rank+file)%2][ps.Owner].Fprintf(out, " %s ", pieceGlyph(ps))
		}
		fmt.Fprintf(out, " %d\n", rank+1)
	}
	fmt.Fprintln(out, "   a  b  c  d  e  f  g  h")
	fmt.Fprintln(out)
}
