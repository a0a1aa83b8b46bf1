package gdraw

import (
	"math"

	"dragchess/src/chesslib"
	"dragchess/src/chesslib/base"
	"dragchess/src/chesslib/notation"
	"dragchess/src/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type pieceKey struct {
	owner base.Side
	kind  base.PieceKind
}

// BoardDrawer renders a snapshot: grid, drag highlights and piece sprites.
// It keeps no game state, only images cached for one cell size.
type BoardDrawer struct {
	sqSize    int
	sqLight   *ebiten.Image
	sqDark    *ebiten.Image
	borderImg *ebiten.Image
	pieces    map[pieceKey]*ebiten.Image
}

func NewBoardDrawer(ctx *ghelper.GUIGameContext, m notation.Mapper) *BoardDrawer {
	bd := &BoardDrawer{}
	bd.prepareCache(ctx, int(m.CellSize))
	return bd
}

func (bd *BoardDrawer) prepareCache(ctx *ghelper.GUIGameContext, sqSize int) {
	bd.sqSize = sqSize
	bd.sqLight = ebiten.NewImage(sqSize, sqSize)
	bd.sqLight.Fill(ctx.Theme.LightSquare)
	bd.sqDark = ebiten.NewImage(sqSize, sqSize)
	bd.sqDark.Fill(ctx.Theme.DarkSquare)
	bd.borderImg = ghelper.RenderRoundedRect(sqSize*8+8, sqSize*8+8, 6, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)

	bd.pieces = make(map[pieceKey]*ebiten.Image)
	for _, owner := range []base.Side{base.White, base.Black} {
		for _, kind := range []base.PieceKind{base.King, base.Queen, base.Rook, base.Bishop, base.Knight, base.Pawn} {
			src := ctx.AssetsWorker.Piece(owner, kind)
			if src == nil {
				continue
			}
			dst := ebiten.NewImage(sqSize, sqSize)
			iw, ih := src.Bounds().Dx(), src.Bounds().Dy()
			s := math.Min(float64(sqSize)/float64(iw), float64(sqSize)/float64(ih))
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(s, s)
			op.GeoM.Translate((float64(sqSize)-float64(iw)*s)/2, (float64(sqSize)-float64(ih)*s)/2)
			op.Filter = ebiten.FilterLinear
			dst.DrawImage(src, op)
			bd.pieces[pieceKey{owner, kind}] = dst
		}
	}
}

// Draw paints the board with its top-left corner at origin.
func (bd *BoardDrawer) Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image, origin base.PixelPosition, snap chesslib.Snapshot) {
	if int(snap.Mapper.CellSize) != bd.sqSize {
		bd.prepareCache(ctx, int(snap.Mapper.CellSize))
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(origin.X-4, origin.Y-4)
	screen.DrawImage(bd.borderImg, op)

	bd.drawSquares(ctx, screen, origin, snap.Mapper)

	for _, h := range highlightCells(snap.Views) {
		c := ctx.Theme.FromSquare
		if h.target {
			c = ctx.Theme.TargetSquare
		}
		p := origin.Add(h.pos)
		ghelper.FillRect(screen, p.X, p.Y, float64(bd.sqSize), float64(bd.sqSize), c)
	}

	for _, v := range snap.Views {
		img := bd.pieces[pieceKey{v.Owner, v.Kind}]
		if img == nil {
			continue
		}
		p := origin.Add(v.Position)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(p.X, p.Y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}
}

func (bd *BoardDrawer) drawSquares(ctx *ghelper.GUIGameContext, screen *ebiten.Image, origin base.PixelPosition, m notation.Mapper) {
	face := ctx.AssetsWorker.Fonts().Small
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			g := base.GridCoordinate{Row: row, Col: col}
			sq := m.GridToSquare(g)
			p := origin.Add(m.GridToPixel(g))

			img, ink := bd.sqDark, ctx.Theme.LightSquare
			if isLightSquare(sq) {
				img, ink = bd.sqLight, ctx.Theme.DarkSquare
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(p.X, p.Y)
			screen.DrawImage(img, op)

			// file letters on the bottom row, rank digits on the left column
			if row == 7 {
				text.Draw(screen, string(rune('a'+sq.File())), face, int(p.X)+bd.sqSize-10, int(p.Y)+bd.sqSize-4, ink)
			}
			if col == 0 {
				text.Draw(screen, string(rune('1'+sq.Rank())), face, int(p.X)+3, int(p.Y)+13, ink)
			}
		}
	}
}

// a1 is dark.
func isLightSquare(sq base.Square) bool {
	return (sq.File()+sq.Rank())%2 == 1
}

type highlightCell struct {
	pos    base.PixelPosition
	target bool
}

// highlightCells lists the origin and target cells of every piece being dragged
// or resolving, origins first so targets paint over them.
func highlightCells(views []chesslib.PieceView) []highlightCell {
	var origins, targets []highlightCell
	for _, v := range views {
		h := v.Highlight
		if h.ShowOrigin {
			origins = append(origins, highlightCell{pos: h.Origin})
		}
		if h.ShowTarget {
			targets = append(targets, highlightCell{pos: h.Target, target: true})
		}
	}
	return append(origins, targets...)
}
