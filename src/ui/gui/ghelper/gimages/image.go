package gimages

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"

	"dragchess/src/chesslib/base"
	"dragchess/src/ui/gui/ghelper/gfont"

	"github.com/fogleman/gg"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

type PieceKey struct {
	Owner base.Side
	Kind  base.PieceKind
}

var allKinds = []base.PieceKind{base.King, base.Queen, base.Rook, base.Bishop, base.Knight, base.Pawn}

// LoadPieceImages renders the twelve piece sprites at size pixels.
// With dir set, wK.svg ... bP.svg are read from it; otherwise the sprites are drawn.
func LoadPieceImages(dir string, size int) (map[PieceKey]image.Image, error) {
	images := make(map[PieceKey]image.Image, 12)
	for _, side := range []base.Side{base.White, base.Black} {
		for _, kind := range allKinds {
			key := PieceKey{Owner: side, Kind: kind}
			var (
				img image.Image
				err error
			)
			if dir != "" {
				img, err = LoadSVG(filepath.Join(dir, AssetName(key)), size)
			} else {
				img, err = DrawPiece(key, size)
			}
			if err != nil {
				return nil, err
			}
			images[key] = img
		}
	}
	return images, nil
}

// AssetName is the conventional file name of a piece sprite ("wK.svg").
func AssetName(key PieceKey) string {
	prefix := "w"
	if key.Owner == base.Black {
		prefix = "b"
	}
	return fmt.Sprintf("%s%c.svg", prefix, letter(key.Kind))
}

func LoadSVG(path string, size int) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read piece asset %s: %w", path, err)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse piece svg %s: %w", path, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Transparent), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

// DrawPiece draws a disc in the owner's colour lettered with the piece kind.
func DrawPiece(key PieceKey, size int) (image.Image, error) {
	face, err := gfont.GlyphFace(float64(size) * 0.5)
	if err != nil {
		return nil, err
	}
	fill, ink := color.RGBA{0xfa, 0xfa, 0xf5, 0xff}, color.RGBA{0x22, 0x22, 0x22, 0xff}
	if key.Owner == base.Black {
		fill, ink = ink, fill
	}
	s := float64(size)
	dc := gg.NewContext(size, size)
	dc.DrawCircle(s/2, s/2, s*0.4)
	dc.SetColor(fill)
	dc.FillPreserve()
	dc.SetRGBA255(0x55, 0x55, 0x55, 0xff)
	dc.SetLineWidth(s * 0.04)
	dc.Stroke()

	dc.SetFontFace(face)
	dc.SetColor(ink)
	dc.DrawStringAnchored(string(letter(key.Kind)), s/2, s/2, 0.5, 0.4)
	return dc.Image(), nil
}

// DrawIcon is the window icon: a two-by-two checker in a rounded frame.
func DrawIcon(size int, light, dark color.Color) image.Image {
	s := float64(size)
	dc := gg.NewContext(size, size)
	dc.DrawRoundedRectangle(0, 0, s, s, s/8)
	dc.SetColor(light)
	dc.Fill()
	dc.SetColor(dark)
	dc.DrawRectangle(s/2, 0, s/2, s/2)
	dc.DrawRectangle(0, s/2, s/2, s/2)
	dc.Fill()
	return dc.Image()
}

func letter(k base.PieceKind) rune {
	switch k {
	case base.King:
		return 'K'
	case base.Queen:
		return 'Q'
	case base.Rook:
		return 'R'
	case base.Bishop:
		return 'B'
	case base.Knight:
		return 'N'
	default:
		return 'P'
	}
}
