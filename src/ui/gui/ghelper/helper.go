package ghelper

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

var pixel *ebiten.Image

func whitePixel() *ebiten.Image {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	return pixel
}

func RenderRoundedRect(w, h, radius int, fill color.RGBA, stroke color.RGBA, strokeW float64) *ebiten.Image {
	// anti-aliased through gg
	dc := gg.NewContext(w, h)
	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), float64(radius))
	dc.FillPreserve()
	dc.SetRGBA255(int(stroke.R), int(stroke.G), int(stroke.B), int(stroke.A))
	dc.SetLineWidth(strokeW)
	dc.Stroke()
	return ebiten.NewImageFromImage(dc.Image())
}

// FillRect draws a solid rectangle by scaling a shared white pixel.
func FillRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(whitePixel(), op)
}

func DrawRectStroke(screen *ebiten.Image, x, y, w, h, thickness float64, col color.Color) {
	if screen == nil || w <= 0 || h <= 0 || thickness <= 0 {
		return
	}
	thickness = math.Min(thickness, math.Min(w, h)/2.0)

	FillRect(screen, x, y, w, thickness, col)
	FillRect(screen, x, y+h-thickness, w, thickness, col)
	FillRect(screen, x, y+thickness, thickness, h-thickness*2, col)
	FillRect(screen, x+w-thickness, y+thickness, thickness, h-thickness*2, col)
}

func PointInRect(px, py, rx, ry, rw, rh int) bool {
	return px >= rx && px < rx+rw && py >= ry && py < ry+rh
}
