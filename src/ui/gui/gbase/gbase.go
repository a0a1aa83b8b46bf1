package gbase

import (
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	WindowW     int = 720
	WindowH     int = 640
	BoardMargin int = 40
	StatusH     int = 40
)

// ---- Styles (palettes) ----

type Palette struct {
	Bg           color.RGBA
	LightSquare  color.RGBA
	DarkSquare   color.RGBA
	FromSquare   color.RGBA
	TargetSquare color.RGBA
	ButtonFill   color.RGBA
	ButtonStroke color.RGBA
	ButtonText   color.RGBA
	MenuText     color.RGBA
	Accent       color.RGBA
	ModalBg      color.RGBA
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return "light"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case "dark":
		return DarkPalette
	default:
	}
	return LightPalette
}

var LightPalette = Palette{
	Bg:           color.RGBA{0xf7, 0xf7, 0xf7, 0xff},
	LightSquare:  color.RGBA{0xf0, 0xd9, 0xb5, 0xff},
	DarkSquare:   color.RGBA{0xb5, 0x88, 0x63, 0xff},
	FromSquare:   color.RGBA{0xf6, 0xf6, 0x69, 0x99},
	TargetSquare: color.RGBA{0x22, 0x88, 0xcc, 0x77},
	ButtonFill:   color.RGBA{0xff, 0xff, 0xff, 0xff},
	ButtonStroke: color.RGBA{0x88, 0x88, 0x88, 0xff},
	ButtonText:   color.RGBA{0x22, 0x22, 0x22, 0xff},
	MenuText:     color.RGBA{0x22, 0x22, 0x22, 0xff},
	Accent:       color.RGBA{0x22, 0x88, 0xcc, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x88},
}

var DarkPalette = Palette{
	Bg:           color.RGBA{0x12, 0x12, 0x12, 0xff},
	LightSquare:  color.RGBA{0x9e, 0xa7, 0xb0, 0xff},
	DarkSquare:   color.RGBA{0x4b, 0x56, 0x62, 0xff},
	FromSquare:   color.RGBA{0xd9, 0xc2, 0x4a, 0x99},
	TargetSquare: color.RGBA{0x2a, 0xa1, 0xd1, 0x77},
	ButtonFill:   color.RGBA{0x20, 0x20, 0x20, 0xff},
	ButtonStroke: color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	ButtonText:   color.RGBA{0xee, 0xee, 0xee, 0xff},
	MenuText:     color.RGBA{0xee, 0xee, 0xee, 0xff},
	Accent:       color.RGBA{0x2a, 0xa1, 0xd1, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x99},
}
