package gfont

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Small  font.Face
	Normal font.Face
	Bold   font.Face
	Title  font.Face
}

// LoadFonts builds every face from the Go font family, so no font files have to ship.
func LoadFonts() (*Fonts, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, err
	}

	fonts := &Fonts{}
	if fonts.Small, err = NewFace(regular, 11); err != nil {
		return nil, err
	}
	if fonts.Normal, err = NewFace(regular, 14); err != nil {
		return nil, err
	}
	if fonts.Bold, err = NewFace(bold, 16); err != nil {
		return nil, err
	}
	// for titles
	if fonts.Title, err = NewFace(bold, 28); err != nil {
		return nil, err
	}
	return fonts, nil
}

func NewFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// GlyphFace is the bold face used to letter piece sprites.
func GlyphFace(size float64) (font.Face, error) {
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, err
	}
	return NewFace(bold, size)
}
