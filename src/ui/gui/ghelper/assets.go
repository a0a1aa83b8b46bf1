package ghelper

import (
	"image"

	"dragchess/src/chesslib/base"
	"dragchess/src/ui/gui/gbase"
	"dragchess/src/ui/gui/gbase/gconf"
	"dragchess/src/ui/gui/ghelper/gfont"
	"dragchess/src/ui/gui/ghelper/gimages"
	"dragchess/src/ui/gui/ghelper/glang"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIAssetsWorker struct {
	fonts       *gfont.Fonts
	pieceImages map[gimages.PieceKey]*ebiten.Image
	icons       []image.Image
	lang        *glang.GUILangWorker
}

func NewGUIAssetsWorker(cfg *gconf.Config, theme gbase.Palette) (*GUIAssetsWorker, error) {
	raw, err := gimages.LoadPieceImages(cfg.PiecesDir, cfg.BoardSize/8)
	if err != nil {
		return nil, err
	}
	pieceImages := make(map[gimages.PieceKey]*ebiten.Image, len(raw))
	for k, img := range raw {
		pieceImages[k] = ebiten.NewImageFromImage(img)
	}
	f, err := gfont.LoadFonts()
	if err != nil {
		return nil, err
	}
	lw, err := glang.NewGUILangWorker(cfg.Lang)
	if err != nil {
		return nil, err
	}
	var icons []image.Image
	for _, size := range []int{16, 32, 48} {
		icons = append(icons, gimages.DrawIcon(size, theme.LightSquare, theme.DarkSquare))
	}
	return &GUIAssetsWorker{fonts: f, pieceImages: pieceImages, icons: icons, lang: lw}, nil
}

func (aw *GUIAssetsWorker) Piece(owner base.Side, kind base.PieceKind) *ebiten.Image {
	return aw.pieceImages[gimages.PieceKey{Owner: owner, Kind: kind}]
}

func (aw *GUIAssetsWorker) Icons() []image.Image {
	return aw.icons
}

func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}

func (aw *GUIAssetsWorker) Lang() *glang.GUILangWorker {
	return aw.lang
}
