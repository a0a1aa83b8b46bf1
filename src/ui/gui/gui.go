package gui

import (
	"errors"

	"dragchess/src/chesslib"
	"dragchess/src/logx"
	"dragchess/src/ui/gui/gbase"
	"dragchess/src/ui/gui/gbase/gconf"
	"dragchess/src/ui/gui/gdraw"
	"dragchess/src/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	mgr *gdraw.SceneManager
	ctx *ghelper.GUIGameContext
}

func NewGUI(cfg *gconf.Config, g *chesslib.GameController, logx logx.Logger) (*GUIProcessing, error) {
	as, err := ghelper.NewGUIAssetsWorker(cfg, gbase.PaletteFromString(cfg.Theme))
	if err != nil {
		return nil, err
	}
	ctx := ghelper.NewGUIGameContext(g, as, cfg, logx.Named("gui"))
	mgr := gdraw.NewSceneManager(ctx)
	return &GUIProcessing{mgr: mgr, ctx: ctx}, nil
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowIcon(gp.ctx.AssetsWorker.Icons())
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle("DragChess")
	err := ebiten.RunGame(gp)
	if err != nil && !errors.Is(err, gbase.ErrExit) {
		return err
	}
	// keeps the orientation picked with F
	if err := gp.ctx.Config.Save(); err != nil {
		gp.ctx.Logx.Warnf("save config: %v", err)
	}
	return nil
}

func (gp *GUIProcessing) Update() error {
	return gp.mgr.Update()
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.mgr.Draw(screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.ctx.Config.WindowW, gp.ctx.Config.WindowH
}
