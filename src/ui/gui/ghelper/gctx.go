package ghelper

import (
	"dragchess/src/chesslib"
	"dragchess/src/chesslib/interact"
	"dragchess/src/chesslib/rules"
	"dragchess/src/logx"
	"dragchess/src/ui/gui/gbase"
	"dragchess/src/ui/gui/gbase/gconf"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Game         *chesslib.GameController
	AssetsWorker *GUIAssetsWorker
	Config       *gconf.Config
	Theme        gbase.Palette
	Logx         logx.Logger
}

func NewGUIGameContext(g *chesslib.GameController, a *GUIAssetsWorker, c *gconf.Config, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		Game:         g,
		AssetsWorker: a,
		Config:       c,
		Theme:        gbase.PaletteFromString(c.Theme),
		Logx:         l,
	}
}

// NewGame builds the board controller from the config; a non-empty fen overrides the configured start position.
func NewGame(cfg *gconf.Config, fen string, logger logx.Logger) (*chesslib.GameController, error) {
	if fen == "" {
		fen = cfg.StartFEN
	}
	return chesslib.NewGameController(rules.NewChessEngine(), chesslib.Options{
		BoardSize: float64(cfg.BoardSize),
		Flipped:   cfg.Flipped,
		Timing: interact.Timing{
			Legal:   cfg.FastSnapDuration(),
			Illegal: cfg.SlowSnapDuration(),
		},
		StartFEN: fen,
	}, logger)
}
