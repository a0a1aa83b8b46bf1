package gdraw

import (
	"dragchess/src/chesslib"
	"dragchess/src/chesslib/base"
	"dragchess/src/ui/gui/ghelper"
	"dragchess/src/ui/gui/ghelper/glang"
)

// GameOverText returns the banner for a finished game.
func GameOverText(s chesslib.Snapshot, lw *glang.GUILangWorker) (string, bool) {
	switch {
	case s.Status == base.Checkmate && s.HasWinner:
		return lw.T("banner.wins." + s.Winner.String()), true
	case s.Status == base.Draw:
		return lw.T("banner.draw"), true
	default:
		return "", false
	}
}

// GameOverOverlay opens the shared message box once per finished game.
type GameOverOverlay struct {
	msg   *ghelper.MessageBox
	lang  *glang.GUILangWorker
	shown bool
}

func NewGameOverOverlay(msg *ghelper.MessageBox, lw *glang.GUILangWorker) *GameOverOverlay {
	return &GameOverOverlay{msg: msg, lang: lw}
}

// Sync is called every frame; onPlayAgain runs after the banner has closed.
func (o *GameOverOverlay) Sync(s chesslib.Snapshot, onPlayAgain func()) {
	label, over := GameOverText(s, o.lang)
	if !over {
		o.shown = false
		return
	}
	if o.shown {
		return
	}
	o.shown = true
	o.msg.Show(label, o.lang.T("button.play_again"), onPlayAgain)
}
