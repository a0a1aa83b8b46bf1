package gdraw

import (
	"fmt"
	"time"

	"dragchess/src/chesslib/base"
	"dragchess/src/ui/gui/gbase"
	"dragchess/src/ui/gui/ghelper"
	"dragchess/src/ui/gui/ghelper/gclipboard"
	"dragchess/src/ui/gui/ghelper/gdialog"
	"dragchess/src/ui/gui/ginput"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const clipboardSource = "clipboard"

type fenPick struct {
	name string
	fen  string
	err  error
}

// GUIPlayDrawer implements Scene
type GUIPlayDrawer struct {
	// layout
	boardX, boardY int

	board   *BoardDrawer
	tracker *ginput.Tracker
	sampler ginput.Sampler

	msg  *ghelper.MessageBox
	over *GameOverOverlay

	lastTick time.Time

	// file dialog and clipboard run off the update loop and report back through doneCh
	busy   bool
	doneCh chan func()
}

func NewGUIPlayDrawer(ctx *ghelper.GUIGameContext) *GUIPlayDrawer {
	pd := &GUIPlayDrawer{
		tracker:  ginput.NewTracker(ctx.Game),
		msg:      ghelper.NewMessageBox(),
		lastTick: time.Now(),
		doneCh:   make(chan func(), 1),
	}
	pd.over = NewGameOverOverlay(pd.msg, ctx.AssetsWorker.Lang())
	pd.recalcLayout(ctx)
	pd.board = NewBoardDrawer(ctx, ctx.Game.Mapper())
	return pd
}

// board is centered below the status line
func (pd *GUIPlayDrawer) recalcLayout(ctx *ghelper.GUIGameContext) {
	size := int(ctx.Game.Mapper().BoardSize())
	pd.boardX = (ctx.Config.WindowW - size) / 2
	pd.boardY = gbase.StatusH + (ctx.Config.WindowH-gbase.StatusH-size)/2
}

func (pd *GUIPlayDrawer) origin() base.PixelPosition {
	return base.PixelPosition{X: float64(pd.boardX), Y: float64(pd.boardY)}
}

func (pd *GUIPlayDrawer) Update(ctx *ghelper.GUIGameContext) (SceneType, error) {
	pd.recalcLayout(ctx)

	now := time.Now()
	dt := now.Sub(pd.lastTick)
	pd.lastTick = now

	select {
	case done := <-pd.doneCh:
		pd.busy = false
		done()
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return SceneNotChanged, gbase.ErrExit
	}

	if pd.msg.IsOverlayed() {
		mx, my := ebiten.CursorPosition()
		pd.msg.Update(ctx.Config.WindowW, ctx.Config.WindowH, ctx.AssetsWorker.Fonts().Normal, ctx.Theme, mx, my,
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
			inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
			dt.Seconds())
		// a drag in progress still ends and lands
		for _, ev := range pd.sampler.Sample(pd.origin()) {
			if ev.Kind == ginput.Release {
				pd.tracker.Handle(ev)
			}
		}
		ctx.Game.Tick(dt)
		return SceneNotChanged, nil
	}

	pd.handleKeys(ctx)

	for _, ev := range pd.sampler.Sample(pd.origin()) {
		res, ok := pd.tracker.Handle(ev)
		if ok && !res.Legal {
			ctx.Logx.Debugf("drop %v -> %v rejected", res.From, res.To)
		}
	}
	ctx.Game.Tick(dt)

	pd.over.Sync(ctx.Game.Snapshot(), func() { pd.newGame(ctx) })
	return SceneNotChanged, nil
}

func (pd *GUIPlayDrawer) handleKeys(ctx *ghelper.GUIGameContext) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		if pd.tracker.Active() > 0 {
			return
		}
		if !ctx.Game.Flip() {
			pd.msg.ShowMessage(ctx.AssetsWorker.Lang().T("play.flip_warning"), nil)
			return
		}
		ctx.Config.Flipped = ctx.Game.Mapper().Flipped
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		pd.newGame(ctx)
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		title := ctx.AssetsWorker.Lang().T("play.open_title")
		pd.async(func() func() {
			res, err := gdialog.OpenFile(title)
			pick := fenPick{name: res.Name, err: err}
			if err == nil {
				pick.fen, pick.err = gclipboard.FirstLine(string(res.Data))
			}
			return func() { pd.loadPick(ctx, pick) }
		})
	case inpututil.IsKeyJustPressed(ebiten.KeyC), inpututil.IsKeyJustPressed(ebiten.KeyV):
		if !gclipboard.Available() {
			pd.msg.ShowMessage(ctx.AssetsWorker.Lang().T("play.clipboard_failed"), nil)
			return
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyV) {
			pd.async(func() func() {
				fen, err := gclipboard.ReadFEN()
				pick := fenPick{name: clipboardSource, fen: fen, err: err}
				return func() { pd.loadPick(ctx, pick) }
			})
			return
		}
		fen := ctx.Game.FEN()
		pd.async(func() func() {
			err := gclipboard.WriteFEN(fen)
			return func() {
				if err != nil {
					ctx.Logx.Warnf("copy position: %v", err)
					pd.msg.ShowMessage(ctx.AssetsWorker.Lang().T("play.clipboard_failed"), nil)
					return
				}
				pd.msg.ShowMessage(ctx.AssetsWorker.Lang().T("play.copied"), nil)
			}
		})
	}
}

// async runs job on its own goroutine; the func it returns is applied in Update.
func (pd *GUIPlayDrawer) async(job func() func()) {
	if pd.busy {
		return
	}
	pd.busy = true
	go func() {
		pd.doneCh <- job()
	}()
}

func (pd *GUIPlayDrawer) newGame(ctx *ghelper.GUIGameContext) {
	pd.tracker.Cancel()
	ctx.Game.OnReset()
	ctx.Logx.Infof("new game %s", ctx.Game.GameName())
}

func (pd *GUIPlayDrawer) loadPick(ctx *ghelper.GUIGameContext, pick fenPick) {
	switch {
	case pick.err != nil && pick.name == clipboardSource:
		ctx.Logx.Warnf("paste position: %v", pick.err)
		pd.msg.ShowMessage(ctx.AssetsWorker.Lang().T("play.clipboard_failed"), nil)
		return
	case pick.err != nil:
		if !gdialog.IsCancelled(pick.err) {
			ctx.Logx.Errorf("open position: %v", pick.err)
			pd.msg.ShowMessage(ctx.AssetsWorker.Lang().T("play.open_failed"), nil)
		}
		return
	}
	pd.tracker.Cancel()
	if err := ctx.Game.LoadFEN(pick.fen); err != nil {
		ctx.Logx.Warnf("load %s: %v", pick.name, err)
		pd.msg.ShowMessage(ctx.AssetsWorker.Lang().T("play.bad_fen"), nil)
		return
	}
	ctx.Logx.Infof("loaded %s as game %s", pick.name, ctx.Game.GameName())
}

func (pd *GUIPlayDrawer) Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	snap := ctx.Game.Snapshot()
	pd.board.Draw(ctx, screen, pd.origin(), snap)

	lw := ctx.AssetsWorker.Lang()
	status := lw.T("status.to_move." + snap.Turn.String())
	if label, over := GameOverText(snap, lw); over {
		status = label
	}
	text.Draw(screen, status, ctx.AssetsWorker.Fonts().Bold, pd.boardX, gbase.StatusH-8, ctx.Theme.MenuText)
	name := ctx.Game.GameName()
	nb := text.BoundString(ctx.AssetsWorker.Fonts().Small, name)
	text.Draw(screen, name, ctx.AssetsWorker.Fonts().Small, pd.boardX+int(snap.Mapper.BoardSize())-nb.Dx(), gbase.StatusH-8, ctx.Theme.ButtonText)

	text.Draw(screen, lw.T("play.hint"), ctx.AssetsWorker.Fonts().Small, pd.boardX, ctx.Config.WindowH-12, ctx.Theme.ButtonText)

	pd.msg.Draw(screen, ctx.Config.WindowW, ctx.Config.WindowH, ctx.AssetsWorker.Fonts().Normal, ctx.Theme)

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f  drags: %d", ebiten.ActualTPS(), pd.tracker.Active()))
	}
}
