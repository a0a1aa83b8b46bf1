package gdraw

import (
	"dragchess/src/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
)

// ---- Scene ----

type Scene interface {
	Update(ctx *ghelper.GUIGameContext) (SceneType, error)
	Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image)
}

type SceneType int

const (
	ScenePlay SceneType = iota
	SceneNotChanged
)

func (t SceneType) ToScene(s Scene, ctx *ghelper.GUIGameContext) Scene {
	switch t {
	case ScenePlay:
		s = NewGUIPlayDrawer(ctx)
	case SceneNotChanged:
	default:
	}
	return s
}

// ---- Scene Manager ----

type SceneManager struct {
	ctx   *ghelper.GUIGameContext
	scene Scene
}

func NewSceneManager(ctx *ghelper.GUIGameContext) *SceneManager {
	return &SceneManager{ctx: ctx, scene: ScenePlay.ToScene(nil, ctx)}
}

func (m *SceneManager) Update() error {
	t, err := m.scene.Update(m.ctx)
	if err != nil {
		return err
	}
	m.scene = t.ToScene(m.scene, m.ctx)
	return nil
}

func (m *SceneManager) Draw(screen *ebiten.Image) {
	m.scene.Draw(m.ctx, screen)
}
