package ghelper

import (
	"image/color"
	"math"

	"dragchess/src/ui/gui/gbase"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ---- UI ELEMENTS ----

// ---- Button ----

type Button struct {
	Label      string
	X, Y, W, H int
	Image      *ebiten.Image // pre-rendered rounded rect with stroke
	OnClick    func()

	// animation state
	Hover   bool // mouse over
	Pressed bool // pointer went down on this button
	// animation variables
	Scale         float64
	TargetScale   float64
	OffsetY       float64 // vertical offset for the pressed effect
	TargetOffsetY float64
	AnimSpeed     float64 // per second
}

func NewButton(label string, x, y, w, h int, theme gbase.Palette, onClick func()) *Button {
	return &Button{
		Label: label,
		X:     x, Y: y, W: w, H: h,
		OnClick: onClick,
		Scale:   1.0, TargetScale: 1.0, AnimSpeed: 10.0,
		Image: RenderRoundedRect(w, h, 12, theme.ButtonFill, theme.ButtonStroke, 3),
	}
}

func (b *Button) Contains(px, py int) bool {
	return PointInRect(px, py, b.X, b.Y, b.W, b.H)
}

// HandleInput is called every Update and returns true when a click finished on the button.
func (b *Button) HandleInput(px, py int, justClicked, justReleased bool) bool {
	inside := b.Contains(px, py)
	b.Hover = inside

	if justClicked && inside {
		b.Pressed = true
		b.TargetScale = 0.96
		b.TargetOffsetY = 3.0
	}
	if justReleased {
		clicked := b.Pressed && inside
		b.Pressed = false
		b.TargetOffsetY = 0
		if clicked {
			b.TargetScale = 1.03 // small bounce
			if b.OnClick != nil {
				b.OnClick()
			}
			return true
		}
		b.TargetScale = 1.0
	}
	if !b.Pressed {
		b.TargetOffsetY = 0
		if inside {
			b.TargetScale = 1.02
		} else {
			b.TargetScale = 1.0
		}
	}
	return false
}

// UpdateAnim eases scale and offset toward their targets, dt in seconds.
func (b *Button) UpdateAnim(dt float64) {
	if b.AnimSpeed <= 0 {
		b.AnimSpeed = 8.0
	}
	t := 1.0 - math.Exp(-b.AnimSpeed*dt)
	b.Scale = b.Scale*(1.0-t) + b.TargetScale*t
	b.OffsetY = b.OffsetY*(1.0-t) + b.TargetOffsetY*t

	if !b.Pressed && math.Abs(b.Scale-1.03) < 0.005 {
		b.TargetScale = 1.0
	}
}

func (b *Button) DrawAnimated(screen *ebiten.Image, face font.Face, theme gbase.Palette) {
	if b.Image == nil {
		return
	}
	cx := float64(b.X + b.W/2)
	cy := float64(b.Y+b.H/2) + b.OffsetY

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Image.Bounds().Dx())/2, -float64(b.Image.Bounds().Dy())/2)
	op.GeoM.Scale(b.Scale, b.Scale)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(b.Image, op)

	DrawCenteredText(screen, b.Label, face, int(cx), int(cy), theme.ButtonText)
}

// DrawCenteredText centers label on (cx, cy) using the face metrics.
func DrawCenteredText(screen *ebiten.Image, label string, face font.Face, cx, cy int, c color.Color) {
	bounds := text.BoundString(face, label)
	text.Draw(screen, label, face, cx-bounds.Dx()/2, cy+bounds.Dy()/2, c)
}

// ---- MessageBox ----

// MessageBox is a modal with a label and one action button, opened and closed with a scale animation.
type MessageBox struct {
	Label  string
	Action string // button label, "OK" when empty

	Open      bool
	Animating bool
	Opening   bool
	Scale     float64 // 0..1
	OnClose   func()

	button *Button
}

func NewMessageBox() *MessageBox {
	return &MessageBox{}
}

func (mb *MessageBox) ShowMessage(msg string, onClose func()) {
	mb.Show(msg, "", onClose)
}

func (mb *MessageBox) Show(msg, action string, onClose func()) {
	mb.Label = msg
	mb.Action = action
	mb.OnClose = onClose
	mb.Open = true
	mb.Opening = true
	mb.Animating = true
	mb.Scale = 0.0
	mb.button = nil
}

func (mb *MessageBox) CollapseMessage() {
	if !mb.Open {
		return
	}
	mb.Opening = false
	mb.Animating = true
}

func (mb *MessageBox) IsOverlayed() bool {
	return mb.Open || mb.Animating
}

// AnimateMessage advances the open or close animation by dt seconds.
func (mb *MessageBox) AnimateMessage(dt float64) {
	if !mb.Animating {
		return
	}
	const speed = 6.0
	if mb.Opening {
		mb.Scale += speed * dt
		if mb.Scale >= 1.0 {
			mb.Scale = 1.0
			mb.Animating = false
		}
		return
	}
	mb.Scale -= speed * dt
	if mb.Scale <= 0.0 {
		mb.Scale = 0.0
		mb.Animating = false
		mb.Open = false
		if mb.OnClose != nil {
			mb.OnClose()
		}
	}
}

// Rect returns the modal rectangle at the current scale, centered in the window.
func (mb *MessageBox) Rect(windowW, windowH, textW, textH int) (x, y, w, h int) {
	if textW < 240 {
		textW = 240
	}
	mw, mh := textW+64, textH+120
	scale := math.Max(0, math.Min(1, mb.Scale))
	w = int(math.Max(6, float64(mw)*scale))
	h = int(math.Max(6, float64(mh)*scale))
	return (windowW - w) / 2, (windowH - h) / 2, w, h
}

// Update handles the pointer; the action button only reacts once the box is fully open.
func (mb *MessageBox) Update(windowW, windowH int, face font.Face, theme gbase.Palette, mx, my int, justClicked, justReleased bool, dt float64) {
	mb.AnimateMessage(dt)
	if !mb.Open || !mb.Opening || mb.Animating {
		return
	}
	if mb.button == nil {
		bounds := text.BoundString(face, mb.Label)
		x, y, w, h := mb.Rect(windowW, windowH, bounds.Dx(), bounds.Dy())
		label := mb.Action
		if label == "" {
			label = "OK"
		}
		bw, bh := 140, 44
		mb.button = NewButton(label, x+(w-bw)/2, y+h-bh-20, bw, bh, theme, mb.CollapseMessage)
	}
	mb.button.HandleInput(mx, my, justClicked, justReleased)
	mb.button.UpdateAnim(dt)
}

func (mb *MessageBox) Draw(screen *ebiten.Image, windowW, windowH int, face font.Face, theme gbase.Palette) {
	if !mb.IsOverlayed() {
		return
	}
	FillRect(screen, 0, 0, float64(windowW), float64(windowH), theme.ModalBg)

	bounds := text.BoundString(face, mb.Label)
	x, y, w, h := mb.Rect(windowW, windowH, bounds.Dx(), bounds.Dy())
	modal := RenderRoundedRect(w, h, 16, theme.ButtonFill, theme.ButtonStroke, 3)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(modal, op)

	if mb.Scale > 0.85 {
		DrawCenteredText(screen, mb.Label, face, x+w/2, y+48, theme.MenuText)
		if mb.button != nil {
			mb.button.DrawAnimated(screen, face, theme)
		}
	}
}
