package ginput

import (
	"dragchess/src/chesslib/base"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// stubbed in tests
var (
	cursorPosition              = ebiten.CursorPosition
	isMouseButtonJustPressed    = inpututil.IsMouseButtonJustPressed
	isMouseButtonJustReleased   = inpututil.IsMouseButtonJustReleased
	isMouseButtonPressed        = ebiten.IsMouseButtonPressed
	appendJustPressedTouchIDs   = inpututil.AppendJustPressedTouchIDs
	appendJustReleasedTouchIDs  = inpututil.AppendJustReleasedTouchIDs
	appendTouchIDs              = ebiten.AppendTouchIDs
	touchPosition               = ebiten.TouchPosition
	touchPositionInPreviousTick = inpututil.TouchPositionInPreviousTick
)

// Sampler reads ebiten's input once per Update and emits events relative to origin.
type Sampler struct {
	touches []ebiten.TouchID
}

func (s *Sampler) Sample(origin base.PixelPosition) []Event {
	var events []Event
	local := func(x, y int) base.PixelPosition {
		return base.PixelPosition{X: float64(x), Y: float64(y)}.Sub(origin)
	}

	mx, my := cursorPosition()
	switch {
	case isMouseButtonJustPressed(ebiten.MouseButtonLeft):
		events = append(events, Event{Kind: Press, Pointer: MousePointer, Pos: local(mx, my)})
	case isMouseButtonJustReleased(ebiten.MouseButtonLeft):
		events = append(events, Event{Kind: Release, Pointer: MousePointer, Pos: local(mx, my)})
	case isMouseButtonPressed(ebiten.MouseButtonLeft):
		events = append(events, Event{Kind: Move, Pointer: MousePointer, Pos: local(mx, my)})
	}

	s.touches = appendJustPressedTouchIDs(s.touches[:0])
	for _, id := range s.touches {
		x, y := touchPosition(id)
		events = append(events, Event{Kind: Press, Pointer: PointerID(id), Pos: local(x, y)})
	}
	s.touches = appendTouchIDs(s.touches[:0])
	for _, id := range s.touches {
		x, y := touchPosition(id)
		events = append(events, Event{Kind: Move, Pointer: PointerID(id), Pos: local(x, y)})
	}
	s.touches = appendJustReleasedTouchIDs(s.touches[:0])
	for _, id := range s.touches {
		// a released touch no longer reports a position
		x, y := touchPositionInPreviousTick(id)
		events = append(events, Event{Kind: Release, Pointer: PointerID(id), Pos: local(x, y)})
	}
	return events
}
