package interact

import (
	"time"

	"dragchess/src/chesslib/base"
)

// tween moves a position toward a target over a fixed duration.
type tween struct {
	from     base.PixelPosition
	to       base.PixelPosition
	duration time.Duration
	elapsed  time.Duration
	onDone   func()
}

func newTween(from, to base.PixelPosition, d time.Duration, onDone func()) *tween {
	return &tween{from: from, to: to, duration: d, onDone: onDone}
}

// advance returns the new position and whether the target has been reached.
func (tw *tween) advance(dt time.Duration) (base.PixelPosition, bool) {
	tw.elapsed += dt
	if tw.duration <= 0 || tw.elapsed >= tw.duration {
		return tw.to, true
	}
	t := easeInOutQuad(float64(tw.elapsed) / float64(tw.duration))
	return base.PixelPosition{
		X: tw.from.X + (tw.to.X-tw.from.X)*t,
		Y: tw.from.Y + (tw.to.Y-tw.from.Y)*t,
	}, false
}

func easeInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - (-2*t+2)*(-2*t+2)/2
}
