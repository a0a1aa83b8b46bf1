// Package interact holds the per-piece drag state machine.
//
// A piece rests at its canonical square (Idle), follows the pointer 1:1 while
// a gesture is active (Dragging), then animates to the destination or back to
// its origin (Resolving). A legal move is committed only once that animation
// has reached its target.
package interact

import (
	"time"

	"dragchess/src/chesslib/base"
	"dragchess/src/chesslib/notation"
	"dragchess/src/logx"
)

type State uint8

const (
	Idle State = iota
	Dragging
	Resolving
)

func (s State) String() string {
	switch s {
	case Dragging:
		return "dragging"
	case Resolving:
		return "resolving"
	default:
		return "idle"
	}
}

// Mover is the part of the board a piece is allowed to use.
type Mover interface {
	IsLegal(from, to base.Square) bool
	Commit(id base.PieceID, from, to base.Square) error
}

// Timing holds the snap animation durations.
type Timing struct {
	Legal   time.Duration
	Illegal time.Duration
}

var DefaultTiming = Timing{
	Legal:   100 * time.Millisecond,
	Illegal: 300 * time.Millisecond,
}

type Config struct {
	Mapper notation.Mapper
	Mover  Mover
	Timing Timing
	Logger logx.Logger
}

// Resolution describes how a finished gesture was interpreted.
type Resolution struct {
	From  base.Square
	To    base.Square
	Legal bool
}

type Highlight struct {
	Origin     base.PixelPosition
	Target     base.PixelPosition
	ShowOrigin bool
	ShowTarget bool
}

type dragSession struct {
	offset base.PixelPosition // position when the gesture began
	active bool
}

type Piece struct {
	ID    base.PieceID
	Kind  base.PieceKind
	Owner base.Side

	square  base.Square
	enabled bool
	mapper  notation.Mapper
	mover   Mover
	timing  Timing
	logger  logx.Logger

	state    State
	session  dragSession
	position base.PixelPosition
	tweens   []*tween
}

func NewPiece(id base.PieceID, ps base.PieceState, enabled bool, cfg Config) *Piece {
	if cfg.Logger == nil {
		cfg.Logger = logx.NewNop()
	}
	if cfg.Timing == (Timing{}) {
		cfg.Timing = DefaultTiming
	}
	p := &Piece{
		ID:     id,
		mapper: cfg.Mapper,
		mover:  cfg.Mover,
		timing: cfg.Timing,
		logger: cfg.Logger,
	}
	p.Reset(ps, enabled)
	return p
}

// Reset puts the piece back at rest on its canonical square, dropping any drag or animation.
func (p *Piece) Reset(ps base.PieceState, enabled bool) {
	p.Kind = ps.Kind
	p.Owner = ps.Owner
	p.square = ps.Square
	p.enabled = enabled
	p.state = Idle
	p.tweens = nil
	p.position = p.mapper.SquareToPixel(p.square)
	p.session = dragSession{offset: p.position}
}

func (p *Piece) SetEnabled(enabled bool) {
	p.enabled = enabled
}

// SetMapper applies a new board geometry. Pieces at rest move to their new cell.
func (p *Piece) SetMapper(m notation.Mapper) {
	p.mapper = m
	if p.state == Idle {
		p.position = m.SquareToPixel(p.square)
		p.session.offset = p.position
	}
}

// BeginDrag starts a gesture. A disabled piece ignores it and stays where it is.
func (p *Piece) BeginDrag() bool {
	if !p.enabled {
		p.logger.Debugf("drag rejected on disabled %v %v at %v", p.Owner, p.Kind, p.square)
		return false
	}
	p.session = dragSession{offset: p.position, active: true}
	p.state = Dragging
	return true
}

// UpdateDrag follows the gesture: translation is the pointer movement since BeginDrag.
func (p *Piece) UpdateDrag(translation base.PixelPosition) {
	if p.state != Dragging {
		return
	}
	p.position = p.session.offset.Add(translation)
}

// EndDrag resolves the gesture against the legal moves and starts the snap animation.
func (p *Piece) EndDrag() (Resolution, bool) {
	if p.state != Dragging {
		return Resolution{}, false
	}
	// the offset only tracks the pointer; a regrab mid-animation still moves from the piece's own square
	from := p.square
	to := p.mapper.PixelToSquare(p.position)
	res := Resolution{From: from, To: to, Legal: p.mover != nil && p.mover.IsLegal(from, to)}

	target, d := from, p.timing.Illegal
	if res.Legal {
		target, d = to, p.timing.Legal
	} else {
		p.logger.Debugf("illegal drop %v%v, snapping back", from, to)
	}
	p.state = Resolving
	p.tweens = append(p.tweens, newTween(p.position, p.mapper.SquareToPixel(target), d, func() {
		p.finish(res)
	}))
	return res, true
}

// Tick advances running animations. Completion callbacks run after the state
// has settled, so a commit may safely reset this piece.
func (p *Piece) Tick(dt time.Duration) {
	if len(p.tweens) == 0 {
		return
	}
	var done []func()
	running := p.tweens[:0]
	for i, tw := range p.tweens {
		pos, finished := tw.advance(dt)
		// the newest animation owns the position unless a new drag took over
		if i == len(p.tweens)-1 && p.state == Resolving {
			p.position = pos
		}
		if finished {
			done = append(done, tw.onDone)
			continue
		}
		running = append(running, tw)
	}
	p.tweens = running
	if len(p.tweens) == 0 && p.state == Resolving {
		p.state = Idle
		p.session.active = false
	}
	for _, fn := range done {
		fn()
	}
}

func (p *Piece) finish(res Resolution) {
	if !res.Legal || p.mover == nil {
		return
	}
	if err := p.mover.Commit(p.ID, res.From, res.To); err != nil {
		p.logger.Warnf("commit %v%v rejected: %v", res.From, res.To, err)
		if p.state == Idle {
			p.position = p.mapper.SquareToPixel(p.square)
		}
	}
}

func (p *Piece) State() State {
	return p.state
}

func (p *Piece) Square() base.Square {
	return p.square
}

func (p *Piece) Enabled() bool {
	return p.enabled
}

// Active is true from BeginDrag until the snap animation completes.
func (p *Piece) Active() bool {
	return p.session.active
}

func (p *Piece) Position() base.PixelPosition {
	return p.position
}

// Contains reports whether pos falls on the cell the piece is currently drawn on.
func (p *Piece) Contains(pos base.PixelPosition) bool {
	size := p.mapper.CellSize
	return pos.X >= p.position.X && pos.X < p.position.X+size &&
		pos.Y >= p.position.Y && pos.Y < p.position.Y+size
}

func (p *Piece) Highlight() Highlight {
	if !p.session.active {
		return Highlight{}
	}
	origin := p.mapper.SquareToPixel(p.square)
	target := p.mapper.Snap(p.position)
	return Highlight{
		Origin:     origin,
		Target:     target,
		ShowOrigin: true,
		ShowTarget: target != origin,
	}
}
