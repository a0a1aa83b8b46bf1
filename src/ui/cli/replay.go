package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"dragchess/src/chesslib"
	"dragchess/src/chesslib/base"
	"dragchess/src/chesslib/interact"
	"dragchess/src/chesslib/notation"
	"dragchess/src/logx"
)

var ErrBadStep = errors.New("bad replay step")

// Step is one scripted drag in board pixels.
type Step struct {
	From base.PixelPosition
	To   base.PixelPosition
}

// ParseStep reads "e2 e4", "e2e4" or four pixel numbers "x1 y1 x2 y2".
// Squares are grabbed and dropped at their cell centers.
func ParseStep(line string, m notation.Mapper) (Step, error) {
	fields := strings.Fields(line)
	if len(fields) == 1 && len(fields[0]) == 4 {
		fields = []string{fields[0][:2], fields[0][2:]}
	}
	switch len(fields) {
	case 2:
		var pts [2]base.PixelPosition
		for i, f := range fields {
			sq, err := base.ParseSquare(strings.ToLower(f))
			if err != nil {
				return Step{}, fmt.Errorf("%w %q: %v", ErrBadStep, line, err)
			}
			pts[i] = cellCenter(m, sq)
		}
		return Step{From: pts[0], To: pts[1]}, nil
	case 4:
		var v [4]float64
		for i, f := range fields {
			n, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return Step{}, fmt.Errorf("%w %q: %v", ErrBadStep, line, err)
			}
			v[i] = n
		}
		return Step{From: base.PixelPosition{X: v[0], Y: v[1]}, To: base.PixelPosition{X: v[2], Y: v[3]}}, nil
	default:
		return Step{}, fmt.Errorf("%w %q", ErrBadStep, line)
	}
}

func cellCenter(m notation.Mapper, sq base.Square) base.PixelPosition {
	half := m.CellSize / 2
	return m.SquareToPixel(sq).Add(base.PixelPosition{X: half, Y: half})
}

// ReplayProcessing drives the board controller with scripted drags, the same
// calls the window makes for a pointer, and prints the board after each one.
type ReplayProcessing struct {
	game   *chesslib.GameController
	draw   DrawFunc
	in     io.Reader
	out    io.Writer
	logger logx.Logger
}

func NewReplay(g *chesslib.GameController, draw DrawFunc, in io.Reader, out io.Writer, logger logx.Logger) *ReplayProcessing {
	return &ReplayProcessing{game: g, draw: draw, in: in, out: out, logger: logger.Named("replay")}
}

// Drag grabs the piece under s.From, releases it at s.To and lets the
// animation run out so a legal drop is committed.
func (r *ReplayProcessing) Drag(s Step) (interact.Resolution, bool) {
	id, ok := r.game.HitTest(s.From)
	if !ok || !r.game.BeginDrag(id) {
		return interact.Resolution{}, false
	}
	r.game.UpdateDrag(id, s.To.Sub(s.From))
	res, ok := r.game.EndDrag(id)
	r.game.Tick(time.Second)
	return res, ok
}

// Run reads one step per line. Blank lines and lines starting with # are
// skipped; "new" resets the game, "flip" turns the board, "q" stops.
func (r *ReplayProcessing) Run() error {
	scanner := bufio.NewScanner(r.in)
	r.draw(r.out, r.game.Snapshot().Layout)
	r.printStatus()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case line == "q" || line == "Q":
			return nil
		case line == "new":
			r.game.OnReset()
			r.draw(r.out, r.game.Snapshot().Layout)
			r.printStatus()
			continue
		case line == "flip":
			if !r.game.Flip() {
				fmt.Fprintln(r.out, "The board can be flipped before the first move only")
			}
			continue
		}

		step, err := ParseStep(line, r.game.Mapper())
		if err != nil {
			fmt.Fprintf(r.out, "%v\n", err)
			continue
		}
		res, ok := r.Drag(step)
		switch {
		case !ok:
			fmt.Fprintf(r.out, "Nothing to drag: %s\n", line)
			continue
		case !res.Legal:
			fmt.Fprintf(r.out, "Invalid move: %s\n", line)
			r.logger.Debugf("rejected %v -> %v", res.From, res.To)
			continue
		}
		r.draw(r.out, r.game.Snapshot().Layout)
		r.printStatus()
	}
	return scanner.Err()
}

func (r *ReplayProcessing) printStatus() {
	fmt.Fprintf(r.out, "Game: %s\n", r.game.GameName())
	fmt.Fprintf(r.out, "FEN: %s\n", r.game.FEN())
	fmt.Fprintf(r.out, "Status: %s\n", statusString(r.game.Snapshot()))
}

func statusString(s chesslib.Snapshot) string {
	switch {
	case s.Status == base.Checkmate && s.HasWinner:
		return fmt.Sprintf("checkmate, %v wins", s.Winner)
	case s.Status == base.Draw:
		return "draw"
	default:
		return fmt.Sprintf("%v to move", s.Turn)
	}
}
