package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"dragchess/src/chesslib"
	"dragchess/src/chesslib/base"
	"dragchess/src/chesslib/notation"
	"dragchess/src/chesslib/rules"
	"dragchess/src/logx"

	"github.com/fatih/color"
)

func newReplay(t *testing.T, script string) (*ReplayProcessing, *bytes.Buffer, *int) {
	t.Helper()
	gc, err := chesslib.NewGameController(rules.NewChessEngine(), chesslib.Options{BoardSize: 400}, logx.NewNop())
	if err != nil {
		t.Fatalf("NewGameController: %v", err)
	}
	draws := 0
	draw := func(out io.Writer, l base.Layout) { draws++ }
	var out bytes.Buffer
	return NewReplay(gc, draw, strings.NewReader(script), &out, logx.NewNop()), &out, &draws
}

func TestParseStep(t *testing.T) {
	m := notation.NewMapper(400, false)
	e2 := base.PixelPosition{X: 225, Y: 325}
	e4 := base.PixelPosition{X: 225, Y: 225}
	tests := []struct {
		line    string
		want    Step
		wantErr bool
	}{
		{"e2 e4", Step{From: e2, To: e4}, false},
		{"e2e4", Step{From: e2, To: e4}, false},
		{"  E2   E4 ", Step{From: e2, To: e4}, false},
		{"10 20 30.5 40", Step{From: base.PixelPosition{X: 10, Y: 20}, To: base.PixelPosition{X: 30.5, Y: 40}}, false},
		{"e2 e9", Step{}, true},
		{"e2", Step{}, true},
		{"1 2 3 x", Step{}, true},
	}
	for _, test := range tests {
		got, err := ParseStep(test.line, m)
		switch {
		case test.wantErr:
			if !errors.Is(err, ErrBadStep) {
				t.Errorf("%q: wanted ErrBadStep, got %v", test.line, err)
			}
		case err != nil:
			t.Errorf("%q: unwanted error: %v", test.line, err)
		case got != test.want:
			t.Errorf("%q: wanted %v, got %v", test.line, test.want, got)
		}
	}
}

func TestReplayFoolsMate(t *testing.T) {
	script := `
# fool's mate
f2 f3
e7 e5
g2 g4
d8h4
e1 e2
`
	r, out, draws := newReplay(t, script)
	if err := r.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	s := r.game.Snapshot()
	switch {
	case s.Status != base.Checkmate:
		t.Errorf("wanted checkmate, got %v", s.Status)
	case !s.HasWinner || s.Winner != base.Black:
		t.Errorf("wanted black to win, got %v", s.Winner)
	case !strings.Contains(out.String(), "checkmate, black wins"):
		t.Errorf("status not printed:\n%v", out.String())
	case !strings.Contains(out.String(), "Nothing to drag: e1 e2"):
		t.Errorf("wanted the drag after mate refused:\n%v", out.String())
	case *draws != 5:
		t.Errorf("wanted the initial board and four moves drawn, got %v", *draws)
	}
}

func TestReplayRejectsIllegal(t *testing.T) {
	r, out, _ := newReplay(t, "e2 e5\ne7 e5\nbogus\nq\ne2 e4\n")
	if err := r.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	switch {
	case !strings.Contains(got, "Invalid move: e2 e5"):
		t.Errorf("wanted the illegal drop reported:\n%v", got)
	case !strings.Contains(got, "Nothing to drag: e7 e5"):
		t.Errorf("wanted black's piece disabled on white's turn:\n%v", got)
	case !strings.Contains(got, ErrBadStep.Error()):
		t.Errorf("wanted the bad line reported:\n%v", got)
	case r.game.MoveCount() != 0:
		t.Errorf("wanted no move after q, got %v", r.game.MoveCount())
	}
}

func TestReplayNewAndFlip(t *testing.T) {
	r, out, _ := newReplay(t, "flip\ne7 e5\nnew\ne2 e4\nflip\n")
	if err := r.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	s := r.game.Snapshot()
	switch {
	case !s.Mapper.Flipped:
		t.Errorf("wanted the board to stay flipped")
	case s.Layout.At(base.NewSquare(4, 3)).Kind != base.Pawn:
		t.Errorf("wanted a pawn on e4 after the flipped drag")
	case !strings.Contains(out.String(), "flipped before the first move only"):
		t.Errorf("wanted the late flip refused:\n%v", out.String())
	}
}

func TestPrintLayout(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = saved }()

	e := rules.NewChessEngine()
	var out bytes.Buffer
	PrintLayout(&out, e.Layout())
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 10 {
		t.Fatalf("wanted 10 lines, got %v:\n%v", len(lines), out.String())
	}
	tests := map[int]string{
		1: "8  ♜  ♞  ♝  ♛  ♚  ♝  ♞  ♜  8",
		5: "4                          4",
		8: "1  ♖  ♘  ♗  ♕  ♔  ♗  ♘  ♖  1",
	}
	for i, want := range tests {
		if lines[i] != want {
			t.Errorf("line %v: wanted %q, got %q", i, want, lines[i])
		}
	}
}
