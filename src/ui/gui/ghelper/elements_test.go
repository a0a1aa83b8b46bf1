package ghelper

import "testing"

func TestButtonClick(t *testing.T) {
	clicks := 0
	b := &Button{X: 10, Y: 10, W: 100, H: 40, OnClick: func() { clicks++ }}
	tests := []struct {
		name                      string
		px, py                    int
		justClicked, justReleased bool
		wantClicked, wantPressed  bool
	}{
		{"hover", 20, 20, false, false, false, false},
		{"press inside", 20, 20, true, false, false, true},
		{"release inside", 30, 30, false, true, true, false},
		{"press inside again", 20, 20, true, false, false, true},
		{"release outside cancels", 200, 200, false, true, false, false},
		{"press outside", 200, 200, true, false, false, false},
		{"release inside after outside press", 20, 20, false, true, false, false},
	}
	for _, test := range tests {
		got := b.HandleInput(test.px, test.py, test.justClicked, test.justReleased)
		switch {
		case got != test.wantClicked:
			t.Errorf("%v: wanted clicked=%v, got %v", test.name, test.wantClicked, got)
		case b.Pressed != test.wantPressed:
			t.Errorf("%v: wanted pressed=%v, got %v", test.name, test.wantPressed, b.Pressed)
		}
	}
	if clicks != 1 {
		t.Errorf("wanted OnClick once, got %v", clicks)
	}
}

func TestButtonUpdateAnim(t *testing.T) {
	b := &Button{Scale: 1, TargetScale: 0.96, TargetOffsetY: 3}
	for i := 0; i < 120; i++ {
		b.UpdateAnim(1.0 / 60.0)
	}
	if b.Scale > 0.961 || b.OffsetY < 2.99 {
		t.Errorf("wanted scale and offset at their targets, got %v %v", b.Scale, b.OffsetY)
	}
}

func TestMessageBoxLifecycle(t *testing.T) {
	closed := false
	mb := NewMessageBox()
	mb.Show("Player black wins", "Play again", func() { closed = true })
	if !mb.IsOverlayed() || mb.Scale != 0 {
		t.Fatalf("wanted an opening box")
	}
	for i := 0; i < 30; i++ {
		mb.AnimateMessage(1.0 / 60.0)
	}
	if mb.Animating || mb.Scale != 1 {
		t.Errorf("wanted the box fully open, got scale %v", mb.Scale)
	}
	mb.CollapseMessage()
	for i := 0; i < 30; i++ {
		mb.AnimateMessage(1.0 / 60.0)
	}
	if mb.IsOverlayed() || !closed {
		t.Errorf("wanted the box closed with OnClose called")
	}
}

func TestMessageBoxRect(t *testing.T) {
	mb := &MessageBox{Scale: 1}
	x, y, w, h := mb.Rect(720, 640, 100, 20)
	if w != 304 || h != 140 || x != (720-304)/2 || y != (640-140)/2 {
		t.Errorf("unexpected rect %v %v %v %v", x, y, w, h)
	}
	mb.Scale = 0
	if _, _, w, h := mb.Rect(720, 640, 100, 20); w != 6 || h != 6 {
		t.Errorf("wanted minimum size while collapsed, got %vx%v", w, h)
	}
}
