package gconf

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewGUIConfigMissingFile(t *testing.T) {
	c, err := NewGUIConfig(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("unwanted error: %v", err)
	}
	want := defaultConfig()
	switch {
	case c.Theme != want.Theme, c.BoardSize != want.BoardSize:
		t.Errorf("wanted defaults, got %+v", c)
	case c.FastSnapDuration() != 100*time.Millisecond:
		t.Errorf("wanted 100ms legal snap, got %v", c.FastSnapDuration())
	case c.SlowSnapDuration() != 300*time.Millisecond:
		t.Errorf("wanted 300ms snap back, got %v", c.SlowSnapDuration())
	}
}

func TestNewGUIConfigCorrects(t *testing.T) {
	file := filepath.Join(t.TempDir(), "dragchess.yaml")
	data := "theme: purple\nlang: de\nboard_size: 500\nwindow_w: 100\nwindow_h: 100\nfast_snap: -5\nslow_snap: 450\nflipped: true\nstart_fen: \"8/8/8/8/8/8/8/K6k w - - 0 1\"\n"
	if err := os.WriteFile(file, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := NewGUIConfig(file)
	if err != nil {
		t.Fatalf("unwanted error: %v", err)
	}
	switch {
	case c.Theme != "light":
		t.Errorf("wanted unknown theme replaced, got %v", c.Theme)
	case c.Lang != "en":
		t.Errorf("wanted unknown lang replaced, got %v", c.Lang)
	case c.BoardSize != 496:
		t.Errorf("wanted board size rounded down to a multiple of 8, got %v", c.BoardSize)
	case c.WindowW < c.BoardSize || c.WindowH < c.BoardSize:
		t.Errorf("window %vx%v cannot hold the board", c.WindowW, c.WindowH)
	case c.FastSnap != 100:
		t.Errorf("wanted default legal snap, got %v", c.FastSnap)
	case c.SlowSnap != 450:
		t.Errorf("wanted configured snap back kept, got %v", c.SlowSnap)
	case !c.Flipped || c.StartFEN == "":
		t.Errorf("wanted flipped and start_fen read, got %+v", c)
	}
}

func TestNewGUIConfigBadYAML(t *testing.T) {
	file := filepath.Join(t.TempDir(), "dragchess.yaml")
	if err := os.WriteFile(file, []byte("theme: [dark"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewGUIConfig(file); err == nil {
		t.Errorf("wanted decode error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "dragchess.yaml")
	c, err := NewGUIConfig(file)
	if err != nil {
		t.Fatal(err)
	}
	c.Theme = "dark"
	c.Flipped = true
	if err := c.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := NewGUIConfig(file)
	if err != nil {
		t.Fatal(err)
	}
	if got.Theme != "dark" || !got.Flipped {
		t.Errorf("saved settings not read back: %+v", got)
	}
}
