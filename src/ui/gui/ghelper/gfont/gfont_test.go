package gfont

import "testing"

func TestLoadFonts(t *testing.T) {
	f, err := LoadFonts()
	if err != nil {
		t.Fatalf("LoadFonts: %v", err)
	}
	small := f.Small.Metrics().Height
	title := f.Title.Metrics().Height
	if small <= 0 || title <= small {
		t.Errorf("wanted title taller than small text, got %v and %v", title, small)
	}
}
