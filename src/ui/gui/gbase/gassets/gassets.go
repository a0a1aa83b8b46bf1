package gassets

import (
	"embed"

	"dragchess/src/ui/gui/gbase/gos"
)

//go:embed assets/**
var embeddedAssets embed.FS

// ReadAsset prefers a file at path next to the binary and falls back to the embedded copy.
func ReadAsset(path string) ([]byte, error) {
	if data, err := gos.ReadFile(path); err == nil {
		return data, nil
	}
	return embeddedAssets.ReadFile(path)
}
