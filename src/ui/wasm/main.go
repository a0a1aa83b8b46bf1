//go:build js && wasm
// +build js,wasm

package main

import (
	"fmt"

	"dragchess/src/logx"
	"dragchess/src/ui/gui"
	"dragchess/src/ui/gui/gbase/gconf"
	"dragchess/src/ui/gui/ghelper"
)

func GetLogger() *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString("info"),
		false,
		true,
	)
	l.InitLogger(nil)
	return l
}

// RunGUI serves the same board in the browser; dragchess.yaml is fetched next to the page when present.
func RunGUI() error {
	logger := GetLogger()
	cfg, err := gconf.NewGUIConfig(gconf.DefaultFile)
	if err != nil {
		logger.Warnf("error load config, using defaults: %v", err)
		cfg = gconf.DefaultConfig()
	}
	game, err := ghelper.NewGame(cfg, "", logger)
	if err != nil {
		return fmt.Errorf("error init game: %v", err)
	}
	g, err := gui.NewGUI(cfg, game, logger)
	if err != nil {
		logger.Errorf("error init GUI: %v", err)
		return fmt.Errorf("error init GUI: %v", err)
	}
	return g.Run()
}

func main() {
	if err := RunGUI(); err != nil {
		fmt.Println(err)
	}
}
