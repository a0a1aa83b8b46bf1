package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"dragchess/src/logx"
	clic "dragchess/src/ui/cli"
	"dragchess/src/ui/gui"
	"dragchess/src/ui/gui/gbase"
	"dragchess/src/ui/gui/gbase/gconf"
	"dragchess/src/ui/gui/ghelper"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const logfile string = "dragchess.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("dev"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

func RunGUI(c *cli.Command) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error open logfile: %v", err)
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync() //nolint:errcheck

	cfg, err := gconf.NewGUIConfig(c.String("config"))
	if err != nil {
		logger.Errorf("error load config: %v", err)
		return err
	}
	game, err := ghelper.NewGame(cfg, c.String("fen"), logger)
	if err != nil {
		logger.Errorf("error init game: %v", err)
		return err
	}
	g, err := gui.NewGUI(cfg, game, logger)
	if err != nil {
		logger.Errorf("error init GUI: %v", err)
		return fmt.Errorf("error init GUI: %v", err)
	}
	return g.Run()
}

func RunReplay(c *cli.Command) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error open logfile: %v", err)
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync() //nolint:errcheck

	cfg, err := gconf.NewGUIConfig(c.String("config"))
	if err != nil {
		return err
	}
	game, err := ghelper.NewGame(cfg, c.String("fen"), logger)
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if script := c.String("script"); script != "" {
		f, err := os.Open(script)
		if err != nil {
			return fmt.Errorf("error open script: %w", err)
		}
		defer f.Close()
		in = f
	} else if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Println("Enter drags as 'e2 e4' or 'x1 y1 x2 y2'; 'new', 'flip', 'q' to quit.")
	}

	clic.EnableANSI()
	clic.UseColor(os.Stdout)
	return clic.NewReplay(game, clic.PrintLayout, in, os.Stdout, logger).Run()
}

func RunDragChess() error {
	cfgf := &cli.StringFlag{
		Name:  "config",
		Usage: "path to YAML config",
		Value: gconf.DefaultFile,
	}
	ff := &cli.StringFlag{
		Name:  "fen",
		Usage: "start position in FEN format",
	}
	df := &cli.BoolFlag{
		Name:    "dev",
		Aliases: []string{"d"},
		Usage:   "dev encode log",
	}
	lf := &cli.StringFlag{
		Name:        "level",
		Aliases:     []string{"l"},
		Usage:       "level log",
		DefaultText: "info",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console log",
	}
	sf := &cli.StringFlag{
		Name:    "script",
		Aliases: []string{"s"},
		Usage:   "file with one drag per line, stdin when empty",
	}
	guiff := []cli.Flag{cfgf, ff, df, lf, cf}
	replayff := []cli.Flag{cfgf, ff, df, lf, cf, sf}

	runGUI := func(ctx context.Context, c *cli.Command) error {
		if err := RunGUI(c); err != nil && !errors.Is(err, gbase.ErrExit) {
			return fmt.Errorf("error GUI: %w", err)
		}
		return nil
	}

	return (&cli.Command{
		Name:  "dragchess",
		Usage: "chessboard with drag and drop moves",
		Flags: guiff,
		Commands: []*cli.Command{
			{
				Name:   "gui",
				Usage:  "open the board window",
				Flags:  guiff,
				Action: runGUI,
			},
			{
				Name:  "replay",
				Usage: "play scripted drags on a headless board",
				Flags: replayff,
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunReplay(c); err != nil {
						return fmt.Errorf("error replay: %w", err)
					}
					return nil
				},
			},
		},
		Action: runGUI,
	}).Run(context.Background(), os.Args)
}
