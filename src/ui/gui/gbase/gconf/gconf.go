package gconf

import (
	"fmt"
	"time"

	"dragchess/src/ui/gui/gbase/gos"

	yaml "gopkg.in/yaml.v3"
)

const DefaultFile string = "dragchess.yaml"

type Config struct {
	Theme     string `yaml:"theme"`      // light/dark
	Lang      string `yaml:"lang"`       // en/ru
	WindowW   int    `yaml:"window_w"`   //
	WindowH   int    `yaml:"window_h"`   //
	BoardSize int    `yaml:"board_size"` // pixels, multiple of 8
	Flipped   bool   `yaml:"flipped"`    // black at the bottom
	StartFEN  string `yaml:"start_fen"`  // empty for the standard position
	FastSnap  int    `yaml:"fast_snap"`  // ms, legal drop
	SlowSnap  int    `yaml:"slow_snap"`  // ms, snap back
	PiecesDir string `yaml:"pieces_dir"` // directory with wK.svg ... bP.svg
	Debug     bool   `yaml:"debug"`      // true/false

	path string
}

// DefaultConfig is used where no config file can be read, as in the browser.
func DefaultConfig() *Config {
	c := defaultConfig()
	return &c
}

func defaultConfig() Config {
	return Config{
		Theme:     "light",
		Lang:      "en",
		WindowW:   720,
		WindowH:   640,
		BoardSize: 480,
		FastSnap:  100,
		SlowSnap:  300,
		path:      DefaultFile,
	}
}

// NewGUIConfig reads file, falling back to defaults when it does not exist.
func NewGUIConfig(file string) (*Config, error) {
	if file == "" {
		file = DefaultFile
	}
	def := defaultConfig()
	def.path = file

	data, err := gos.ReadFile(file)
	if gos.IsNotExist(err) {
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	c := def
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	correctableConfig(&c)
	return &c, nil
}

func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	path := c.path
	if path == "" {
		path = DefaultFile
	}
	return gos.WriteFile(path, data, 0644)
}

func (c *Config) FastSnapDuration() time.Duration {
	return time.Duration(c.FastSnap) * time.Millisecond
}

func (c *Config) SlowSnapDuration() time.Duration {
	return time.Duration(c.SlowSnap) * time.Millisecond
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.Lang != "en" && c.Lang != "ru" {
		c.Lang = def.Lang
	}
	if c.BoardSize < 160 {
		c.BoardSize = def.BoardSize
	}
	c.BoardSize -= c.BoardSize % 8
	if c.WindowW < c.BoardSize || c.WindowH < c.BoardSize {
		c.WindowW = c.BoardSize + def.WindowW - def.BoardSize
		c.WindowH = c.BoardSize + def.WindowH - def.BoardSize
	}
	if c.FastSnap <= 0 {
		c.FastSnap = def.FastSnap
	}
	if c.SlowSnap <= 0 {
		c.SlowSnap = def.SlowSnap
	}
}
