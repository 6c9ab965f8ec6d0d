package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"

	"github.com/Zuo-Peng/elapsed/internal/annotate"
)

// Duration decodes TOML strings like "30s" or "1m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

type Config struct {
	Interval Duration `toml:"interval"`
	Debounce Duration `toml:"debounce"`
	Future   string   `toml:"future"`
	Color    string   `toml:"color"`
	Italic   bool     `toml:"italic"`
	LogLevel string   `toml:"log_level"`
	LogFile  string   `toml:"log_file"`

	// Path is the file the config was read from, empty if defaults only.
	Path string `toml:"-"`
}

// DefaultPath is $XDG_CONFIG_HOME/elapsed/config.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "elapsed", "config.toml")
}

func Default() *Config {
	return &Config{
		Interval: Duration{30 * time.Second},
		Future:   string(annotate.FutureSigned),
		Color:    annotate.MutedItalic.Color,
		Italic:   annotate.MutedItalic.Italic,
		LogLevel: "info",
	}
}

// Load reads path, or DefaultPath when path is empty. A missing default file
// is not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		cfg.Path = path
	} else if explicit {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if home, err := os.UserHomeDir(); err == nil {
		cfg.LogFile = expandHome(cfg.LogFile, home)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Interval.Duration <= 0 {
		return fmt.Errorf("interval must be positive, got %s", c.Interval.Duration)
	}
	if c.Debounce.Duration < 0 {
		return fmt.Errorf("debounce must not be negative, got %s", c.Debounce.Duration)
	}
	if _, err := annotate.ParseFuturePolicy(c.Future); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// FuturePolicy returns the validated future policy.
func (c *Config) FuturePolicy() annotate.FuturePolicy {
	p, _ := annotate.ParseFuturePolicy(c.Future)
	return p
}

// Style returns the annotation style.
func (c *Config) Style() annotate.Style {
	return annotate.Style{Color: c.Color, Italic: c.Italic}
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
