package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/clipnotes/internal/keymap"
	"github.com/llehouerou/clipnotes/internal/visibility"
)

const appName = "clipnotes"

type Config struct {
	PostSources []string `koanf:"post_sources"` // directories holding a posts.json
	Icons       string   `koanf:"icons"`        // "nerd", "unicode", or "none"
	Theme       string   `koanf:"theme"`        // "dark", "light", or "auto"
	Category    string   `koanf:"category"`     // initial post list filter
	Limit       int      `koanf:"limit"`        // max posts listed, 0 for all
	LogLevel    string   `koanf:"log_level"`    // debug, info, warn, error
	LogFile     string   `koanf:"log_file"`     // default: XDG state dir

	Band     BandConfig          `koanf:"band"`
	Playback PlaybackConfig      `koanf:"playback"`
	Keys     map[string][]string `koanf:"keys"` // action name -> keys replacing its defaults
}

// BandConfig is the activation band, as fractions of the viewport height
// cut from the top and from the bottom.
type BandConfig struct {
	TopMargin    *float64 `koanf:"top_margin"`
	BottomMargin *float64 `koanf:"bottom_margin"`
}

// PlaybackConfig holds player settings.
type PlaybackConfig struct {
	TickMS          int   `koanf:"tick_ms"`           // position update interval (default: 250)
	SeekSeconds     int   `koanf:"seek_seconds"`      // short seek step (default: 5)
	LongSeekSeconds int   `koanf:"long_seek_seconds"` // long seek step (default: 30)
	MPRIS           *bool `koanf:"mpris"`             // expose the full track over D-Bus (default: true)
}

func Load() (*Config, error) {
	return loadFrom(getConfigPaths())
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	for i, src := range cfg.PostSources {
		cfg.PostSources[i] = expandPath(src)
	}
	if cfg.LogFile != "" {
		cfg.LogFile = expandPath(cfg.LogFile)
	}
	cfg.Icons = strings.ToLower(strings.TrimSpace(cfg.Icons))
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if _, err := cfg.GetBand(); err != nil {
		return nil, err
	}
	if _, err := cfg.GetBindings(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/clipnotes/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetPostSources returns the configured sources, or the working directory
// when none are set.
func (c *Config) GetPostSources() []string {
	if len(c.PostSources) == 0 {
		return []string{"."}
	}
	return c.PostSources
}

// GetBand returns the activation band with defaults applied.
func (c *Config) GetBand() (visibility.Band, error) {
	band := visibility.DefaultBand
	if c.Band.TopMargin != nil {
		band.TopMargin = *c.Band.TopMargin
	}
	if c.Band.BottomMargin != nil {
		band.BottomMargin = *c.Band.BottomMargin
	}
	if err := band.Validate(); err != nil {
		return visibility.Band{}, fmt.Errorf("band: %w", err)
	}
	return band, nil
}

// GetBindings returns the default key bindings with the [keys] overrides
// applied.
func (c *Config) GetBindings() ([]keymap.Binding, error) {
	if len(c.Keys) == 0 {
		return keymap.Bindings, nil
	}
	return keymap.Override(keymap.Bindings, c.Keys)
}

// GetPlaybackConfig returns the playback configuration with defaults applied.
func (c *Config) GetPlaybackConfig() PlaybackConfig {
	cfg := c.Playback

	if cfg.TickMS <= 0 {
		cfg.TickMS = 250
	}
	if cfg.SeekSeconds <= 0 {
		cfg.SeekSeconds = 5
	}
	if cfg.LongSeekSeconds <= 0 {
		cfg.LongSeekSeconds = 30
	}
	if cfg.MPRIS == nil {
		enabled := true
		cfg.MPRIS = &enabled
	}

	return cfg
}

// TickInterval returns the position update interval.
func (p PlaybackConfig) TickInterval() time.Duration {
	return time.Duration(p.TickMS) * time.Millisecond
}

// SeekStep returns the short seek step.
func (p PlaybackConfig) SeekStep() time.Duration {
	return time.Duration(p.SeekSeconds) * time.Second
}

// LongSeekStep returns the long seek step.
func (p PlaybackConfig) LongSeekStep() time.Duration {
	return time.Duration(p.LongSeekSeconds) * time.Second
}

// MPRISEnabled reports whether D-Bus integration is on.
func (p PlaybackConfig) MPRISEnabled() bool {
	return p.MPRIS == nil || *p.MPRIS
}
