// Package config loads settings shared by the quadraster commands.
//
// Values come from RASTER_* environment variables first; command-line flags
// registered with RegisterFlags override them.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"

	"github.com/gogpu/quadraster"
	"github.com/gogpu/quadraster/internal/demo"
)

// Prefix is the environment variable prefix, e.g. RASTER_WIDTH.
const Prefix = "RASTER"

// Config holds the frame, engine and presenter settings.
type Config struct {
	Width         int        `envconfig:"WIDTH" default:"1280"`
	Height        int        `envconfig:"HEIGHT" default:"720"`
	Threshold     int        `envconfig:"THRESHOLD" default:"0"`
	QueueCapacity int        `envconfig:"QUEUE_CAPACITY" default:"64"`
	Blend         string     `envconfig:"BLEND" default:"add"`
	Scene         string     `envconfig:"SCENE"`
	Frames        int        `envconfig:"FRAMES" default:"120"`
	Output        string     `envconfig:"OUTPUT" default:"frames"`
	Format        string     `envconfig:"FORMAT" default:"png"`
	Addr          string     `envconfig:"ADDR" default:":8080"`
	FPS           int        `envconfig:"FPS" default:"30"`
	LogLevel      slog.Level `envconfig:"LOG_LEVEL" default:"INFO"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// RegisterFlags binds every setting to a flag on fs, using the current
// values as defaults so that flags only override what they name.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "frame width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "frame height in pixels")
	fs.IntVar(&c.Threshold, "threshold", c.Threshold, "partition threshold (0 = width/4)")
	fs.IntVar(&c.QueueCapacity, "queue", c.QueueCapacity, "shapes queued per cell before submit blocks")
	fs.StringVar(&c.Blend, "blend", c.Blend, "blend mode: add or over")
	fs.StringVar(&c.Scene, "scene", c.Scene, "TOML scene file (default: animated demo)")
	fs.IntVar(&c.Frames, "frames", c.Frames, "number of frames to render")
	fs.StringVar(&c.Output, "out", c.Output, "output directory")
	fs.StringVar(&c.Format, "format", c.Format, "image format: png or bmp")
	fs.StringVar(&c.Addr, "addr", c.Addr, "listen address")
	fs.IntVar(&c.FPS, "fps", c.FPS, "frames per second")
	fs.TextVar(&c.LogLevel, "log-level", c.LogLevel, "log level: DEBUG, INFO, WARN or ERROR")
}

// Validate checks the settings that the engine does not check itself.
func (c *Config) Validate() error {
	var errs []error
	if c.Frames < 0 {
		errs = append(errs, fmt.Errorf("config: frames must be non-negative, got %d", c.Frames))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("config: fps must be positive, got %d", c.FPS))
	}
	if c.Threshold < 0 {
		errs = append(errs, fmt.Errorf("config: threshold must be non-negative, got %d", c.Threshold))
	}
	switch c.Format {
	case "png", "bmp":
	default:
		errs = append(errs, fmt.Errorf("config: unknown format %q", c.Format))
	}
	if _, err := quadraster.ParseBlendMode(c.Blend); err != nil {
		errs = append(errs, fmt.Errorf("config: blend %q: %w", c.Blend, err))
	}
	return errors.Join(errs...)
}

// EngineOptions converts the settings into engine options.
// A zero Threshold keeps the engine's default policy.
func (c *Config) EngineOptions() ([]quadraster.Option, error) {
	blend, err := quadraster.ParseBlendMode(c.Blend)
	if err != nil {
		return nil, fmt.Errorf("config: blend %q: %w", c.Blend, err)
	}

	opts := []quadraster.Option{
		quadraster.WithQueueCapacity(c.QueueCapacity),
		quadraster.WithBlendMode(blend),
	}
	if c.Threshold > 0 {
		opts = append(opts, quadraster.WithThreshold(c.Threshold))
	}
	return opts, nil
}

// NewEngine creates an engine for the configured frame size.
func (c *Config) NewEngine() (*quadraster.Engine, error) {
	opts, err := c.EngineOptions()
	if err != nil {
		return nil, err
	}
	e, err := quadraster.New(c.Width, c.Height, opts...)
	if err != nil {
		return nil, fmt.Errorf("config: create engine: %w", err)
	}
	return e, nil
}

// Source returns the frame source for the configured scene: the TOML scene
// file when Scene is set, the animated demo otherwise. A scene's own size
// and blend mode override the current settings.
func (c *Config) Source() (demo.Source, error) {
	if c.Scene == "" {
		return demo.NewAnimator(c.Width, c.Height), nil
	}

	s, err := demo.LoadScene(c.Scene)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if s.Width > 0 {
		c.Width = s.Width
	}
	if s.Height > 0 {
		c.Height = s.Height
	}
	if s.Blend != "" {
		c.Blend = s.Blend
	}
	return s, nil
}
