package demo

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/quadraster"
)

// ErrInvalidColor is returned for colors that are not #rrggbb or #rrggbbaa.
var ErrInvalidColor = errors.New("demo: invalid color")

// Scene is a static set of shapes read from a TOML file:
//
//	width = 640
//	height = 480
//	blend = "add"
//
//	[[circle]]
//	x = 320
//	y = 240
//	radius = 100
//	color = "#ff0000"
//
//	[[rect]]
//	x = 10
//	y = 10
//	width = 200
//	height = 40
//	color = "#00ff0080"
//
// Width, Height and Blend are optional and override the command settings
// when present. Coordinates are in pixels from the top-left corner.
type Scene struct {
	Width   int          `toml:"width"`
	Height  int          `toml:"height"`
	Blend   string       `toml:"blend"`
	Circles []CircleSpec `toml:"circle"`
	Rects   []RectSpec   `toml:"rect"`
}

// CircleSpec describes one filled circle.
type CircleSpec struct {
	X      int    `toml:"x"`
	Y      int    `toml:"y"`
	Radius int    `toml:"radius"`
	Color  string `toml:"color"`

	pixel quadraster.Pixel
}

// RectSpec describes one filled rectangle.
type RectSpec struct {
	X      int    `toml:"x"`
	Y      int    `toml:"y"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Color  string `toml:"color"`

	pixel quadraster.Pixel
}

// LoadScene reads a scene file.
func LoadScene(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("demo: open scene: %w", err)
	}
	defer f.Close()

	s, err := ParseScene(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScene decodes a scene and validates its shapes.
// Unknown keys are rejected.
func ParseScene(r io.Reader) (*Scene, error) {
	var s Scene
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("demo: decode scene: %w", err)
	}

	if s.Width < 0 || s.Height < 0 {
		return nil, fmt.Errorf("demo: negative scene size %dx%d", s.Width, s.Height)
	}
	if _, err := quadraster.ParseBlendMode(s.Blend); err != nil {
		return nil, fmt.Errorf("demo: scene blend %q: %w", s.Blend, err)
	}

	for i := range s.Circles {
		c := &s.Circles[i]
		if c.Radius < 0 {
			return nil, fmt.Errorf("demo: circle %d: negative radius %d", i, c.Radius)
		}
		p, err := ParseColor(c.Color)
		if err != nil {
			return nil, fmt.Errorf("demo: circle %d: %w", i, err)
		}
		c.pixel = p
	}
	for i := range s.Rects {
		rc := &s.Rects[i]
		if rc.Width < 0 || rc.Height < 0 {
			return nil, fmt.Errorf("demo: rect %d: negative size %dx%d", i, rc.Width, rc.Height)
		}
		p, err := ParseColor(rc.Color)
		if err != nil {
			return nil, fmt.Errorf("demo: rect %d: %w", i, err)
		}
		rc.pixel = p
	}

	return &s, nil
}

// Shapes returns the number of shapes in the scene.
func (s *Scene) Shapes() int {
	return len(s.Circles) + len(s.Rects)
}

// Render submits every shape of the scene: rectangles first, then circles.
func (s *Scene) Render(e Engine) {
	frame := quadraster.B(0, 0, e.Width(), e.Height())
	for _, rc := range s.Rects {
		box := quadraster.B(rc.X, rc.Y, rc.X+rc.Width, rc.Y+rc.Height)
		e.Submit(quadraster.NewRect(box, rc.pixel, frame))
	}
	for _, c := range s.Circles {
		e.SubmitCircle(c.X, c.Y, c.Radius, c.pixel)
	}
}

// ParseColor parses "#rrggbb" or "#rrggbbaa". An empty string is white.
func ParseColor(s string) (quadraster.Pixel, error) {
	if s == "" {
		return quadraster.White, nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return quadraster.Pixel{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return quadraster.Pixel{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return quadraster.RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
