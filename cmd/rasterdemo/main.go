// Command rasterdemo renders frames with the quadraster engine and writes
// them to image files.
//
// Settings come from RASTER_* environment variables and can be overridden
// with flags:
//
//	rasterdemo -frames 60 -out frames -format png -hud
//	rasterdemo -scene scene.toml -frames 1
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/quadraster"
	"github.com/gogpu/quadraster/internal/config"
	"github.com/gogpu/quadraster/internal/demo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.RegisterFlags(flag.CommandLine)
	hud := flag.Bool("hud", false, "draw frame statistics onto each frame")
	flag.Parse()

	quadraster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})))

	sum, err := run(cfg, *hud)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	p := message.NewPrinter(language.English)
	log.Print(p.Sprintf("Rendered %d frames (%dx%d, %d shapes, %d deliveries) to %s in %v",
		sum.frames, cfg.Width, cfg.Height, sum.shapes, sum.deliveries, cfg.Output, sum.elapsed.Round(time.Millisecond)))
}

// summary totals the work done by run.
type summary struct {
	frames     int
	shapes     int
	deliveries int
	faults     int
	elapsed    time.Duration
}

// run renders cfg.Frames frames and writes each one to cfg.Output.
func run(cfg *config.Config, hud bool) (summary, error) {
	var sum summary

	if err := cfg.Validate(); err != nil {
		return sum, err
	}
	src, err := cfg.Source()
	if err != nil {
		return sum, err
	}
	e, err := cfg.NewEngine()
	if err != nil {
		return sum, err
	}
	defer e.Close()

	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return sum, fmt.Errorf("create output directory: %w", err)
	}

	start := time.Now()
	for i := range cfg.Frames {
		src.Render(e)
		front := e.Present()
		st := e.Stats()

		path := filepath.Join(cfg.Output, fmt.Sprintf("frame_%04d.%s", i, cfg.Format))
		if err := writeFrame(path, front, cfg.Format, hud, st); err != nil {
			return sum, err
		}
		quadraster.Logger().Debug("frame written", "path", path, "shapes", st.Shapes, "deliveries", st.Deliveries)

		sum.frames++
		sum.shapes += st.Shapes
		sum.deliveries += st.Deliveries
		sum.faults += st.Faults
	}
	sum.elapsed = time.Since(start)

	return sum, nil
}

// writeFrame saves a presented frame, optionally with the statistics
// overlay. The front buffer itself is never modified.
func writeFrame(path string, front *quadraster.Image, format string, hud bool, st quadraster.FrameStats) error {
	if !hud {
		if format == "bmp" {
			return front.SaveBMP(path)
		}
		return front.SavePNG(path)
	}

	img := front.ToNRGBA()
	demo.DrawHUD(img, demo.StatsLine(st))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if format == "bmp" {
		err = bmp.Encode(f, img)
	} else {
		err = png.Encode(f, img)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
