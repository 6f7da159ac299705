// Command rasterserve renders frames with the quadraster engine and streams
// them to browsers over a websocket.
//
// Open http://localhost:8080/ to watch. Every viewer gets its own engine and
// animation. Settings come from RASTER_* environment variables and flags:
//
//	rasterserve -addr :8080 -fps 30 -width 1280 -height 720 -stream-width 640
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gogpu/quadraster"
	"github.com/gogpu/quadraster/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.RegisterFlags(flag.CommandLine)
	streamWidth := flag.Int("stream-width", 0, "scale streamed frames to this width (0 = frame width)")
	hud := flag.Bool("hud", true, "draw frame statistics onto streamed frames")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	quadraster.SetLogger(logger)

	s := newServer(cfg, *streamWidth, *hud)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Addr, "width", cfg.Width, "height", cfg.Height, "fps", cfg.FPS)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server error: %v", err)
	}
}
