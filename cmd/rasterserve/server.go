package main

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/gorilla/mux"

	"github.com/gogpu/quadraster"
	"github.com/gogpu/quadraster/internal/bufpool"
	"github.com/gogpu/quadraster/internal/config"
	"github.com/gogpu/quadraster/internal/demo"
)

// writeWait bounds the time spent writing one frame to a viewer.
const writeWait = 5 * time.Second

// server streams rendered frames to websocket viewers.
type server struct {
	cfg         *config.Config
	streamWidth int
	hud         bool

	// buffers holds conversion and scaling buffers shared by all viewers.
	buffers *bufpool.Pool
}

func newServer(cfg *config.Config, streamWidth int, hud bool) *server {
	return &server{
		cfg:         cfg,
		streamWidth: streamWidth,
		hud:         hud,
		buffers:     bufpool.New(8),
	}
}

func (s *server) routes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/", s.index).Methods("GET")
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")
	r.HandleFunc("/frames", s.frames)
	return r
}

func (s *server) index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct{ Width, Height, FPS int }{s.cfg.Width, s.cfg.Height, s.cfg.FPS}
	if err := indexPage.Execute(w, data); err != nil {
		slog.Error("render index", "error", err)
	}
}

// frames upgrades the request to a websocket and streams PNG frames until
// the viewer disconnects.
func (s *server) frames(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "stream ended")

	// Viewers never send anything; CloseRead handles control frames and
	// cancels ctx when the viewer goes away.
	ctx := conn.CloseRead(r.Context())

	cfg := *s.cfg
	err = s.stream(ctx, &cfg, conn)
	switch {
	case err == nil, ctx.Err() != nil:
		conn.Close(websocket.StatusNormalClosure, "")
	default:
		slog.Warn("stream", "error", err, "remote", r.RemoteAddr)
	}
}

// stream renders frames at cfg.FPS and writes each one as a binary message.
// It returns nil when ctx is canceled.
func (s *server) stream(ctx context.Context, cfg *config.Config, conn *websocket.Conn) error {
	src, err := cfg.Source()
	if err != nil {
		return err
	}
	e, err := cfg.NewEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	slog.Debug("viewer connected", "width", cfg.Width, "height", cfg.Height, "leaves", len(e.Leaves()))

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	var buf bytes.Buffer
	for {
		src.Render(e)
		front := e.Present()

		buf.Reset()
		if err := s.encodeFrame(&buf, front, e.Stats()); err != nil {
			return fmt.Errorf("encode frame: %w", err)
		}

		writeCtx, cancel := context.WithTimeout(ctx, writeWait)
		err := conn.Write(writeCtx, websocket.MessageBinary, buf.Bytes())
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("write frame: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// encodeFrame writes a presented frame as PNG: scaled to the stream width
// and with the statistics overlay if enabled.
func (s *server) encodeFrame(w io.Writer, front *quadraster.Image, st quadraster.FrameStats) error {
	width, height := front.Width, front.Height
	if s.streamWidth > 0 && s.streamWidth != front.Width {
		width, height = s.streamWidth, max(front.Height*s.streamWidth/front.Width, 1)
	}

	img := s.buffers.Get(width, height)
	defer s.buffers.Put(img)
	if width == front.Width && height == front.Height {
		front.CopyToNRGBA(img)
	} else {
		front.ScaleTo(img)
	}
	if s.hud {
		demo.DrawHUD(img, demo.StatsLine(st))
	}
	return png.Encode(w, img)
}

var indexPage = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>quadraster</title>
<style>
body { margin: 0; background: #111; display: flex; align-items: center; justify-content: center; height: 100vh; }
img { max-width: 100%; max-height: 100%; image-rendering: pixelated; }
</style>
</head>
<body>
<img id="frame" width="{{.Width}}" height="{{.Height}}" alt="{{.FPS}} fps stream">
<script>
const img = document.getElementById("frame");
const scheme = location.protocol === "https:" ? "wss://" : "ws://";
const ws = new WebSocket(scheme + location.host + "/frames");
ws.binaryType = "blob";
let url = null;
ws.onmessage = (ev) => {
	const next = URL.createObjectURL(ev.data);
	img.src = next;
	if (url) URL.revokeObjectURL(url);
	url = next;
};
</script>
</body>
</html>
`))
