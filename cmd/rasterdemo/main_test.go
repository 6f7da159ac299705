package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/gogpu/quadraster/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Width:         160,
		Height:        120,
		QueueCapacity: 8,
		Blend:         "add",
		Frames:        3,
		Output:        filepath.Join(t.TempDir(), "out"),
		Format:        "png",
		FPS:           30,
	}
}

func decodeFile(t *testing.T, path string, decode func(f *os.File) (image.Image, error)) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, err := decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

func TestRun_PNG(t *testing.T) {
	cfg := testConfig(t)

	sum, err := run(cfg, false)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if sum.frames != 3 || sum.shapes != 15 {
		t.Errorf("summary = %+v, want 3 frames and 15 shapes", sum)
	}

	for _, name := range []string{"frame_0000.png", "frame_0001.png", "frame_0002.png"} {
		img := decodeFile(t, filepath.Join(cfg.Output, name), func(f *os.File) (image.Image, error) {
			return png.Decode(f)
		})
		if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 120 {
			t.Errorf("%s is %dx%d, want 160x120", name, b.Dx(), b.Dy())
		}
	}
}

func TestRun_BMPWithHUD(t *testing.T) {
	cfg := testConfig(t)
	cfg.Format = "bmp"
	cfg.Frames = 1

	if _, err := run(cfg, true); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	img := decodeFile(t, filepath.Join(cfg.Output, "frame_0000.bmp"), func(f *os.File) (image.Image, error) {
		return bmp.Decode(f)
	})
	if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 120 {
		t.Errorf("frame is %dx%d, want 160x120", b.Dx(), b.Dy())
	}
}

func TestRun_Scene(t *testing.T) {
	dir := t.TempDir()
	scene := filepath.Join(dir, "scene.toml")
	src := "width = 40\nheight = 30\n\n[[rect]]\nx = 0\ny = 0\nwidth = 40\nheight = 30\ncolor = \"#102030\"\n"
	if err := os.WriteFile(scene, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig(t)
	cfg.Scene = scene
	cfg.Frames = 1

	if _, err := run(cfg, false); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	img := decodeFile(t, filepath.Join(cfg.Output, "frame_0000.png"), func(f *os.File) (image.Image, error) {
		return png.Decode(f)
	})
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Fatalf("frame is %dx%d, want 40x30", b.Dx(), b.Dy())
	}
	r, g, b, _ := img.At(20, 15).RGBA()
	if r>>8 != 0x10 || g>>8 != 0x20 || b>>8 != 0x30 {
		t.Errorf("pixel = %02x%02x%02x, want 102030", r>>8, g>>8, b>>8)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Format = "gif"

	if _, err := run(cfg, false); err == nil {
		t.Error("run() should reject an unknown format")
	}

	cfg = testConfig(t)
	cfg.Width = 0
	if _, err := run(cfg, false); err == nil {
		t.Error("run() should reject a zero width")
	}
}
