package quadraster

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func TestNewImage(t *testing.T) {
	img, err := NewImage(4, 3)
	if err != nil {
		t.Fatalf("NewImage() error = %v", err)
	}
	if len(img.Pix) != 12 {
		t.Errorf("len(Pix) = %d, want 12", len(img.Pix))
	}
	if !isClear(img) {
		t.Error("new image should be all zero pixels")
	}

	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 5}} {
		if _, err := NewImage(dims[0], dims[1]); err != ErrInvalidDimensions {
			t.Errorf("NewImage(%d, %d) error = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestImage_PixelAccess(t *testing.T) {
	img, _ := NewImage(5, 5)

	img.SetPixel(2, 3, Red)
	img.SetPixel(-1, 0, Red)
	img.SetPixel(5, 0, Red)

	if got := img.PixelAt(2, 3); got != Red {
		t.Errorf("PixelAt(2, 3) = %+v, want Red", got)
	}
	if got := img.Pix[img.PixOffset(2, 3)]; got != Red {
		t.Errorf("Pix[PixOffset(2, 3)] = %+v, want Red", got)
	}
	if got := img.PixelAt(9, 9); got != Transparent {
		t.Errorf("PixelAt out of bounds = %+v, want Transparent", got)
	}

	count := 0
	for _, p := range img.Pix {
		if p != Transparent {
			count++
		}
	}
	if count != 1 {
		t.Errorf("%d pixels set, want 1 (out-of-bounds writes must be ignored)", count)
	}
}

func TestImage_Clear(t *testing.T) {
	img, _ := NewImage(3, 3)
	fill(img, Blue)

	img.Clear()
	if !isClear(img) {
		t.Error("Clear() should zero every pixel")
	}
}

func TestImage_ImplementsDrawImage(t *testing.T) {
	img, _ := NewImage(4, 4)

	var _ image.Image = img
	var _ draw.Image = img

	draw.Draw(img, image.Rect(1, 1, 3, 3), image.NewUniform(color.NRGBA{R: 255, A: 255}), image.Point{}, draw.Src)

	if got := img.PixelAt(1, 1); got != Red {
		t.Errorf("PixelAt(1, 1) = %+v, want Red", got)
	}
	if got := img.PixelAt(0, 0); got != Transparent {
		t.Errorf("PixelAt(0, 0) = %+v, want Transparent", got)
	}
	if img.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
	if img.Box() != B(0, 0, 4, 4) {
		t.Errorf("Box() = %v", img.Box())
	}
}

func TestImage_ToNRGBA(t *testing.T) {
	img, _ := NewImage(2, 1)
	img.SetPixel(0, 0, RGBA(1, 2, 3, 4))
	img.SetPixel(1, 0, RGBA(250, 251, 252, 253))

	out := img.ToNRGBA()
	want := []uint8{1, 2, 3, 4, 250, 251, 252, 253}
	if !bytes.Equal(out.Pix, want) {
		t.Errorf("ToNRGBA().Pix = %v, want %v", out.Pix, want)
	}
}

func TestImage_CopyToNRGBA(t *testing.T) {
	img := testPattern()

	same := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	img.CopyToNRGBA(same)
	if !bytes.Equal(same.Pix, img.ToNRGBA().Pix) {
		t.Error("CopyToNRGBA() differs from ToNRGBA()")
	}

	small := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.CopyToNRGBA(small)
	for y := range 2 {
		for x := range 3 {
			if got, want := PixelFromColor(small.At(x, y)), img.PixelAt(x, y); got != want {
				t.Errorf("small(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}

	big := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	img.CopyToNRGBA(big)
	if got := big.NRGBAAt(9, 9); got != (color.NRGBA{}) {
		t.Errorf("pixel outside the source changed: %v", got)
	}
}

func testPattern() *Image {
	img, _ := NewImage(8, 6)
	for y := range img.Height {
		for x := range img.Width {
			img.SetPixel(x, y, RGBA(uint8(x*30), uint8(y*40), 77, 255))
		}
	}
	return img
}

func assertSameOpaque(t *testing.T, want *Image, got image.Image) {
	t.Helper()
	if got.Bounds() != want.Bounds() {
		t.Fatalf("Bounds() = %v, want %v", got.Bounds(), want.Bounds())
	}
	for y := range want.Height {
		for x := range want.Width {
			g := color.NRGBAModel.Convert(got.At(x, y)).(color.NRGBA)
			w := want.PixelAt(x, y)
			if g.R != w.R || g.G != w.G || g.B != w.B || g.A != w.A {
				t.Fatalf("pixel (%d, %d) = %v, want %+v", x, y, g, w)
			}
		}
	}
}

func TestImage_EncodePNG(t *testing.T) {
	img := testPattern()

	var buf bytes.Buffer
	if err := img.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	assertSameOpaque(t, img, decoded)
}

func TestImage_EncodeBMP(t *testing.T) {
	img := testPattern()

	var buf bytes.Buffer
	if err := img.EncodeBMP(&buf); err != nil {
		t.Fatalf("EncodeBMP() error = %v", err)
	}
	decoded, err := bmp.Decode(&buf)
	if err != nil {
		t.Fatalf("bmp.Decode() error = %v", err)
	}
	assertSameOpaque(t, img, decoded)
}

func TestImage_SaveFiles(t *testing.T) {
	img := testPattern()
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "frame.png")
	if err := img.SavePNG(pngPath); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	bmpPath := filepath.Join(dir, "frame.bmp")
	if err := img.SaveBMP(bmpPath); err != nil {
		t.Fatalf("SaveBMP() error = %v", err)
	}

	for _, p := range []string{pngPath, bmpPath} {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("Stat(%s) error = %v", p, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", p)
		}
	}

	if err := img.SavePNG(filepath.Join(dir, "missing", "frame.png")); err == nil {
		t.Error("SavePNG() into a missing directory should fail")
	}
}

func TestImage_ScaleTo(t *testing.T) {
	img, _ := NewImage(4, 4)
	fill(img, RGBA(200, 100, 50, 255))

	tests := []struct {
		name string
		dst  *image.NRGBA
	}{
		{"upscale", image.NewNRGBA(image.Rect(0, 0, 8, 6))},
		{"downscale", image.NewNRGBA(image.Rect(0, 0, 2, 2))},
		{"same size", image.NewNRGBA(image.Rect(0, 0, 4, 4))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img.ScaleTo(tt.dst)

			b := tt.dst.Bounds()
			c := tt.dst.NRGBAAt(b.Dx()/2, b.Dy()/2)
			if absDiff(c.R, 200) > 1 || absDiff(c.G, 100) > 1 || absDiff(c.B, 50) > 1 || c.A != 255 {
				t.Errorf("ScaleTo() pixel = %v, want about {200 100 50 255}", c)
			}
		})
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func fill(img *Image, p Pixel) {
	for i := range img.Pix {
		img.Pix[i] = p
	}
}

func isClear(img *Image) bool {
	for _, p := range img.Pix {
		if p != Transparent {
			return false
		}
	}
	return true
}
