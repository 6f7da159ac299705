package quadraster

import (
	"image/color"
	"testing"
)

func TestPixel_Add(t *testing.T) {
	tests := []struct {
		name string
		a, b Pixel
		want Pixel
	}{
		{"zero", Transparent, Transparent, Transparent},
		{"no overflow", RGBA(10, 20, 30, 40), RGBA(1, 2, 3, 4), RGBA(11, 22, 33, 44)},
		{"saturates", RGBA(200, 255, 128, 1), RGBA(100, 1, 128, 254), RGBA(255, 255, 255, 255)},
		{"exact 255", RGBA(250, 0, 0, 0), RGBA(5, 0, 0, 0), RGBA(255, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Add(tt.b); got != tt.want {
				t.Errorf("Add() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPixel_AddCommutativeAssociative(t *testing.T) {
	values := []uint8{0, 1, 100, 128, 200, 254, 255}

	for _, x := range values {
		for _, y := range values {
			a := RGBA(x, y, x, y)
			b := RGBA(y, x, y, x)
			if a.Add(b) != b.Add(a) {
				t.Fatalf("Add not commutative for %v, %v", a, b)
			}
			for _, z := range values {
				c := RGBA(z, z, x, y)
				if a.Add(b).Add(c) != a.Add(b.Add(c)) {
					t.Fatalf("Add not associative for %v, %v, %v", a, b, c)
				}
			}
		}
	}
}

func TestPixel_Layout(t *testing.T) {
	p := RGBA(1, 2, 3, 4)
	if p.R != 1 || p.G != 2 || p.B != 3 || p.A != 4 {
		t.Errorf("RGBA(1, 2, 3, 4) = %+v", p)
	}
	if Red.R != 255 || Red.B != 0 || Red.A != 255 {
		t.Errorf("Red = %+v", Red)
	}
}

func TestPixel_Color(t *testing.T) {
	p := RGBA(255, 128, 0, 255)
	got := color.NRGBAModel.Convert(p).(color.NRGBA)
	if want := (color.NRGBA{R: 255, G: 128, B: 0, A: 255}); got != want {
		t.Errorf("Convert() = %v, want %v", got, want)
	}
}

func TestPixelFromColor(t *testing.T) {
	tests := []struct {
		c    color.Color
		want Pixel
	}{
		{color.NRGBA{R: 10, G: 20, B: 30, A: 255}, RGBA(10, 20, 30, 255)},
		{color.Black, Black},
		{color.Transparent, Transparent},
		{RGBA(1, 2, 3, 4), RGBA(1, 2, 3, 4)},
	}

	for _, tt := range tests {
		if got := PixelFromColor(tt.c); got != tt.want {
			t.Errorf("PixelFromColor(%v) = %+v, want %+v", tt.c, got, tt.want)
		}
	}

	if got := PixelModel.Convert(color.White); got != White {
		t.Errorf("PixelModel.Convert(White) = %v, want %v", got, White)
	}
}

func TestBlendMode(t *testing.T) {
	dst := RGBA(100, 0, 0, 255)
	src := RGBA(100, 50, 0, 255)

	if got := BlendAdd.fn()(dst, src); got != RGBA(200, 50, 0, 255) {
		t.Errorf("BlendAdd = %+v", got)
	}
	if got := BlendOver.fn()(dst, src); got != src {
		t.Errorf("BlendOver = %+v, want src", got)
	}
	if got := BlendOver.fn()(dst, Transparent); got != dst {
		t.Errorf("BlendOver(transparent) = %+v, want dst", got)
	}
}

func TestParseBlendMode(t *testing.T) {
	for _, m := range []BlendMode{BlendAdd, BlendOver} {
		got, err := ParseBlendMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseBlendMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseBlendMode("multiply"); err != ErrInvalidBlendMode {
		t.Errorf("ParseBlendMode(multiply) err = %v, want ErrInvalidBlendMode", err)
	}
	if BlendMode(9).String() != "unknown" {
		t.Errorf("BlendMode(9).String() = %q", BlendMode(9).String())
	}
}
