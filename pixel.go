package quadraster

import "image/color"

// Pixel is an 8-bit per channel color stored in BGRA order, matching the
// memory layout of 32-bit device-independent bitmaps.
//
// The zero value is fully transparent black.
type Pixel struct {
	B, G, R, A uint8
}

// Common colors.
var (
	Transparent = Pixel{}
	Black       = Pixel{A: 255}
	White       = Pixel{B: 255, G: 255, R: 255, A: 255}
	Red         = Pixel{R: 255, A: 255}
	Green       = Pixel{G: 255, A: 255}
	Blue        = Pixel{B: 255, A: 255}
)

// RGBA creates a pixel from red, green, blue and alpha channels.
func RGBA(r, g, b, a uint8) Pixel {
	return Pixel{B: b, G: g, R: r, A: a}
}

// satAdd adds two channels, saturating at 255.
func satAdd(a, b uint8) uint8 {
	s := a + b
	if s < a {
		return 255
	}
	return s
}

// Add returns the channel-wise saturating sum of two pixels.
// Add is associative and commutative.
func (p Pixel) Add(q Pixel) Pixel {
	return Pixel{
		B: satAdd(p.B, q.B),
		G: satAdd(p.G, q.G),
		R: satAdd(p.R, q.R),
		A: satAdd(p.A, q.A),
	}
}

// IsTransparent reports whether every channel is zero.
func (p Pixel) IsTransparent() bool {
	return p == Transparent
}

// RGBA implements color.Color. Channels are treated as non-premultiplied.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}.RGBA()
}

// PixelFromColor converts any color.Color to a Pixel.
func PixelFromColor(c color.Color) Pixel {
	if p, ok := c.(Pixel); ok {
		return p
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{B: n.B, G: n.G, R: n.R, A: n.A}
}

// PixelModel converts colors to Pixel.
var PixelModel = color.ModelFunc(func(c color.Color) color.Color {
	return PixelFromColor(c)
})
