package quadraster

import (
	"image"
	"image/color"
)

// Image is a dense row-major pixel buffer.
//
// Image implements image.Image and draw.Image, so frames can be handed
// directly to the standard image encoders and to golang.org/x/image/draw.
type Image struct {
	// Pix holds Width*Height pixels, row by row from the top-left corner.
	Pix []Pixel

	Width  int
	Height int
}

// NewImage creates a zeroed image.
// Returns ErrInvalidDimensions if width or height is non-positive.
func NewImage(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Image{
		Pix:    make([]Pixel, width*height),
		Width:  width,
		Height: height,
	}, nil
}

// Box returns the image extent as a Box anchored at the origin.
func (img *Image) Box() Box {
	return B(0, 0, img.Width, img.Height)
}

// PixOffset returns the index of the pixel at (x, y) in Pix.
func (img *Image) PixOffset(x, y int) int {
	return y*img.Width + x
}

// PixelAt returns the pixel at (x, y), or Transparent if out of bounds.
func (img *Image) PixelAt(x, y int) Pixel {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return Transparent
	}
	return img.Pix[img.PixOffset(x, y)]
}

// SetPixel sets the pixel at (x, y). Out-of-bounds writes are ignored.
func (img *Image) SetPixel(x, y int, p Pixel) {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return
	}
	img.Pix[img.PixOffset(x, y)] = p
}

// Clear resets every pixel to Transparent.
func (img *Image) Clear() {
	clear(img.Pix)
}

// At implements the image.Image interface.
func (img *Image) At(x, y int) color.Color {
	return img.PixelAt(x, y)
}

// Set implements the draw.Image interface.
func (img *Image) Set(x, y int, c color.Color) {
	img.SetPixel(x, y, PixelFromColor(c))
}

// Bounds implements the image.Image interface.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// ColorModel implements the image.Image interface.
func (img *Image) ColorModel() color.Model {
	return PixelModel
}
