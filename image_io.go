package quadraster

import (
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// ToNRGBA converts the image to an image.NRGBA, swizzling BGRA to RGBA.
func (img *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	img.CopyToNRGBA(out)
	return out
}

// CopyToNRGBA writes the image into dst starting at dst's top-left corner.
// If the sizes differ, only the overlapping area is copied.
func (img *Image) CopyToNRGBA(dst *image.NRGBA) {
	w := min(img.Width, dst.Rect.Dx())
	h := min(img.Height, dst.Rect.Dy())
	for y := range h {
		src := img.Pix[y*img.Width : y*img.Width+w]
		row := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
		for x, p := range src {
			o := x * 4
			row[o+0] = p.R
			row[o+1] = p.G
			row[o+2] = p.B
			row[o+3] = p.A
		}
	}
}

// EncodePNG writes the image to w in PNG format.
func (img *Image) EncodePNG(w io.Writer) error {
	return png.Encode(w, img.ToNRGBA())
}

// EncodeBMP writes the image to w in BMP format.
func (img *Image) EncodeBMP(w io.Writer) error {
	return bmp.Encode(w, img.ToNRGBA())
}

// SavePNG saves the image to a PNG file.
func (img *Image) SavePNG(path string) error {
	return img.saveFile(path, img.EncodePNG)
}

// SaveBMP saves the image to a BMP file.
func (img *Image) SaveBMP(path string) error {
	return img.saveFile(path, img.EncodeBMP)
}

func (img *Image) saveFile(path string, encode func(io.Writer) error) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return encode(f)
}

// ScaleTo resamples the whole image into dst's bounds with bilinear
// filtering, for presenters whose surface size differs from the frame size.
// dst is typically a pooled buffer.
func (img *Image) ScaleTo(dst xdraw.Image) {
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
}
