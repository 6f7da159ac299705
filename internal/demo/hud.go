package demo

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/quadraster"
)

// HUD layout in pixels.
const (
	hudMargin  = 4
	hudPadding = 3
)

var (
	hudBackground = color.NRGBA{A: 160}
	hudForeground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// printer formats counters with thousands separators.
var printer = message.NewPrinter(language.English)

// StatsLine summarizes a presented frame on one line.
func StatsLine(st quadraster.FrameStats) string {
	line := printer.Sprintf("frame %d  shapes %d  deliveries %d  cells %d",
		st.Frame, st.Shapes, st.Deliveries, st.LeavesTouched)
	if st.Backlog > 0 {
		line += printer.Sprintf("  backlog %d", st.Backlog)
	}
	if st.Faults > 0 {
		line += printer.Sprintf("  faults %d", st.Faults)
	}
	return line
}

// DrawHUD draws lines of text in the top-left corner of dst over a
// translucent backdrop. It returns the area it covered.
func DrawHUD(dst draw.Image, lines ...string) image.Rectangle {
	if len(lines) == 0 {
		return image.Rectangle{}
	}

	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()

	width := 0
	for _, l := range lines {
		width = max(width, font.MeasureString(face, l).Ceil())
	}

	origin := dst.Bounds().Min.Add(image.Pt(hudMargin, hudMargin))
	panel := image.Rectangle{
		Min: origin,
		Max: origin.Add(image.Pt(width+2*hudPadding, len(lines)*lineHeight+2*hudPadding)),
	}.Intersect(dst.Bounds())
	draw.Draw(dst, panel, image.NewUniform(hudBackground), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(hudForeground),
		Face: face,
	}
	for i, l := range lines {
		d.Dot = fixed.P(origin.X+hudPadding, origin.Y+hudPadding+face.Ascent+i*lineHeight)
		d.DrawString(l)
	}
	return panel
}
