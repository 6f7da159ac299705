// Package quadraster provides a concurrent software rasterizer built on a
// static spatial partition.
//
// # Overview
//
// The frame is split once into a quadtree of fixed cells. Every leaf cell
// owns a bounded shape queue and a dedicated worker goroutine that
// rasterizes into exactly that cell's region of the back buffer. Submitting
// a shape fans it out to every cell its bounding box overlaps; Present waits
// for all cells to finish and swaps the double-buffered frame.
//
// # Quick Start
//
//	import "github.com/gogpu/quadraster"
//
//	e, err := quadraster.New(800, 600)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer e.Close()
//
//	e.SubmitCircle(400, 300, 120, quadraster.RGBA(255, 0, 0, 255))
//	frame := e.Present()
//	_ = frame.SavePNG("frame.png")
//
// # Compositing
//
// By default shapes accumulate with a saturating add, so overlapping shapes
// brighten each other instead of covering. Use WithBlendMode(BlendOver) for
// painter-style replacement.
//
// # Coordinate System
//
// Origin (0,0) is the top-left pixel, X grows right, Y grows down. Boxes are
// half-open: [Min, Max).
//
// # Lifetimes
//
// Shapes submitted during a frame must stay valid until the Present that
// ends the frame returns. Circles created by SubmitCircle live in a
// per-frame arena that Present resets. The image returned by Present is
// stable until the next Present.
package quadraster

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
