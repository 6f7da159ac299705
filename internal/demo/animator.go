package demo

import "github.com/gogpu/quadraster"

// minRadius is the smallest radius of the animated circles.
const minRadius = 50

// Colors of the five animated circles, in submission order.
var animColors = [5]quadraster.Pixel{
	{B: 255, G: 255, A: 255},
	{B: 255, A: 255},
	{G: 255, A: 255},
	{R: 255, A: 255},
	{G: 255, R: 255, A: 255},
}

// Animator draws five circles whose radius and positions bounce between
// limits derived from the frame size. Positions are kept relative to the
// frame center and translated when submitted.
//
// An Animator is not safe for concurrent use.
type Animator struct {
	r, dr int
	x, dx int
	y, dy int
	frame int
}

// NewAnimator creates an animator for a width x height frame.
func NewAnimator(width, height int) *Animator {
	return &Animator{
		r: minRadius, dr: 1,
		x: -width / 2, dx: 1,
		y: -height / 2, dy: 1,
	}
}

// Render submits the current frame's circles and advances the animation
// by one step.
func (a *Animator) Render(e Engine) {
	w, h := e.Width(), e.Height()
	cx, cy := w/2, h/2

	e.SubmitCircle(cx-a.x, cy+100, a.r, animColors[0])
	e.SubmitCircle(cx+a.x, cy, a.r, animColors[1])
	e.SubmitCircle(cx, cy, a.r, animColors[2])
	e.SubmitCircle(cx+100, cy+a.y, a.r, animColors[3])
	e.SubmitCircle(cx+200, cy-a.y, a.r, animColors[4])

	a.step(w, h)
}

// step advances the animation, reversing each motion at its limits.
func (a *Animator) step(w, h int) {
	a.r += a.dr
	a.x += a.dx
	a.y += a.dy
	a.frame++

	if a.r > w/4 || a.r < minRadius {
		a.dr = -a.dr
	}
	if a.x > w/2 || a.x < -w/2 {
		a.dx = -a.dx
	}
	if a.y > h/2 || a.y < -h/2 {
		a.dy = -a.dy
	}
}

// Frame returns the number of frames rendered so far.
func (a *Animator) Frame() int {
	return a.frame
}

// Radius returns the radius used for the next frame.
func (a *Animator) Radius() int {
	return a.r
}
