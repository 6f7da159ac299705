package quadraster

// Swapchain holds two images of identical size. One is the back buffer, the
// write target of the current frame; the other is the front buffer, read by
// the presenter.
//
// Thread safety: Swapchain is NOT thread-safe. The engine serializes Swap
// against rasterization.
type Swapchain struct {
	imgs [2]*Image
	back int
}

// NewSwapchain allocates both buffers.
// Returns ErrInvalidDimensions if width or height is non-positive.
func NewSwapchain(width, height int) (*Swapchain, error) {
	a, err := NewImage(width, height)
	if err != nil {
		return nil, err
	}
	b, err := NewImage(width, height)
	if err != nil {
		return nil, err
	}
	return &Swapchain{imgs: [2]*Image{a, b}}, nil
}

// Back returns the current write target.
func (s *Swapchain) Back() *Image {
	return s.imgs[s.back]
}

// Front returns the buffer currently owned by the presenter.
func (s *Swapchain) Front() *Image {
	return s.imgs[1-s.back]
}

// Swap exchanges the roles of the buffers and clears the new back buffer.
// It returns the new front buffer.
func (s *Swapchain) Swap() *Image {
	s.back = 1 - s.back
	s.Back().Clear()
	return s.Front()
}

// Width returns the width of both buffers.
func (s *Swapchain) Width() int {
	return s.imgs[0].Width
}

// Height returns the height of both buffers.
func (s *Swapchain) Height() int {
	return s.imgs[0].Height
}
