package quadraster

// BlendMode selects how a shape's sample is composited onto the pixel that is
// already in the back buffer.
type BlendMode int

const (
	// BlendAdd accumulates samples with a saturating add, so overlapping
	// shapes brighten each other. This is the default.
	BlendAdd BlendMode = iota

	// BlendOver replaces the destination with every non-transparent sample.
	// Within a cell, later submissions win.
	BlendOver
)

// String returns the blend mode name.
func (m BlendMode) String() string {
	switch m {
	case BlendAdd:
		return "add"
	case BlendOver:
		return "over"
	default:
		return "unknown"
	}
}

// ParseBlendMode returns the blend mode for a name produced by String.
func ParseBlendMode(s string) (BlendMode, error) {
	switch s {
	case "add", "":
		return BlendAdd, nil
	case "over":
		return BlendOver, nil
	default:
		return BlendAdd, ErrInvalidBlendMode
	}
}

// blendFunc composites src onto dst.
type blendFunc func(dst, src Pixel) Pixel

func blendAdd(dst, src Pixel) Pixel {
	return dst.Add(src)
}

func blendOver(dst, src Pixel) Pixel {
	if src.IsTransparent() {
		return dst
	}
	return src
}

// fn returns the compositing function for the mode.
func (m BlendMode) fn() blendFunc {
	if m == BlendOver {
		return blendOver
	}
	return blendAdd
}
