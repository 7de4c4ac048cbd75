package entity

// Corner identifies one of the four corner regions of a viewport.
type Corner int

const (
	CornerNone Corner = iota
	CornerTopLeft
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight
)

// String returns the snake_case name used in logs.
func (c Corner) String() string {
	switch c {
	case CornerTopLeft:
		return "top_left"
	case CornerTopRight:
		return "top_right"
	case CornerBottomLeft:
		return "bottom_left"
	case CornerBottomRight:
		return "bottom_right"
	default:
		return "none"
	}
}

// ClassifyCorner maps a point to the corner region it falls in.
// A region is the axis-aligned square of side threshold anchored at a corner.
// Points outside every region, points outside the viewport, a non-positive
// threshold and thresholds large enough to make regions overlap all yield CornerNone.
func ClassifyCorner(x, y float64, vp Viewport, threshold float64) Corner {
	if threshold <= 0 || vp.IsDegenerate() || threshold*2 > vp.ShortSide() {
		return CornerNone
	}

	w, h := vp.Width, vp.Height
	if x < 0 || y < 0 || x > w || y > h {
		return CornerNone
	}

	switch {
	case x < threshold && y < threshold:
		return CornerTopLeft
	case x > w-threshold && y < threshold:
		return CornerTopRight
	case x < threshold && y > h-threshold:
		return CornerBottomLeft
	case x > w-threshold && y > h-threshold:
		return CornerBottomRight
	default:
		return CornerNone
	}
}
