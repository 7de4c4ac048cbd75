// Package entity defines domain entities for the kiosk shell.
package entity

import "time"

// Viewport is the current extent of the display area in logical pixels.
// Hosts query it per event so rotation and resizes are picked up.
type Viewport struct {
	Width  float64
	Height float64
}

// IsDegenerate reports whether the viewport has no usable area.
func (v Viewport) IsDegenerate() bool {
	return v.Width <= 0 || v.Height <= 0
}

// ShortSide returns the smaller of the two dimensions.
func (v Viewport) ShortSide() float64 {
	if v.Width < v.Height {
		return v.Width
	}
	return v.Height
}

// PointerEvent is a single pointer-down (touch or click) in viewport coordinates.
type PointerEvent struct {
	X, Y float64
	// At is a monotonic timestamp. time.Now() values carry a monotonic reading.
	At time.Time
}
