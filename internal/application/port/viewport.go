package port

import "github.com/synergy360/kiosk/internal/domain/entity"

// ViewportQuery reports the current display area extent.
type ViewportQuery interface {
	Viewport() entity.Viewport
}

// ViewportFunc adapts a function to ViewportQuery.
type ViewportFunc func() entity.Viewport

// Viewport implements ViewportQuery.
func (f ViewportFunc) Viewport() entity.Viewport {
	return f()
}

// CompletionSink is invoked once per completed unlock gesture.
type CompletionSink func()
