package port

import (
	"context"
	"errors"
)

// ErrSurfaceDestroyed is returned by surface operations after the view was torn down.
var ErrSurfaceDestroyed = errors.New("rendering surface destroyed")

// RenderingSurface is the web view lifecycle consumed by the power cycle.
type RenderingSurface interface {
	// Pause stops page rendering and script execution.
	Pause(ctx context.Context) error
	// Resume undoes Pause.
	Resume(ctx context.Context) error
	// PauseTimers suspends page timers and media.
	PauseTimers(ctx context.Context) error
	// ResumeTimers undoes PauseTimers.
	ResumeTimers(ctx context.Context) error
	// Reload reloads the current page from the network.
	Reload(ctx context.Context) error
}

// PageLoader navigates the surface to a URI.
type PageLoader interface {
	LoadURI(ctx context.Context, uri string) error
}
