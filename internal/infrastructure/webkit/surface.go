// Package webkit adapts a WebKitGTK view and the GLib main loop to the kiosk ports.
package webkit

import (
	"context"
	"fmt"
	"sync"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/synergy360/kiosk/internal/application/port"
	"github.com/synergy360/kiosk/internal/logging"
)

// Compile-time interface checks.
var (
	_ port.RenderingSurface = (*Surface)(nil)
	_ port.PageLoader       = (*Surface)(nil)
)

// SurfaceConfig tunes the web view.
type SurfaceConfig struct {
	EnableDeveloperExtras bool
	// ApplicationName and ApplicationVersion are appended to WebKit's user agent.
	ApplicationName    string
	ApplicationVersion string
}

// Surface owns the kiosk web view. WebKitGTK has no process-wide timer
// pause, so PauseTimers mutes the page and stops any in-flight load, and
// Pause hides the view so WebKit throttles rendering and rAF callbacks.
// All methods must run on the GTK main thread.
type Surface struct {
	mu        sync.Mutex
	view      *webkit.WebView
	destroyed bool
	loads     loadTracker
}

// NewSurface creates the web view.
func NewSurface(ctx context.Context, cfg SurfaceConfig) (*Surface, error) {
	view := webkit.NewWebView()
	if view == nil {
		return nil, fmt.Errorf("webkit: failed to create web view")
	}

	settings := view.Settings()
	if settings == nil {
		return nil, fmt.Errorf("webkit: failed to get settings")
	}
	settings.SetEnableJavascript(true)
	settings.SetEnableDeveloperExtras(cfg.EnableDeveloperExtras)
	settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyAlways)
	if cfg.ApplicationName != "" {
		settings.SetUserAgentWithApplicationDetails(cfg.ApplicationName, cfg.ApplicationVersion)
	}

	s := &Surface{view: view}
	s.connectSignals(ctx)
	return s, nil
}

func (s *Surface) connectSignals(ctx context.Context) {
	log := logging.FromContext(ctx)

	s.view.ConnectLoadChanged(func(event webkit.LoadEvent) {
		switch event {
		case webkit.LoadStarted:
			s.loads.started()
		case webkit.LoadFinished:
			s.loads.finished()
		}
	})

	s.view.ConnectLoadFailed(func(_ webkit.LoadEvent, failingURI string, err error) bool {
		log.Warn().Err(err).Str("uri", failingURI).Msg("webkit: load failed")
		s.loads.failed(err)
		// Let WebKit show its error page under the offline overlay.
		return false
	})

	s.view.ConnectClose(func() {
		s.mu.Lock()
		s.destroyed = true
		s.mu.Unlock()
	})
}

// Widget returns the view for embedding in a window.
func (s *Surface) Widget() *webkit.WebView {
	return s.view
}

// OnLoadFinished registers the callback for successful page loads.
func (s *Surface) OnLoadFinished(fn func()) {
	s.loads.onFinished = fn
}

// OnLoadFailed registers the callback for failed page loads.
func (s *Surface) OnLoadFailed(fn func(error)) {
	s.loads.onFailed = fn
}

func (s *Surface) live() (*webkit.WebView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed || s.view == nil {
		return nil, port.ErrSurfaceDestroyed
	}
	return s.view, nil
}

// LoadURI implements port.PageLoader.
func (s *Surface) LoadURI(ctx context.Context, uri string) error {
	view, err := s.live()
	if err != nil {
		return err
	}
	logging.FromContext(ctx).Debug().Str("uri", uri).Msg("webkit: loading")
	view.LoadURI(uri)
	return nil
}

// Pause implements port.RenderingSurface.
func (s *Surface) Pause(context.Context) error {
	view, err := s.live()
	if err != nil {
		return err
	}
	view.SetVisible(false)
	return nil
}

// Resume implements port.RenderingSurface.
func (s *Surface) Resume(context.Context) error {
	view, err := s.live()
	if err != nil {
		return err
	}
	view.SetVisible(true)
	return nil
}

// PauseTimers implements port.RenderingSurface.
func (s *Surface) PauseTimers(context.Context) error {
	view, err := s.live()
	if err != nil {
		return err
	}
	view.SetIsMuted(true)
	if view.IsLoading() {
		view.StopLoading()
	}
	return nil
}

// ResumeTimers implements port.RenderingSurface.
func (s *Surface) ResumeTimers(context.Context) error {
	view, err := s.live()
	if err != nil {
		return err
	}
	view.SetIsMuted(false)
	return nil
}

// Reload implements port.RenderingSurface. It skips the cache so a stale
// page is never shown after waking.
func (s *Surface) Reload(context.Context) error {
	view, err := s.live()
	if err != nil {
		return err
	}
	view.ReloadBypassCache()
	return nil
}

// Destroy marks the surface unusable.
func (s *Surface) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destroyed = true
}
