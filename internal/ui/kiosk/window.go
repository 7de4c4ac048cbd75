// Package kiosk hosts the site in a locked, full-screen GTK window.
package kiosk

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/synergy360/kiosk/internal/application/port"
	"github.com/synergy360/kiosk/internal/domain/entity"
	"github.com/synergy360/kiosk/internal/logging"
)

// Compile-time interface checks.
var (
	_ port.ViewportQuery    = (*Window)(nil)
	_ port.OfflineIndicator = (*Window)(nil)
)

// Options configures the window.
type Options struct {
	Title      string
	Fullscreen bool
	HideCursor bool
	Style      Style
}

// Window is the kiosk's only top-level window: the site, an offline screen,
// and an exit confirmation stacked in one overlay. Close requests are
// refused until AllowClose is called. All methods run on the GTK main thread.
type Window struct {
	ctx     context.Context
	win     *gtk.ApplicationWindow
	offline *gtk.Box
	confirm *gtk.Box

	allowClose bool
	onPointer  func(x, y float64)
	onExit     func()
}

// New builds the window around content, typically the site's web view.
func New(ctx context.Context, app *gtk.Application, content gtk.Widgetter, opts Options) *Window {
	ctx = logging.WithComponent(ctx, "window")

	w := &Window{
		ctx: ctx,
		win: gtk.NewApplicationWindow(app),
	}
	if opts.Title == "" {
		opts.Title = "Kiosk"
	}
	if opts.Style == (Style{}) {
		opts.Style = DefaultStyle
	}

	w.win.SetTitle(opts.Title)
	w.win.SetDecorated(false)
	w.win.SetDefaultSize(1280, 800)
	if opts.HideCursor {
		w.win.SetCursorFromName("none")
	}

	installCSS(opts.Style.CSS())

	overlay := gtk.NewOverlay()
	overlay.SetHExpand(true)
	overlay.SetVExpand(true)
	overlay.SetChild(content)

	w.offline = newOfflineScreen()
	overlay.AddOverlay(w.offline)

	w.confirm = w.newConfirmScreen()
	overlay.AddOverlay(w.confirm)

	w.win.SetChild(overlay)

	w.attachPointer()
	w.win.ConnectCloseRequest(func() bool {
		if w.allowClose {
			return false
		}
		logging.FromContext(w.ctx).Debug().Msg("close request refused")
		return true
	})

	if opts.Fullscreen {
		w.win.Fullscreen()
	}
	return w
}

func installCSS(css string) {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}
	provider := gtk.NewCSSProvider()
	provider.LoadFromString(css)
	gtk.StyleContextAddProviderForDisplay(display, provider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)
}

// attachPointer taps every press in the capture phase so the site never
// gets a chance to swallow it.
func (w *Window) attachPointer() {
	click := gtk.NewGestureClick()
	click.SetButton(0)
	click.SetPropagationPhase(gtk.PhaseCapture)
	click.ConnectPressed(func(_ int, x, y float64) {
		if w.onPointer != nil {
			w.onPointer(x, y)
		}
	})
	w.win.AddController(click)
}

func newOfflineScreen() *gtk.Box {
	box := gtk.NewBox(gtk.OrientationVertical, 12)
	box.AddCSSClass(offlineClass)
	box.SetHExpand(true)
	box.SetVExpand(true)
	box.SetVAlign(gtk.AlignFill)

	inner := gtk.NewBox(gtk.OrientationVertical, 12)
	inner.SetHAlign(gtk.AlignCenter)
	inner.SetVAlign(gtk.AlignCenter)
	inner.SetVExpand(true)

	title := gtk.NewLabel("No connection")
	title.AddCSSClass(titleClass)
	detail := gtk.NewLabel("Waiting for the network. The page will load again automatically.")
	detail.AddCSSClass(detailClass)
	inner.Append(title)
	inner.Append(detail)

	box.Append(inner)
	box.SetVisible(false)
	return box
}

func (w *Window) newConfirmScreen() *gtk.Box {
	box := gtk.NewBox(gtk.OrientationVertical, 24)
	box.AddCSSClass(confirmClass)
	box.SetHExpand(true)
	box.SetVExpand(true)

	inner := gtk.NewBox(gtk.OrientationVertical, 24)
	inner.SetHAlign(gtk.AlignCenter)
	inner.SetVAlign(gtk.AlignCenter)
	inner.SetVExpand(true)

	title := gtk.NewLabel("Exit kiosk mode?")
	title.AddCSSClass(titleClass)
	inner.Append(title)

	buttons := gtk.NewBox(gtk.OrientationHorizontal, 16)
	buttons.SetHAlign(gtk.AlignCenter)

	cancel := gtk.NewButtonWithLabel("Stay")
	cancel.AddCSSClass(buttonClass)
	cancel.ConnectClicked(w.HideExitConfirmation)

	exit := gtk.NewButtonWithLabel("Exit")
	exit.AddCSSClass(buttonClass)
	exit.AddCSSClass(primaryClass)
	exit.ConnectClicked(func() {
		w.confirm.SetVisible(false)
		if w.onExit != nil {
			w.onExit()
		}
	})

	buttons.Append(cancel)
	buttons.Append(exit)
	inner.Append(buttons)

	box.Append(inner)
	box.SetVisible(false)
	return box
}

// OnPointerDown registers the handler for every press, in window coordinates.
func (w *Window) OnPointerDown(fn func(x, y float64)) {
	w.onPointer = fn
}

// OnExitConfirmed registers the handler for the confirmation's Exit button.
func (w *Window) OnExitConfirmed(fn func()) {
	w.onExit = fn
}

// Viewport implements port.ViewportQuery from the current allocation.
func (w *Window) Viewport() entity.Viewport {
	return entity.Viewport{
		Width:  float64(w.win.Width()),
		Height: float64(w.win.Height()),
	}
}

// ShowOffline implements port.OfflineIndicator.
func (w *Window) ShowOffline() {
	if !w.offline.Visible() {
		logging.FromContext(w.ctx).Info().Msg("showing offline screen")
	}
	w.offline.SetVisible(true)
}

// HideOffline implements port.OfflineIndicator.
func (w *Window) HideOffline() {
	w.offline.SetVisible(false)
}

// ShowExitConfirmation raises the exit prompt. It is the unlock gesture's
// completion sink.
func (w *Window) ShowExitConfirmation() {
	w.confirm.SetVisible(true)
}

// HideExitConfirmation dismisses the exit prompt.
func (w *Window) HideExitConfirmation() {
	w.confirm.SetVisible(false)
}

// Present shows the window.
func (w *Window) Present() {
	w.win.Present()
}

// AllowClose lets the next close request through.
func (w *Window) AllowClose() {
	w.allowClose = true
}

// Close closes the window, bypassing the kiosk lock.
func (w *Window) Close() {
	w.allowClose = true
	w.win.Close()
}
