// Package display drives screen blanking through the freedesktop ScreenSaver service.
package display

import (
	"context"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/synergy360/kiosk/internal/application/port"
	"github.com/synergy360/kiosk/internal/logging"
)

const (
	screenSaverDest  = "org.freedesktop.ScreenSaver"
	screenSaverPath  = "/org/freedesktop/ScreenSaver"
	screenSaverIface = "org.freedesktop.ScreenSaver"

	appName       = "kiosk"
	inhibitReason = "Kiosk display active"
)

// Compile-time interface checks.
var (
	_ port.DisplayDirectives = (*ScreenSaver)(nil)
	_ port.ServiceProbe      = (*ScreenSaver)(nil)
)

// caller is the subset of dbus.BusObject used here.
type caller interface {
	Call(method string, flags dbus.Flags, args ...interface{}) *dbus.Call
}

// ScreenSaver maps the display directives onto org.freedesktop.ScreenSaver:
// keep-screen-on holds an Inhibit cookie, turn-screen-on simulates user
// activity and show-over-lock deactivates a running screensaver.
type ScreenSaver struct {
	mu sync.Mutex

	conn      *dbus.Conn
	obj       caller
	cookie    uint32
	inhibited bool
	overLock  bool
}

// NewScreenSaver connects to the session bus. Without a bus every directive
// returns port.ErrDisplayUnavailable.
func NewScreenSaver(ctx context.Context) *ScreenSaver {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("screensaver: cannot connect to D-Bus session bus")
		return &ScreenSaver{}
	}
	return &ScreenSaver{
		conn: conn,
		obj:  conn.Object(screenSaverDest, screenSaverPath),
	}
}

func (s *ScreenSaver) call(method string, args ...interface{}) *dbus.Call {
	return s.obj.Call(screenSaverIface+"."+method, 0, args...)
}

// SetKeepScreenOn implements port.DisplayDirectives.
func (s *ScreenSaver) SetKeepScreenOn(ctx context.Context, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.obj == nil {
		return port.ErrDisplayUnavailable
	}
	log := logging.FromContext(ctx)

	switch {
	case on && !s.inhibited:
		var cookie uint32
		if err := s.call("Inhibit", appName, inhibitReason).Store(&cookie); err != nil {
			return fmt.Errorf("screensaver inhibit: %w", err)
		}
		s.cookie = cookie
		s.inhibited = true
		log.Debug().Uint32("cookie", cookie).Msg("screensaver: inhibited")
	case !on && s.inhibited:
		if err := s.call("UnInhibit", s.cookie).Err; err != nil {
			return fmt.Errorf("screensaver uninhibit: %w", err)
		}
		s.cookie = 0
		s.inhibited = false
		log.Debug().Msg("screensaver: uninhibited")
	}
	return nil
}

// TurnScreenOn implements port.DisplayDirectives.
func (s *ScreenSaver) TurnScreenOn(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.obj == nil {
		return port.ErrDisplayUnavailable
	}
	if err := s.call("SimulateUserActivity").Err; err != nil {
		return fmt.Errorf("screensaver simulate activity: %w", err)
	}
	return nil
}

// SetShowOverLock implements port.DisplayDirectives. Turning it on
// deactivates a running screensaver; turning it off only clears the flag, the
// screensaver is never forced on.
func (s *ScreenSaver) SetShowOverLock(_ context.Context, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.obj == nil {
		return port.ErrDisplayUnavailable
	}
	s.overLock = on
	if !on {
		return nil
	}

	var changed bool
	if err := s.call("SetActive", false).Store(&changed); err != nil {
		return fmt.Errorf("screensaver deactivate: %w", err)
	}
	return nil
}

// KeepsScreenOn reports whether an inhibit cookie is held.
func (s *ScreenSaver) KeepsScreenOn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inhibited
}

// ProbeName implements port.ServiceProbe.
func (s *ScreenSaver) ProbeName() string {
	return "Display (org.freedesktop.ScreenSaver)"
}

// Probe implements port.ServiceProbe by asking whether the screensaver is active.
func (s *ScreenSaver) Probe(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.obj == nil {
		return "", port.ErrDisplayUnavailable
	}
	var active bool
	if err := s.call("GetActive").Store(&active); err != nil {
		return "", fmt.Errorf("%w: %v", port.ErrDisplayUnavailable, err)
	}
	if active {
		return "screensaver active", nil
	}
	return "screensaver inactive", nil
}

// Close drops the inhibit cookie and the bus connection.
func (s *ScreenSaver) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.obj != nil && s.inhibited {
		_ = s.call("UnInhibit", s.cookie).Err
		s.inhibited = false
	}
	s.obj = nil
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}
