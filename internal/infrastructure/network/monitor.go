// Package network answers whether the kiosk site can be reached.
package network

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/synergy360/kiosk/internal/application/port"
	"github.com/synergy360/kiosk/internal/logging"
)

const (
	nmDest  = "org.freedesktop.NetworkManager"
	nmPath  = "/org/freedesktop/NetworkManager"
	nmIface = "org.freedesktop.NetworkManager"

	defaultProbeTimeout = 3 * time.Second
	defaultPollInterval = 5 * time.Second
)

// Connectivity mirrors NMConnectivityState.
type Connectivity uint32

const (
	ConnectivityUnknown Connectivity = iota
	ConnectivityNone
	ConnectivityPortal
	ConnectivityLimited
	ConnectivityFull
)

func (c Connectivity) String() string {
	switch c {
	case ConnectivityNone:
		return "none"
	case ConnectivityPortal:
		return "captive portal"
	case ConnectivityLimited:
		return "limited"
	case ConnectivityFull:
		return "full"
	default:
		return "unknown"
	}
}

// Compile-time interface checks.
var (
	_ port.Reachability = (*Monitor)(nil)
	_ port.ServiceProbe = (*Monitor)(nil)
)

// connectivitySource reads NetworkManager's global connectivity.
type connectivitySource interface {
	Connectivity() (Connectivity, error)
}

type dialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// Monitor caches reachability so that IsReachable never blocks the UI
// thread. Until the first probe completes the site counts as unreachable.
// NetworkManager is asked first; when it is missing or reports unknown, a
// TCP connect to the site's host decides.
type Monitor struct {
	nm      connectivitySource
	dial    dialFunc
	address string
	timeout time.Duration

	mu        sync.Mutex
	reachable bool
	checked   bool
	source    string
	listeners []func(reachable bool)
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithProbeTimeout bounds each TCP probe.
func WithProbeTimeout(d time.Duration) Option {
	return func(m *Monitor) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// NewMonitor builds a monitor for siteURL, connecting to the system bus for
// NetworkManager when available.
func NewMonitor(ctx context.Context, siteURL string, opts ...Option) (*Monitor, error) {
	address, err := probeAddress(siteURL)
	if err != nil {
		return nil, err
	}

	var nm connectivitySource
	if conn, err := dbus.ConnectSystemBus(); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("network: system bus unavailable, using tcp probe only")
	} else {
		nm = &networkManager{obj: conn.Object(nmDest, nmPath)}
	}

	dialer := &net.Dialer{}
	return newMonitor(nm, dialer.DialContext, address, opts...), nil
}

func newMonitor(nm connectivitySource, dial dialFunc, address string, opts ...Option) *Monitor {
	m := &Monitor{
		nm:      nm,
		dial:    dial,
		address: address,
		timeout: defaultProbeTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// probeAddress turns the site URL into host:port for the TCP fallback.
func probeAddress(siteURL string) (string, error) {
	u, err := url.Parse(siteURL)
	if err != nil {
		return "", fmt.Errorf("parse site url: %w", err)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("site url %q has no host", siteURL)
	}
	portNum := u.Port()
	if portNum == "" {
		portNum = "443"
		if u.Scheme == "http" {
			portNum = "80"
		}
	}
	return net.JoinHostPort(u.Hostname(), portNum), nil
}

// IsReachable returns the last known state without probing.
func (m *Monitor) IsReachable(context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reachable
}

// Checked reports whether a probe has completed.
func (m *Monitor) Checked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.checked
}

// OnChange registers fn for changes of the value IsReachable reports,
// including a first probe that finds the site reachable. fn runs on the
// goroutine that refreshed, usually Run's.
func (m *Monitor) OnChange(fn func(reachable bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Refresh probes now and updates the cached state.
func (m *Monitor) Refresh(ctx context.Context) bool {
	reachable, source := m.check(ctx)

	m.mu.Lock()
	first := !m.checked
	changed := m.reachable != reachable
	m.reachable = reachable
	m.checked = true
	m.source = source
	listeners := append([]func(bool){}, m.listeners...)
	m.mu.Unlock()

	if first || changed {
		logging.FromContext(ctx).Info().
			Bool("reachable", reachable).
			Str("source", source).
			Msg("network: reachability changed")
	}
	if changed {
		for _, fn := range listeners {
			fn(reachable)
		}
	}
	return reachable
}

func (m *Monitor) check(ctx context.Context) (bool, string) {
	if m.nm != nil {
		state, err := m.nm.Connectivity()
		switch {
		case err != nil:
			logging.FromContext(ctx).Debug().Err(err).Msg("network: NetworkManager query failed")
		case state != ConnectivityUnknown:
			return state == ConnectivityFull, "networkmanager: " + state.String()
		}
	}

	if err := m.probeTCP(ctx); err != nil {
		return false, "tcp " + m.address + ": " + err.Error()
	}
	return true, "tcp " + m.address
}

func (m *Monitor) probeTCP(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	conn, err := m.dial(ctx, "tcp", m.address)
	if err != nil {
		return err
	}
	return conn.Close()
}

// Run refreshes the cached state every interval until ctx is cancelled,
// probing immediately when nothing has been checked yet.
func (m *Monitor) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if !m.Checked() {
		m.Refresh(ctx)
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Refresh(ctx)
		}
	}
}

// ProbeName implements port.ServiceProbe.
func (m *Monitor) ProbeName() string {
	return "Network (" + m.address + ")"
}

// ErrUnreachable is returned by Probe when the site cannot be reached.
var ErrUnreachable = errors.New("site unreachable")

// Probe implements port.ServiceProbe.
func (m *Monitor) Probe(ctx context.Context) (string, error) {
	m.Refresh(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.reachable {
		return m.source, ErrUnreachable
	}
	return m.source, nil
}

type networkManager struct {
	obj dbus.BusObject
}

func (n *networkManager) Connectivity() (Connectivity, error) {
	v, err := n.obj.GetProperty(nmIface + ".Connectivity")
	if err != nil {
		return ConnectivityUnknown, err
	}
	state, ok := v.Value().(uint32)
	if !ok {
		return ConnectivityUnknown, fmt.Errorf("unexpected Connectivity type %T", v.Value())
	}
	return Connectivity(state), nil
}
