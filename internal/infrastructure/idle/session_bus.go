package idle

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

// sessionBus talks to the portal over a real D-Bus connection.
type sessionBus struct {
	conn *dbus.Conn
}

func (b *sessionBus) Version() (uint32, error) {
	var version uint32
	err := b.conn.Object(portalDest, portalPath).
		Call("org.freedesktop.DBus.Properties.Get", 0, portalInterface, "version").
		Store(&version)
	return version, err
}

// Inhibit(window: s, flags: u, options: a{sv}) -> handle: o
func (b *sessionBus) Inhibit(reason string, flags uint32) (dbus.ObjectPath, error) {
	options := map[string]dbus.Variant{
		"reason": dbus.MakeVariant(reason),
	}
	var handle dbus.ObjectPath
	err := b.conn.Object(portalDest, portalPath).
		Call(portalInterface+".Inhibit", 0, "", flags, options).
		Store(&handle)
	return handle, err
}

func (b *sessionBus) WatchResponse(ctx context.Context, handle dbus.ObjectPath) <-chan struct{} {
	matchRule := fmt.Sprintf(
		"type='signal',interface='%s',member='Response',path='%s'",
		requestIface, handle,
	)
	if err := b.conn.BusObject().Call("org.freedesktop.DBus.AddMatch", 0, matchRule).Err; err != nil {
		return nil
	}

	signals := make(chan *dbus.Signal, 1)
	b.conn.Signal(signals)

	done := make(chan struct{})
	go func() {
		defer func() {
			b.conn.RemoveSignal(signals)
			_ = b.conn.BusObject().Call("org.freedesktop.DBus.RemoveMatch", 0, matchRule).Err
		}()
		for {
			select {
			case sig, ok := <-signals:
				if !ok || sig == nil {
					return
				}
				if sig.Path == handle && sig.Name == requestIface+".Response" {
					close(done)
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return done
}

func (b *sessionBus) CloseRequest(handle dbus.ObjectPath) error {
	return b.conn.Object(portalDest, handle).Call(requestIface+".Close", 0).Err
}

func (b *sessionBus) Close() error {
	return b.conn.Close()
}
