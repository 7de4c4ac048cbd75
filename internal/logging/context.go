package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled logger when
// none was attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

func withStr(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Str(key, value).Logger())
}

// WithComponent tags log lines with the emitting component
// ("power-cycle", "site-loader", "gesture", ...).
func WithComponent(ctx context.Context, component string) context.Context {
	return withStr(ctx, "component", component)
}

// WithSessionID tags every line of one kiosk run with the short session id.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return withStr(ctx, "session", ShortSessionID(sessionID))
}

// WithURL tags log lines with the site being shown.
func WithURL(ctx context.Context, url string) context.Context {
	return withStr(ctx, "url", url)
}
