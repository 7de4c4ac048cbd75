package port

import (
	"context"
	"errors"
	"strings"
)

// ServiceProbe is one host service the kiosk depends on at runtime.
type ServiceProbe interface {
	// ProbeName is the label shown by the doctor command.
	ProbeName() string
	// Probe checks the service and returns a short human-readable detail.
	Probe(ctx context.Context) (string, error)
}

// RuntimeVersionProbe reports installed versions of the native GUI stack.
type RuntimeVersionProbe interface {
	ModVersion(ctx context.Context, pkgName string) (string, error)
}

var (
	ErrPkgConfigMissing        = errors.New("pkg-config missing")
	ErrPkgConfigPackageMissing = errors.New("pkg-config package missing")
)

// PkgConfigError is returned by RuntimeVersionProbe for a library that could
// not be resolved. Err is one of the ErrPkgConfig sentinels or the exec error.
type PkgConfigError struct {
	Package string
	Output  string
	Err     error
}

func (e *PkgConfigError) Error() string {
	parts := []string{"pkg-config " + e.Package}
	if e.Output != "" {
		parts = append(parts, e.Output)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *PkgConfigError) Unwrap() error { return e.Err }
