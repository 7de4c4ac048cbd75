// Package deps inspects the native runtime the kiosk window needs.
package deps

import (
	"context"
	"os/exec"
	"strings"

	"github.com/synergy360/kiosk/internal/application/port"
)

// Compile-time interface check.
var _ port.RuntimeVersionProbe = (*PkgConfigProbe)(nil)

// PkgConfigProbe uses pkg-config to query module versions.
type PkgConfigProbe struct {
	lookPath func(string) (string, error)
}

func NewPkgConfigProbe() *PkgConfigProbe {
	return &PkgConfigProbe{lookPath: exec.LookPath}
}

func (p *PkgConfigProbe) ModVersion(ctx context.Context, pkgName string) (string, error) {
	pc, err := p.lookPath("pkg-config")
	if err != nil {
		return "", &port.PkgConfigError{Package: pkgName, Err: port.ErrPkgConfigMissing}
	}

	out, err := exec.CommandContext(ctx, pc, "--modversion", pkgName).CombinedOutput()
	if err != nil {
		return "", &port.PkgConfigError{
			Package: pkgName,
			Output:  strings.TrimSpace(string(out)),
			Err:     port.ErrPkgConfigPackageMissing,
		}
	}
	return strings.TrimSpace(string(out)), nil
}
