package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/synergy360/kiosk/internal/application/port"
	"github.com/synergy360/kiosk/internal/logging"
)

const (
	defaultMinGTK4Version      = "4.14"
	defaultMinWebKitGTKVersion = "2.44"
	defaultProbeTimeout        = 5 * time.Second
)

// CheckKind groups doctor results.
type CheckKind string

const (
	CheckKindRuntime CheckKind = "runtime"
	CheckKindService CheckKind = "service"
)

// CheckResult is the outcome of one doctor check.
type CheckResult struct {
	Kind   CheckKind
	Name   string
	OK     bool
	Detail string
	Error  string
}

// DiagnoseInput tunes the doctor run. Zero values use defaults.
type DiagnoseInput struct {
	MinGTK4Version      string
	MinWebKitGTKVersion string
	Timeout             time.Duration
}

// DiagnoseOutput lists results in a stable order: runtime checks first, then
// services in the order they were registered.
type DiagnoseOutput struct {
	OK     bool
	Checks []CheckResult
}

// DiagnoseUseCase checks the native runtime and the host services the kiosk
// talks to. All checks run concurrently.
type DiagnoseUseCase struct {
	runtime  port.RuntimeVersionProbe
	services []port.ServiceProbe
}

// NewDiagnoseUseCase creates a new use case. runtime may be nil.
func NewDiagnoseUseCase(runtime port.RuntimeVersionProbe, services ...port.ServiceProbe) *DiagnoseUseCase {
	return &DiagnoseUseCase{runtime: runtime, services: services}
}

type runtimeRequirement struct {
	pkg     string
	display string
	min     string
}

// Execute runs every check. Individual check failures are reported in the
// output, never as an error.
func (uc *DiagnoseUseCase) Execute(ctx context.Context, input DiagnoseInput) (*DiagnoseOutput, error) {
	log := logging.FromContext(ctx).With().Str("component", "doctor").Logger()

	timeout := input.Timeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}

	var reqs []runtimeRequirement
	if uc.runtime != nil {
		reqs = []runtimeRequirement{
			{pkg: "gtk4", display: "GTK4", min: orDefault(input.MinGTK4Version, defaultMinGTK4Version)},
			{pkg: "webkitgtk-6.0", display: "WebKitGTK 6.0", min: orDefault(input.MinWebKitGTKVersion, defaultMinWebKitGTKVersion)},
		}
	}

	results := make([]CheckResult, len(reqs)+len(uc.services))
	g, gctx := errgroup.WithContext(ctx)

	for i, req := range reqs {
		g.Go(func() error {
			results[i] = uc.checkRuntime(gctx, req)
			return nil
		})
	}
	for j, svc := range uc.services {
		g.Go(func() error {
			probeCtx, cancel := context.WithTimeout(gctx, timeout)
			defer cancel()
			results[len(reqs)+j] = checkService(probeCtx, svc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ok := true
	for _, r := range results {
		ok = ok && r.OK
	}
	log.Debug().Bool("ok", ok).Int("checks", len(results)).Msg("diagnostics complete")
	return &DiagnoseOutput{OK: ok, Checks: results}, nil
}

func (uc *DiagnoseUseCase) checkRuntime(ctx context.Context, req runtimeRequirement) CheckResult {
	res := CheckResult{Kind: CheckKindRuntime, Name: req.display}

	version, err := uc.runtime.ModVersion(ctx, req.pkg)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Detail = version + " (>= " + req.min + ")"

	cmp, ok := compareVersion(version, req.min)
	switch {
	case !ok:
		res.Error = "could not parse version"
	case cmp < 0:
		res.Error = "version too old"
	default:
		res.OK = true
	}
	return res
}

func checkService(ctx context.Context, svc port.ServiceProbe) CheckResult {
	res := CheckResult{Kind: CheckKindService, Name: svc.ProbeName()}
	detail, err := svc.Probe(ctx)
	res.Detail = detail
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.OK = true
	return res
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// compareVersion compares dotted numeric versions, padding the shorter one
// with zeros. ok is false if either cannot be parsed.
func compareVersion(a, b string) (cmp int, ok bool) {
	av, ok := parseVersionPrefix(a)
	if !ok {
		return 0, false
	}
	bv, ok := parseVersionPrefix(b)
	if !ok {
		return 0, false
	}

	for i := 0; i < max(len(av), len(bv)); i++ {
		var x, y int
		if i < len(av) {
			x = av[i]
		}
		if i < len(bv) {
			y = bv[i]
		}
		if x != y {
			if x > y {
				return 1, true
			}
			return -1, true
		}
	}
	return 0, true
}

// parseVersionPrefix parses the leading dotted numeric part of s, so
// "2.46.1-1ubuntu" yields [2 46 1].
func parseVersionPrefix(s string) ([]int, bool) {
	s = strings.TrimSpace(s)
	end := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	if end >= 0 {
		s = s[:end]
	}
	s = strings.TrimRight(s, ".")
	if s == "" {
		return nil, false
	}

	fields := strings.Split(s, ".")
	parts := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, false
		}
		parts = append(parts, n)
	}
	return parts, true
}
