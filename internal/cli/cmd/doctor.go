package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/synergy360/kiosk/internal/application/port"
	"github.com/synergy360/kiosk/internal/application/usecase"
	"github.com/synergy360/kiosk/internal/cli/styles"
	"github.com/synergy360/kiosk/internal/infrastructure/deps"
	"github.com/synergy360/kiosk/internal/infrastructure/display"
	"github.com/synergy360/kiosk/internal/infrastructure/idle"
	"github.com/synergy360/kiosk/internal/infrastructure/network"
	"github.com/synergy360/kiosk/internal/logging"
)

var (
	doctorOnlyRuntime  bool
	doctorOnlyServices bool
	doctorTimeout      time.Duration
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check runtime requirements and host services",
	Long: `Doctor checks what the kiosk needs from the device.

By default it runs both:
- Runtime checks (GTK4 + WebKitGTK 6.0 via pkg-config)
- Service checks (power inhibit portal, screensaver, site reachability)

All checks run in parallel.

Examples:
  kiosk doctor
  kiosk doctor --runtime
  kiosk doctor --services --timeout 2s`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorOnlyRuntime, "runtime", false, "Only run runtime checks (GTK4/WebKitGTK)")
	doctorCmd.Flags().BoolVar(&doctorOnlyServices, "services", false, "Only run service checks (D-Bus, network)")
	doctorCmd.Flags().DurationVar(&doctorTimeout, "timeout", 5*time.Second, "timeout for each service probe")
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}
	if doctorOnlyRuntime && doctorOnlyServices {
		return fmt.Errorf("--runtime and --services are mutually exclusive")
	}

	ctx := a.Ctx()
	log := logging.FromContext(ctx)

	var runtimeProbe port.RuntimeVersionProbe
	if !doctorOnlyServices {
		runtimeProbe = deps.NewPkgConfigProbe()
	}

	var services []port.ServiceProbe
	if !doctorOnlyRuntime {
		power := idle.NewPortalInhibitor(ctx)
		defer func() { _ = power.Close() }()
		screen := display.NewScreenSaver(ctx)
		defer func() { _ = screen.Close() }()
		services = append(services, power, screen)

		monitor, err := network.NewMonitor(ctx, a.Config.Site.URL, network.WithProbeTimeout(doctorTimeout))
		if err != nil {
			log.Warn().Err(err).Msg("skipping network check")
		} else {
			services = append(services, monitor)
		}
	}

	out, err := usecase.NewDiagnoseUseCase(runtimeProbe, services...).Execute(ctx, usecase.DiagnoseInput{
		Timeout: doctorTimeout,
	})
	if err != nil {
		return err
	}

	renderer := styles.NewDoctorRenderer(a.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(doctorReport(out)))

	if !out.OK {
		return fmt.Errorf("some checks failed")
	}
	return nil
}

// doctorReport groups results by kind for rendering. A runtime check with no
// version at all means pkg-config could not find the library.
func doctorReport(out *usecase.DiagnoseOutput) styles.DoctorReport {
	runtimeSection := styles.DoctorSection{Title: "Runtime", Icon: styles.IconPackage}
	serviceSection := styles.DoctorSection{Title: "Services", Icon: styles.IconPlug}

	for _, c := range out.Checks {
		check := styles.DoctorCheck{
			Name:   c.Name,
			OK:     c.OK,
			Detail: c.Detail,
			Error:  c.Error,
		}
		switch c.Kind {
		case usecase.CheckKindRuntime:
			check.Missing = !c.OK && c.Detail == ""
			runtimeSection.Checks = append(runtimeSection.Checks, check)
		default:
			serviceSection.Checks = append(serviceSection.Checks, check)
		}
	}

	return styles.DoctorReport{
		OverallOK: out.OK,
		Sections:  []styles.DoctorSection{runtimeSection, serviceSection},
	}
}
