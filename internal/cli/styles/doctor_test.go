package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/synergy360/kiosk/internal/cli/styles"
)

func TestDoctorRenderer_Render(t *testing.T) {
	r := styles.NewDoctorRenderer(styles.NewTheme())

	out := r.Render(styles.DoctorReport{
		OverallOK: false,
		Sections: []styles.DoctorSection{
			{Title: "Runtime", Icon: styles.IconPackage, Checks: []styles.DoctorCheck{
				{Name: "GTK4", OK: true, Detail: "4.16.2 (>= 4.14)"},
				{Name: "WebKitGTK 6.0", Missing: true, Error: "package not found"},
			}},
			{Title: "Services", Icon: styles.IconPlug},
		},
	})

	assert.Contains(t, out, "Doctor")
	assert.Contains(t, out, "Needs attention")
	assert.Contains(t, out, "Runtime")
	assert.Contains(t, out, "4.16.2 (>= 4.14)")
	assert.Contains(t, out, "Missing")
	assert.Contains(t, out, "package not found")
	// empty sections are skipped
	assert.NotContains(t, out, "Services")
}

func TestDoctorRenderer_FailedServiceShowsDetailAndError(t *testing.T) {
	r := styles.NewDoctorRenderer(styles.NewTheme())

	out := r.Render(styles.DoctorReport{
		OverallOK: false,
		Sections: []styles.DoctorSection{{Title: "Services", Checks: []styles.DoctorCheck{
			{Name: "Network (example.com:443)", Detail: "connectivity none", Error: "site unreachable"},
		}}},
	})

	assert.Contains(t, out, "Failed")
	assert.Contains(t, out, "connectivity none site unreachable")
}
