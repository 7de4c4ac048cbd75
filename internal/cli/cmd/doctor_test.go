package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synergy360/kiosk/internal/application/usecase"
)

func TestDoctorReport_GroupsByKind(t *testing.T) {
	out := &usecase.DiagnoseOutput{
		OK: false,
		Checks: []usecase.CheckResult{
			{Kind: usecase.CheckKindRuntime, Name: "GTK4", OK: true, Detail: "4.16.2 (>= 4.14)"},
			{Kind: usecase.CheckKindRuntime, Name: "WebKitGTK 6.0", Error: "pkg-config: package webkitgtk-6.0 not found"},
			{Kind: usecase.CheckKindService, Name: "Screensaver", Detail: "no session bus", Error: "display directives unavailable"},
		},
	}

	report := doctorReport(out)

	assert.False(t, report.OverallOK)
	require.Len(t, report.Sections, 2)

	runtime := report.Sections[0]
	assert.Equal(t, "Runtime", runtime.Title)
	require.Len(t, runtime.Checks, 2)
	assert.False(t, runtime.Checks[0].Missing)
	assert.True(t, runtime.Checks[1].Missing)

	services := report.Sections[1]
	require.Len(t, services.Checks, 1)
	assert.False(t, services.Checks[0].Missing)
	assert.Equal(t, "display directives unavailable", services.Checks[0].Error)
}

func TestDoctorReport_TooOldIsNotMissing(t *testing.T) {
	out := &usecase.DiagnoseOutput{Checks: []usecase.CheckResult{
		{Kind: usecase.CheckKindRuntime, Name: "GTK4", Detail: "4.10.0 (>= 4.14)", Error: "version too old"},
	}}

	check := doctorReport(out).Sections[0].Checks[0]

	assert.False(t, check.OK)
	assert.False(t, check.Missing)
}
