package kiosk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleCSS(t *testing.T) {
	css := Style{Background: "black", Foreground: "white", Accent: "red"}.CSS()

	assert.Contains(t, css, ".kiosk-offline, .kiosk-confirm {\n  background-color: black;\n  color: white;\n}")
	assert.Contains(t, css, ".kiosk-button-primary {\n  background: red;")
}

func TestDefaultStyleCSS_CoversEveryClass(t *testing.T) {
	css := DefaultStyle.CSS()

	for _, class := range []string{offlineClass, confirmClass, titleClass, detailClass, buttonClass, primaryClass} {
		assert.Contains(t, css, "."+class)
	}
}
