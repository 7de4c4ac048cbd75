package kiosk

import (
	"fmt"
	"strings"
)

// Style colors the overlays drawn above the site.
type Style struct {
	Background string
	Foreground string
	Accent     string
}

// DefaultStyle is a dark scrim with light text.
var DefaultStyle = Style{
	Background: "rgba(16, 18, 22, 0.94)",
	Foreground: "#e8eaed",
	Accent:     "#4c8dff",
}

const (
	offlineClass = "kiosk-offline"
	confirmClass = "kiosk-confirm"
	titleClass   = "kiosk-title"
	detailClass  = "kiosk-detail"
	buttonClass  = "kiosk-button"
	primaryClass = "kiosk-button-primary"
)

// CSS renders the stylesheet installed for the kiosk window.
func (s Style) CSS() string {
	var b strings.Builder
	fmt.Fprintf(&b, ".%s, .%s {\n  background-color: %s;\n  color: %s;\n}\n",
		offlineClass, confirmClass, s.Background, s.Foreground)
	fmt.Fprintf(&b, ".%s {\n  font-size: 28px;\n  font-weight: 600;\n}\n", titleClass)
	fmt.Fprintf(&b, ".%s {\n  font-size: 16px;\n  opacity: 0.75;\n}\n", detailClass)
	fmt.Fprintf(&b, ".%s {\n  min-width: 160px;\n  min-height: 48px;\n  font-size: 18px;\n}\n", buttonClass)
	fmt.Fprintf(&b, ".%s {\n  background: %s;\n  color: %s;\n}\n", primaryClass, s.Accent, s.Foreground)
	return b.String()
}
