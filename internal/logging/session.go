package logging

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

const (
	sessionStampLayout = "20060102_150405"
	sessionSuffixBytes = 2
)

// GenerateSessionID returns an id for one kiosk run, e.g. "20261017_083012_a7b3".
// The timestamp keeps rotated log files sortable; the suffix tells apart
// runs started in the same second.
func GenerateSessionID() string {
	return sessionIDAt(time.Now())
}

func sessionIDAt(now time.Time) string {
	suffix := make([]byte, sessionSuffixBytes)
	_, _ = rand.Read(suffix)
	return now.Format(sessionStampLayout) + "_" + hex.EncodeToString(suffix)
}

// ShortSessionID returns the random suffix of id, which is what gets
// stamped on log lines.
func ShortSessionID(id string) string {
	n := sessionSuffixBytes * 2
	if len(id) <= n {
		return id
	}
	return id[len(id)-n:]
}
