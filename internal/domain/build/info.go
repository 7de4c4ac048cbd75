// Package build describes the binary being run.
package build

import "fmt"

const (
	devVersion     = "dev"
	shortCommitLen = 7
	repoURL        = "https://github.com/synergy360/kiosk"
)

// Info is stamped into the binary at link time.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// IsDev reports whether the binary was built without release ldflags.
func (i Info) IsDev() bool {
	return i.Version == "" || i.Version == devVersion
}

// ShortCommit truncates the commit hash for display.
func (i Info) ShortCommit() string {
	if len(i.Commit) > shortCommitLen {
		return i.Commit[:shortCommitLen]
	}
	return i.Commit
}

// String is the one-line form printed by `kiosk version --short`.
func (i Info) String() string {
	return fmt.Sprintf("kiosk %s (%s, built %s, %s)", i.Version, i.ShortCommit(), i.BuildDate, i.GoVersion)
}

// RepoURL is where the source lives.
func RepoURL() string {
	return repoURL
}
