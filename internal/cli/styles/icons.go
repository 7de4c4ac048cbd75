package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGo        = "\ue627" // go gopher
	IconGithub    = "\uf09b" // github

	// Doctor / diagnostics
	IconDoctor  = "\uf0f1" // stethoscope
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconPackage = "\uf187" // archive/package
	IconPlug    = "\uf1e6" // plug

	IconConfig = "\ue615" // config
	IconCursor = "\uf054" // chevron-right
)
