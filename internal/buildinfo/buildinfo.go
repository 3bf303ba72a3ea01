// Package buildinfo carries link-time build metadata:
//
//	-ldflags "-X meshui/internal/buildinfo.Version=v1.2.0 -X 'meshui/internal/buildinfo.Date=12 Mar 2025'"
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	// Date is shown verbatim on the boot screen, so a short human form
	// such as "12 Mar 2025" fits best.
	Date = "unknown"
)

// Short returns a compact build identifier for the window title.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}
