package cli

import "fmt"

var (
	// Version information - typically set via ldflags at build time
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

// versionTemplate renders --version output. The commit and build date are
// baked in when the command is built, the version comes from cobra.
func versionTemplate() string {
	return fmt.Sprintf("grrs {{.Version}}\nGit commit: %s\nBuild date: %s\n", GitCommit, BuildDate)
}
