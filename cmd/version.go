package cmd

import "fmt"

const appName = "create-component"

var (
	buildVersion = "dev"
	buildCommit  = "none"
)

// SetVersionInfo sets the build-time version information reported by --version.
func SetVersionInfo(version, commit string) {
	buildVersion = version
	buildCommit = commit

	rootCmd.Version = versionString()
}

func versionString() string {
	return fmt.Sprintf("%s (commit: %s)", buildVersion, buildCommit)
}

func init() {
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate(appName + " {{ .Version }}\n")
}
