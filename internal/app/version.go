package app

import "fmt"

// Build metadata, stamped by the release build:
//
//	go build -ldflags "-X github.com/heartmarshall/ranch-records/internal/app.Version=1.4.0 -X ...Commit=$(git rev-parse HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

const shortCommitLen = 12

// BuildVersion is the version line for startup logs and --version output.
// Development builds print only the version.
func BuildVersion() string {
	if Commit == "unknown" {
		return Version
	}
	commit := Commit
	if len(commit) > shortCommitLen {
		commit = commit[:shortCommitLen]
	}
	return fmt.Sprintf("%s (commit %s, built %s)", Version, commit, BuildTime)
}
