// Package version derives the running build's identity. Resolution order:
// -ldflags override, then VCS metadata from debug.BuildInfo, then "dev".
package version

import "runtime/debug"

// AppName prefixes version strings and user agents.
const AppName = "taskwire"

// gitCommitOverride can be injected at link time for container builds where
// no .git directory is present:
//
//	go build -ldflags "-X .../pkg/version.gitCommitOverride=$SHA"
var gitCommitOverride string

// GitCommit is the short (8 char) commit hash, or "dev" when no build info
// exists, as under `go test`.
var GitCommit = initGitCommit()

func initGitCommit() string {
	if gitCommitOverride != "" {
		return shorten(gitCommitOverride)
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return shorten(s.Value)
		}
	}
	return "dev"
}

func shorten(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "taskwire/<commit>" for log lines and user-agent strings.
func Full() string {
	return AppName + "/" + GitCommit
}
