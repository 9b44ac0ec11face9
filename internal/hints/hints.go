// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"
)

// IsInCI detects a CI environment from the usual provider variables.
var IsInCI = func() bool {
	return os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in ~/.config/go-paginate/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/_config.yml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-paginate") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable, or use --output")
}

// ForSourceDirectory returns hints when the source directory cannot be read.
func ForSourceDirectory() string {
	return format("pass the site root, the directory holding _posts/ and your pages")
}

// ForNoPaginatedItems returns hints when a run split nothing.
// auto reports whether separator-based selection was on.
func ForNoPaginatedItems(auto bool, separator string, collections []string) string {
	var hints []string
	if auto {
		hints = append(hints, "no item contains "+separator)
	} else {
		hints = append(hints, "set 'paginate: true' in front matter or use --auto")
	}
	if len(collections) > 0 {
		hints = append(hints, "searched collections: "+strings.Join(collections, ", "))
	}
	return formatHints(hints)
}

// ForInterrupted returns a hint after a cancelled run. In CI the likely
// cause is a job timeout rather than a user interrupt.
func ForInterrupted() string {
	if IsInCI() {
		return format("the job was cancelled; raise the CI timeout or lower --workers")
	}
	return format("partial output was not written; rerun to complete")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
