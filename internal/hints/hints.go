// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-html2tei/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for browser connection errors.
// Detects CI/Docker environment and suggests relevant environment variables.
func ForBrowserConnect() string {
	var hints []string

	// Detect CI environment
	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}

	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about slow sources.
func ForTimeout() string {
	return format("for slow sites, raise --timeout or lower --workers")
}

// ForFetchStatus returns a hint for an HTTP error status on a page URL.
// A 404 usually means the page count runs past the last page.
func ForFetchStatus(status int) string {
	switch {
	case status == 404:
		return format("check the start URL and that --pages does not exceed the number of pages")
	case status == 429:
		return format("the site is rate limiting; lower --rate")
	case status >= 500:
		return format("the site reported a server error; retry later")
	default:
		return ""
	}
}

// ForNoPageNumber returns a hint for a start URL without a trailing number.
func ForNoPageNumber() string {
	return format("the start URL must end with the page number, e.g. .../weber/1")
}

// ForContainerNotFound returns hints for pages lacking the content element.
func ForContainerNotFound(containerID string) string {
	return formatHints([]string{
		fmt.Sprintf("no element with id %q; set --container-id", containerID),
		"use --browser if the text is inserted by JavaScript",
	})
}

// ForNoActiveSpeech returns a hint for speech content before any speaker.
func ForNoActiveSpeech() string {
	return format("verse or stage text appears before the first speaker; check that the start page is the first page of the play")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-html2tei/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-html2tei") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
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
