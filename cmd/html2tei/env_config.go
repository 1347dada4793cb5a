package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-html2tei/internal/config"
)

// envPrefix is the prefix of every recognized environment variable.
const envPrefix = "HTML2TEI_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	// Tier 1 - Essential
	ConfigPath string        // HTML2TEI_CONFIG: config file name or path
	OutputDir  string        // HTML2TEI_OUTPUT_DIR: default output directory
	Timeout    time.Duration // HTML2TEI_TIMEOUT: per-page fetch timeout

	// Tier 2 - Fetching
	Rate       float64 // HTML2TEI_RATE: requests per second
	RateSet    bool    // Rate may legitimately be 0 (unlimited)
	Workers    int     // HTML2TEI_WORKERS: parallel page fetches
	Browser    bool    // HTML2TEI_BROWSER: render pages in headless Chrome
	BrowserSet bool    // Browser may legitimately be false
	UserAgent  string  // HTML2TEI_USER_AGENT: User-Agent header

	// Tier 3 - Markup and output
	ActTrigger   string // HTML2TEI_ACT_TRIGGER: act heading substring
	SceneTrigger string // HTML2TEI_SCENE_TRIGGER: scene heading substring
	ContainerID  string // HTML2TEI_CONTAINER_ID: content element id
	Publisher    string // HTML2TEI_PUBLISHER: publicationStmt publisher
	Report       string // HTML2TEI_REPORT: md or html
}

// knownEnvVars lists valid HTML2TEI_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	// Tier 1 - Essential
	"HTML2TEI_CONFIG":     true,
	"HTML2TEI_OUTPUT_DIR": true,
	"HTML2TEI_TIMEOUT":    true,
	// Tier 2 - Fetching
	"HTML2TEI_RATE":       true,
	"HTML2TEI_WORKERS":    true,
	"HTML2TEI_BROWSER":    true,
	"HTML2TEI_USER_AGENT": true,
	// Tier 3 - Markup and output
	"HTML2TEI_ACT_TRIGGER":   true,
	"HTML2TEI_SCENE_TRIGGER": true,
	"HTML2TEI_CONTAINER_ID":  true,
	"HTML2TEI_PUBLISHER":     true,
	"HTML2TEI_REPORT":        true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparsable numeric, boolean and duration values are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		// Tier 1
		ConfigPath: os.Getenv("HTML2TEI_CONFIG"),
		OutputDir:  os.Getenv("HTML2TEI_OUTPUT_DIR"),
		// Tier 2
		UserAgent: os.Getenv("HTML2TEI_USER_AGENT"),
		// Tier 3
		ActTrigger:   os.Getenv("HTML2TEI_ACT_TRIGGER"),
		SceneTrigger: os.Getenv("HTML2TEI_SCENE_TRIGGER"),
		ContainerID:  os.Getenv("HTML2TEI_CONTAINER_ID"),
		Publisher:    os.Getenv("HTML2TEI_PUBLISHER"),
		Report:       os.Getenv("HTML2TEI_REPORT"),
	}

	if timeout := os.Getenv("HTML2TEI_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if rate := os.Getenv("HTML2TEI_RATE"); rate != "" {
		if r, err := strconv.ParseFloat(rate, 64); err == nil && r >= 0 {
			cfg.Rate, cfg.RateSet = r, true
		}
	}

	if workers := os.Getenv("HTML2TEI_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	if browser := os.Getenv("HTML2TEI_BROWSER"); browser != "" {
		if b, err := strconv.ParseBool(browser); err == nil {
			cfg.Browser, cfg.BrowserSet = b, true
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized HTML2TEI_* variables.
// Helps catch typos like HTML2TEI_WORKER instead of HTML2TEI_WORKERS.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// The config already carries defaults, so a set variable always wins over
// it. This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	// Tier 1
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Timeout > 0 {
		cfg.Fetch.Timeout = env.Timeout.String()
	}

	// Tier 2
	if env.RateSet {
		cfg.Fetch.Rate = env.Rate
	}
	if env.Workers > 0 {
		cfg.Fetch.Workers = env.Workers
	}
	if env.BrowserSet {
		cfg.Fetch.Browser = env.Browser
	}
	if env.UserAgent != "" {
		cfg.Fetch.UserAgent = env.UserAgent
	}

	// Tier 3
	if env.ActTrigger != "" {
		cfg.Triggers.Act = env.ActTrigger
	}
	if env.SceneTrigger != "" {
		cfg.Triggers.Scene = env.SceneTrigger
	}
	if env.ContainerID != "" {
		cfg.Triggers.ContainerID = env.ContainerID
	}
	if env.Publisher != "" {
		cfg.Drama.Publisher = env.Publisher
	}
	if env.Report != "" {
		cfg.Output.Report = env.Report
	}
}
