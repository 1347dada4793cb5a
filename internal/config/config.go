package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-html2tei"
	"github.com/alnah/go-html2tei/internal/fetch"
	"github.com/alnah/go-html2tei/internal/fileutil"
	"github.com/alnah/go-html2tei/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppName is the directory name under the user config directory.
const AppName = "go-html2tei"

// Field length limits.
const (
	MaxTitleLength     = 200  // Drama title
	MaxAuthorLength    = 100  // "Last, First"
	MaxPublisherLength = 100  // Publisher name
	MaxDateLength      = 30   // "2025-12-31"
	MaxURLLength       = 2048 // Browser limit
	MaxPathLength      = 4096 // PATH_MAX
	MaxTriggerLength   = 50   // "Aufzug", "Auftritt"
	MaxIDLength        = 100  // HTML id attribute
	MaxUserAgentLength = 200  // User-Agent header
)

// Value limits.
const (
	MaxPages   = 1000 // Pages per drama
	MaxWorkers = 32   // Parallel fetches or jobs
	MaxJobs    = 500  // Dramas per batch
)

// Report formats.
const (
	ReportNone     = ""
	ReportMarkdown = "md"
	ReportHTML     = "html"
)

// Config holds all configuration for a conversion run.
type Config struct {
	Drama    DramaConfig   `yaml:"drama"`
	Source   SourceConfig  `yaml:"source"`
	Triggers TriggerConfig `yaml:"triggers"`
	Fetch    FetchConfig   `yaml:"fetch"`
	Output   OutputConfig  `yaml:"output"`
	Jobs     []JobConfig   `yaml:"jobs"`
}

// DramaConfig describes the drama written to the TEI header.
type DramaConfig struct {
	Title     string `yaml:"title"`
	Author    string `yaml:"author"`    // "Last, First"
	Publisher string `yaml:"publisher"` // Optional
	Date      string `yaml:"date"`      // Optional, YYYY-MM-DD or "auto"
}

// SourceConfig defines where the pages come from.
type SourceConfig struct {
	StartURL string   `yaml:"startURL"` // URL of the first page, ends with the page number
	Pages    int      `yaml:"pages"`    // Number of pages to fetch from StartURL
	Files    []string `yaml:"files"`    // Local pages, in reading order
}

// TriggerConfig defines how the source markup is read.
type TriggerConfig struct {
	Act         string `yaml:"act"`         // Heading substring opening an act
	Scene       string `yaml:"scene"`       // Heading substring opening a scene
	ContainerID string `yaml:"containerID"` // id of the element holding the text
}

// FetchConfig defines page retrieval options.
type FetchConfig struct {
	Browser   bool    `yaml:"browser"`   // Render pages in headless Chrome
	Timeout   string  `yaml:"timeout"`   // Per page, Go duration ("30s")
	Rate      float64 `yaml:"rate"`      // Requests per second, 0 = unlimited
	Workers   int     `yaml:"workers"`   // Parallel page fetches
	UserAgent string  `yaml:"userAgent"` // Empty = default
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = current directory
	Report     string `yaml:"report"`     // "", "md" or "html"
}

// JobConfig is one drama of a batch. Empty trigger fields fall back to the
// top-level triggers section.
type JobConfig struct {
	Title    string        `yaml:"title"`
	Author   string        `yaml:"author"`
	StartURL string        `yaml:"startURL"`
	Pages    int           `yaml:"pages"`
	Files    []string      `yaml:"files"`
	Triggers TriggerConfig `yaml:"triggers"`
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	// Validate drama fields
	if err := validateFieldLength("drama.title", c.Drama.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("drama.author", c.Drama.Author, MaxAuthorLength); err != nil {
		return err
	}
	if err := validateFieldLength("drama.publisher", c.Drama.Publisher, MaxPublisherLength); err != nil {
		return err
	}
	if err := validateFieldLength("drama.date", c.Drama.Date, MaxDateLength); err != nil {
		return err
	}

	if err := validateSource("source", c.Source.StartURL, c.Source.Pages, c.Source.Files); err != nil {
		return err
	}
	if err := validateTriggers("triggers", c.Triggers); err != nil {
		return err
	}

	// Validate fetch fields
	if _, err := c.Fetch.TimeoutDuration(); err != nil {
		return err
	}
	if c.Fetch.Rate < 0 {
		return fmt.Errorf("%w: fetch.rate: must not be negative, got %.2f", ErrInvalidValue, c.Fetch.Rate)
	}
	if c.Fetch.Workers < 0 || c.Fetch.Workers > MaxWorkers {
		return fmt.Errorf("%w: fetch.workers: must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Fetch.Workers)
	}
	if err := validateFieldLength("fetch.userAgent", c.Fetch.UserAgent, MaxUserAgentLength); err != nil {
		return err
	}

	// Validate output fields
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := ValidateReport(c.Output.Report); err != nil {
		return fmt.Errorf("output.report: %w", err)
	}

	// Validate jobs
	if len(c.Jobs) > MaxJobs {
		return fmt.Errorf("%w: jobs: at most %d, got %d", ErrInvalidValue, MaxJobs, len(c.Jobs))
	}
	for i, job := range c.Jobs {
		prefix := fmt.Sprintf("jobs[%d]", i)
		if strings.TrimSpace(job.Title) == "" || strings.TrimSpace(job.Author) == "" {
			return fmt.Errorf("%w: %s: title and author are required", ErrInvalidValue, prefix)
		}
		if err := validateFieldLength(prefix+".title", job.Title, MaxTitleLength); err != nil {
			return err
		}
		if err := validateFieldLength(prefix+".author", job.Author, MaxAuthorLength); err != nil {
			return err
		}
		if job.StartURL == "" && len(job.Files) == 0 {
			return fmt.Errorf("%w: %s: startURL or files required", ErrInvalidValue, prefix)
		}
		if err := validateSource(prefix, job.StartURL, job.Pages, job.Files); err != nil {
			return err
		}
		if err := validateTriggers(prefix+".triggers", job.Triggers); err != nil {
			return err
		}
	}

	return nil
}

// TimeoutDuration parses Timeout. An empty value yields 0 (use default).
func (f FetchConfig) TimeoutDuration() (time.Duration, error) {
	if f.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(f.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: fetch.timeout: %v", ErrInvalidValue, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: fetch.timeout: must not be negative, got %s", ErrInvalidValue, f.Timeout)
	}
	return d, nil
}

// ValidateReport checks a report format name.
func ValidateReport(format string) error {
	switch format {
	case ReportNone, ReportMarkdown, ReportHTML:
		return nil
	default:
		return fmt.Errorf("%w: report format %q (must be md or html)", ErrInvalidValue, format)
	}
}

// Merge returns t with empty fields taken from fallback.
func (t TriggerConfig) Merge(fallback TriggerConfig) TriggerConfig {
	if t.Act == "" {
		t.Act = fallback.Act
	}
	if t.Scene == "" {
		t.Scene = fallback.Scene
	}
	if t.ContainerID == "" {
		t.ContainerID = fallback.ContainerID
	}
	return t
}

func validateSource(prefix, startURL string, pages int, files []string) error {
	if startURL != "" && len(files) > 0 {
		return fmt.Errorf("%w: %s: startURL and files are mutually exclusive", ErrInvalidValue, prefix)
	}
	if err := validateFieldLength(prefix+".startURL", startURL, MaxURLLength); err != nil {
		return err
	}
	if startURL != "" && !fileutil.IsURL(startURL) {
		return fmt.Errorf("%w: %s.startURL: must be an http(s) URL, got %q", ErrInvalidValue, prefix, startURL)
	}
	if pages < 0 || pages > MaxPages {
		return fmt.Errorf("%w: %s.pages: must be between 0 and %d, got %d", ErrInvalidValue, prefix, MaxPages, pages)
	}
	if len(files) > MaxPages {
		return fmt.Errorf("%w: %s.files: at most %d, got %d", ErrInvalidValue, prefix, MaxPages, len(files))
	}
	for i, f := range files {
		if err := validateFieldLength(fmt.Sprintf("%s.files[%d]", prefix, i), f, MaxPathLength); err != nil {
			return err
		}
	}
	return nil
}

func validateTriggers(prefix string, t TriggerConfig) error {
	if err := validateFieldLength(prefix+".act", t.Act, MaxTriggerLength); err != nil {
		return err
	}
	if err := validateFieldLength(prefix+".scene", t.Scene, MaxTriggerLength); err != nil {
		return err
	}
	return validateFieldLength(prefix+".containerID", t.ContainerID, MaxIDLength)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// the markup conventions of projekt-gutenberg.org and polite fetch settings.
func DefaultConfig() *Config {
	return &Config{
		Triggers: TriggerConfig{
			Act:         html2tei.DefaultActTrigger,
			Scene:       html2tei.DefaultSceneTrigger,
			ContainerID: html2tei.DefaultContainerID,
		},
		Fetch: FetchConfig{
			Timeout: fetch.DefaultTimeout.String(),
			Rate:    fetch.DefaultRate,
			Workers: 4,
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields missing from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-html2tei/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, AppName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
