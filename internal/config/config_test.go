package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Triggers.Act != "Akt" {
		t.Errorf("Triggers.Act = %q, want %q", cfg.Triggers.Act, "Akt")
	}
	if cfg.Triggers.Scene != "Szene" {
		t.Errorf("Triggers.Scene = %q, want %q", cfg.Triggers.Scene, "Szene")
	}
	if cfg.Triggers.ContainerID != "gutenb" {
		t.Errorf("Triggers.ContainerID = %q, want %q", cfg.Triggers.ContainerID, "gutenb")
	}
	if cfg.Fetch.Browser {
		t.Error("Fetch.Browser = true, want false")
	}
	if d, err := cfg.Fetch.TimeoutDuration(); err != nil || d != 30*time.Second {
		t.Errorf("Fetch.TimeoutDuration() = (%v, %v), want 30s", d, err)
	}
	if cfg.Output.Report != ReportNone {
		t.Errorf("Output.Report = %q, want empty", cfg.Output.Report)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		maxLength int
		wantErr   bool
	}{
		{
			name:      "empty value is valid",
			fieldName: "test",
			value:     "",
			maxLength: 10,
			wantErr:   false,
		},
		{
			name:      "value at limit is valid",
			fieldName: "test",
			value:     "1234567890",
			maxLength: 10,
			wantErr:   false,
		},
		{
			name:      "value over limit returns error",
			fieldName: "test.field",
			value:     "12345678901",
			maxLength: 10,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength(tt.fieldName, tt.value, tt.maxLength)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
				if !strings.Contains(err.Error(), tt.fieldName) {
					t.Errorf("error should name the field %q: %v", tt.fieldName, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	long := func(n int) string { return strings.Repeat("x", n) }

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:    "defaults are valid",
			modify:  func(*Config) {},
			wantErr: nil,
		},
		{
			name: "complete single drama",
			modify: func(c *Config) {
				c.Drama = DramaConfig{Title: "Die Weber", Author: "Hauptmann, Gerhart", Date: "auto"}
				c.Source = SourceConfig{StartURL: "https://example.org/weber/1", Pages: 5}
				c.Output.Report = ReportHTML
			},
			wantErr: nil,
		},
		{
			name:    "title too long",
			modify:  func(c *Config) { c.Drama.Title = long(MaxTitleLength + 1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "author too long",
			modify:  func(c *Config) { c.Drama.Author = long(MaxAuthorLength + 1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "trigger too long",
			modify:  func(c *Config) { c.Triggers.Act = long(MaxTriggerLength + 1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name: "url and files together",
			modify: func(c *Config) {
				c.Source = SourceConfig{StartURL: "https://example.org/1", Files: []string{"a.html"}}
			},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "start url not http",
			modify:  func(c *Config) { c.Source.StartURL = "ftp://example.org/1" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative pages",
			modify:  func(c *Config) { c.Source.Pages = -1 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "too many pages",
			modify:  func(c *Config) { c.Source.Pages = MaxPages + 1 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "bad timeout",
			modify:  func(c *Config) { c.Fetch.Timeout = "soon" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative timeout",
			modify:  func(c *Config) { c.Fetch.Timeout = "-1s" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative rate",
			modify:  func(c *Config) { c.Fetch.Rate = -0.5 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "too many workers",
			modify:  func(c *Config) { c.Fetch.Workers = MaxWorkers + 1 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "unknown report format",
			modify:  func(c *Config) { c.Output.Report = "pdf" },
			wantErr: ErrInvalidValue,
		},
		{
			name: "valid jobs",
			modify: func(c *Config) {
				c.Jobs = []JobConfig{
					{Title: "Die Weber", Author: "Hauptmann, Gerhart", StartURL: "https://example.org/weber/1", Pages: 3},
					{Title: "Faust", Author: "Goethe", Files: []string{"faust1.html", "faust2.html"}, Triggers: TriggerConfig{Act: "Teil"}},
				}
			},
			wantErr: nil,
		},
		{
			name: "job without author",
			modify: func(c *Config) {
				c.Jobs = []JobConfig{{Title: "Faust", Files: []string{"f.html"}}}
			},
			wantErr: ErrInvalidValue,
		},
		{
			name: "job without source",
			modify: func(c *Config) {
				c.Jobs = []JobConfig{{Title: "Faust", Author: "Goethe"}}
			},
			wantErr: ErrInvalidValue,
		},
		{
			name: "job trigger too long",
			modify: func(c *Config) {
				c.Jobs = []JobConfig{{Title: "Faust", Author: "Goethe", Files: []string{"f.html"}, Triggers: TriggerConfig{Scene: long(MaxTriggerLength + 1)}}}
			},
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTriggerConfig_Merge(t *testing.T) {
	fallback := TriggerConfig{Act: "Akt", Scene: "Szene", ContainerID: "gutenb"}

	got := TriggerConfig{Act: "Aufzug"}.Merge(fallback)
	want := TriggerConfig{Act: "Aufzug", Scene: "Szene", ContainerID: "gutenb"}
	if got != want {
		t.Errorf("Merge() = %+v, want %+v", got, want)
	}

	if got := (TriggerConfig{}).Merge(fallback); got != fallback {
		t.Errorf("empty Merge() = %+v, want fallback", got)
	}
}

func TestValidateReport(t *testing.T) {
	for _, f := range []string{"", "md", "html"} {
		if err := ValidateReport(f); err != nil {
			t.Errorf("ValidateReport(%q) = %v", f, err)
		}
	}
	for _, f := range []string{"MD", "markdown", "pdf"} {
		if err := ValidateReport(f); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("ValidateReport(%q) = %v, want ErrInvalidValue", f, err)
		}
	}
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		configPath := writeConfig(t, t.TempDir(), "weber.yaml", `drama:
  title: "Die Weber"
  author: "Hauptmann, Gerhart"
source:
  startURL: "https://www.projekt-gutenberg.org/hauptman/weber/1"
  pages: 6
fetch:
  rate: 1.5
  timeout: "1m"
output:
  report: md
`)

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Drama.Title != "Die Weber" || cfg.Drama.Author != "Hauptmann, Gerhart" {
			t.Errorf("Drama = %+v", cfg.Drama)
		}
		if cfg.Source.Pages != 6 {
			t.Errorf("Source.Pages = %d, want 6", cfg.Source.Pages)
		}
		if cfg.Fetch.Rate != 1.5 {
			t.Errorf("Fetch.Rate = %v, want 1.5", cfg.Fetch.Rate)
		}
		if d, _ := cfg.Fetch.TimeoutDuration(); d != time.Minute {
			t.Errorf("Fetch.Timeout = %v, want 1m", d)
		}
		if cfg.Output.Report != ReportMarkdown {
			t.Errorf("Output.Report = %q, want md", cfg.Output.Report)
		}
	})

	t.Run("missing sections keep defaults", func(t *testing.T) {
		configPath := writeConfig(t, t.TempDir(), "partial.yaml", "triggers:\n  act: Aufzug\n")

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Triggers.Act != "Aufzug" {
			t.Errorf("Triggers.Act = %q, want Aufzug", cfg.Triggers.Act)
		}
		if cfg.Triggers.Scene != "Szene" || cfg.Triggers.ContainerID != "gutenb" {
			t.Errorf("Triggers = %+v, want default scene and container", cfg.Triggers)
		}
		if cfg.Fetch.Workers != 4 {
			t.Errorf("Fetch.Workers = %d, want 4", cfg.Fetch.Workers)
		}
	})

	t.Run("loads jobs", func(t *testing.T) {
		configPath := writeConfig(t, t.TempDir(), "batch.yaml", `jobs:
  - title: "Die Weber"
    author: "Hauptmann, Gerhart"
    startURL: "https://example.org/weber/1"
    pages: 5
  - title: "Minna von Barnhelm"
    author: "Lessing, Gotthold Ephraim"
    files: [minna1.html, minna2.html]
    triggers:
      act: Aufzug
      scene: Auftritt
`)

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if len(cfg.Jobs) != 2 {
			t.Fatalf("len(Jobs) = %d, want 2", len(cfg.Jobs))
		}
		if cfg.Jobs[1].Triggers.Scene != "Auftritt" || len(cfg.Jobs[1].Files) != 2 {
			t.Errorf("Jobs[1] = %+v", cfg.Jobs[1])
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		configPath := writeConfig(t, t.TempDir(), "invalid.yaml", "drama: [unclosed")

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		configPath := writeConfig(t, t.TempDir(), "unknown.yaml", "drama:\n  title: x\nunknownField: \"should fail\"\n")

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("field too long returns ErrFieldTooLong", func(t *testing.T) {
		longName := strings.Repeat("a", MaxAuthorLength+1)
		configPath := writeConfig(t, t.TempDir(), "toolong.yaml", "drama:\n  author: \""+longName+"\"\n")

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("error = %v, want ErrFieldTooLong", err)
		}
	})

	t.Run("unreadable file returns read error not ErrConfigNotFound", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("root can read files without permission")
		}
		configPath := writeConfig(t, t.TempDir(), "unreadable.yaml", "drama:\n  title: x\n")
		if err := os.Chmod(configPath, 0000); err != nil {
			t.Fatalf("setup chmod: %v", err)
		}
		defer os.Chmod(configPath, 0600)

		_, err := LoadConfig(configPath)
		if err == nil {
			t.Fatal("expected error for unreadable file")
		}
		if errors.Is(err, ErrConfigNotFound) {
			t.Error("error should not be ErrConfigNotFound for permission error")
		}
	})

	t.Run("config name resolves yaml in current directory", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "myconfig.yml", "drama:\n  title: fromname\n")
		t.Chdir(dir)

		cfg, err := LoadConfig("myconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Drama.Title != "fromname" {
			t.Errorf("Drama.Title = %q, want fromname", cfg.Drama.Title)
		}
	})

	t.Run("config name resolves in user config directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
		t.Chdir(t.TempDir())

		userDir, err := os.UserConfigDir()
		if err != nil {
			t.Skipf("no user config dir: %v", err)
		}
		if err := os.MkdirAll(filepath.Join(userDir, AppName), 0o755); err != nil {
			t.Fatal(err)
		}
		writeConfig(t, filepath.Join(userDir, AppName), "gutenberg.yaml", "fetch:\n  browser: true\n")

		cfg, err := LoadConfig("gutenberg")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if !cfg.Fetch.Browser {
			t.Error("Fetch.Browser = false, want true")
		}
	})

	t.Run("unknown config name lists searched paths", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := LoadConfig("nope")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "nope.yaml") || !strings.Contains(err.Error(), "nope.yml") {
			t.Errorf("error should list tried paths: %v", err)
		}
	})
}
