package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		quiet, verbose bool
		wantDebug      bool
		wantInfo       bool
	}{
		{"default", false, false, false, true},
		{"verbose", false, true, true, true},
		{"quiet", true, false, false, false},
		{"quiet wins", true, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := newLogger(&buf, tt.quiet, tt.verbose)
			log.Debug().Msg("debug line")
			log.Info().Msg("info line")
			log.Error().Msg("error line")

			out := buf.String()
			if strings.Contains(out, "debug line") != tt.wantDebug {
				t.Errorf("debug shown = %v, want %v", !tt.wantDebug, tt.wantDebug)
			}
			if strings.Contains(out, "info line") != tt.wantInfo {
				t.Errorf("info shown = %v, want %v", !tt.wantInfo, tt.wantInfo)
			}
			if !strings.Contains(out, "error line") {
				t.Error("errors must always be shown")
			}
		})
	}
}
