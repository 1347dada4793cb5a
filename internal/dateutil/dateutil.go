// Package dateutil resolves the "auto" values of the TEI header date.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// DefaultDateFormat is used for "auto". It is the only format TEI accepts
// in date/@when.
const DefaultDateFormat = "YYYY-MM-DD"

// Month name languages.
const (
	English = "en"
	German  = "de"
)

var monthNames = map[string][12]string{
	English: {"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	German: {"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember"},
}

// preset is a named format with the language of its month names.
type preset struct {
	format string
	lang   string
}

// presets provides named shortcuts for common date formats.
var presets = map[string]preset{
	"iso":     {"YYYY-MM-DD", English},
	"de":      {"DD.MM.YYYY", German},
	"de-long": {"D. MMMM YYYY", German},
	"us":      {"MM/DD/YYYY", English},
	"long":    {"MMMM D, YYYY", English},
}

// Presets returns the preset names, for help output.
func Presets() []string {
	return []string{"iso", "de", "de-long", "us", "long"}
}

// Format renders t with a token format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D. Month names are in lang
// (English if unknown); MMM is the first three letters of the name.
// Use brackets to escape literal text: [Stand] preserves "Stand" literally.
// Any non-token characters outside brackets are preserved as literals.
// Returns ErrInvalidDateFormat if the format is empty, too long, or has unclosed brackets.
func Format(format string, t time.Time, lang string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	names, ok := monthNames[lang]
	if !ok {
		names = monthNames[English]
	}
	month := names[t.Month()-1]

	// Longest tokens first so "MMMM" is not read as "MM" twice.
	tokens := []struct {
		token string
		value string
	}{
		{"YYYY", fmt.Sprintf("%04d", t.Year())},
		{"MMMM", month},
		{"MMM", string([]rune(month)[:3])},
		{"YY", fmt.Sprintf("%02d", t.Year()%100)},
		{"MM", fmt.Sprintf("%02d", int(t.Month()))},
		{"DD", fmt.Sprintf("%02d", t.Day())},
		{"M", strconv.Itoa(int(t.Month()))},
		{"D", strconv.Itoa(t.Day())},
	}

	var result strings.Builder
	result.Grow(len(format) + 10)

	i := 0
	for i < len(format) {
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			result.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, tok := range tokens {
			if strings.HasPrefix(format[i:], tok.token) {
				result.WriteString(tok.value)
				i += len(tok.token)
				matched = true
				break
			}
		}

		if !matched {
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}

// ResolveDate handles "auto" and "auto:FORMAT" syntax for date values.
// - "auto" → current date in YYYY-MM-DD format
// - "auto:FORMAT" → current date in custom format (e.g., "auto:DD.MM.YYYY")
// - "auto:preset" → current date using a named preset (see Presets)
// - any other value → returned unchanged (passthrough)
//
// The time parameter allows injecting a fixed time for testing.
func ResolveDate(value string, t time.Time) (string, error) {
	lower := strings.ToLower(value)

	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}

	if lower == "auto" {
		return Format(DefaultDateFormat, t, English)
	}

	if !strings.HasPrefix(lower, "auto:") {
		return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	}

	// Preserve original case for format tokens
	formatPart := value[len("auto:"):]
	if formatPart == "" {
		return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
	}

	if p, ok := presets[strings.ToLower(formatPart)]; ok {
		return Format(p.format, t, p.lang)
	}
	return Format(formatPart, t, English)
}
