package report

import (
	"fmt"
	"strings"
)

// ExcerptLines is the number of XML lines included in a report.
const ExcerptLines = 40

// Markdown renders s as a Markdown document. The first ExcerptLines lines
// of excerpt are appended as a fenced XML block; a nil excerpt omits it.
func Markdown(s Summary, excerpt []byte) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", escapeCell(s.Title))
	fmt.Fprintf(&b, "%s\n\n", escapeCell(s.Author))

	b.WriteString("## Structure\n\n")
	b.WriteString("| Element | Count |\n|---|---:|\n")
	rows := []struct {
		label string
		n     int
	}{
		{"Acts", s.Acts},
		{"Scenes", s.Scenes},
		{"Speeches", s.Speeches},
		{"Paragraphs", s.Paragraphs},
		{"Verse lines", s.Lines},
		{"Stage directions", s.StageDirections},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %d |\n", r.label, r.n)
	}

	b.WriteString("\n## Cast\n\n")
	if len(s.Speakers) == 0 {
		b.WriteString("No speakers found.\n")
	} else {
		b.WriteString("| ID | Name | Speeches |\n|---|---|---:|\n")
		for _, sp := range s.Speakers {
			fmt.Fprintf(&b, "| `%s` | %s | %d |\n", sp.ID, escapeCell(sp.Name), sp.Speeches)
		}
	}

	if excerpt != nil {
		b.WriteString("\n## Excerpt\n\n```xml\n")
		b.WriteString(firstLines(string(excerpt), ExcerptLines))
		b.WriteString("\n```\n")
	}
	return b.String()
}

// firstLines returns at most n lines of s without a trailing newline.
func firstLines(s string, n int) string {
	lines := strings.SplitN(strings.TrimRight(s, "\n"), "\n", n+1)
	if len(lines) > n {
		lines = append(lines[:n], "...")
	}
	return strings.Join(lines, "\n")
}

// escapeCell keeps table cells and headings on one line and stops pipes
// from splitting cells.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
