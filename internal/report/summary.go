// Package report summarizes a converted drama for review: structure counts,
// speeches per cast member and an excerpt of the XML, rendered as Markdown
// or standalone HTML.
package report

import (
	"cmp"
	"slices"
	"strings"

	"github.com/alnah/go-html2tei/internal/tei"
)

// Summary holds the counts shown in a report.
type Summary struct {
	Title           string
	Author          string
	Acts            int
	Scenes          int
	Speeches        int
	Paragraphs      int
	Lines           int
	StageDirections int
	Speakers        []SpeakerCount
}

// SpeakerCount is the number of speeches of one cast member.
type SpeakerCount struct {
	ID       string
	Name     string
	Speeches int
}

// Summarize counts the structure of doc. Speakers are sorted by number of
// speeches, most first, then by ID.
func Summarize(doc *tei.Document) Summary {
	s := Summary{Title: doc.Header.Title, Author: doc.Header.Author}

	counts := make(map[string]*SpeakerCount)
	for _, c := range doc.Header.Cast {
		counts[c.ID] = &SpeakerCount{ID: c.ID, Name: c.Name}
	}

	doc.Walk(func(n tei.Node) {
		switch v := n.(type) {
		case *tei.Division:
			if v.Type == tei.Act {
				s.Acts++
			} else {
				s.Scenes++
			}
		case *tei.Speech:
			s.Speeches++
			id := strings.TrimPrefix(v.Who, "#")
			sc, ok := counts[id]
			if !ok {
				// Document not finalized; fall back to the speech label.
				sc = &SpeakerCount{ID: id, Name: v.Speaker}
				counts[id] = sc
			}
			sc.Speeches++
		case *tei.Paragraph:
			s.Paragraphs++
		case *tei.LineGroup:
			s.Lines += len(v.Lines)
		case *tei.StageDirection:
			s.StageDirections++
		}
	})

	s.Speakers = make([]SpeakerCount, 0, len(counts))
	for _, sc := range counts {
		s.Speakers = append(s.Speakers, *sc)
	}
	slices.SortFunc(s.Speakers, func(a, b SpeakerCount) int {
		if c := cmp.Compare(b.Speeches, a.Speeches); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return s
}
