package tei

import (
	"slices"
	"strings"
)

// CastList collects the display names of all speeches in the body and
// returns one entry per speaker ID, sorted by display name.
//
// Names are compared as written (trailing periods removed). Two names that
// differ only in case or a trailing period map to the same ID; the entry keeps
// the name that sorts first, so IDs stay unique.
func CastList(doc *Document) []CastEntry {
	seen := make(map[string]bool)
	var names []string
	doc.Walk(func(n Node) {
		sp, ok := n.(*Speech)
		if !ok {
			return
		}
		name := strings.TrimRight(sp.Speaker, ".")
		if seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	})
	slices.Sort(names)

	ids := make(map[string]bool, len(names))
	cast := make([]CastEntry, 0, len(names))
	for _, name := range names {
		id := SpeakerID(name)
		if ids[id] {
			continue
		}
		ids[id] = true
		cast = append(cast, CastEntry{ID: id, Name: name})
	}
	return cast
}

// Finalize fills the header cast list from the body. It is meant to run
// once, after the last page; calling it again rebuilds the list.
func (b *Builder) Finalize() *Document {
	b.doc.Header.Cast = CastList(b.doc)
	return b.doc
}
