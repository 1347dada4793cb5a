package html2tei

import "strings"

// OutputFilename returns the file name for a converted drama:
// the author's last name and the title, lowercased, spaces replaced by
// underscores, with an .xml extension.
//
//	OutputFilename("Hauptmann, Gerhart", "Die Weber") // "hauptmann_die_weber.xml"
//
// The author's last name is the part before the first ", ". Path separators
// are replaced so the result is always a single path element.
func OutputFilename(author, title string) string {
	last, _, _ := strings.Cut(author, ", ")
	name := strings.ToLower(last) + "_" + strings.ToLower(strings.ReplaceAll(title, " ", "_"))
	name = strings.NewReplacer("/", "_", "\\", "_", "\x00", "").Replace(name)
	return name + ".xml"
}
