// Package html2tei converts stage plays published as HTML pages into TEI P5
// XML documents.
//
// # Quick Start
//
// Convert a set of already fetched pages in one call:
//
//	result, err := html2tei.Convert(ctx, html2tei.Metadata{
//	    Title:  "Die Weber",
//	    Author: "Hauptmann, Gerhart",
//	}, pages)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(html2tei.OutputFilename("Hauptmann, Gerhart", "Die Weber"), result.XML, 0o644)
//
// For streaming use, create a Converter, add parsed pages in reading order and
// finalize:
//
//	conv, err := html2tei.NewConverter(meta, html2tei.WithActTrigger("Aufzug"))
//	for _, r := range readers {
//	    doc, err := html2tei.ParsePage(r)
//	    ...
//	    if err := conv.AddPage(doc); err != nil { ... }
//	}
//	document := conv.Finalize()
//
// # Source Markup
//
// The text is read from the direct children of the element with id "gutenb"
// (see WithContainerID):
//
//   - h1..h6 containing "Akt" open an act, containing "Szene" a scene
//   - p.vers is a verse block (one line per text run)
//   - p.stage is a stage direction between speeches
//   - in unclassed paragraphs, span.speaker starts a speech, span.regie is a
//     stage direction inside it, span.stage one between speeches, and free
//     text is the speech's prose
//
// Unknown classes are skipped. A verse block or inner stage direction before
// the first speaker fails with ErrNoActiveSpeech.
//
// # Output
//
// Speaker references are derived from the display name (see SpeakerID). The
// header's listPerson is built from all speakers when the converter is
// finalized.
package html2tei

import "github.com/alnah/go-html2tei/internal/tei"

// SpeakerID returns the identifier used in sp@who and person@xml:id for a
// speaker display name.
func SpeakerID(name string) string {
	return tei.SpeakerID(name)
}
