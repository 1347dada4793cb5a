package tei

// Notes:
// - Assertions use substring checks on the serialized XML so indentation
//   details do not make tests brittle

import (
	"strings"
	"testing"
)

func TestMarshal_Skeleton(t *testing.T) {
	t.Parallel()

	got, err := Marshal(NewDocument("Die Weber", "Hauptmann, Gerhart"))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	out := string(got)

	wantContains := []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<TEI xmlns="http://www.tei-c.org/ns/1.0">`,
		`<title>Die Weber</title>`,
		`<author>Hauptmann, Gerhart</author>`,
		`<language ident="de" usage="100">German</language>`,
		`<listPerson/>`,
		`<body/>`,
	}
	for _, want := range wantContains {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}

	wantExcludes := []string{"publicationStmt", "sourceDesc"}
	for _, ex := range wantExcludes {
		if strings.Contains(out, ex) {
			t.Errorf("output should not contain %q", ex)
		}
	}
}

func TestMarshal_Body(t *testing.T) {
	t.Parallel()

	b := NewBuilder(NewDocument("T", "A"))
	b.AddAct()
	b.AddScene()
	b.AddStage("Eine Stube")
	b.AddSpeech("MARIA.")
	_, _ = b.AddParagraph("Hallo")
	_, _ = b.AddInnerStage("lacht")
	_, _ = b.AddLineGroup([]string{"Eins", "Zwei"})
	doc := b.Finalize()

	got, err := Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	out := string(got)

	ordered := []string{
		`<person xml:id="maria">`,
		`<persName>MARIA</persName>`,
		`<div type="act">`,
		`<div type="scene">`,
		`<stage>Eine Stube</stage>`,
		`<sp who="#maria">`,
		`<speaker>MARIA</speaker>`,
		`<p>Hallo</p>`,
		`<stage>lacht</stage>`,
		`<lg>`,
		`<l>Eins</l>`,
		`<l>Zwei</l>`,
	}
	pos := 0
	for _, want := range ordered {
		idx := strings.Index(out[pos:], want)
		if idx < 0 {
			t.Fatalf("output missing %q after offset %d\n%s", want, pos, out)
		}
		pos += idx + len(want)
	}
}

func TestMarshal_PublicationAndSources(t *testing.T) {
	t.Parallel()

	doc := NewDocument("T", "A")
	doc.Header.Publisher = "go-html2tei"
	doc.Header.Date = "2026-10-18"
	doc.Header.Sources = []string{"https://example.org/buch/1", "https://example.org/buch/2"}

	got, err := Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	out := string(got)

	wantContains := []string{
		`<publisher>go-html2tei</publisher>`,
		`<date when="2026-10-18">2026-10-18</date>`,
		`<ref target="https://example.org/buch/1">https://example.org/buch/1</ref>`,
		`<ref target="https://example.org/buch/2">https://example.org/buch/2</ref>`,
	}
	for _, want := range wantContains {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Index(out, "publicationStmt") > strings.Index(out, "sourceDesc") {
		t.Error("publicationStmt must precede sourceDesc")
	}
}

func TestMarshal_EscapesText(t *testing.T) {
	t.Parallel()

	b := NewBuilder(NewDocument("Kabale & Liebe", "Schiller"))
	b.AddStage("<leise>")

	got, err := Marshal(b.Finalize())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	out := string(got)
	if !strings.Contains(out, "Kabale &amp; Liebe") {
		t.Errorf("title not escaped:\n%s", out)
	}
	if !strings.Contains(out, "&lt;leise&gt;") {
		t.Errorf("stage not escaped:\n%s", out)
	}
}

func TestMarshal_NonISODate(t *testing.T) {
	t.Parallel()

	doc := NewDocument("T", "A")
	doc.Header.Date = "18. Oktober 2026"

	got, err := Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(got), `<date>18. Oktober 2026</date>`) {
		t.Errorf("non-ISO date should be written without @when\n%s", got)
	}
}
