package deckgen

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/siliconcp/go-deckgen/internal"
)

// In-memory presentation fixtures. Every test deck is assembled from
// these shells; no file on disk is ever involved.

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const fixtureRootRels = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/></Relationships>`

const fixtureSlideMaster = xmlHeader + `<p:sldMaster xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:spTree/></p:cSld></p:sldMaster>`

const relTypeSlideMaster = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"

const relTypeSlideLayout = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"

// deckSlide describes one fixture slide: its paragraphs, each a list
// of run texts, plus optional speaker notes text.
type deckSlide struct {
	paragraphs [][]string
	notes      string
}

// textSlide builds a slide with one single-run paragraph per text.
func textSlide(texts ...string) deckSlide {
	var s deckSlide
	for _, text := range texts {
		s.paragraphs = append(s.paragraphs, []string{text})
	}
	return s
}

// withNotes attaches speaker notes to a slide.
func (s deckSlide) withNotes(notes string) deckSlide {
	s.notes = notes
	return s
}

// buildDeck assembles a minimal presentation package from the given
// slides. Slide n lives at ppt/slides/slide<n>.xml and is wired
// through the presentation part, the rels, and the content types the
// same way a real package is.
func buildDeck(t *testing.T, slides ...deckSlide) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	write := func(name, content string) {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}

	write(internal.PartContentTypes, contentTypesXML(slides))
	write("_rels/.rels", fixtureRootRels)
	write(internal.PartPresentation, presentationXML(len(slides)))
	write(internal.PartPresentationRels, presentationRelsXML(slides))
	write("ppt/slideMasters/slideMaster1.xml", fixtureSlideMaster)

	for i, slide := range slides {
		n := i + 1
		write(fmt.Sprintf("ppt/slides/slide%d.xml", n), slidePartXML(slide.paragraphs))
		write(fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), slideRelsXML(n, slide.notes != ""))
		if slide.notes != "" {
			write(fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", n), notesPartXML(slide.notes))
			write(fmt.Sprintf("ppt/notesSlides/_rels/notesSlide%d.xml.rels", n), notesRelsXML(n))
		}
	}

	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func contentTypesXML(slides []deckSlide) string {
	var b bytes.Buffer
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	b.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	for i, slide := range slides {
		n := i + 1
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, n)
		if slide.notes != "" {
			fmt.Fprintf(&b, `<Override PartName="/ppt/notesSlides/notesSlide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.notesSlide+xml"/>`, n)
		}
	}
	b.WriteString(`</Types>`)
	return b.String()
}

func presentationXML(slideCount int) string {
	var b bytes.Buffer
	b.WriteString(xmlHeader)
	b.WriteString(`<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`)
	b.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	b.WriteString(`<p:sldIdLst>`)
	for i := 0; i < slideCount; i++ {
		fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, i+2)
	}
	b.WriteString(`</p:sldIdLst>`)
	b.WriteString(`<p:sldSz cx="12192000" cy="6858000"/>`)
	b.WriteString(`</p:presentation>`)
	return b.String()
}

func presentationRelsXML(slides []deckSlide) string {
	var b bytes.Buffer
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	fmt.Fprintf(&b, `<Relationship Id="rId1" Type="%s" Target="slideMasters/slideMaster1.xml"/>`, relTypeSlideMaster)
	for i := range slides {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="%s" Target="slides/slide%d.xml"/>`, i+2, internal.RelTypeSlide, i+1)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func slidePartXML(paragraphs [][]string) string {
	var body bytes.Buffer
	for _, runs := range paragraphs {
		body.WriteString(`<a:p>`)
		for i, text := range runs {
			if i%2 == 1 {
				body.WriteString(`<a:r><a:rPr lang="en-US" b="1"/><a:t>`)
			} else {
				body.WriteString(`<a:r><a:t>`)
			}
			body.WriteString(internal.EscapeText(text))
			body.WriteString(`</a:t></a:r>`)
		}
		body.WriteString(`</a:p>`)
	}
	return xmlHeader + `<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:spTree><p:sp><p:txBody><a:bodyPr/>` + body.String() + `</p:txBody></p:sp></p:spTree></p:cSld></p:sld>`
}

func notesPartXML(notes string) string {
	return xmlHeader + `<p:notes xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:spTree><p:sp><p:txBody><a:bodyPr/><a:p><a:r><a:t>` + internal.EscapeText(notes) + `</a:t></a:r></a:p></p:txBody></p:sp></p:spTree></p:cSld></p:notes>`
}

func slideRelsXML(n int, hasNotes bool) string {
	var b bytes.Buffer
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	fmt.Fprintf(&b, `<Relationship Id="rId1" Type="%s" Target="../slideLayouts/slideLayout1.xml"/>`, relTypeSlideLayout)
	if hasNotes {
		fmt.Fprintf(&b, `<Relationship Id="rId2" Type="%s" Target="../notesSlides/notesSlide%d.xml"/>`, internal.RelTypeNotesSlide, n)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func notesRelsXML(n int) string {
	return xmlHeader + fmt.Sprintf(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="../slides/slide%d.xml"/></Relationships>`, n)
}

// readDeckPart extracts one part from a serialized deck, or nil when
// the part is absent.
func readDeckPart(t *testing.T, deck []byte, name string) []byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(deck), int64(len(deck)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return data
	}
	return nil
}

// deckPartNames lists the part names of a serialized deck in archive
// order.
func deckPartNames(t *testing.T, deck []byte) []string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(deck), int64(len(deck)))
	require.NoError(t, err)
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names
}

// proposalRequest returns a fully populated valid render request.
func proposalRequest() *RenderRequest {
	return &RenderRequest{
		CompanyName:  "ACME GmbH",
		ContactName:  "Dana Vega",
		ContactEmail: "dana@acme.example",
		Program:      "Scale",
		ProposalDate: "2025-09-30",
		SlideToggles: map[string]bool{"annex_a": true},
		PricingOverrides: map[string]any{
			PlaceholderSetupFee:  6000,
			PlaceholderShortFee:  9000,
			PlaceholderFullFee:   24000,
			PlaceholderGrantFee:  "9%",
			PlaceholderEquityFee: "2%",
		},
	}
}
