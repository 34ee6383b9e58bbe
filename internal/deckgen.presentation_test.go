package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPresentationXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<p:presentation xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">` +
	`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>` +
	`<p:sldIdLst><p:sldId id="256" r:id="rId2"/><p:sldId id="257" r:id="rId3"/><p:sldId id="258" r:id="rId4"/></p:sldIdLst>` +
	`</p:presentation>`

const testPresentationRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide1.xml"/>` +
	`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide2.xml"/>` +
	`<Relationship Id="rId4" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide3.xml"/>` +
	`</Relationships>`

func TestParseSlideRefs(t *testing.T) {
	t.Run("ordered refs with resolved parts", func(t *testing.T) {
		refs, err := ParseSlideRefs([]byte(testPresentationXML), []byte(testPresentationRels))
		require.NoError(t, err)
		require.Len(t, refs, 3)

		assert.Equal(t, "256", refs[0].SlideID)
		assert.Equal(t, "rId2", refs[0].RelID)
		assert.Equal(t, "ppt/slides/slide1.xml", refs[0].PartName)

		assert.Equal(t, "258", refs[2].SlideID)
		assert.Equal(t, "rId4", refs[2].RelID)
		assert.Equal(t, "ppt/slides/slide3.xml", refs[2].PartName)
	})

	t.Run("missing slide id list", func(t *testing.T) {
		_, err := ParseSlideRefs([]byte(`<p:presentation/>`), []byte(testPresentationRels))
		require.Error(t, err)
		var archiveErr *ArchiveError
		require.ErrorAs(t, err, &archiveErr)
		assert.Equal(t, ErrMsgNoSlideList, archiveErr.Message)
	})

	t.Run("dangling relationship id", func(t *testing.T) {
		pres := `<p:presentation><p:sldIdLst><p:sldId id="256" r:id="rId9"/></p:sldIdLst></p:presentation>`
		_, err := ParseSlideRefs([]byte(pres), []byte(testPresentationRels))
		require.Error(t, err)
		var archiveErr *ArchiveError
		require.ErrorAs(t, err, &archiveErr)
		assert.Equal(t, ErrMsgRelMissing, archiveErr.Message)
		assert.Equal(t, "rId9", archiveErr.Part)
	})

	t.Run("empty slide id list", func(t *testing.T) {
		pres := `<p:presentation><p:sldIdLst/></p:presentation>`
		refs, err := ParseSlideRefs([]byte(pres), []byte(testPresentationRels))
		require.NoError(t, err)
		assert.Empty(t, refs)
	})

	t.Run("malformed rels part", func(t *testing.T) {
		_, err := ParseSlideRefs([]byte(testPresentationXML), []byte("<Relationships><unclosed"))
		require.Error(t, err)
	})
}

func TestRemoveSlideEntry(t *testing.T) {
	t.Run("removes middle entry", func(t *testing.T) {
		out, removed := RemoveSlideEntry([]byte(testPresentationXML), "rId3")
		assert.True(t, removed)
		assert.NotContains(t, string(out), `r:id="rId3"`)
		assert.Contains(t, string(out), `r:id="rId2"`)
		assert.Contains(t, string(out), `r:id="rId4"`)

		refs, err := ParseSlideRefs(out, []byte(testPresentationRels))
		require.NoError(t, err)
		require.Len(t, refs, 2)
		assert.Equal(t, "ppt/slides/slide1.xml", refs[0].PartName)
		assert.Equal(t, "ppt/slides/slide3.xml", refs[1].PartName)
	})

	t.Run("unknown rel id untouched", func(t *testing.T) {
		out, removed := RemoveSlideEntry([]byte(testPresentationXML), "rId99")
		assert.False(t, removed)
		assert.Equal(t, testPresentationXML, string(out))
	})

	t.Run("master list not confused with slides", func(t *testing.T) {
		out, removed := RemoveSlideEntry([]byte(testPresentationXML), "rId1")
		assert.False(t, removed)
		assert.Contains(t, string(out), "sldMasterId")
	})
}

func TestRemoveRelationship(t *testing.T) {
	t.Run("removes target entry only", func(t *testing.T) {
		out, removed := RemoveRelationship([]byte(testPresentationRels), "rId3")
		assert.True(t, removed)
		assert.NotContains(t, string(out), `Id="rId3"`)
		assert.Contains(t, string(out), `Id="rId2"`)
		assert.Contains(t, string(out), `Id="rId4"`)
	})

	t.Run("id with shared prefix stays", func(t *testing.T) {
		rels := `<Relationships>` +
			`<Relationship Id="rId1" Type="t" Target="a.xml"/>` +
			`<Relationship Id="rId10" Type="t" Target="b.xml"/>` +
			`</Relationships>`
		out, removed := RemoveRelationship([]byte(rels), "rId1")
		assert.True(t, removed)
		assert.NotContains(t, string(out), `Target="a.xml"`)
		assert.Contains(t, string(out), `Id="rId10"`)
	})

	t.Run("unknown id untouched", func(t *testing.T) {
		out, removed := RemoveRelationship([]byte(testPresentationRels), "rId42")
		assert.False(t, removed)
		assert.Equal(t, testPresentationRels, string(out))
	})
}

func TestRemoveContentTypeOverride(t *testing.T) {
	ct := `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="xml" ContentType="application/xml"/>` +
		`<Override PartName="/ppt/slides/slide1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>` +
		`<Override PartName="/ppt/slides/slide2.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>` +
		`</Types>`

	t.Run("removes matching override", func(t *testing.T) {
		out, removed := RemoveContentTypeOverride([]byte(ct), "ppt/slides/slide2.xml")
		assert.True(t, removed)
		assert.NotContains(t, string(out), "slide2.xml")
		assert.Contains(t, string(out), "slide1.xml")
		assert.Contains(t, string(out), "Default Extension")
	})

	t.Run("unknown part untouched", func(t *testing.T) {
		out, removed := RemoveContentTypeOverride([]byte(ct), "ppt/slides/slide9.xml")
		assert.False(t, removed)
		assert.Equal(t, ct, string(out))
	})
}

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		name    string
		baseDir string
		target  string
		want    string
	}{
		{"sibling directory", "ppt", "slides/slide1.xml", "ppt/slides/slide1.xml"},
		{"parent traversal", "ppt/slides", "../notesSlides/notesSlide1.xml", "ppt/notesSlides/notesSlide1.xml"},
		{"package absolute", "ppt/slides", "/ppt/media/image1.png", "ppt/media/image1.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveTarget(tt.baseDir, tt.target))
		})
	}
}

func TestRelsPartFor(t *testing.T) {
	assert.Equal(t, "ppt/slides/_rels/slide1.xml.rels", RelsPartFor("ppt/slides/slide1.xml"))
	assert.Equal(t, "ppt/notesSlides/_rels/notesSlide2.xml.rels", RelsPartFor("ppt/notesSlides/notesSlide2.xml"))
}

func TestNotesPartFor(t *testing.T) {
	slideRels := `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>` +
		`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide" Target="../notesSlides/notesSlide1.xml"/>` +
		`</Relationships>`

	t.Run("notes relationship resolved", func(t *testing.T) {
		part, ok := NotesPartFor("ppt/slides/slide1.xml", []byte(slideRels))
		require.True(t, ok)
		assert.Equal(t, "ppt/notesSlides/notesSlide1.xml", part)
	})

	t.Run("no notes relationship", func(t *testing.T) {
		rels := `<Relationships><Relationship Id="rId1" Type="other" Target="x.xml"/></Relationships>`
		_, ok := NotesPartFor("ppt/slides/slide1.xml", []byte(rels))
		assert.False(t, ok)
	})

	t.Run("empty rels", func(t *testing.T) {
		_, ok := NotesPartFor("ppt/slides/slide1.xml", nil)
		assert.False(t, ok)
	})
}
