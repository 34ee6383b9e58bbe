package internal

import (
	"bytes"
	"encoding/xml"
	"path"
	"regexp"
	"strings"
)

// Relationship is one entry of an OPC relationship part.
type Relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// relationshipList mirrors the XML shape of a .rels part.
type relationshipList struct {
	XMLName xml.Name       `xml:"Relationships"`
	Items   []Relationship `xml:"Relationship"`
}

// ParseRelationships decodes a .rels part.
func ParseRelationships(relsXML []byte) ([]Relationship, error) {
	var list relationshipList
	if err := xml.Unmarshal(relsXML, &list); err != nil {
		return nil, &ArchiveError{Message: ErrMsgRelsParse}
	}
	return list.Items, nil
}

// ResolveTarget resolves a relationship target against the directory of
// the source part. Absolute targets are package-rooted.
func ResolveTarget(baseDir, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(baseDir, target)
}

// RelsPartFor returns the relationship part name for a part.
func RelsPartFor(partName string) string {
	return path.Dir(partName) + "/_rels/" + path.Base(partName) + ".rels"
}

// NotesPartFor returns the notes part related to a slide, if any.
func NotesPartFor(slidePart string, slideRels []byte) (string, bool) {
	if len(slideRels) == 0 {
		return "", false
	}
	rels, err := ParseRelationships(slideRels)
	if err != nil {
		return "", false
	}
	for _, rel := range rels {
		if rel.Type == RelTypeNotesSlide {
			return ResolveTarget(path.Dir(slidePart), rel.Target), true
		}
	}
	return "", false
}

// SlideRef identifies one slide entry of the presentation part.
type SlideRef struct {
	SlideID  string // id attribute of the p:sldId element
	RelID    string // r:id attribute of the p:sldId element
	PartName string // resolved slide part name
}

var (
	slideIDListRe       = regexp.MustCompile(`<p:sldIdLst\b[^>]*>`)
	slideIDEntryRe      = regexp.MustCompile(`<p:sldId\b[^>]*/>`)
	idAttrRe            = regexp.MustCompile(`\sid="([^"]*)"`)
	relIDAttrRe         = regexp.MustCompile(`\sr:id="([^"]*)"`)
	relationshipEntryRe = regexp.MustCompile(`<Relationship\b[^>]*/>`)
	overrideEntryRe     = regexp.MustCompile(`<Override\b[^>]*/>`)
)

// ParseSlideRefs extracts the ordered slide list from presentation.xml
// and resolves each entry to its part name via the presentation rels.
// The order of the returned refs is the deck order.
func ParseSlideRefs(presXML, relsXML []byte) ([]SlideRef, error) {
	if !slideIDListRe.Match(presXML) {
		return nil, &ArchiveError{Message: ErrMsgNoSlideList, Part: PartPresentation}
	}
	rels, err := ParseRelationships(relsXML)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]Relationship, len(rels))
	for _, rel := range rels {
		byID[rel.ID] = rel
	}

	var refs []SlideRef
	for _, m := range slideIDEntryRe.FindAll(presXML, -1) {
		ref := SlideRef{}
		if g := idAttrRe.FindSubmatch(m); g != nil {
			ref.SlideID = string(g[1])
		}
		if g := relIDAttrRe.FindSubmatch(m); g != nil {
			ref.RelID = string(g[1])
		}
		rel, ok := byID[ref.RelID]
		if !ok {
			return nil, &ArchiveError{Message: ErrMsgRelMissing, Part: ref.RelID}
		}
		ref.PartName = ResolveTarget(path.Dir(PartPresentation), rel.Target)
		refs = append(refs, ref)
	}
	return refs, nil
}

// RemoveSlideEntry removes the p:sldId element referencing relID from
// presentation.xml. The surrounding bytes are left untouched.
func RemoveSlideEntry(presXML []byte, relID string) ([]byte, bool) {
	return removeElement(presXML, slideIDEntryRe, `r:id="`+relID+`"`)
}

// RemoveRelationship removes the relationship entry with the given Id.
func RemoveRelationship(relsXML []byte, relID string) ([]byte, bool) {
	return removeElement(relsXML, relationshipEntryRe, `Id="`+relID+`"`)
}

// RemoveContentTypeOverride removes the Override entry for a part.
// Part names in [Content_Types].xml carry a leading slash.
func RemoveContentTypeOverride(ctXML []byte, partName string) ([]byte, bool) {
	return removeElement(ctXML, overrideEntryRe, `PartName="/`+partName+`"`)
}

// removeElement cuts the first element matched by re that contains
// needle, returning the shortened document and whether a cut happened.
func removeElement(src []byte, re *regexp.Regexp, needle string) ([]byte, bool) {
	want := []byte(needle)
	for _, loc := range re.FindAllIndex(src, -1) {
		if !bytes.Contains(src[loc[0]:loc[1]], want) {
			continue
		}
		out := make([]byte, 0, len(src)-(loc[1]-loc[0]))
		out = append(out, src[:loc[0]]...)
		out = append(out, src[loc[1]:]...)
		return out, true
	}
	return src, false
}
