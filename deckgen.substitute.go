package deckgen

import (
	"regexp"
	"strings"

	"github.com/siliconcp/go-deckgen/internal"
)

// unresolvedTokenHeadRe matches a token-shaped string anchored at the
// start of the remaining flat text.
var unresolvedTokenHeadRe = regexp.MustCompile(`^` + PlaceholderPattern)

// substitutePart rewrites one slide or notes part: declared tokens are
// replaced with their resolved values, and in notes parts the tag
// markers are removed as well. The second return lists token-shaped
// strings the catalog does not declare; those stay in the text. A part
// without any match is returned unchanged, byte for byte, with the
// third return false.
func substitutePart(part []byte, values map[string]string, order []string, stripMarkers bool) ([]byte, []string, bool) {
	var splices []internal.Splice
	var unresolved []string
	for _, para := range internal.ParseParagraphs(part) {
		flat := para.FlatText()
		if flat == "" {
			continue
		}
		edits, missing := matchTokens(flat, values, order)
		if stripMarkers {
			edits = append(edits, markerEdits(flat)...)
		}
		unresolved = append(unresolved, missing...)
		if len(edits) == 0 {
			continue
		}
		splices = append(splices, internal.ApplyEdits(para, edits)...)
	}
	if len(splices) == 0 {
		return part, unresolved, false
	}
	return internal.ApplySplices(part, splices), unresolved, true
}

// matchTokens scans a paragraph's flat text for placeholder tokens.
// Declared tokens become edits; token-shaped strings the catalog does
// not declare are reported and skipped. Matching runs over the flat
// text, so tokens split across formatting runs still match.
func matchTokens(flat string, values map[string]string, order []string) ([]internal.Edit, []string) {
	var edits []internal.Edit
	var unresolved []string
	pos := 0
	for {
		i := strings.Index(flat[pos:], TokenOpen)
		if i < 0 {
			break
		}
		at := pos + i
		matched := false
		for _, token := range order {
			if strings.HasPrefix(flat[at:], token) {
				edits = append(edits, internal.Edit{Start: at, End: at + len(token), Text: values[token]})
				pos = at + len(token)
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		if m := unresolvedTokenHeadRe.FindString(flat[at:]); m != "" {
			unresolved = append(unresolved, m)
			pos = at + len(m)
			continue
		}
		pos = at + len(TokenOpen)
	}
	return edits, unresolved
}

// markerEdits deletes every tag marker from the flat text.
func markerEdits(flat string) []internal.Edit {
	spans := tagMarkerRe.FindAllStringIndex(flat, -1)
	if len(spans) == 0 {
		return nil
	}
	edits := make([]internal.Edit, 0, len(spans))
	for _, span := range spans {
		edits = append(edits, internal.Edit{Start: span[0], End: span[1]})
	}
	return edits
}
