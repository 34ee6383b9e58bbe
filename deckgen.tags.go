package deckgen

import "regexp"

// tagMarkerRe matches [[tag:name]] markers in speaker notes text.
var tagMarkerRe = regexp.MustCompile(TagMarkerPattern)

// ParseTags extracts tag names from speaker notes, in order of first
// appearance, without duplicates. Malformed markers do not match and
// are ignored.
func ParseTags(notes string) []string {
	matches := tagMarkerRe.FindAllStringSubmatch(notes, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		tags = append(tags, m[1])
	}
	return tags
}

// EvaluateTags decides whether a slide carrying the given tags is
// kept. An untagged slide is always kept. A tagged slide is kept only
// when the toggle map sets every one of its tags to true; a tag
// missing from the map counts as false.
func EvaluateTags(tags []string, toggles map[string]bool) bool {
	for _, tag := range tags {
		if !toggles[tag] {
			return false
		}
	}
	return true
}
