package deckgen

import (
	"fmt"
	"strings"
	"unicode"
)

// Warning reports a placeholder token that survived substitution because
// the active catalog does not declare it. The deck is still produced;
// the token is left in place for a human to spot.
type Warning struct {
	// Token is the literal unresolved token, braces included.
	Token string `json:"token"`
	// Part is the archive part the token was found in.
	Part string `json:"part"`
	// Slide is the 1-based index of the slide in the source template.
	// Zero when the token was found outside a slide body.
	Slide int `json:"slide,omitempty"`
}

// Message renders the warning as a single human-readable line.
func (w Warning) Message() string {
	if w.Slide > 0 {
		return fmt.Sprintf("unresolved placeholder %s on slide %d", w.Token, w.Slide)
	}
	return fmt.Sprintf("unresolved placeholder %s in %s", w.Token, w.Part)
}

// RenderResult is the outcome of a successful Render call.
type RenderResult struct {
	// Document is the complete serialized deck.
	Document []byte
	// Filename is the suggested attachment filename for the deck.
	Filename string
	// SlideCount is the number of slides remaining after filtering.
	SlideCount int
	// Warnings lists unresolved placeholder tokens, in document order.
	Warnings []Warning
}

// SanitizeFilename maps a free-form name onto a filesystem-safe form.
// Letters, digits, spaces, underscores and hyphens pass through; every
// other rune becomes an underscore. An empty name yields "deck".
func SanitizeFilename(name string) string {
	if name == "" {
		return "deck"
	}
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '_' || r == '-' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// BuildFilename assembles the attachment filename for a rendered deck.
func BuildFilename(prefix, companyName string) string {
	if prefix == "" {
		prefix = DefaultFilenamePrefix
	}
	return prefix + "_" + SanitizeFilename(companyName) + OutputExtension
}
