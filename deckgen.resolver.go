package deckgen

import (
	"sort"
)

// resolveValues builds the token-to-replacement map for one render.
// Every declared placeholder resolves to a string or the whole request
// is rejected; a partially substituted deck is never produced.
func resolveValues(catalog *Catalog, req *RenderRequest, cfg *engineConfig) (map[string]string, error) {
	values := make(map[string]string, len(catalog.Placeholders))
	for _, p := range catalog.Placeholders {
		value, present := req.sourceValue(p.Source)
		if !present {
			if p.Default != "" {
				value = p.Default
			} else if p.Required {
				return nil, NewMissingFieldError(p.Source)
			} else {
				values[p.Token()] = ""
				continue
			}
		}
		formatted, err := formatValue(p, value, cfg)
		if err != nil {
			return nil, err
		}
		values[p.Token()] = formatted
	}
	return values, nil
}

// tokenOrder returns the catalog tokens longest-first so the most
// specific token wins at any text position.
func tokenOrder(catalog *Catalog) []string {
	tokens := make([]string, 0, len(catalog.Placeholders))
	for _, p := range catalog.Placeholders {
		tokens = append(tokens, p.Token())
	}
	sort.SliceStable(tokens, func(i, j int) bool {
		return len(tokens[i]) > len(tokens[j])
	})
	return tokens
}
