// Package deckgen renders client-specific proposal decks from a fixed
// PPTX template.
//
// A template carries placeholder tokens like {COMPANY_NAME} in its
// slide text and gating markers like [[tag:annex_a]] in its speaker
// notes. A render request supplies the values and the tag toggles; the
// engine substitutes every declared token, drops the slides whose tags
// are not enabled, and serializes the deck in memory.
//
// # Basic Usage
//
// Create an engine, load the template once, render per request:
//
//	engine := deckgen.MustNew()
//	tmpl, err := engine.Load("proposal.pptx")
//	if err != nil {
//	    // template is unusable, operator error
//	}
//	result, err := engine.Render(ctx, tmpl, &deckgen.RenderRequest{
//	    CompanyName:  "ACME GmbH",
//	    Program:      "Scale",
//	    ProposalDate: "2025-09-30",
//	    SlideToggles: map[string]bool{"annex_a": true},
//	    PricingOverrides: map[string]any{
//	        "SETUP_FEE": 6000, "SHORT_FEE": 9000, "FULL_FEE": 24000,
//	        "GRANT_FEE": "9%", "EQUITY_FEE": "2%",
//	    },
//	})
//	// result.Document holds the finished .pptx bytes
//	// result.Filename suggests the attachment name
//
// # Placeholders
//
// Tokens are matched across formatting runs, so a template author may
// split {SETUP_FEE} over any number of styled text runs and the token
// still resolves. Values are formatted by kind: currency amounts group
// thousands with a dot and append the symbol (6000 becomes "6.000€"),
// percentages normalize to an integer with a trailing % (9 and "9%"
// both become "9%"), dates reformat from ISO to DD/MM/YYYY. Tokens the
// catalog does not declare are left in place and reported as warnings
// on the result.
//
// # Slide Gating
//
// A slide whose speaker notes carry [[tag:name]] markers is kept only
// when the request's slide toggles set every one of its tags to true.
// Untagged slides are always kept. Remaining slides keep their
// relative order, and the markers themselves are removed from the
// delivered deck.
//
// # Catalogs
//
// The built-in catalog covers the v1 proposal field set. A custom
// catalog can be supplied as YAML:
//
//	catalog, err := deckgen.LoadCatalogFile("catalog.yaml")
//	engine, err := deckgen.New(deckgen.WithCatalog(catalog))
//
// # Configuration
//
// Customize the engine with functional options:
//
//	engine, _ := deckgen.New(
//	    deckgen.WithCurrencySymbol("€"),
//	    deckgen.WithFilenamePrefix("SiliconCP_Proposal"),
//	    deckgen.WithLogger(logger),
//	)
package deckgen
