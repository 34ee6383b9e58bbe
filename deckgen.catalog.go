package deckgen

import (
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// placeholderNameRe constrains declared names to the token alphabet.
var placeholderNameRe = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// PlaceholderKind classifies how a placeholder value is formatted
// before substitution.
type PlaceholderKind string

// Supported placeholder kinds
const (
	KindText     PlaceholderKind = "text"
	KindEmail    PlaceholderKind = "email"
	KindDate     PlaceholderKind = "date"
	KindCurrency PlaceholderKind = "currency"
	KindPercent  PlaceholderKind = "percent"
)

// Valid reports whether k is a supported kind.
func (k PlaceholderKind) Valid() bool {
	switch k {
	case KindText, KindEmail, KindDate, KindCurrency, KindPercent:
		return true
	default:
		return false
	}
}

// Placeholder declares a single substitutable token: the name inside
// the braces, the formatting kind, whether a request must provide it,
// and the request field it reads from.
type Placeholder struct {
	Name     string          `json:"name" yaml:"name"`
	Kind     PlaceholderKind `json:"kind" yaml:"kind"`
	Required bool            `json:"required" yaml:"required"`
	Source   string          `json:"source" yaml:"source"`

	// Default is substituted when the request omits the source field
	// and the placeholder is not required.
	Default string `json:"default,omitempty" yaml:"default,omitempty"`
}

// Token returns the name wrapped in delimiters, as it appears in
// slide text.
func (p Placeholder) Token() string {
	return TokenOpen + p.Name + TokenClose
}

// Catalog is the declared placeholder set for a template family.
// Tokens in slide text the catalog does not declare are left in place
// and reported as warnings.
type Catalog struct {
	Placeholders []Placeholder `json:"placeholders" yaml:"placeholders"`
}

// DefaultCatalog returns the built-in proposal catalog.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Placeholders: []Placeholder{
			{Name: PlaceholderCompanyName, Kind: KindText, Required: true, Source: SourceCompanyName},
			{Name: PlaceholderContactName, Kind: KindText, Required: false, Source: SourceContactName},
			{Name: PlaceholderContactEmail, Kind: KindEmail, Required: false, Source: SourceContactEmail},
			{Name: PlaceholderProgram, Kind: KindText, Required: true, Source: SourceProgram},
			{Name: PlaceholderDate, Kind: KindDate, Required: true, Source: SourceProposalDate},
			{Name: PlaceholderSetupFee, Kind: KindCurrency, Required: true, Source: SourcePricingPrefix + PlaceholderSetupFee},
			{Name: PlaceholderShortFee, Kind: KindCurrency, Required: true, Source: SourcePricingPrefix + PlaceholderShortFee},
			{Name: PlaceholderFullFee, Kind: KindCurrency, Required: true, Source: SourcePricingPrefix + PlaceholderFullFee},
			{Name: PlaceholderGrantFee, Kind: KindPercent, Required: true, Source: SourcePricingPrefix + PlaceholderGrantFee},
			{Name: PlaceholderEquityFee, Kind: KindPercent, Required: true, Source: SourcePricingPrefix + PlaceholderEquityFee},
		},
	}
}

// ParseCatalog parses and validates a YAML catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, NewCatalogError(ErrMsgCatalogParse, "", err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// LoadCatalogFile reads and parses a YAML catalog from disk.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewCatalogError(ErrMsgCatalogRead, "", err)
	}
	return ParseCatalog(data)
}

// Validate checks the catalog for structural soundness: at least one
// entry, token-shaped unique names, known kinds, non-empty sources.
func (c *Catalog) Validate() error {
	if len(c.Placeholders) == 0 {
		return NewCatalogError(ErrMsgCatalogEmpty, "", nil)
	}
	seen := make(map[string]bool, len(c.Placeholders))
	for _, p := range c.Placeholders {
		if !placeholderNameRe.MatchString(p.Name) {
			return NewCatalogError(ErrMsgCatalogName, p.Name, nil)
		}
		if !p.Kind.Valid() {
			return NewCatalogError(ErrMsgCatalogKind, p.Name, nil)
		}
		if p.Source == "" {
			return NewCatalogError(ErrMsgCatalogSource, p.Name, nil)
		}
		if seen[p.Name] {
			return NewCatalogError(ErrMsgCatalogDuplicate, p.Name, nil)
		}
		seen[p.Name] = true
	}
	return nil
}

// Get returns the placeholder declared under name.
func (c *Catalog) Get(name string) (Placeholder, bool) {
	for _, p := range c.Placeholders {
		if p.Name == name {
			return p, true
		}
	}
	return Placeholder{}, false
}
