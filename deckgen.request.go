package deckgen

import (
	"bytes"
	"encoding/json"
	"strings"
)

// RenderRequest is the client payload of one render: the values bound
// to catalog placeholders plus the slide gating toggles.
type RenderRequest struct {
	CompanyName  string `json:"company_name"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	Program      string `json:"program"`
	ProposalDate string `json:"proposal_date"`

	// SlideToggles gates tagged slides. A slide survives only when
	// every tag in its marker set maps to true; a tag absent from the
	// map counts as false.
	SlideToggles map[string]bool `json:"slide_toggles,omitempty"`

	// PricingOverrides carries pricing values keyed by placeholder
	// name. Numbers and strings are both accepted; the placeholder
	// kind decides the formatting.
	PricingOverrides map[string]any `json:"pricing_overrides,omitempty"`
}

// ParseRequest decodes a JSON render request. Numbers are kept as
// json.Number so integer pricing values survive undistorted.
func ParseRequest(data []byte) (*RenderRequest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var req RenderRequest
	if err := dec.Decode(&req); err != nil {
		return nil, NewRequestError(ErrMsgRequestDecode, err)
	}
	return &req, nil
}

// sourceValue resolves a catalog source key against the request. The
// second return is false when the request does not carry the value.
func (r *RenderRequest) sourceValue(source string) (any, bool) {
	if name, ok := strings.CutPrefix(source, SourcePricingPrefix); ok {
		v, present := r.PricingOverrides[name]
		if !present || v == nil {
			return nil, false
		}
		return v, true
	}
	switch source {
	case SourceCompanyName:
		return stringValue(r.CompanyName)
	case SourceContactName:
		return stringValue(r.ContactName)
	case SourceContactEmail:
		return stringValue(r.ContactEmail)
	case SourceProgram:
		return stringValue(r.Program)
	case SourceProposalDate:
		return stringValue(r.ProposalDate)
	default:
		return nil, false
	}
}

// stringValue treats blank strings as absent.
func stringValue(s string) (any, bool) {
	if strings.TrimSpace(s) == "" {
		return nil, false
	}
	return s, true
}
