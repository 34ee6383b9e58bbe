package deckgen

import (
	"encoding/json"
	"fmt"
	"math"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Canonical display forms. Formatting an already-canonical string
// returns it unchanged, so formatting is idempotent.
var (
	// canonicalAmountRe matches a grouped-thousands amount with an
	// optional two-digit decimal part, e.g. "6.000" or "1.234,50".
	canonicalAmountRe = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})*(,\d{2})?$`)

	// canonicalPercentRe matches an integer percentage, e.g. "9%".
	canonicalPercentRe = regexp.MustCompile(`^-?\d+%$`)
)

// FormatCurrency renders a pricing amount as a grouped-thousands
// string with a trailing symbol: 6000 becomes "6.000€". Whole amounts
// carry no decimals; fractional amounts keep two. Already-canonical
// strings pass through unchanged.
func FormatCurrency(value any, symbol string) (string, error) {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	out, ok := currencyString(value, symbol)
	if !ok {
		return "", NewFormatError("", KindCurrency, displayValue(value))
	}
	return out, nil
}

// FormatPercent renders a rate as an integer percentage string: 9 and
// "9%" both become "9%". Fractional input is rounded.
func FormatPercent(value any) (string, error) {
	out, ok := percentString(value)
	if !ok {
		return "", NewFormatError("", KindPercent, displayValue(value))
	}
	return out, nil
}

// FormatDate reparses a date from the input layout into the output
// layout. A value already in the output layout passes through.
func FormatDate(value, inputLayout, outputLayout string) (string, error) {
	if inputLayout == "" {
		inputLayout = DefaultDateInputFormat
	}
	if outputLayout == "" {
		outputLayout = DefaultDateOutputFormat
	}
	out, ok := dateString(value, inputLayout, outputLayout)
	if !ok {
		return "", NewFormatError("", KindDate, value)
	}
	return out, nil
}

// formatValue renders one resolved request value for its placeholder.
func formatValue(p Placeholder, value any, cfg *engineConfig) (string, error) {
	var (
		out string
		ok  bool
	)
	switch p.Kind {
	case KindCurrency:
		out, ok = currencyString(value, cfg.currencySymbol)
	case KindPercent:
		out, ok = percentString(value)
	case KindDate:
		out, ok = dateValue(value, cfg.dateInputFormat, cfg.dateOutputFormat)
	case KindEmail:
		out, ok = emailString(value)
	default:
		out, ok = textString(value)
	}
	if !ok {
		return "", NewFormatError(p.Source, p.Kind, displayValue(value))
	}
	return out, nil
}

// currencyString produces the canonical currency form. Strings are
// accepted when already canonical, canonical except for the missing
// symbol, or plainly numeric.
func currencyString(value any, symbol string) (string, bool) {
	if s, isString := value.(string); isString {
		s = strings.TrimSpace(s)
		if amount, found := strings.CutSuffix(s, symbol); found && canonicalAmountRe.MatchString(amount) {
			return s, true
		}
		if canonicalAmountRe.MatchString(s) {
			return s + symbol, true
		}
		value = s
	}
	f, ok := numericValue(value)
	if !ok {
		return "", false
	}

	// Work in cents so fractional amounts round predictably.
	cents := int64(math.Round(f * 100))
	whole := cents / 100
	frac := cents % 100
	if frac < 0 {
		frac = -frac
	}
	out := strings.ReplaceAll(humanize.Comma(whole), ",", ".")
	if cents < 0 && whole == 0 {
		out = "-" + out
	}
	if frac != 0 {
		out += fmt.Sprintf(",%02d", frac)
	}
	return out + symbol, true
}

// percentString produces the canonical integer percentage form.
func percentString(value any) (string, bool) {
	if s, isString := value.(string); isString {
		s = strings.TrimSpace(s)
		if canonicalPercentRe.MatchString(s) {
			return s, true
		}
		if body, found := strings.CutSuffix(s, "%"); found {
			value = strings.TrimSpace(body)
		} else {
			value = s
		}
	}
	f, ok := numericValue(value)
	if !ok {
		return "", false
	}
	return strconv.Itoa(int(math.Round(f))) + "%", true
}

// dateValue narrows an arbitrary value to a string before layout
// conversion. Dates arrive as strings or not at all.
func dateValue(value any, inputLayout, outputLayout string) (string, bool) {
	s, isString := value.(string)
	if !isString {
		return "", false
	}
	return dateString(s, inputLayout, outputLayout)
}

func dateString(s, inputLayout, outputLayout string) (string, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(inputLayout, s); err == nil {
		return t.Format(outputLayout), true
	}
	if _, err := time.Parse(outputLayout, s); err == nil {
		return s, true
	}
	return "", false
}

// emailString validates an address and passes it through trimmed.
func emailString(value any) (string, bool) {
	s, isString := value.(string)
	if !isString {
		return "", false
	}
	s = strings.TrimSpace(s)
	if _, err := mail.ParseAddress(s); err != nil {
		return "", false
	}
	return s, true
}

// textString passes free-form values through trimmed.
func textString(value any) (string, bool) {
	switch s := value.(type) {
	case string:
		return strings.TrimSpace(s), true
	case nil:
		return "", false
	default:
		return strings.TrimSpace(displayValue(value)), true
	}
}

// numericValue coerces JSON-shaped values to a float64.
func numericValue(value any) (float64, bool) {
	switch n := value.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func displayValue(value any) string {
	return fmt.Sprint(value)
}
