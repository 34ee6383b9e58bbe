package deckgen

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency_WholeAmount(t *testing.T) {
	out, err := FormatCurrency(6000, "€")

	require.NoError(t, err)
	assert.Equal(t, "6.000€", out)
}

func TestFormatCurrency_GroupsEveryThousand(t *testing.T) {
	out, err := FormatCurrency(1234567, "€")

	require.NoError(t, err)
	assert.Equal(t, "1.234.567€", out)
}

func TestFormatCurrency_SmallAmountHasNoSeparator(t *testing.T) {
	out, err := FormatCurrency(950, "€")

	require.NoError(t, err)
	assert.Equal(t, "950€", out)
}

func TestFormatCurrency_FractionalKeepsTwoDecimals(t *testing.T) {
	out, err := FormatCurrency(6000.5, "€")

	require.NoError(t, err)
	assert.Equal(t, "6.000,50€", out)
}

func TestFormatCurrency_NumericString(t *testing.T) {
	out, err := FormatCurrency("24000", "€")

	require.NoError(t, err)
	assert.Equal(t, "24.000€", out)
}

func TestFormatCurrency_JSONNumber(t *testing.T) {
	out, err := FormatCurrency(json.Number("9000"), "€")

	require.NoError(t, err)
	assert.Equal(t, "9.000€", out)
}

func TestFormatCurrency_CanonicalPassthrough(t *testing.T) {
	for _, canonical := range []string{"6.000€", "950€", "1.234.567€", "6.000,50€"} {
		out, err := FormatCurrency(canonical, "€")

		require.NoError(t, err)
		assert.Equal(t, canonical, out)
	}
}

func TestFormatCurrency_GroupedAmountGainsSymbol(t *testing.T) {
	out, err := FormatCurrency("6.000", "€")

	require.NoError(t, err)
	assert.Equal(t, "6.000€", out)
}

func TestFormatCurrency_EmptySymbolUsesDefault(t *testing.T) {
	out, err := FormatCurrency(6000, "")

	require.NoError(t, err)
	assert.Equal(t, "6.000€", out)
}

func TestFormatCurrency_RejectsNonNumeric(t *testing.T) {
	_, err := FormatCurrency("a lot", "€")

	require.Error(t, err)
	assert.True(t, IsFormatError(err))
}

func TestFormatCurrency_RejectsBool(t *testing.T) {
	_, err := FormatCurrency(true, "€")

	require.Error(t, err)
	assert.True(t, IsFormatError(err))
}

func TestFormatPercent_BareNumber(t *testing.T) {
	out, err := FormatPercent(9)

	require.NoError(t, err)
	assert.Equal(t, "9%", out)
}

func TestFormatPercent_SuffixedString(t *testing.T) {
	out, err := FormatPercent("9%")

	require.NoError(t, err)
	assert.Equal(t, "9%", out)
}

func TestFormatPercent_SameCanonicalFormBothWays(t *testing.T) {
	fromNumber, err := FormatPercent(9)
	require.NoError(t, err)
	fromString, err := FormatPercent("9%")
	require.NoError(t, err)

	assert.Equal(t, fromNumber, fromString)
}

func TestFormatPercent_RoundsToInteger(t *testing.T) {
	down, err := FormatPercent(9.4)
	require.NoError(t, err)
	up, err := FormatPercent(9.6)
	require.NoError(t, err)

	assert.Equal(t, "9%", down)
	assert.Equal(t, "10%", up)
}

func TestFormatPercent_SuffixedFractionNormalizes(t *testing.T) {
	out, err := FormatPercent("9.4%")

	require.NoError(t, err)
	assert.Equal(t, "9%", out)
}

func TestFormatPercent_Zero(t *testing.T) {
	out, err := FormatPercent(0)

	require.NoError(t, err)
	assert.Equal(t, "0%", out)
}

func TestFormatPercent_RejectsNonNumeric(t *testing.T) {
	_, err := FormatPercent("two%")

	require.Error(t, err)
	assert.True(t, IsFormatError(err))
}

func TestFormatDate_ISOToEU(t *testing.T) {
	out, err := FormatDate("2025-09-30", "", "")

	require.NoError(t, err)
	assert.Equal(t, "30/09/2025", out)
}

func TestFormatDate_OutputLayoutPassthrough(t *testing.T) {
	out, err := FormatDate("30/09/2025", "", "")

	require.NoError(t, err)
	assert.Equal(t, "30/09/2025", out)
}

func TestFormatDate_TrimsInput(t *testing.T) {
	out, err := FormatDate("  2025-01-02  ", "", "")

	require.NoError(t, err)
	assert.Equal(t, "02/01/2025", out)
}

func TestFormatDate_RejectsImpossibleDate(t *testing.T) {
	_, err := FormatDate("2025-13-45", "", "")

	require.Error(t, err)
	assert.True(t, IsFormatError(err))
}

func TestFormatDate_RejectsFreeText(t *testing.T) {
	_, err := FormatDate("next tuesday", "", "")

	require.Error(t, err)
	assert.True(t, IsFormatError(err))
}

func TestFormatValue_EmailTrimsValid(t *testing.T) {
	p := Placeholder{Name: PlaceholderContactEmail, Kind: KindEmail, Source: SourceContactEmail}

	out, err := formatValue(p, "  dana@acme.example  ", defaultEngineConfig())

	require.NoError(t, err)
	assert.Equal(t, "dana@acme.example", out)
}

func TestFormatValue_EmailRejectsInvalid(t *testing.T) {
	p := Placeholder{Name: PlaceholderContactEmail, Kind: KindEmail, Source: SourceContactEmail}

	_, err := formatValue(p, "not-an-address", defaultEngineConfig())

	require.Error(t, err)
	assert.True(t, IsFormatError(err))

	field, ok := ErrorField(err)
	require.True(t, ok)
	assert.Equal(t, SourceContactEmail, field)
}

func TestFormatValue_TextTrims(t *testing.T) {
	p := Placeholder{Name: PlaceholderCompanyName, Kind: KindText, Source: SourceCompanyName}

	out, err := formatValue(p, "  ACME GmbH  ", defaultEngineConfig())

	require.NoError(t, err)
	assert.Equal(t, "ACME GmbH", out)
}

func TestFormatValue_CurrencyUsesConfiguredSymbol(t *testing.T) {
	p := Placeholder{Name: PlaceholderSetupFee, Kind: KindCurrency, Source: SourcePricingPrefix + PlaceholderSetupFee}
	cfg := defaultEngineConfig()
	cfg.currencySymbol = "$"

	out, err := formatValue(p, 6000, cfg)

	require.NoError(t, err)
	assert.Equal(t, "6.000$", out)
}

func TestFormatValue_DateUsesConfiguredLayouts(t *testing.T) {
	p := Placeholder{Name: PlaceholderDate, Kind: KindDate, Source: SourceProposalDate}
	cfg := defaultEngineConfig()
	cfg.dateOutputFormat = "02.01.2006"

	out, err := formatValue(p, "2025-09-30", cfg)

	require.NoError(t, err)
	assert.Equal(t, "30.09.2025", out)
}

func TestFormatValue_DateRejectsNonString(t *testing.T) {
	p := Placeholder{Name: PlaceholderDate, Kind: KindDate, Source: SourceProposalDate}

	_, err := formatValue(p, 20250930, defaultEngineConfig())

	require.Error(t, err)
	assert.True(t, IsFormatError(err))
}
