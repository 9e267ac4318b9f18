package binding

import (
	"testing"

	"github.com/en16931/cii2ubl/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRule(t *testing.T) {
	p, err := NewRuleParser()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected Binding
	}{
		{
			name:  "with name",
			input: `BT-1 mandatory "Invoice number" ExchangedDocument/ID -> cbc:ID`,
			expected: Binding{
				Term:     "BT-1",
				Presence: Mandatory,
				Name:     "Invoice number",
				Source:   "ExchangedDocument/ID",
				Target:   "cbc:ID",
			},
		},
		{
			name:  "without name",
			input: `BG-14 optional SupplyChainTradeTransaction/ApplicableHeaderTradeSettlement/BillingSpecifiedPeriod -> cac:InvoicePeriod`,
			expected: Binding{
				Term:     "BG-14",
				Presence: Optional,
				Source:   "SupplyChainTradeTransaction/ApplicableHeaderTradeSettlement/BillingSpecifiedPeriod",
				Target:   "cac:InvoicePeriod",
			},
		},
		{
			name:  "predicates and attributes",
			input: `BT-31 recommended "Seller VAT identifier" SellerTradeParty/SpecifiedTaxRegistration/ID[@schemeID=VA] -> cac:PartyTaxScheme/cbc:CompanyID/@schemeID`,
			expected: Binding{
				Term:     "BT-31",
				Presence: Recommended,
				Name:     "Seller VAT identifier",
				Source:   "SellerTradeParty/SpecifiedTaxRegistration/ID[@schemeID=VA]",
				Target:   "cac:PartyTaxScheme/cbc:CompanyID/@schemeID",
			},
		},
		{
			name:  "extra whitespace",
			input: "  BT-9   recommended   \"Payment due date\"  DueDateDateTime   ->   cbc:DueDate  ",
			expected: Binding{
				Term:     "BT-9",
				Presence: Recommended,
				Name:     "Payment due date",
				Source:   "DueDateDateTime",
				Target:   "cbc:DueDate",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := p.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, b)
		})
	}
}

func TestParseRuleErrors(t *testing.T) {
	p, err := NewRuleParser()
	require.NoError(t, err)

	inputs := []string{
		"",
		"BT-1",
		"BT-1 required ExchangedDocument/ID -> cbc:ID",
		"XX-1 mandatory ExchangedDocument/ID -> cbc:ID",
		"BT-1 mandatory ExchangedDocument/ID cbc:ID",
		"BT-1 mandatory \"unterminated ExchangedDocument/ID -> cbc:ID",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := p.Parse(input)
			assert.Error(t, err)
		})
	}
}

func TestDefaultTable(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	assert.NotEmpty(t, table.Version)
	assert.Greater(t, table.Len(), 100)

	b, ok := table.Lookup("BT-1")
	require.True(t, ok)
	assert.Equal(t, Mandatory, b.Presence)
	assert.Equal(t, "ExchangedDocument/ID", b.Source)
	assert.Equal(t, "cbc:ID", b.Target)
	assert.Equal(t, "BT-1 (Invoice number)", b.Label())

	_, ok = table.Lookup("BT-9999")
	assert.False(t, ok)

	terms := table.Terms()
	assert.Equal(t, "BT-1", terms[0].Term)

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, table, again)
}

func TestDefaultTableContainsMappedTerms(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	for _, term := range []string{
		"BT-2", "BT-3", "BT-5", "BT-9", "BT-24", "BG-4", "BT-27", "BT-40",
		"BG-7", "BT-44", "BT-55", "BT-81", "BT-106", "BT-109", "BT-112",
		"BT-114", "BT-115", "BG-23", "BT-118", "BG-25", "BT-126", "BT-129",
		"BT-131", "BT-146", "BT-149", "BT-151", "BT-153",
	} {
		_, ok := table.Lookup(term)
		assert.True(t, ok, term)
	}
}

func TestSeverity(t *testing.T) {
	sev, report := Binding{Presence: Mandatory}.Severity()
	assert.True(t, report)
	assert.Equal(t, diag.Error, sev)

	sev, report = Binding{Presence: Recommended}.Severity()
	assert.True(t, report)
	assert.Equal(t, diag.Warning, sev)

	_, report = Binding{Presence: Optional}.Severity()
	assert.False(t, report)
}

func TestParseTableErrors(t *testing.T) {
	_, err := Parse([]byte("rules: [unclosed"))
	assert.Error(t, err)

	_, err = Parse([]byte("en16931: x\nrules: []\n"))
	assert.ErrorContains(t, err, "no rules")

	_, err = Parse([]byte(`
en16931: x
rules:
  - 'BT-1 mandatory A -> B'
  - 'BT-1 optional C -> D'
`))
	assert.ErrorContains(t, err, "duplicate business term")
}
