package numeric

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"12.50", "12.5"},
		{"12.00", "12"},
		{"12", "12"},
		{"0.000", "0"},
		{"-3.1400", "-3.14"},
		{"1000", "1000"},
		{"0.0001", "0.0001"},
		{"123456789.123456789", "123456789.123456789"},
		{" 7.10 ", "7.1"},
		{".07", "0.07"},
		{"-.50", "-0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, FormatDecimal(d))
		})
	}
}

func TestNormalize(t *testing.T) {
	out, ok := Normalize("100.00")
	assert.True(t, ok)
	assert.Equal(t, "100", out)

	out, ok = Normalize(" abc ")
	assert.False(t, ok)
	assert.Equal(t, "abc", out)
}

func TestIsZero(t *testing.T) {
	assert.True(t, IsZero("0"))
	assert.True(t, IsZero("0.00"))
	assert.True(t, IsZero("-0.0"))
	assert.False(t, IsZero("0.01"))
	assert.False(t, IsZero(""))
	assert.False(t, IsZero("x"))
}

func TestReconcileSign(t *testing.T) {
	d := decimal.RequireFromString

	tests := []struct {
		name      string
		quantity  string
		price     string
		extension string
		swap      bool
		wantQty   string
		wantPrice string
	}{
		{"negative extension flips quantity", "5", "20", "-100", true, "-5", "20"},
		{"negative price flipped back", "5", "-20", "-100", true, "-5", "20"},
		{"swap disabled", "5", "20", "-100", false, "5", "20"},
		{"positive extension untouched", "5", "20", "100", true, "5", "20"},
		{"already negative quantity", "-5", "20", "-100", true, "-5", "20"},
		{"zero extension", "5", "20", "0", true, "5", "20"},
		{"zero price", "5", "0", "-1", true, "-5", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, p := ReconcileSign(d(tt.quantity), d(tt.price), d(tt.extension), tt.swap)
			assert.Equal(t, tt.wantQty, FormatDecimal(q))
			assert.Equal(t, tt.wantPrice, FormatDecimal(p))
		})
	}
}

func TestReconcileSignReproducesExtension(t *testing.T) {
	q, p := ReconcileSign(decimal.NewFromInt(5), decimal.NewFromInt(20), decimal.NewFromInt(-100), true)
	assert.True(t, q.Mul(p).Equal(decimal.NewFromInt(-100)))
}
