package mapper

import (
	"testing"

	"github.com/en16931/cii2ubl/cii"
	"github.com/en16931/cii2ubl/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		value    string
		expected string
		wantErr  bool
	}{
		{name: "CCYYMMDD", format: "102", value: "20240315", expected: "2024-03-15"},
		{name: "Default format", format: "", value: "20240315", expected: "2024-03-15"},
		{name: "Whitespace", format: " 102 ", value: " 20240315\n", expected: "2024-03-15"},
		{name: "DDMMYY", format: "2", value: "150324", expected: "2024-03-15"},
		{name: "MMDDYY", format: "3", value: "031524", expected: "2024-03-15"},
		{name: "DDMMCCYY", format: "4", value: "15032024", expected: "2024-03-15"},
		{name: "YYMMDD", format: "101", value: "240315", expected: "2024-03-15"},
		{name: "YYWWD", format: "103", value: "24111", expected: "2024-03-11"},
		{name: "YYWWD Sunday", format: "103", value: "24017", expected: "2024-01-07"},
		{name: "YYDDD", format: "105", value: "24075", expected: "2024-03-15"},
		{name: "YYDDD end of leap year", format: "105", value: "24366", expected: "2024-12-31"},
		{name: "Leap day", format: "102", value: "20240229", expected: "2024-02-29"},
		{name: "Invalid leap day", format: "102", value: "20230229", wantErr: true},
		{name: "Too short", format: "102", value: "2024031", wantErr: true},
		{name: "Too long", format: "101", value: "20240315", wantErr: true},
		{name: "Invalid month", format: "102", value: "20241315", wantErr: true},
		{name: "Not a number", format: "102", value: "2024-03-1", wantErr: true},
		{name: "Unsupported qualifier", format: "203", value: "202403151200", wantErr: true},
		{name: "Week out of range", format: "103", value: "24541", wantErr: true},
		{name: "Day of week out of range", format: "103", value: "24118", wantErr: true},
		{name: "Week 53 in a 52 week year", format: "103", value: "23531", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatDate(tt.format, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestConvertDateErrors(t *testing.T) {
	src := readFixture(t, "invoice-minimal.xml")
	src.Document.IssueDateTime.DateTimeString = &cii.DateTimeString{Format: "102", Value: "2024-02-01"}

	out, errs := convert(t, newConverter(t, nil), src)
	assert.Contains(t, terms(errs, diag.Error), "BT-2")
	assert.Empty(t, texts(t, out, "/Invoice/cbc:IssueDate"))
}
