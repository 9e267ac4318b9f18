package mapper

import (
	"errors"
	"testing"

	"github.com/en16931/cii2ubl/cii"
	"github.com/en16931/cii2ubl/config"
	"github.com/en16931/cii2ubl/diag"
	"github.com/en16931/cii2ubl/ubl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindSource(typeCode, payable string) *cii.CrossIndustryInvoice {
	src := &cii.CrossIndustryInvoice{
		Document: &cii.ExchangedDocument{TypeCode: typeCode},
		Transaction: &cii.SupplyChainTradeTransaction{
			Agreement:  &cii.HeaderAgreement{},
			Delivery:   &cii.HeaderDelivery{},
			Settlement: &cii.HeaderSettlement{},
		},
	}
	if payable != "" {
		src.Transaction.Settlement.Summation = &cii.MonetarySummation{
			DuePayableAmount: &cii.Amount{Value: payable},
		}
	}
	return src
}

func TestResolveKind(t *testing.T) {
	tests := []struct {
		name     string
		mode     config.Mode
		code     string
		payable  string
		fallback bool
		want     ubl.Kind
		severity *diag.Severity
	}{
		{name: "Commercial invoice", mode: config.ModeAutomatic, code: "380", want: ubl.KindInvoice},
		{name: "Corrected invoice", mode: config.ModeAutomatic, code: "384", want: ubl.KindInvoice},
		{name: "Self-billed invoice", mode: config.ModeAutomatic, code: "389", want: ubl.KindInvoice},
		{name: "Credit note", mode: config.ModeAutomatic, code: "381", want: ubl.KindCreditNote},
		{name: "Self-billed credit note", mode: config.ModeAutomatic, code: "261", want: ubl.KindCreditNote},
		{name: "Surrounding whitespace", mode: config.ModeAutomatic, code: " 381 ", want: ubl.KindCreditNote},
		{name: "Forced invoice", mode: config.ModeInvoice, code: "381", want: ubl.KindInvoice},
		{name: "Forced credit note", mode: config.ModeCreditNote, code: "380", want: ubl.KindCreditNote},
		{name: "Forced ignores unknown code", mode: config.ModeCreditNote, code: "999", want: ubl.KindCreditNote},
		{
			name: "Unknown code",
			mode: config.ModeAutomatic, code: "999",
			want: ubl.KindInvoice, severity: ptr(diag.Error),
		},
		{
			name: "No code with negative amount due",
			mode: config.ModeAutomatic, payable: "-12.50", fallback: true,
			want: ubl.KindCreditNote, severity: ptr(diag.Warning),
		},
		{
			name: "No code with positive amount due",
			mode: config.ModeAutomatic, payable: "12.50", fallback: true,
			want: ubl.KindInvoice, severity: ptr(diag.Warning),
		},
		{
			name: "No code without fallback",
			mode: config.ModeAutomatic, payable: "-12.50",
			want: ubl.KindInvoice,
		},
		{
			name: "No code and no amount due",
			mode: config.ModeAutomatic, fallback: true,
			want: ubl.KindInvoice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := diag.NewCollector()
			kind, err := ResolveKind(kindSource(tt.code, tt.payable), tt.mode, tt.fallback, errs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)

			if tt.severity == nil {
				assert.Zero(t, errs.Len(), "%v", errs.Entries())
				return
			}
			require.Equal(t, 1, errs.Len())
			e := errs.Entries()[0]
			assert.Equal(t, *tt.severity, e.Severity)
			assert.Equal(t, "BT-3", e.Term)
			assert.Equal(t, "ExchangedDocument/TypeCode", e.Field)
		})
	}
}

func TestResolveKindIncompleteStructure(t *testing.T) {
	src := kindSource("380", "")
	src.Transaction.Settlement = nil

	_, err := ResolveKind(src, config.ModeInvoice, false, diag.NewCollector())
	assert.True(t, errors.Is(err, ErrIncompleteStructure))

	_, err = ResolveKind(nil, config.ModeAutomatic, false, diag.NewCollector())
	assert.True(t, errors.Is(err, ErrIncompleteStructure))
}

func TestTypeCodeSets(t *testing.T) {
	for code := range invoiceTypeCodes {
		assert.False(t, IsCreditNoteTypeCode(code), "code %s is in both sets", code)
	}
	assert.True(t, IsInvoiceTypeCode("380"))
	assert.True(t, IsCreditNoteTypeCode("381"))
	assert.False(t, IsInvoiceTypeCode(""))
}

func ptr[T any](v T) *T {
	return &v
}
