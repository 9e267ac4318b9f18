package mapper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/en16931/cii2ubl/cii"
	"github.com/en16931/cii2ubl/config"
	"github.com/en16931/cii2ubl/diag"
	"github.com/en16931/cii2ubl/numeric"
	"github.com/en16931/cii2ubl/ubl"
)

// ErrIncompleteStructure is returned when a CII document lacks the
// containers every conversion needs
var ErrIncompleteStructure = errors.New("CII document lacks mandatory structure")

// UNTDID 1001 document type codes EN 16931 accepts for invoices
var invoiceTypeCodes = codeSet(
	"71", "80", "82", "84", "102", "218", "219", "326", "331", "380", "382",
	"383", "384", "385", "386", "387", "388", "389", "390", "393", "394",
	"395", "456", "457", "527", "553", "575", "623", "633", "751", "780",
	"875", "876", "877", "935",
)

// UNTDID 1001 document type codes EN 16931 accepts for credit notes
var creditNoteTypeCodes = codeSet(
	"81", "83", "261", "262", "296", "308", "381", "396", "420", "458", "532",
)

func codeSet(codes ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		m[c] = struct{}{}
	}
	return m
}

// IsInvoiceTypeCode reports whether code is an invoice document type code
func IsInvoiceTypeCode(code string) bool {
	_, ok := invoiceTypeCodes[code]
	return ok
}

// IsCreditNoteTypeCode reports whether code is a credit note document type code
func IsCreditNoteTypeCode(code string) bool {
	_, ok := creditNoteTypeCodes[code]
	return ok
}

// checkStructure verifies the containers without which no UBL document can
// be produced
func checkStructure(src *cii.CrossIndustryInvoice) error {
	switch {
	case src == nil:
		return ErrIncompleteStructure
	case src.Transaction == nil:
		return fmt.Errorf("%w: no SupplyChainTradeTransaction", ErrIncompleteStructure)
	case src.Transaction.Agreement == nil:
		return fmt.Errorf("%w: no ApplicableHeaderTradeAgreement", ErrIncompleteStructure)
	case src.Transaction.Delivery == nil:
		return fmt.Errorf("%w: no ApplicableHeaderTradeDelivery", ErrIncompleteStructure)
	case src.Transaction.Settlement == nil:
		return fmt.Errorf("%w: no ApplicableHeaderTradeSettlement", ErrIncompleteStructure)
	}
	return nil
}

// ResolveKind decides whether src becomes an Invoice or a CreditNote.
//
// Forced modes ignore the document content. In automatic mode the document
// type code decides; an unknown code is reported as an error and an Invoice
// is produced. A missing type code falls back to the sign of the amount due
// for payment when payableSignFallback is set (negative means CreditNote).
func ResolveKind(src *cii.CrossIndustryInvoice, mode config.Mode, payableSignFallback bool, errs *diag.Collector) (ubl.Kind, error) {
	if err := checkStructure(src); err != nil {
		return ubl.KindInvoice, err
	}

	switch mode {
	case config.ModeInvoice:
		return ubl.KindInvoice, nil
	case config.ModeCreditNote:
		return ubl.KindCreditNote, nil
	}

	code := ""
	if src.Document != nil {
		code = strings.TrimSpace(src.Document.TypeCode)
	}

	switch {
	case IsInvoiceTypeCode(code):
		return ubl.KindInvoice, nil
	case IsCreditNoteTypeCode(code):
		return ubl.KindCreditNote, nil
	case code != "":
		errs.AddEntry(diag.Entry{
			Severity: diag.Error,
			Message:  "document type code '" + code + "' is neither an invoice nor a credit note code, creating an Invoice",
			Field:    "ExchangedDocument/TypeCode",
			Term:     "BT-3",
		})
		return ubl.KindInvoice, nil
	}

	if payableSignFallback {
		if sum := src.Transaction.Settlement.Summation; sum != nil && sum.DuePayableAmount != nil {
			if d, err := numeric.Parse(sum.DuePayableAmount.Value); err == nil {
				kind := ubl.KindInvoice
				if d.IsNegative() {
					kind = ubl.KindCreditNote
				}
				errs.AddEntry(diag.Entry{
					Severity: diag.Warning,
					Message:  "no document type code, derived " + kind.String() + " from the sign of the amount due for payment",
					Field:    "ExchangedDocument/TypeCode",
					Term:     "BT-3",
				})
				return kind, nil
			}
		}
	}

	return ubl.KindInvoice, nil
}
