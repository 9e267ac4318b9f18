package ubl

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedVersion is returned for UBL version tokens other than 2.1,
// 2.2, 2.3 and 2.4.
var ErrUnsupportedVersion = errors.New("unsupported UBL version")

// DueDatePlacement says where a credit note carries the payment due date
type DueDatePlacement int

const (
	// DueDateInPaymentMeans copies the due date into every
	// cac:PaymentMeans/cbc:PaymentDueDate
	DueDateInPaymentMeans DueDatePlacement = iota
	// DueDateElement uses cbc:DueDate on the root
	DueDateElement
)

// Shape describes the structural differences of one UBL version. The
// Invoice schema is the same for everything this converter emits; the
// differences are all on the CreditNote side.
type Shape struct {
	Version string

	CreditNoteDueDate DueDatePlacement

	// CreditNoteProjectReference is true when CreditNote has
	// cac:ProjectReference. Otherwise the project reference travels as an
	// additional document reference with type code 50.
	CreditNoteProjectReference bool
}

var shapes = []Shape{
	{Version: "2.1", CreditNoteDueDate: DueDateInPaymentMeans},
	{Version: "2.2", CreditNoteDueDate: DueDateInPaymentMeans, CreditNoteProjectReference: true},
	{Version: "2.3", CreditNoteDueDate: DueDateElement, CreditNoteProjectReference: true},
	{Version: "2.4", CreditNoteDueDate: DueDateElement, CreditNoteProjectReference: true},
}

// LookupShape returns the shape of a version token such as "2.1". A leading
// "v" or "ubl" is accepted, e.g. "UBL2.3".
func LookupShape(token string) (Shape, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	t = strings.TrimPrefix(t, "ubl")
	t = strings.TrimPrefix(t, "v")

	for _, s := range shapes {
		if s.Version == t {
			return s, nil
		}
	}
	return Shape{}, fmt.Errorf("%w: %q", ErrUnsupportedVersion, token)
}

// Versions returns the supported version tokens in ascending order
func Versions() []string {
	out := make([]string, len(shapes))
	for i, s := range shapes {
		out[i] = s.Version
	}
	return out
}

// Invoice arranges body as an Invoice root
func (s Shape) Invoice(body *Body) *Invoice {
	return &Invoice{
		Xmlns: NamespaceInvoice,
		Cac:   NamespaceCAC,
		Cbc:   NamespaceCBC,

		CustomizationID:              body.CustomizationID,
		ProfileID:                    body.ProfileID,
		ID:                           body.ID,
		IssueDate:                    body.IssueDate,
		DueDate:                      body.DueDate,
		InvoiceTypeCode:              body.TypeCode,
		Notes:                        body.Notes,
		TaxPointDate:                 body.TaxPointDate,
		DocumentCurrencyCode:         body.DocumentCurrencyCode,
		TaxCurrencyCode:              body.TaxCurrencyCode,
		AccountingCost:               body.AccountingCost,
		BuyerReference:               body.BuyerReference,
		InvoicePeriod:                body.InvoicePeriod,
		OrderReference:               body.OrderReference,
		BillingReferences:            body.BillingReferences,
		DespatchDocumentReference:    body.DespatchDocumentReference,
		ReceiptDocumentReference:     body.ReceiptDocumentReference,
		OriginatorDocumentReference:  body.OriginatorDocumentReference,
		ContractDocumentReference:    body.ContractDocumentReference,
		AdditionalDocumentReferences: body.AdditionalDocumentReferences,
		ProjectReference:             body.ProjectReference,
		AccountingSupplierParty:      body.AccountingSupplierParty,
		AccountingCustomerParty:      body.AccountingCustomerParty,
		PayeeParty:                   body.PayeeParty,
		TaxRepresentativeParty:       body.TaxRepresentativeParty,
		Delivery:                     body.Delivery,
		PaymentMeans:                 body.PaymentMeans,
		PaymentTerms:                 body.PaymentTerms,
		AllowanceCharges:             body.AllowanceCharges,
		TaxTotals:                    body.TaxTotals,
		LegalMonetaryTotal:           body.LegalMonetaryTotal,
		InvoiceLines:                 invoiceLines(body.Lines),
	}
}

// CreditNote arranges body as a CreditNote root, applying the version
// specific placement of the due date and the project reference. The due
// date is dropped when it belongs into payment means and there are none.
func (s Shape) CreditNote(body *Body) *CreditNote {
	cn := &CreditNote{
		Xmlns: NamespaceCreditNote,
		Cac:   NamespaceCAC,
		Cbc:   NamespaceCBC,

		CustomizationID:              body.CustomizationID,
		ProfileID:                    body.ProfileID,
		ID:                           body.ID,
		IssueDate:                    body.IssueDate,
		TaxPointDate:                 body.TaxPointDate,
		CreditNoteTypeCode:           body.TypeCode,
		Notes:                        body.Notes,
		DocumentCurrencyCode:         body.DocumentCurrencyCode,
		TaxCurrencyCode:              body.TaxCurrencyCode,
		AccountingCost:               body.AccountingCost,
		BuyerReference:               body.BuyerReference,
		InvoicePeriod:                body.InvoicePeriod,
		OrderReference:               body.OrderReference,
		BillingReferences:            body.BillingReferences,
		DespatchDocumentReference:    body.DespatchDocumentReference,
		ReceiptDocumentReference:     body.ReceiptDocumentReference,
		ContractDocumentReference:    body.ContractDocumentReference,
		AdditionalDocumentReferences: body.AdditionalDocumentReferences,
		OriginatorDocumentReference:  body.OriginatorDocumentReference,
		AccountingSupplierParty:      body.AccountingSupplierParty,
		AccountingCustomerParty:      body.AccountingCustomerParty,
		PayeeParty:                   body.PayeeParty,
		TaxRepresentativeParty:       body.TaxRepresentativeParty,
		Delivery:                     body.Delivery,
		PaymentMeans:                 body.PaymentMeans,
		PaymentTerms:                 body.PaymentTerms,
		AllowanceCharges:             body.AllowanceCharges,
		TaxTotals:                    body.TaxTotals,
		LegalMonetaryTotal:           body.LegalMonetaryTotal,
		CreditNoteLines:              creditNoteLines(body.Lines),
	}

	if body.DueDate != "" {
		switch s.CreditNoteDueDate {
		case DueDateElement:
			cn.DueDate = body.DueDate
		case DueDateInPaymentMeans:
			if len(cn.PaymentMeans) > 0 {
				means := make([]PaymentMeans, len(cn.PaymentMeans))
				copy(means, cn.PaymentMeans)
				for i := range means {
					means[i].PaymentDueDate = body.DueDate
				}
				cn.PaymentMeans = means
			}
		}
	}

	if body.ProjectReference != nil {
		if s.CreditNoteProjectReference {
			cn.ProjectReference = body.ProjectReference
		} else {
			refs := make([]DocumentReference, 0, len(cn.AdditionalDocumentReferences)+1)
			refs = append(refs, cn.AdditionalDocumentReferences...)
			refs = append(refs, DocumentReference{
				ID:               Identifier{Value: body.ProjectReference.ID},
				DocumentTypeCode: ProjectDocumentTypeCode,
			})
			cn.AdditionalDocumentReferences = refs
		}
	}

	return cn
}

// ProjectDocumentTypeCode marks an additional document reference that
// carries a project reference
const ProjectDocumentTypeCode = "50"

// Build arranges body as the root of the given kind
func (s Shape) Build(kind Kind, body *Body) Document {
	if kind == KindCreditNote {
		return s.CreditNote(body)
	}
	return s.Invoice(body)
}

func invoiceLines(lines []Line) []Line {
	if len(lines) == 0 {
		return nil
	}
	out := make([]Line, len(lines))
	for i, l := range lines {
		if l.InvoicedQuantity == nil {
			l.InvoicedQuantity = l.CreditedQuantity
		}
		l.CreditedQuantity = nil
		out[i] = l
	}
	return out
}

func creditNoteLines(lines []Line) []Line {
	if len(lines) == 0 {
		return nil
	}
	out := make([]Line, len(lines))
	for i, l := range lines {
		if l.CreditedQuantity == nil {
			l.CreditedQuantity = l.InvoicedQuantity
		}
		l.InvoicedQuantity = nil
		out[i] = l
	}
	return out
}
