package mapper

import (
	"strings"

	"github.com/en16931/cii2ubl/cii"
	"github.com/en16931/cii2ubl/config"
	"github.com/en16931/cii2ubl/ubl"
)

// UNTDID 2005 codes used by CII for BT-8 mapped to UNTDID 2475 for UBL
var taxPointDateCodes = map[string]string{
	"5":  "3",
	"29": "35",
	"72": "432",
}

func contextID(p *cii.DocumentContextParameter) string {
	if p == nil || p.ID == nil {
		return ""
	}
	return strings.TrimSpace(p.ID.Value)
}

// mapSpecificationID uses the guideline of the source and falls back to the
// configured customization ID
func mapSpecificationID(c *conversion, s *source, body *ubl.Body) {
	body.CustomizationID = contextID(s.context.Guideline)
	if body.CustomizationID == "" {
		body.CustomizationID = c.cfg.CustomizationID
	}
	if body.CustomizationID == "" {
		c.missing("BT-24")
	}
}

func mapBusinessProcess(c *conversion, s *source, body *ubl.Body) {
	body.ProfileID = contextID(s.context.BusinessProcess)
	if body.ProfileID == "" {
		body.ProfileID = c.cfg.ProfileID
	}
}

func mapInvoiceNumber(c *conversion, s *source, body *ubl.Body) {
	if s.header.ID == nil {
		c.missing("BT-1")
		return
	}
	body.ID = c.text("BT-1", s.header.ID.Value)
}

func mapIssueDate(c *conversion, s *source, body *ubl.Body) {
	body.IssueDate = c.date("BT-2", s.header.IssueDateTime)
}

func mapTypeCode(c *conversion, s *source, body *ubl.Body) {
	code := c.text("BT-3", s.header.TypeCode)
	if code == "" {
		return
	}
	body.TypeCode = code

	switch {
	case c.cfg.Mode != config.ModeAutomatic && !IsInvoiceTypeCode(code) && !IsCreditNoteTypeCode(code):
		// automatic mode already rejected the code while resolving the kind
		c.errorf("BT-3", "document type code '%s' is neither an invoice nor a credit note code", code)
	case c.kind == ubl.KindInvoice && IsCreditNoteTypeCode(code):
		c.warnf("BT-3", "credit note type code '%s' used for an Invoice", code)
	case c.kind == ubl.KindCreditNote && IsInvoiceTypeCode(code):
		c.warnf("BT-3", "invoice type code '%s' used for a CreditNote", code)
	}
}

func mapCurrency(c *conversion, s *source, body *ubl.Body) {
	c.currency = c.text("BT-5", s.settlement.InvoiceCurrencyCode)
	body.DocumentCurrencyCode = c.currency
}

func mapTaxCurrency(c *conversion, s *source, body *ubl.Body) {
	c.taxCurrency = strings.TrimSpace(s.settlement.TaxCurrencyCode)
	body.TaxCurrencyCode = c.taxCurrency
}

// mapTaxPointDate takes the first tax point date of the VAT breakdown
func mapTaxPointDate(c *conversion, s *source, body *ubl.Body) {
	for _, tax := range s.settlement.Taxes {
		if tax.TaxPointDate != nil && tax.TaxPointDate.DateString != nil {
			body.TaxPointDate = c.dateString("BT-7", tax.TaxPointDate.DateString)
			return
		}
	}
}

// mapTaxPointDateCode takes the first due date type code of the VAT
// breakdown. It lands in the invoice period, which is created if needed.
func mapTaxPointDateCode(c *conversion, s *source, body *ubl.Body) {
	for _, tax := range s.settlement.Taxes {
		code := strings.TrimSpace(tax.DueDateTypeCode)
		if code == "" {
			continue
		}

		mapped, ok := taxPointDateCodes[code]
		if !ok {
			c.warnf("BT-8", "value added tax point date code '%s' is not one of 5, 29 or 72", code)
			return
		}
		if body.InvoicePeriod == nil {
			body.InvoicePeriod = &ubl.Period{}
		}
		body.InvoicePeriod.DescriptionCode = mapped
		return
	}
}

// mapDueDate takes the first due date of the payment terms. Where it ends
// up in a CreditNote depends on the UBL version.
func mapDueDate(c *conversion, s *source, body *ubl.Body) {
	for _, terms := range s.settlement.PaymentTerms {
		if terms.DueDate != nil {
			body.DueDate = c.date("BT-9", terms.DueDate)
			return
		}
	}
	c.missing("BT-9")
}

// checkCreditNoteDueDate reports a due date that the target version cannot
// carry
func checkCreditNoteDueDate(c *conversion, _ *source, body *ubl.Body) {
	if c.kind != ubl.KindCreditNote || body.DueDate == "" {
		return
	}
	if c.shape.CreditNoteDueDate == ubl.DueDateInPaymentMeans && len(body.PaymentMeans) == 0 {
		c.warnf("BT-9", "UBL %s CreditNote carries the payment due date in payment means only; due date %s is dropped", c.shape.Version, body.DueDate)
	}
}

// noteText renders a note, prefixing the subject code as #CODE#
func noteText(n cii.Note) string {
	content := strings.TrimSpace(n.Content)
	if content == "" {
		return ""
	}
	if subject := strings.TrimSpace(n.SubjectCode); subject != "" {
		return "#" + subject + "#" + content
	}
	return content
}

func mapNotes(_ *conversion, s *source, body *ubl.Body) {
	for _, n := range s.header.IncludedNotes {
		if text := noteText(n); text != "" {
			body.Notes = append(body.Notes, text)
		}
	}
}

func mapBuyerReference(c *conversion, s *source, body *ubl.Body) {
	body.BuyerReference = c.text("BT-10", s.agreement.BuyerReference)
}

func mapAccountingCost(c *conversion, s *source, body *ubl.Body) {
	for _, acc := range s.settlement.AccountingAccounts {
		if id := strings.TrimSpace(acc.ID); id != "" {
			body.AccountingCost = id
			return
		}
	}
}

// period converts a billing period, nil when neither date is present
func (c *conversion) period(p *cii.Period, startTerm, endTerm string) *ubl.Period {
	if p == nil {
		return nil
	}
	out := &ubl.Period{}
	if p.StartDateTime != nil {
		out.StartDate = c.date(startTerm, p.StartDateTime)
	}
	if p.EndDateTime != nil {
		out.EndDate = c.date(endTerm, p.EndDateTime)
	}
	if out.StartDate == "" && out.EndDate == "" {
		return nil
	}
	return out
}

func mapInvoicePeriod(c *conversion, s *source, body *ubl.Body) {
	body.InvoicePeriod = c.period(s.settlement.BillingPeriod, "BT-73", "BT-74")
}

// mapOrderReference maps the purchase order (BT-13) and the sales order
// (BT-14). UBL requires an order ID, so a sales order without purchase order
// uses the configured default order reference.
func mapOrderReference(c *conversion, s *source, body *ubl.Body) {
	var orderID, salesID string
	if s.agreement.BuyerOrder != nil {
		orderID = strings.TrimSpace(s.agreement.BuyerOrder.IssuerAssignedID)
	}
	if s.agreement.SellerOrder != nil {
		salesID = strings.TrimSpace(s.agreement.SellerOrder.IssuerAssignedID)
	}

	if orderID == "" && salesID == "" {
		return
	}
	if orderID == "" {
		orderID = c.cfg.DefaultOrderRefID
	}
	if orderID == "" {
		c.warnf("BT-14", "sales order reference '%s' needs a purchase order reference; no default order reference is configured", salesID)
		return
	}

	body.OrderReference = &ubl.OrderReference{ID: orderID, SalesOrderID: salesID}
}

// simpleReference converts a referenced document into a reference that
// only carries its ID
func simpleReference(doc *cii.ReferencedDocument) *ubl.DocumentReference {
	if doc == nil {
		return nil
	}
	id := strings.TrimSpace(doc.IssuerAssignedID)
	if id == "" {
		return nil
	}
	return &ubl.DocumentReference{ID: ubl.Identifier{Value: id}}
}

func mapDespatchAdvice(_ *conversion, s *source, body *ubl.Body) {
	body.DespatchDocumentReference = simpleReference(s.delivery.DespatchAdvice)
}

func mapReceivingAdvice(_ *conversion, s *source, body *ubl.Body) {
	body.ReceiptDocumentReference = simpleReference(s.delivery.ReceivingAdvice)
}

func mapContract(_ *conversion, s *source, body *ubl.Body) {
	body.ContractDocumentReference = simpleReference(s.agreement.Contract)
}

func mapProject(_ *conversion, s *source, body *ubl.Body) {
	if s.agreement.Project == nil {
		return
	}
	if id := strings.TrimSpace(s.agreement.Project.ID); id != "" {
		body.ProjectReference = &ubl.ProjectReference{ID: id}
	}
}

// mapPrecedingInvoices maps every invoice reference (BG-3). The reference
// ID (BT-25) is mandatory within the group.
func mapPrecedingInvoices(c *conversion, s *source, body *ubl.Body) {
	for _, ref := range s.settlement.InvoiceReferences {
		id := c.text("BT-25", ref.IssuerAssignedID)
		if id == "" {
			continue
		}

		doc := ubl.DocumentReference{ID: ubl.Identifier{Value: id}}
		if ref.FormattedIssueDateTime != nil {
			doc.IssueDate = c.date("BT-26", ref.FormattedIssueDateTime)
		}
		body.BillingReferences = append(body.BillingReferences, ubl.BillingReference{InvoiceDocumentReference: doc})
	}
}
