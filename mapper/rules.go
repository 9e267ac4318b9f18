package mapper

import "github.com/en16931/cii2ubl/ubl"

// rule maps one business term, or one business group together with the
// terms it contains, from the source document into the body
type rule struct {
	term  string
	apply func(c *conversion, s *source, body *ubl.Body)
}

// documentRules run in this order for every conversion. Amount-bearing rules
// depend on BT-5 having been mapped first.
var documentRules = []rule{
	{"BT-24", mapSpecificationID},
	{"BT-23", mapBusinessProcess},
	{"BT-1", mapInvoiceNumber},
	{"BT-2", mapIssueDate},
	{"BT-3", mapTypeCode},
	{"BT-5", mapCurrency},
	{"BT-6", mapTaxCurrency},
	{"BT-7", mapTaxPointDate},
	{"BT-9", mapDueDate},
	{"BT-22", mapNotes},
	{"BT-10", mapBuyerReference},
	{"BT-19", mapAccountingCost},
	{"BG-14", mapInvoicePeriod},
	{"BT-8", mapTaxPointDateCode},
	{"BT-13", mapOrderReference},
	{"BG-3", mapPrecedingInvoices},
	{"BT-16", mapDespatchAdvice},
	{"BT-15", mapReceivingAdvice},
	{"BT-12", mapContract},
	{"BG-24", mapAdditionalDocuments},
	{"BT-11", mapProject},
	{"BG-4", mapSeller},
	{"BG-7", mapBuyer},
	{"BG-10", mapPayee},
	{"BT-90", mapCreditorReference},
	{"BG-11", mapTaxRepresentative},
	{"BG-13", mapDelivery},
	{"BG-16", mapPaymentMeans},
	{"BT-20", mapPaymentTerms},
	{"BG-20", mapDocumentAllowanceCharges},
	{"BG-23", mapTaxTotals},
	{"BG-22", mapTotals},
	{"BG-25", mapLines},
	{"BT-9", checkCreditNoteDueDate},
}
