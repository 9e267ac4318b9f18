// Package ubl contains the schema-bound UBL 2.x Invoice and CreditNote
// documents, the per-version shape descriptors and the XML writer.
package ubl

import "encoding/xml"

const (
	NamespaceInvoice    = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NamespaceCreditNote = "urn:oasis:names:specification:ubl:schema:xsd:CreditNote-2"
	NamespaceCAC        = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NamespaceCBC        = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
)

// Kind of target document
type Kind int

const (
	KindInvoice Kind = iota
	KindCreditNote
)

func (k Kind) String() string {
	if k == KindCreditNote {
		return "CreditNote"
	}
	return "Invoice"
}

// Document is a produced UBL root, either *Invoice or *CreditNote
type Document interface {
	Kind() Kind
	DocumentID() string
}

// Body is the content shared by Invoice and CreditNote. The mapper fills it
// without knowing the target kind; a Shape arranges it into a root element.
type Body struct {
	CustomizationID string
	ProfileID       string
	ID              string
	IssueDate       string
	DueDate         string
	TypeCode        string
	Notes           []string
	TaxPointDate    string

	DocumentCurrencyCode string
	TaxCurrencyCode      string
	AccountingCost       string
	BuyerReference       string

	InvoicePeriod                *Period
	OrderReference               *OrderReference
	BillingReferences            []BillingReference
	DespatchDocumentReference    *DocumentReference
	ReceiptDocumentReference     *DocumentReference
	OriginatorDocumentReference  *DocumentReference
	ContractDocumentReference    *DocumentReference
	AdditionalDocumentReferences []DocumentReference
	ProjectReference             *ProjectReference

	AccountingSupplierParty *SupplierParty
	AccountingCustomerParty *CustomerParty
	PayeeParty              *Party
	TaxRepresentativeParty  *Party
	Delivery                *Delivery
	PaymentMeans            []PaymentMeans
	PaymentTerms            *PaymentTerms
	AllowanceCharges        []AllowanceCharge
	TaxTotals               []TaxTotal
	LegalMonetaryTotal      *MonetaryTotal

	Lines []Line
}

// Invoice is the UBL Invoice root in schema element order
type Invoice struct {
	XMLName xml.Name `xml:"Invoice"`
	Xmlns   string   `xml:"xmlns,attr"`
	Cac     string   `xml:"xmlns:cac,attr"`
	Cbc     string   `xml:"xmlns:cbc,attr"`

	CustomizationID              string              `xml:"cbc:CustomizationID,omitempty"`
	ProfileID                    string              `xml:"cbc:ProfileID,omitempty"`
	ID                           string              `xml:"cbc:ID,omitempty"`
	IssueDate                    string              `xml:"cbc:IssueDate,omitempty"`
	DueDate                      string              `xml:"cbc:DueDate,omitempty"`
	InvoiceTypeCode              string              `xml:"cbc:InvoiceTypeCode,omitempty"`
	Notes                        []string            `xml:"cbc:Note,omitempty"`
	TaxPointDate                 string              `xml:"cbc:TaxPointDate,omitempty"`
	DocumentCurrencyCode         string              `xml:"cbc:DocumentCurrencyCode,omitempty"`
	TaxCurrencyCode              string              `xml:"cbc:TaxCurrencyCode,omitempty"`
	AccountingCost               string              `xml:"cbc:AccountingCost,omitempty"`
	BuyerReference               string              `xml:"cbc:BuyerReference,omitempty"`
	InvoicePeriod                *Period             `xml:"cac:InvoicePeriod,omitempty"`
	OrderReference               *OrderReference     `xml:"cac:OrderReference,omitempty"`
	BillingReferences            []BillingReference  `xml:"cac:BillingReference,omitempty"`
	DespatchDocumentReference    *DocumentReference  `xml:"cac:DespatchDocumentReference,omitempty"`
	ReceiptDocumentReference     *DocumentReference  `xml:"cac:ReceiptDocumentReference,omitempty"`
	OriginatorDocumentReference  *DocumentReference  `xml:"cac:OriginatorDocumentReference,omitempty"`
	ContractDocumentReference    *DocumentReference  `xml:"cac:ContractDocumentReference,omitempty"`
	AdditionalDocumentReferences []DocumentReference `xml:"cac:AdditionalDocumentReference,omitempty"`
	ProjectReference             *ProjectReference   `xml:"cac:ProjectReference,omitempty"`
	AccountingSupplierParty      *SupplierParty      `xml:"cac:AccountingSupplierParty,omitempty"`
	AccountingCustomerParty      *CustomerParty      `xml:"cac:AccountingCustomerParty,omitempty"`
	PayeeParty                   *Party              `xml:"cac:PayeeParty,omitempty"`
	TaxRepresentativeParty       *Party              `xml:"cac:TaxRepresentativeParty,omitempty"`
	Delivery                     *Delivery           `xml:"cac:Delivery,omitempty"`
	PaymentMeans                 []PaymentMeans      `xml:"cac:PaymentMeans,omitempty"`
	PaymentTerms                 *PaymentTerms       `xml:"cac:PaymentTerms,omitempty"`
	AllowanceCharges             []AllowanceCharge   `xml:"cac:AllowanceCharge,omitempty"`
	TaxTotals                    []TaxTotal          `xml:"cac:TaxTotal,omitempty"`
	LegalMonetaryTotal           *MonetaryTotal      `xml:"cac:LegalMonetaryTotal,omitempty"`
	InvoiceLines                 []Line              `xml:"cac:InvoiceLine,omitempty"`
}

func (inv *Invoice) Kind() Kind         { return KindInvoice }
func (inv *Invoice) DocumentID() string { return inv.ID }

// CreditNote is the UBL CreditNote root in schema element order. It has no
// ProjectReference in UBL 2.1 and no DueDate before UBL 2.3; the Shape
// leaves those fields empty for older versions.
type CreditNote struct {
	XMLName xml.Name `xml:"CreditNote"`
	Xmlns   string   `xml:"xmlns,attr"`
	Cac     string   `xml:"xmlns:cac,attr"`
	Cbc     string   `xml:"xmlns:cbc,attr"`

	CustomizationID              string              `xml:"cbc:CustomizationID,omitempty"`
	ProfileID                    string              `xml:"cbc:ProfileID,omitempty"`
	ID                           string              `xml:"cbc:ID,omitempty"`
	IssueDate                    string              `xml:"cbc:IssueDate,omitempty"`
	DueDate                      string              `xml:"cbc:DueDate,omitempty"`
	TaxPointDate                 string              `xml:"cbc:TaxPointDate,omitempty"`
	CreditNoteTypeCode           string              `xml:"cbc:CreditNoteTypeCode,omitempty"`
	Notes                        []string            `xml:"cbc:Note,omitempty"`
	DocumentCurrencyCode         string              `xml:"cbc:DocumentCurrencyCode,omitempty"`
	TaxCurrencyCode              string              `xml:"cbc:TaxCurrencyCode,omitempty"`
	AccountingCost               string              `xml:"cbc:AccountingCost,omitempty"`
	BuyerReference               string              `xml:"cbc:BuyerReference,omitempty"`
	InvoicePeriod                *Period             `xml:"cac:InvoicePeriod,omitempty"`
	OrderReference               *OrderReference     `xml:"cac:OrderReference,omitempty"`
	BillingReferences            []BillingReference  `xml:"cac:BillingReference,omitempty"`
	DespatchDocumentReference    *DocumentReference  `xml:"cac:DespatchDocumentReference,omitempty"`
	ReceiptDocumentReference     *DocumentReference  `xml:"cac:ReceiptDocumentReference,omitempty"`
	ContractDocumentReference    *DocumentReference  `xml:"cac:ContractDocumentReference,omitempty"`
	AdditionalDocumentReferences []DocumentReference `xml:"cac:AdditionalDocumentReference,omitempty"`
	OriginatorDocumentReference  *DocumentReference  `xml:"cac:OriginatorDocumentReference,omitempty"`
	ProjectReference             *ProjectReference   `xml:"cac:ProjectReference,omitempty"`
	AccountingSupplierParty      *SupplierParty      `xml:"cac:AccountingSupplierParty,omitempty"`
	AccountingCustomerParty      *CustomerParty      `xml:"cac:AccountingCustomerParty,omitempty"`
	PayeeParty                   *Party              `xml:"cac:PayeeParty,omitempty"`
	TaxRepresentativeParty       *Party              `xml:"cac:TaxRepresentativeParty,omitempty"`
	Delivery                     *Delivery           `xml:"cac:Delivery,omitempty"`
	PaymentMeans                 []PaymentMeans      `xml:"cac:PaymentMeans,omitempty"`
	PaymentTerms                 *PaymentTerms       `xml:"cac:PaymentTerms,omitempty"`
	AllowanceCharges             []AllowanceCharge   `xml:"cac:AllowanceCharge,omitempty"`
	TaxTotals                    []TaxTotal          `xml:"cac:TaxTotal,omitempty"`
	LegalMonetaryTotal           *MonetaryTotal      `xml:"cac:LegalMonetaryTotal,omitempty"`
	CreditNoteLines              []Line              `xml:"cac:CreditNoteLine,omitempty"`
}

func (cn *CreditNote) Kind() Kind         { return KindCreditNote }
func (cn *CreditNote) DocumentID() string { return cn.ID }
