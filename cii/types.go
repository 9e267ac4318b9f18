// Package cii contains the schema-bound representation of a UN/CEFACT Cross
// Industry Invoice (D16B) restricted to the EN 16931 subset, and a reader
// that binds XML documents to it.
//
// Elements are matched by local name; the rsm, ram, udt and qdt prefixes are
// not significant once the root element has been checked.
package cii

import "encoding/xml"

const (
	NamespaceRSM = "urn:un:unece:uncefact:data:standard:CrossIndustryInvoice:100"
	NamespaceRAM = "urn:un:unece:uncefact:data:standard:ReusableAggregateBusinessInformationEntity:100"
	NamespaceUDT = "urn:un:unece:uncefact:data:standard:UnqualifiedDataType:100"
	NamespaceQDT = "urn:un:unece:uncefact:data:standard:QualifiedDataType:100"
)

// CrossIndustryInvoice is the document root
type CrossIndustryInvoice struct {
	XMLName     xml.Name                     `xml:"CrossIndustryInvoice"`
	Context     *DocumentContext             `xml:"ExchangedDocumentContext"`
	Document    *ExchangedDocument           `xml:"ExchangedDocument"`
	Transaction *SupplyChainTradeTransaction `xml:"SupplyChainTradeTransaction"`
}

type DocumentContext struct {
	BusinessProcess *DocumentContextParameter `xml:"BusinessProcessSpecifiedDocumentContextParameter"`
	Guideline       *DocumentContextParameter `xml:"GuidelineSpecifiedDocumentContextParameter"`
}

type DocumentContextParameter struct {
	ID *ID `xml:"ID"`
}

// ID is an identifier with an optional scheme
type ID struct {
	SchemeID string `xml:"schemeID,attr,omitempty"`
	Value    string `xml:",chardata"`
}

// Code is a code value with optional code list attributes
type Code struct {
	ListID        string `xml:"listID,attr,omitempty"`
	ListVersionID string `xml:"listVersionID,attr,omitempty"`
	Value         string `xml:",chardata"`
}

// Amount is a monetary amount with an optional currency
type Amount struct {
	CurrencyID string `xml:"currencyID,attr,omitempty"`
	Value      string `xml:",chardata"`
}

// Quantity is a quantity with an optional unit of measure
type Quantity struct {
	UnitCode string `xml:"unitCode,attr,omitempty"`
	Value    string `xml:",chardata"`
}

// DateTimeString is a date carrying a format qualifier, e.g. 102 for CCYYMMDD
type DateTimeString struct {
	Format string `xml:"format,attr,omitempty"`
	Value  string `xml:",chardata"`
}

// DateTime wraps udt:DateTimeString and qdt:DateTimeString
type DateTime struct {
	DateTimeString *DateTimeString `xml:"DateTimeString"`
}

// Date wraps udt:DateString
type Date struct {
	DateString *DateTimeString `xml:"DateString"`
}

// Indicator wraps udt:Indicator
type Indicator struct {
	Indicator string `xml:"Indicator"`
}

// BinaryObject is an embedded attachment
type BinaryObject struct {
	MimeCode string `xml:"mimeCode,attr,omitempty"`
	Filename string `xml:"filename,attr,omitempty"`
	Value    string `xml:",chardata"`
}

type Note struct {
	ContentCode string `xml:"ContentCode"`
	Content     string `xml:"Content"`
	SubjectCode string `xml:"SubjectCode"`
}

type ExchangedDocument struct {
	ID            *ID       `xml:"ID"`
	Name          string    `xml:"Name"`
	TypeCode      string    `xml:"TypeCode"`
	IssueDateTime *DateTime `xml:"IssueDateTime"`
	IncludedNotes []Note    `xml:"IncludedNote"`
}

type SupplyChainTradeTransaction struct {
	LineItems  []LineItem        `xml:"IncludedSupplyChainTradeLineItem"`
	Agreement  *HeaderAgreement  `xml:"ApplicableHeaderTradeAgreement"`
	Delivery   *HeaderDelivery   `xml:"ApplicableHeaderTradeDelivery"`
	Settlement *HeaderSettlement `xml:"ApplicableHeaderTradeSettlement"`
}

type HeaderAgreement struct {
	BuyerReference          string               `xml:"BuyerReference"`
	Seller                  *TradeParty          `xml:"SellerTradeParty"`
	Buyer                   *TradeParty          `xml:"BuyerTradeParty"`
	SellerTaxRepresentative *TradeParty          `xml:"SellerTaxRepresentativeTradeParty"`
	SellerOrder             *ReferencedDocument  `xml:"SellerOrderReferencedDocument"`
	BuyerOrder              *ReferencedDocument  `xml:"BuyerOrderReferencedDocument"`
	Contract                *ReferencedDocument  `xml:"ContractReferencedDocument"`
	AdditionalDocuments     []ReferencedDocument `xml:"AdditionalReferencedDocument"`
	Project                 *ProcuringProject    `xml:"SpecifiedProcuringProject"`
}

type TradeParty struct {
	IDs               []ID                    `xml:"ID"`
	GlobalIDs         []ID                    `xml:"GlobalID"`
	Name              string                  `xml:"Name"`
	Description       string                  `xml:"Description"`
	LegalOrganization *LegalOrganization      `xml:"SpecifiedLegalOrganization"`
	Contacts          []TradeContact          `xml:"DefinedTradeContact"`
	Address           *TradeAddress           `xml:"PostalTradeAddress"`
	URI               *UniversalCommunication `xml:"URIUniversalCommunication"`
	TaxRegistrations  []TaxRegistration       `xml:"SpecifiedTaxRegistration"`
}

type LegalOrganization struct {
	ID                  *ID    `xml:"ID"`
	TradingBusinessName string `xml:"TradingBusinessName"`
}

type TradeContact struct {
	PersonName     string                  `xml:"PersonName"`
	DepartmentName string                  `xml:"DepartmentName"`
	Telephone      *UniversalCommunication `xml:"TelephoneUniversalCommunication"`
	Email          *UniversalCommunication `xml:"EmailURIUniversalCommunication"`
}

type UniversalCommunication struct {
	URIID          *ID    `xml:"URIID"`
	CompleteNumber string `xml:"CompleteNumber"`
}

type TradeAddress struct {
	PostcodeCode           string `xml:"PostcodeCode"`
	LineOne                string `xml:"LineOne"`
	LineTwo                string `xml:"LineTwo"`
	LineThree              string `xml:"LineThree"`
	CityName               string `xml:"CityName"`
	CountryID              string `xml:"CountryID"`
	CountrySubDivisionName string `xml:"CountrySubDivisionName"`
}

type TaxRegistration struct {
	ID ID `xml:"ID"`
}

type ReferencedDocument struct {
	IssuerAssignedID       string        `xml:"IssuerAssignedID"`
	URIID                  string        `xml:"URIID"`
	LineID                 string        `xml:"LineID"`
	TypeCode               string        `xml:"TypeCode"`
	Name                   string        `xml:"Name"`
	AttachmentBinaryObject *BinaryObject `xml:"AttachmentBinaryObject"`
	ReferenceTypeCode      string        `xml:"ReferenceTypeCode"`
	FormattedIssueDateTime *DateTime     `xml:"FormattedIssueDateTime"`
}

type ProcuringProject struct {
	ID   string `xml:"ID"`
	Name string `xml:"Name"`
}

type HeaderDelivery struct {
	ShipTo          *TradeParty         `xml:"ShipToTradeParty"`
	ActualDelivery  *SupplyChainEvent   `xml:"ActualDeliverySupplyChainEvent"`
	DespatchAdvice  *ReferencedDocument `xml:"DespatchAdviceReferencedDocument"`
	ReceivingAdvice *ReferencedDocument `xml:"ReceivingAdviceReferencedDocument"`
}

type SupplyChainEvent struct {
	OccurrenceDateTime *DateTime `xml:"OccurrenceDateTime"`
}

type HeaderSettlement struct {
	CreditorReferenceID string               `xml:"CreditorReferenceID"`
	PaymentReference    string               `xml:"PaymentReference"`
	TaxCurrencyCode     string               `xml:"TaxCurrencyCode"`
	InvoiceCurrencyCode string               `xml:"InvoiceCurrencyCode"`
	Payee               *TradeParty          `xml:"PayeeTradeParty"`
	PaymentMeans        []PaymentMeans       `xml:"SpecifiedTradeSettlementPaymentMeans"`
	Taxes               []TradeTax           `xml:"ApplicableTradeTax"`
	BillingPeriod       *Period              `xml:"BillingSpecifiedPeriod"`
	AllowanceCharges    []AllowanceCharge    `xml:"SpecifiedTradeAllowanceCharge"`
	PaymentTerms        []PaymentTerms       `xml:"SpecifiedTradePaymentTerms"`
	Summation           *MonetarySummation   `xml:"SpecifiedTradeSettlementHeaderMonetarySummation"`
	InvoiceReferences   []ReferencedDocument `xml:"InvoiceReferencedDocument"`
	AccountingAccounts  []AccountingAccount  `xml:"ReceivableSpecifiedTradeAccountingAccount"`
}

type PaymentMeans struct {
	TypeCode         string                `xml:"TypeCode"`
	Information      string                `xml:"Information"`
	Card             *FinancialCard        `xml:"ApplicableTradeSettlementFinancialCard"`
	PayerAccount     *DebtorAccount        `xml:"PayerPartyDebtorFinancialAccount"`
	PayeeAccount     *CreditorAccount      `xml:"PayeePartyCreditorFinancialAccount"`
	PayeeInstitution *FinancialInstitution `xml:"PayeeSpecifiedCreditorFinancialInstitution"`
}

type FinancialCard struct {
	ID             string `xml:"ID"`
	CardholderName string `xml:"CardholderName"`
}

type DebtorAccount struct {
	IBANID string `xml:"IBANID"`
}

type CreditorAccount struct {
	IBANID        string `xml:"IBANID"`
	AccountName   string `xml:"AccountName"`
	ProprietaryID string `xml:"ProprietaryID"`
}

type FinancialInstitution struct {
	BICID string `xml:"BICID"`
}

type TradeTax struct {
	CalculatedAmount      *Amount `xml:"CalculatedAmount"`
	TypeCode              string  `xml:"TypeCode"`
	ExemptionReason       string  `xml:"ExemptionReason"`
	BasisAmount           *Amount `xml:"BasisAmount"`
	CategoryCode          string  `xml:"CategoryCode"`
	ExemptionReasonCode   string  `xml:"ExemptionReasonCode"`
	TaxPointDate          *Date   `xml:"TaxPointDate"`
	DueDateTypeCode       string  `xml:"DueDateTypeCode"`
	RateApplicablePercent string  `xml:"RateApplicablePercent"`
}

type Period struct {
	Description   string    `xml:"Description"`
	StartDateTime *DateTime `xml:"StartDateTime"`
	EndDateTime   *DateTime `xml:"EndDateTime"`
}

type AllowanceCharge struct {
	ChargeIndicator    Indicator `xml:"ChargeIndicator"`
	CalculationPercent string    `xml:"CalculationPercent"`
	BasisAmount        *Amount   `xml:"BasisAmount"`
	ActualAmount       *Amount   `xml:"ActualAmount"`
	ReasonCode         string    `xml:"ReasonCode"`
	Reason             string    `xml:"Reason"`
	CategoryTradeTax   *TradeTax `xml:"CategoryTradeTax"`
}

type PaymentTerms struct {
	Description          string    `xml:"Description"`
	DueDate              *DateTime `xml:"DueDateDateTime"`
	DirectDebitMandateID string    `xml:"DirectDebitMandateID"`
}

type MonetarySummation struct {
	LineTotalAmount      *Amount  `xml:"LineTotalAmount"`
	ChargeTotalAmount    *Amount  `xml:"ChargeTotalAmount"`
	AllowanceTotalAmount *Amount  `xml:"AllowanceTotalAmount"`
	TaxBasisTotalAmount  *Amount  `xml:"TaxBasisTotalAmount"`
	TaxTotalAmounts      []Amount `xml:"TaxTotalAmount"`
	RoundingAmount       *Amount  `xml:"RoundingAmount"`
	GrandTotalAmount     *Amount  `xml:"GrandTotalAmount"`
	TotalPrepaidAmount   *Amount  `xml:"TotalPrepaidAmount"`
	DuePayableAmount     *Amount  `xml:"DuePayableAmount"`
}

type AccountingAccount struct {
	ID string `xml:"ID"`
}

type LineItem struct {
	Document   *LineDocument   `xml:"AssociatedDocumentLineDocument"`
	Product    *TradeProduct   `xml:"SpecifiedTradeProduct"`
	Agreement  *LineAgreement  `xml:"SpecifiedLineTradeAgreement"`
	Delivery   *LineDelivery   `xml:"SpecifiedLineTradeDelivery"`
	Settlement *LineSettlement `xml:"SpecifiedLineTradeSettlement"`
}

type LineDocument struct {
	LineID string `xml:"LineID"`
	Notes  []Note `xml:"IncludedNote"`
}

type TradeProduct struct {
	GlobalID         *ID                     `xml:"GlobalID"`
	SellerAssignedID string                  `xml:"SellerAssignedID"`
	BuyerAssignedID  string                  `xml:"BuyerAssignedID"`
	Name             string                  `xml:"Name"`
	Description      string                  `xml:"Description"`
	Characteristics  []ProductCharacteristic `xml:"ApplicableProductCharacteristic"`
	Classifications  []ProductClassification `xml:"DesignatedProductClassification"`
	OriginCountry    *TradeCountry           `xml:"OriginTradeCountry"`
}

type ProductCharacteristic struct {
	Description string `xml:"Description"`
	Value       string `xml:"Value"`
}

type ProductClassification struct {
	ClassCode *Code `xml:"ClassCode"`
}

type TradeCountry struct {
	ID string `xml:"ID"`
}

type LineAgreement struct {
	BuyerOrder *ReferencedDocument `xml:"BuyerOrderReferencedDocument"`
	GrossPrice *TradePrice         `xml:"GrossPriceProductTradePrice"`
	NetPrice   *TradePrice         `xml:"NetPriceProductTradePrice"`
}

type TradePrice struct {
	ChargeAmount     *Amount           `xml:"ChargeAmount"`
	BasisQuantity    *Quantity         `xml:"BasisQuantity"`
	AllowanceCharges []AllowanceCharge `xml:"AppliedTradeAllowanceCharge"`
}

type LineDelivery struct {
	BilledQuantity *Quantity `xml:"BilledQuantity"`
}

type LineSettlement struct {
	Taxes               []TradeTax           `xml:"ApplicableTradeTax"`
	BillingPeriod       *Period              `xml:"BillingSpecifiedPeriod"`
	AllowanceCharges    []AllowanceCharge    `xml:"SpecifiedTradeAllowanceCharge"`
	Summation           *LineSummation       `xml:"SpecifiedTradeSettlementLineMonetarySummation"`
	AdditionalDocuments []ReferencedDocument `xml:"AdditionalReferencedDocument"`
	AccountingAccounts  []AccountingAccount  `xml:"ReceivableSpecifiedTradeAccountingAccount"`
}

type LineSummation struct {
	LineTotalAmount *Amount `xml:"LineTotalAmount"`
}
