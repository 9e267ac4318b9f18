package ubl

// Identifier is an ID with an optional scheme
type Identifier struct {
	SchemeID string `xml:"schemeID,attr,omitempty"`
	Value    string `xml:",chardata"`
}

// Code is a code value with optional list attributes
type Code struct {
	ListID        string `xml:"listID,attr,omitempty"`
	ListVersionID string `xml:"listVersionID,attr,omitempty"`
	Name          string `xml:"name,attr,omitempty"`
	Value         string `xml:",chardata"`
}

// Amount is a monetary amount. UBL requires the currency on every amount;
// it is only empty when the document currency is missing.
type Amount struct {
	CurrencyID string `xml:"currencyID,attr,omitempty"`
	Value      string `xml:",chardata"`
}

// Quantity is a quantity with an optional unit of measure
type Quantity struct {
	UnitCode string `xml:"unitCode,attr,omitempty"`
	Value    string `xml:",chardata"`
}

type Period struct {
	StartDate       string `xml:"cbc:StartDate,omitempty"`
	EndDate         string `xml:"cbc:EndDate,omitempty"`
	DescriptionCode string `xml:"cbc:DescriptionCode,omitempty"`
}

type OrderReference struct {
	ID           string `xml:"cbc:ID"`
	SalesOrderID string `xml:"cbc:SalesOrderID,omitempty"`
}

type BillingReference struct {
	InvoiceDocumentReference DocumentReference `xml:"cac:InvoiceDocumentReference"`
}

type DocumentReference struct {
	ID                  Identifier  `xml:"cbc:ID"`
	IssueDate           string      `xml:"cbc:IssueDate,omitempty"`
	DocumentTypeCode    string      `xml:"cbc:DocumentTypeCode,omitempty"`
	DocumentDescription string      `xml:"cbc:DocumentDescription,omitempty"`
	Attachment          *Attachment `xml:"cac:Attachment,omitempty"`
}

type Attachment struct {
	EmbeddedDocumentBinaryObject *BinaryObject      `xml:"cbc:EmbeddedDocumentBinaryObject,omitempty"`
	ExternalReference            *ExternalReference `xml:"cac:ExternalReference,omitempty"`
}

// BinaryObject is a base64 encoded attachment
type BinaryObject struct {
	MimeCode string `xml:"mimeCode,attr,omitempty"`
	Filename string `xml:"filename,attr,omitempty"`
	Value    string `xml:",chardata"`
}

type ExternalReference struct {
	URI string `xml:"cbc:URI"`
}

type ProjectReference struct {
	ID string `xml:"cbc:ID"`
}

type SupplierParty struct {
	Party Party `xml:"cac:Party"`
}

type CustomerParty struct {
	Party Party `xml:"cac:Party"`
}

// Party is shared by the seller, buyer, payee, tax representative and
// deliver-to parties
type Party struct {
	EndpointID           *Identifier           `xml:"cbc:EndpointID,omitempty"`
	PartyIdentifications []PartyIdentification `xml:"cac:PartyIdentification,omitempty"`
	PartyNames           []PartyName           `xml:"cac:PartyName,omitempty"`
	PostalAddress        *Address              `xml:"cac:PostalAddress,omitempty"`
	PartyTaxSchemes      []PartyTaxScheme      `xml:"cac:PartyTaxScheme,omitempty"`
	PartyLegalEntities   []PartyLegalEntity    `xml:"cac:PartyLegalEntity,omitempty"`
	Contact              *Contact              `xml:"cac:Contact,omitempty"`
}

type PartyIdentification struct {
	ID Identifier `xml:"cbc:ID"`
}

type PartyName struct {
	Name string `xml:"cbc:Name"`
}

type Address struct {
	StreetName           string        `xml:"cbc:StreetName,omitempty"`
	AdditionalStreetName string        `xml:"cbc:AdditionalStreetName,omitempty"`
	CityName             string        `xml:"cbc:CityName,omitempty"`
	PostalZone           string        `xml:"cbc:PostalZone,omitempty"`
	CountrySubentity     string        `xml:"cbc:CountrySubentity,omitempty"`
	AddressLines         []AddressLine `xml:"cac:AddressLine,omitempty"`
	Country              *Country      `xml:"cac:Country,omitempty"`
}

type AddressLine struct {
	Line string `xml:"cbc:Line"`
}

type Country struct {
	IdentificationCode string `xml:"cbc:IdentificationCode"`
}

type PartyTaxScheme struct {
	CompanyID string    `xml:"cbc:CompanyID"`
	TaxScheme TaxScheme `xml:"cac:TaxScheme"`
}

type TaxScheme struct {
	ID string `xml:"cbc:ID"`
}

type PartyLegalEntity struct {
	RegistrationName string      `xml:"cbc:RegistrationName,omitempty"`
	CompanyID        *Identifier `xml:"cbc:CompanyID,omitempty"`
	CompanyLegalForm string      `xml:"cbc:CompanyLegalForm,omitempty"`
}

type Contact struct {
	Name           string `xml:"cbc:Name,omitempty"`
	Telephone      string `xml:"cbc:Telephone,omitempty"`
	ElectronicMail string `xml:"cbc:ElectronicMail,omitempty"`
}

type Delivery struct {
	ActualDeliveryDate string            `xml:"cbc:ActualDeliveryDate,omitempty"`
	DeliveryLocation   *DeliveryLocation `xml:"cac:DeliveryLocation,omitempty"`
	DeliveryParty      *Party            `xml:"cac:DeliveryParty,omitempty"`
}

type DeliveryLocation struct {
	ID      *Identifier `xml:"cbc:ID,omitempty"`
	Address *Address    `xml:"cac:Address,omitempty"`
}

type PaymentMeans struct {
	PaymentMeansCode      Code              `xml:"cbc:PaymentMeansCode"`
	PaymentDueDate        string            `xml:"cbc:PaymentDueDate,omitempty"`
	PaymentIDs            []string          `xml:"cbc:PaymentID,omitempty"`
	CardAccount           *CardAccount      `xml:"cac:CardAccount,omitempty"`
	PayeeFinancialAccount *FinancialAccount `xml:"cac:PayeeFinancialAccount,omitempty"`
	PaymentMandate        *PaymentMandate   `xml:"cac:PaymentMandate,omitempty"`
}

type CardAccount struct {
	PrimaryAccountNumberID string `xml:"cbc:PrimaryAccountNumberID"`
	NetworkID              string `xml:"cbc:NetworkID"`
	HolderName             string `xml:"cbc:HolderName,omitempty"`
}

type FinancialAccount struct {
	ID                         string                      `xml:"cbc:ID"`
	Name                       string                      `xml:"cbc:Name,omitempty"`
	FinancialInstitutionBranch *FinancialInstitutionBranch `xml:"cac:FinancialInstitutionBranch,omitempty"`
}

type FinancialInstitutionBranch struct {
	ID string `xml:"cbc:ID"`
}

type PaymentMandate struct {
	ID                    string            `xml:"cbc:ID,omitempty"`
	PayerFinancialAccount *FinancialAccount `xml:"cac:PayerFinancialAccount,omitempty"`
}

type PaymentTerms struct {
	Notes []string `xml:"cbc:Note,omitempty"`
}

// AllowanceCharge serves document level, line level and price level
// allowances and charges
type AllowanceCharge struct {
	ChargeIndicator           bool         `xml:"cbc:ChargeIndicator"`
	AllowanceChargeReasonCode string       `xml:"cbc:AllowanceChargeReasonCode,omitempty"`
	AllowanceChargeReason     string       `xml:"cbc:AllowanceChargeReason,omitempty"`
	MultiplierFactorNumeric   string       `xml:"cbc:MultiplierFactorNumeric,omitempty"`
	Amount                    Amount       `xml:"cbc:Amount"`
	BaseAmount                *Amount      `xml:"cbc:BaseAmount,omitempty"`
	TaxCategory               *TaxCategory `xml:"cac:TaxCategory,omitempty"`
}

type TaxTotal struct {
	TaxAmount    Amount        `xml:"cbc:TaxAmount"`
	TaxSubtotals []TaxSubtotal `xml:"cac:TaxSubtotal,omitempty"`
}

type TaxSubtotal struct {
	TaxableAmount Amount      `xml:"cbc:TaxableAmount"`
	TaxAmount     Amount      `xml:"cbc:TaxAmount"`
	TaxCategory   TaxCategory `xml:"cac:TaxCategory"`
}

// TaxCategory is used for cac:TaxCategory and cac:ClassifiedTaxCategory
type TaxCategory struct {
	ID                     string    `xml:"cbc:ID"`
	Percent                string    `xml:"cbc:Percent,omitempty"`
	TaxExemptionReasonCode string    `xml:"cbc:TaxExemptionReasonCode,omitempty"`
	TaxExemptionReason     string    `xml:"cbc:TaxExemptionReason,omitempty"`
	TaxScheme              TaxScheme `xml:"cac:TaxScheme"`
}

type MonetaryTotal struct {
	LineExtensionAmount   *Amount `xml:"cbc:LineExtensionAmount,omitempty"`
	TaxExclusiveAmount    *Amount `xml:"cbc:TaxExclusiveAmount,omitempty"`
	TaxInclusiveAmount    *Amount `xml:"cbc:TaxInclusiveAmount,omitempty"`
	AllowanceTotalAmount  *Amount `xml:"cbc:AllowanceTotalAmount,omitempty"`
	ChargeTotalAmount     *Amount `xml:"cbc:ChargeTotalAmount,omitempty"`
	PrepaidAmount         *Amount `xml:"cbc:PrepaidAmount,omitempty"`
	PayableRoundingAmount *Amount `xml:"cbc:PayableRoundingAmount,omitempty"`
	PayableAmount         *Amount `xml:"cbc:PayableAmount,omitempty"`
}

// Line is an invoice line or a credit note line. Exactly one of
// InvoicedQuantity and CreditedQuantity is set, matching the root.
type Line struct {
	ID                  string              `xml:"cbc:ID,omitempty"`
	Notes               []string            `xml:"cbc:Note,omitempty"`
	InvoicedQuantity    *Quantity           `xml:"cbc:InvoicedQuantity,omitempty"`
	CreditedQuantity    *Quantity           `xml:"cbc:CreditedQuantity,omitempty"`
	LineExtensionAmount *Amount             `xml:"cbc:LineExtensionAmount,omitempty"`
	AccountingCost      string              `xml:"cbc:AccountingCost,omitempty"`
	InvoicePeriod       *Period             `xml:"cac:InvoicePeriod,omitempty"`
	OrderLineReference  *OrderLineReference `xml:"cac:OrderLineReference,omitempty"`
	DocumentReferences  []DocumentReference `xml:"cac:DocumentReference,omitempty"`
	AllowanceCharges    []AllowanceCharge   `xml:"cac:AllowanceCharge,omitempty"`
	Item                Item                `xml:"cac:Item"`
	Price               *Price              `xml:"cac:Price,omitempty"`
}

type OrderLineReference struct {
	LineID string `xml:"cbc:LineID"`
}

type Item struct {
	Description                string                    `xml:"cbc:Description,omitempty"`
	Name                       string                    `xml:"cbc:Name,omitempty"`
	BuyersItemIdentification   *ItemIdentification       `xml:"cac:BuyersItemIdentification,omitempty"`
	SellersItemIdentification  *ItemIdentification       `xml:"cac:SellersItemIdentification,omitempty"`
	StandardItemIdentification *ItemIdentification       `xml:"cac:StandardItemIdentification,omitempty"`
	OriginCountry              *Country                  `xml:"cac:OriginCountry,omitempty"`
	CommodityClassifications   []CommodityClassification `xml:"cac:CommodityClassification,omitempty"`
	ClassifiedTaxCategory      *TaxCategory              `xml:"cac:ClassifiedTaxCategory,omitempty"`
	AdditionalItemProperties   []ItemProperty            `xml:"cac:AdditionalItemProperty,omitempty"`
}

type ItemIdentification struct {
	ID Identifier `xml:"cbc:ID"`
}

type CommodityClassification struct {
	ItemClassificationCode Code `xml:"cbc:ItemClassificationCode"`
}

type ItemProperty struct {
	Name  string `xml:"cbc:Name"`
	Value string `xml:"cbc:Value"`
}

type Price struct {
	PriceAmount     Amount           `xml:"cbc:PriceAmount"`
	BaseQuantity    *Quantity        `xml:"cbc:BaseQuantity,omitempty"`
	AllowanceCharge *AllowanceCharge `xml:"cac:AllowanceCharge,omitempty"`
}
