package mapper

import (
	"strings"

	"github.com/en16931/cii2ubl/cii"
	"github.com/en16931/cii2ubl/ubl"
)

// Tax registration schemes used by CII
const (
	schemeVAT      = "VA"
	schemeFiscal   = "FC"
	fiscalTaxIDUBL = "TAX"
	schemeSEPA     = "SEPA"
)

// partyTerms names the business terms a party's fields belong to. Empty
// entries are not mapped for that party.
type partyTerms struct {
	group       string
	name        string
	tradingName string
	id          string
	legalID     string
	vatID       string
	taxID       string
	legalForm   string
	endpoint    string
	address     string
	country     string
}

var (
	sellerTerms = partyTerms{
		group: "BG-4", name: "BT-27", tradingName: "BT-28", id: "BT-29",
		legalID: "BT-30", vatID: "BT-31", taxID: "BT-32", legalForm: "BT-33",
		endpoint: "BT-34", address: "BG-5", country: "BT-40",
	}
	buyerTerms = partyTerms{
		group: "BG-7", name: "BT-44", tradingName: "BT-45", id: "BT-46",
		legalID: "BT-47", vatID: "BT-48", endpoint: "BT-49", address: "BG-8",
		country: "BT-55",
	}
)

// party converts a seller or buyer trade party. The legal name is the
// registration name, the trading name the party name.
func (c *conversion) party(p *cii.TradeParty, terms partyTerms) ubl.Party {
	var out ubl.Party

	if terms.endpoint != "" {
		if p.URI != nil {
			out.EndpointID = identifier(p.URI.URIID)
		}
		if out.EndpointID == nil {
			c.missing(terms.endpoint)
		} else if out.EndpointID.SchemeID == "" {
			c.warnf(terms.endpoint, "electronic address '%s' has no scheme", out.EndpointID.Value)
		}
	}

	if terms.id != "" {
		out.PartyIdentifications = partyIdentifications(p)
	}

	if terms.tradingName != "" && p.LegalOrganization != nil {
		if name := strings.TrimSpace(p.LegalOrganization.TradingBusinessName); name != "" {
			out.PartyNames = append(out.PartyNames, ubl.PartyName{Name: name})
		}
	}

	if p.Address == nil {
		c.missing(terms.address)
	} else {
		out.PostalAddress = c.address(p.Address, terms.country)
	}

	for _, reg := range p.TaxRegistrations {
		value := strings.TrimSpace(reg.ID.Value)
		if value == "" {
			continue
		}
		switch scheme := strings.TrimSpace(reg.ID.SchemeID); {
		case scheme == schemeVAT && terms.vatID != "":
			out.PartyTaxSchemes = append(out.PartyTaxSchemes, ubl.PartyTaxScheme{
				CompanyID: value,
				TaxScheme: ubl.TaxScheme{ID: c.cfg.VATSchemeID},
			})
		case scheme == schemeFiscal && terms.taxID != "":
			out.PartyTaxSchemes = append(out.PartyTaxSchemes, ubl.PartyTaxScheme{
				CompanyID: value,
				TaxScheme: ubl.TaxScheme{ID: fiscalTaxIDUBL},
			})
		default:
			term := terms.vatID
			if scheme == schemeFiscal {
				term = terms.group
			}
			c.warnf(term, "tax registration '%s' with scheme '%s' is not supported here", value, scheme)
		}
	}

	legal := ubl.PartyLegalEntity{RegistrationName: c.text(terms.name, p.Name)}
	if p.LegalOrganization != nil && terms.legalID != "" {
		legal.CompanyID = identifier(p.LegalOrganization.ID)
	}
	if terms.legalForm != "" {
		legal.CompanyLegalForm = strings.TrimSpace(p.Description)
	}
	if legal.RegistrationName != "" || legal.CompanyID != nil || legal.CompanyLegalForm != "" {
		out.PartyLegalEntities = []ubl.PartyLegalEntity{legal}
	}

	out.Contact = contact(p.Contacts)
	return out
}

// partyIdentifications maps every ID and global ID to its own
// identification, IDs first
func partyIdentifications(p *cii.TradeParty) []ubl.PartyIdentification {
	var out []ubl.PartyIdentification
	for i := range p.IDs {
		if id := identifier(&p.IDs[i]); id != nil {
			out = append(out, ubl.PartyIdentification{ID: *id})
		}
	}
	for i := range p.GlobalIDs {
		if id := identifier(&p.GlobalIDs[i]); id != nil {
			out = append(out, ubl.PartyIdentification{ID: *id})
		}
	}
	return out
}

// address converts a postal address; the country code is mandatory in
// every EN 16931 address
func (c *conversion) address(a *cii.TradeAddress, countryTerm string) *ubl.Address {
	out := &ubl.Address{
		StreetName:           strings.TrimSpace(a.LineOne),
		AdditionalStreetName: strings.TrimSpace(a.LineTwo),
		CityName:             strings.TrimSpace(a.CityName),
		PostalZone:           strings.TrimSpace(a.PostcodeCode),
		CountrySubentity:     strings.TrimSpace(a.CountrySubDivisionName),
	}
	if line := strings.TrimSpace(a.LineThree); line != "" {
		out.AddressLines = []ubl.AddressLine{{Line: line}}
	}
	if country := c.text(countryTerm, a.CountryID); country != "" {
		out.Country = &ubl.Country{IdentificationCode: country}
	}
	return out
}

// contact converts the first trade contact. The person name is preferred
// over the department name.
func contact(contacts []cii.TradeContact) *ubl.Contact {
	if len(contacts) == 0 {
		return nil
	}
	tc := contacts[0]

	out := &ubl.Contact{Name: strings.TrimSpace(tc.PersonName)}
	if out.Name == "" {
		out.Name = strings.TrimSpace(tc.DepartmentName)
	}
	if tc.Telephone != nil {
		out.Telephone = strings.TrimSpace(tc.Telephone.CompleteNumber)
	}
	if tc.Email != nil && tc.Email.URIID != nil {
		out.ElectronicMail = strings.TrimSpace(tc.Email.URIID.Value)
	}
	if *out == (ubl.Contact{}) {
		return nil
	}
	return out
}

func mapSeller(c *conversion, s *source, body *ubl.Body) {
	if s.agreement.Seller == nil {
		c.missing("BG-4")
		return
	}
	body.AccountingSupplierParty = &ubl.SupplierParty{Party: c.party(s.agreement.Seller, sellerTerms)}
}

func mapBuyer(c *conversion, s *source, body *ubl.Body) {
	if s.agreement.Buyer == nil {
		c.missing("BG-7")
		return
	}
	body.AccountingCustomerParty = &ubl.CustomerParty{Party: c.party(s.agreement.Buyer, buyerTerms)}
}

// mapPayee maps the payee (BG-10) when it differs from the seller
func mapPayee(c *conversion, s *source, body *ubl.Body) {
	p := s.settlement.Payee
	if p == nil {
		return
	}

	out := &ubl.Party{PartyIdentifications: partyIdentifications(p)}
	if name := c.text("BT-59", p.Name); name != "" {
		out.PartyNames = []ubl.PartyName{{Name: name}}
	}
	if p.LegalOrganization != nil {
		if id := identifier(p.LegalOrganization.ID); id != nil {
			out.PartyLegalEntities = []ubl.PartyLegalEntity{{CompanyID: id}}
		}
	}
	body.PayeeParty = out
}

// mapCreditorReference adds the bank assigned creditor identifier (BT-90)
// as SEPA identification of the payee, or of the seller without payee
func mapCreditorReference(c *conversion, s *source, body *ubl.Body) {
	id := strings.TrimSpace(s.settlement.CreditorReferenceID)
	if id == "" {
		return
	}

	ident := ubl.PartyIdentification{ID: ubl.Identifier{SchemeID: schemeSEPA, Value: id}}
	switch {
	case body.PayeeParty != nil:
		body.PayeeParty.PartyIdentifications = append(body.PayeeParty.PartyIdentifications, ident)
	case body.AccountingSupplierParty != nil:
		p := &body.AccountingSupplierParty.Party
		p.PartyIdentifications = append(p.PartyIdentifications, ident)
	default:
		c.warnf("BT-90", "bank assigned creditor identifier '%s' has neither payee nor seller to attach to", id)
	}
}

// mapTaxRepresentative maps the seller tax representative (BG-11). Name,
// VAT identifier and postal address are mandatory within the group.
func mapTaxRepresentative(c *conversion, s *source, body *ubl.Body) {
	p := s.agreement.SellerTaxRepresentative
	if p == nil {
		return
	}

	out := &ubl.Party{}
	if name := c.text("BT-62", p.Name); name != "" {
		out.PartyNames = []ubl.PartyName{{Name: name}}
	}

	if p.Address == nil {
		c.missing("BG-12")
	} else {
		out.PostalAddress = c.address(p.Address, "BT-69")
	}

	for _, reg := range p.TaxRegistrations {
		if strings.TrimSpace(reg.ID.SchemeID) != schemeVAT {
			continue
		}
		if value := strings.TrimSpace(reg.ID.Value); value != "" {
			out.PartyTaxSchemes = append(out.PartyTaxSchemes, ubl.PartyTaxScheme{
				CompanyID: value,
				TaxScheme: ubl.TaxScheme{ID: c.cfg.VATSchemeID},
			})
			break
		}
	}
	if len(out.PartyTaxSchemes) == 0 {
		c.missing("BT-63")
	}

	body.TaxRepresentativeParty = out
}
