package mapper

import (
	"strings"

	"github.com/en16931/cii2ubl/cii"
	"github.com/en16931/cii2ubl/numeric"
	"github.com/en16931/cii2ubl/ubl"
	"github.com/shopspring/decimal"
)

// chargeTerms names the business terms of an allowance or a charge
type chargeTerms struct {
	group      string
	amount     string
	baseAmount string
	percent    string
	category   string
	rate       string
	reason     string
	reasonCode string
}

var (
	documentAllowanceTerms = chargeTerms{
		group: "BG-20", amount: "BT-92", baseAmount: "BT-93", percent: "BT-94",
		category: "BT-95", rate: "BT-96", reason: "BT-97", reasonCode: "BT-98",
	}
	documentChargeTerms = chargeTerms{
		group: "BG-21", amount: "BT-99", baseAmount: "BT-100", percent: "BT-101",
		category: "BT-102", rate: "BT-103", reason: "BT-104", reasonCode: "BT-105",
	}
	lineAllowanceTerms = chargeTerms{
		group: "BG-27", amount: "BT-136", baseAmount: "BT-137", percent: "BT-138",
		reason: "BT-139", reasonCode: "BT-140",
	}
	lineChargeTerms = chargeTerms{
		group: "BG-28", amount: "BT-141", baseAmount: "BT-142", percent: "BT-143",
		reason: "BT-144", reasonCode: "BT-145",
	}
)

// allowanceCharge converts one allowance or charge. The boolean is false
// when the entry cannot be converted at all.
func (c *conversion) allowanceCharge(ac cii.AllowanceCharge, allowance, charge chargeTerms) (ubl.AllowanceCharge, bool) {
	isCharge, ok := isTrue(ac.ChargeIndicator.Indicator)
	if !ok {
		c.errorf(allowance.group, "charge indicator '%s' is neither true nor false", ac.ChargeIndicator.Indicator)
		return ubl.AllowanceCharge{}, false
	}
	terms := allowance
	if isCharge {
		terms = charge
	}

	amount := c.amount(terms.amount, ac.ActualAmount)
	if amount == nil {
		return ubl.AllowanceCharge{}, false
	}

	out := ubl.AllowanceCharge{
		ChargeIndicator:           isCharge,
		AllowanceChargeReasonCode: strings.TrimSpace(ac.ReasonCode),
		AllowanceChargeReason:     strings.TrimSpace(ac.Reason),
		Amount:                    *amount,
	}
	if p := strings.TrimSpace(ac.CalculationPercent); p != "" {
		out.MultiplierFactorNumeric = c.decimal(terms.percent, p)
	}
	if ac.BasisAmount != nil && strings.TrimSpace(ac.BasisAmount.Value) != "" {
		out.BaseAmount = c.amount(terms.baseAmount, ac.BasisAmount)
	}

	if terms.category != "" {
		out.TaxCategory = c.taxCategory(ac.CategoryTradeTax, terms.category, terms.rate)
	}

	return out, true
}

// taxCategory converts the VAT category of an allowance or charge
func (c *conversion) taxCategory(tax *cii.TradeTax, categoryTerm, rateTerm string) *ubl.TaxCategory {
	if tax == nil {
		c.missing(categoryTerm)
		return nil
	}
	id := c.text(categoryTerm, tax.CategoryCode)
	if id == "" {
		return nil
	}
	out := &ubl.TaxCategory{ID: id, TaxScheme: ubl.TaxScheme{ID: c.cfg.VATSchemeID}}
	if rate := strings.TrimSpace(tax.RateApplicablePercent); rate != "" {
		out.Percent = c.decimal(rateTerm, rate)
	}
	return out
}

func mapDocumentAllowanceCharges(c *conversion, s *source, body *ubl.Body) {
	for _, ac := range s.settlement.AllowanceCharges {
		if out, ok := c.allowanceCharge(ac, documentAllowanceTerms, documentChargeTerms); ok {
			body.AllowanceCharges = append(body.AllowanceCharges, out)
		}
	}
}

// netAllowanceCharges sums line level allowances and charges, charges
// positive. Unparseable amounts count as zero; they are reported elsewhere.
func netAllowanceCharges(acs []ubl.AllowanceCharge) decimal.Decimal {
	sum := decimal.Zero
	for _, ac := range acs {
		d, err := numeric.Parse(ac.Amount.Value)
		if err != nil {
			continue
		}
		if ac.ChargeIndicator {
			sum = sum.Add(d)
		} else {
			sum = sum.Sub(d)
		}
	}
	return sum
}
