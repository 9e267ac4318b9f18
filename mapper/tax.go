package mapper

import (
	"strings"

	"github.com/en16931/cii2ubl/cii"
	"github.com/en16931/cii2ubl/numeric"
	"github.com/en16931/cii2ubl/ubl"
	"github.com/shopspring/decimal"
)

// mapTaxTotals builds the VAT breakdown (BG-23) with the total VAT amount
// in document currency (BT-110) and, when a VAT accounting currency is
// given, a second total in that currency (BT-111).
func mapTaxTotals(c *conversion, s *source, body *ubl.Body) {
	if len(s.settlement.Taxes) == 0 {
		c.missing("BG-23")
	}

	total := ubl.TaxTotal{}
	for _, tax := range s.settlement.Taxes {
		if sub, ok := c.taxSubtotal(tax); ok {
			total.TaxSubtotals = append(total.TaxSubtotals, sub)
		}
	}

	var taxTotals []cii.Amount
	if s.settlement.Summation != nil {
		taxTotals = s.settlement.Summation.TaxTotalAmounts
	}

	var docTotal, taxCurrencyTotal *cii.Amount
	for i := range taxTotals {
		a := &taxTotals[i]
		cur := strings.TrimSpace(a.CurrencyID)
		switch {
		case c.taxCurrency != "" && cur == c.taxCurrency && c.taxCurrency != c.currency:
			if taxCurrencyTotal == nil {
				taxCurrencyTotal = a
			}
		case cur == "" || cur == c.currency:
			if docTotal == nil {
				docTotal = a
			}
		default:
			c.warnf("BT-110", "VAT total in unexpected currency '%s' is dropped", cur)
		}
	}

	if docTotal != nil && strings.TrimSpace(docTotal.Value) != "" {
		total.TaxAmount = ubl.Amount{CurrencyID: c.currency, Value: c.decimal("BT-110", docTotal.Value)}
	} else {
		c.missing("BT-110")
		sum := sumTaxAmounts(total.TaxSubtotals)
		total.TaxAmount = ubl.Amount{CurrencyID: c.currency, Value: numeric.FormatDecimal(sum)}
		c.infof("BT-110", "invoice total VAT amount derived from the VAT breakdown as %s", total.TaxAmount.Value)
	}
	body.TaxTotals = append(body.TaxTotals, total)

	if c.taxCurrency != "" && c.taxCurrency != c.currency {
		if taxCurrencyTotal == nil {
			c.missing("BT-111")
			return
		}
		if a := c.amountIn("BT-111", taxCurrencyTotal, c.taxCurrency); a != nil {
			body.TaxTotals = append(body.TaxTotals, ubl.TaxTotal{TaxAmount: *a})
		}
	}
}

// taxSubtotal converts one VAT breakdown entry
func (c *conversion) taxSubtotal(tax cii.TradeTax) (ubl.TaxSubtotal, bool) {
	taxable := c.amount("BT-116", tax.BasisAmount)
	amount := c.amount("BT-117", tax.CalculatedAmount)
	category := c.text("BT-118", tax.CategoryCode)
	if taxable == nil || amount == nil || category == "" {
		return ubl.TaxSubtotal{}, false
	}

	out := ubl.TaxSubtotal{
		TaxableAmount: *taxable,
		TaxAmount:     *amount,
		TaxCategory: ubl.TaxCategory{
			ID:                     category,
			TaxExemptionReasonCode: strings.TrimSpace(tax.ExemptionReasonCode),
			TaxExemptionReason:     strings.TrimSpace(tax.ExemptionReason),
			TaxScheme:              ubl.TaxScheme{ID: c.cfg.VATSchemeID},
		},
	}
	if rate := strings.TrimSpace(tax.RateApplicablePercent); rate != "" {
		out.TaxCategory.Percent = c.decimal("BT-119", rate)
	}
	return out, true
}

func sumTaxAmounts(subs []ubl.TaxSubtotal) decimal.Decimal {
	sum := decimal.Zero
	for _, sub := range subs {
		if d, err := numeric.Parse(sub.TaxAmount.Value); err == nil {
			sum = sum.Add(d)
		}
	}
	return sum
}
