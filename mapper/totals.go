package mapper

import (
	"github.com/en16931/cii2ubl/cii"
	"github.com/en16931/cii2ubl/numeric"
	"github.com/en16931/cii2ubl/ubl"
)

// mapTotals maps the document totals (BG-22). A rounding amount of exactly
// zero is left out.
func mapTotals(c *conversion, s *source, body *ubl.Body) {
	sum := s.settlement.Summation
	if sum == nil {
		c.missing("BG-22")
		return
	}

	optional := func(term string, a *cii.Amount) *ubl.Amount {
		if a == nil {
			return nil
		}
		return c.amount(term, a)
	}

	total := &ubl.MonetaryTotal{
		LineExtensionAmount:  c.amount("BT-106", sum.LineTotalAmount),
		TaxExclusiveAmount:   c.amount("BT-109", sum.TaxBasisTotalAmount),
		TaxInclusiveAmount:   c.amount("BT-112", sum.GrandTotalAmount),
		AllowanceTotalAmount: optional("BT-107", sum.AllowanceTotalAmount),
		ChargeTotalAmount:    optional("BT-108", sum.ChargeTotalAmount),
		PrepaidAmount:        optional("BT-113", sum.TotalPrepaidAmount),
		PayableAmount:        c.amount("BT-115", sum.DuePayableAmount),
	}

	if r := sum.RoundingAmount; r != nil && !numeric.IsZero(r.Value) {
		total.PayableRoundingAmount = c.amount("BT-114", r)
	}

	body.LegalMonetaryTotal = total
}
