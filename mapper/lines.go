package mapper

import (
	"strings"

	"github.com/en16931/cii2ubl/cii"
	"github.com/en16931/cii2ubl/config"
	"github.com/en16931/cii2ubl/numeric"
	"github.com/en16931/cii2ubl/ubl"
	"github.com/shopspring/decimal"
)

// mapLines converts every line item (BG-25)
func mapLines(c *conversion, s *source, body *ubl.Body) {
	if len(s.lines) == 0 {
		c.missing("BG-25")
		return
	}
	for i := range s.lines {
		body.Lines = append(body.Lines, c.line(&s.lines[i]))
	}
}

// line converts one line item. Missing sub-structures are treated as empty
// so that every mandatory term of the line gets reported.
func (c *conversion) line(item *cii.LineItem) ubl.Line {
	doc := item.Document
	if doc == nil {
		doc = &cii.LineDocument{}
	}
	agreement := item.Agreement
	if agreement == nil {
		agreement = &cii.LineAgreement{}
	}
	delivery := item.Delivery
	if delivery == nil {
		delivery = &cii.LineDelivery{}
	}
	settlement := item.Settlement
	if settlement == nil {
		settlement = &cii.LineSettlement{}
	}

	out := ubl.Line{ID: c.text("BT-126", doc.LineID)}
	for _, n := range doc.Notes {
		if text := noteText(n); text != "" {
			out.Notes = append(out.Notes, text)
		}
	}

	quantity := c.quantity(delivery.BilledQuantity)
	if quantity != nil {
		out.InvoicedQuantity = quantity
	}

	if settlement.Summation != nil {
		out.LineExtensionAmount = c.amount("BT-131", settlement.Summation.LineTotalAmount)
	} else {
		c.missing("BT-131")
	}

	for _, acc := range settlement.AccountingAccounts {
		if id := strings.TrimSpace(acc.ID); id != "" {
			out.AccountingCost = id
			break
		}
	}

	out.InvoicePeriod = c.period(settlement.BillingPeriod, "BT-134", "BT-135")

	if bo := agreement.BuyerOrder; bo != nil {
		if id := strings.TrimSpace(bo.LineID); id != "" {
			out.OrderLineReference = &ubl.OrderLineReference{LineID: id}
		}
	}

	for _, ref := range settlement.AdditionalDocuments {
		if strings.TrimSpace(ref.TypeCode) != invoicedObjectTypeCode {
			continue
		}
		if r := objectReference(ref); r != nil {
			out.DocumentReferences = append(out.DocumentReferences, *r)
		}
	}

	for _, ac := range settlement.AllowanceCharges {
		if conv, ok := c.allowanceCharge(ac, lineAllowanceTerms, lineChargeTerms); ok {
			out.AllowanceCharges = append(out.AllowanceCharges, conv)
		}
	}

	out.Item = c.item(item.Product, settlement.Taxes)
	out.Price = c.price(agreement, delivery.BilledQuantity)

	c.reconcileLine(&out)
	return out
}

// quantity converts the invoiced quantity (BT-129) and its unit (BT-130)
func (c *conversion) quantity(q *cii.Quantity) *ubl.Quantity {
	if q == nil || strings.TrimSpace(q.Value) == "" {
		c.missing("BT-129")
		return nil
	}
	out := &ubl.Quantity{UnitCode: c.text("BT-130", q.UnitCode), Value: c.decimal("BT-129", q.Value)}
	return out
}

// item converts the item information (BG-31) and the line VAT information
// (BG-30)
func (c *conversion) item(p *cii.TradeProduct, taxes []cii.TradeTax) ubl.Item {
	var out ubl.Item

	if p == nil {
		c.missing("BG-31")
	} else {
		out.Name = c.text("BT-153", p.Name)
		out.Description = strings.TrimSpace(p.Description)
		if id := strings.TrimSpace(p.BuyerAssignedID); id != "" {
			out.BuyersItemIdentification = &ubl.ItemIdentification{ID: ubl.Identifier{Value: id}}
		}
		if id := strings.TrimSpace(p.SellerAssignedID); id != "" {
			out.SellersItemIdentification = &ubl.ItemIdentification{ID: ubl.Identifier{Value: id}}
		}
		if id := identifier(p.GlobalID); id != nil {
			if id.SchemeID == "" {
				c.errorf("BT-157", "item standard identifier '%s' has no scheme", id.Value)
			}
			out.StandardItemIdentification = &ubl.ItemIdentification{ID: *id}
		}
		if p.OriginCountry != nil {
			if country := strings.TrimSpace(p.OriginCountry.ID); country != "" {
				out.OriginCountry = &ubl.Country{IdentificationCode: country}
			}
		}
		for _, cl := range p.Classifications {
			if cl.ClassCode == nil || strings.TrimSpace(cl.ClassCode.Value) == "" {
				continue
			}
			out.CommodityClassifications = append(out.CommodityClassifications, ubl.CommodityClassification{
				ItemClassificationCode: ubl.Code{
					ListID:        strings.TrimSpace(cl.ClassCode.ListID),
					ListVersionID: strings.TrimSpace(cl.ClassCode.ListVersionID),
					Value:         strings.TrimSpace(cl.ClassCode.Value),
				},
			})
		}
		for _, ch := range p.Characteristics {
			name := c.text("BT-160", ch.Description)
			value := c.text("BT-161", ch.Value)
			if name != "" && value != "" {
				out.AdditionalItemProperties = append(out.AdditionalItemProperties, ubl.ItemProperty{Name: name, Value: value})
			}
		}
	}

	if len(taxes) == 0 {
		c.missing("BG-30")
		return out
	}
	if len(taxes) > 1 {
		c.warnf("BG-30", "line has %d VAT entries, only the first is used", len(taxes))
	}
	if cat := c.text("BT-151", taxes[0].CategoryCode); cat != "" {
		out.ClassifiedTaxCategory = &ubl.TaxCategory{ID: cat, TaxScheme: ubl.TaxScheme{ID: c.cfg.VATSchemeID}}
		if rate := strings.TrimSpace(taxes[0].RateApplicablePercent); rate != "" {
			out.ClassifiedTaxCategory.Percent = c.decimal("BT-152", rate)
		}
	}
	return out
}

// price converts the price details (BG-29): net price, base quantity and
// the gross price with its discount
func (c *conversion) price(agreement *cii.LineAgreement, billed *cii.Quantity) *ubl.Price {
	if agreement.NetPrice == nil {
		c.missing("BG-29")
		return nil
	}
	net := c.amount("BT-146", agreement.NetPrice.ChargeAmount)
	if net == nil {
		return nil
	}

	out := &ubl.Price{PriceAmount: *net}
	out.BaseQuantity = c.baseQuantity(agreement.NetPrice.BasisQuantity, billed)

	if gross := agreement.GrossPrice; gross != nil && gross.ChargeAmount != nil {
		base := c.amount("BT-148", gross.ChargeAmount)
		if base != nil {
			out.AllowanceCharge = &ubl.AllowanceCharge{
				ChargeIndicator: false,
				Amount:          ubl.Amount{CurrencyID: c.currency, Value: c.priceDiscount(gross, base.Value, net.Value)},
				BaseAmount:      base,
			}
		}
	}
	return out
}

// priceDiscount returns the item price discount (BT-147). Without explicit
// discounts on the gross price it is the difference of gross and net price.
func (c *conversion) priceDiscount(gross *cii.TradePrice, grossValue, netValue string) string {
	discount := decimal.Zero
	explicit := false
	for _, ac := range gross.AllowanceCharges {
		if isCharge, ok := isTrue(ac.ChargeIndicator.Indicator); ok && isCharge {
			c.warnf("BT-147", "charges on the gross price are not supported and ignored")
			continue
		}
		if ac.ActualAmount == nil {
			continue
		}
		d, err := numeric.Parse(ac.ActualAmount.Value)
		if err != nil {
			c.errorf("BT-147", "'%s' is not a valid decimal", strings.TrimSpace(ac.ActualAmount.Value))
			continue
		}
		discount = discount.Add(d)
		explicit = true
	}

	if !explicit {
		g, errG := numeric.Parse(grossValue)
		n, errN := numeric.Parse(netValue)
		if errG == nil && errN == nil {
			discount = g.Sub(n)
		}
	}
	return numeric.FormatDecimal(discount)
}

// baseQuantity applies the configured base quantity policy
func (c *conversion) baseQuantity(basis, billed *cii.Quantity) *ubl.Quantity {
	hasSource := basis != nil && strings.TrimSpace(basis.Value) != ""

	switch c.cfg.BaseQuantity {
	case config.BaseQuantityOne:
		unit := ""
		if basis != nil {
			unit = strings.TrimSpace(basis.UnitCode)
		}
		if unit == "" && billed != nil {
			unit = strings.TrimSpace(billed.UnitCode)
		}
		if hasSource {
			if d, err := numeric.Parse(basis.Value); err != nil || !d.Equal(decimal.NewFromInt(1)) {
				c.warnf("BT-149", "item price base quantity '%s' replaced by 1", strings.TrimSpace(basis.Value))
			}
		}
		return &ubl.Quantity{UnitCode: unit, Value: "1"}

	default:
		if !hasSource {
			return nil
		}
		return &ubl.Quantity{UnitCode: strings.TrimSpace(basis.UnitCode), Value: c.decimal("BT-149", basis.Value)}
	}
}

// reconcileLine makes quantity and price agree with the sign of the line
// net amount and warns when the line net amount differs from quantity times
// price per base quantity plus line charges minus line allowances
func (c *conversion) reconcileLine(l *ubl.Line) {
	if l.InvoicedQuantity == nil || l.Price == nil || l.LineExtensionAmount == nil {
		return
	}
	qty, errQ := numeric.Parse(l.InvoicedQuantity.Value)
	price, errP := numeric.Parse(l.Price.PriceAmount.Value)
	ext, errE := numeric.Parse(l.LineExtensionAmount.Value)
	if errQ != nil || errP != nil || errE != nil {
		return
	}

	newQty, newPrice := numeric.ReconcileSign(qty, price, ext, c.cfg.SwapQuantitySignIfNeeded)
	if !newQty.Equal(qty) {
		l.InvoicedQuantity.Value = numeric.FormatDecimal(newQty)
		c.infof("BT-129", "line %s: quantity sign changed to match the line net amount %s", l.ID, numeric.FormatDecimal(ext))
	}
	if !newPrice.Equal(price) {
		l.Price.PriceAmount.Value = numeric.FormatDecimal(newPrice)
		c.infof("BT-146", "line %s: price sign changed to match the line net amount %s", l.ID, numeric.FormatDecimal(ext))
	}

	base := decimal.NewFromInt(1)
	if l.Price.BaseQuantity != nil {
		if b, err := numeric.Parse(l.Price.BaseQuantity.Value); err == nil && !b.IsZero() {
			base = b
		}
	}
	expected := newQty.Mul(newPrice).Div(base).Add(netAllowanceCharges(l.AllowanceCharges))
	if !expected.Round(2).Equal(ext.Round(2)) {
		c.warnf("BT-131", "line %s: net amount %s differs from the computed %s", l.ID, numeric.FormatDecimal(ext), numeric.FormatDecimal(expected.Round(2)))
	}
}
