package mapper

import (
	"fmt"
	"strings"

	"github.com/en16931/cii2ubl/binding"
	"github.com/en16931/cii2ubl/cii"
	"github.com/en16931/cii2ubl/config"
	"github.com/en16931/cii2ubl/diag"
	"github.com/en16931/cii2ubl/numeric"
	"github.com/en16931/cii2ubl/ubl"
)

// source gives non-nil access to the sections of a structurally complete
// CII document
type source struct {
	doc        *cii.CrossIndustryInvoice
	context    *cii.DocumentContext
	header     *cii.ExchangedDocument
	agreement  *cii.HeaderAgreement
	delivery   *cii.HeaderDelivery
	settlement *cii.HeaderSettlement
	lines      []cii.LineItem
}

func newSource(doc *cii.CrossIndustryInvoice) *source {
	s := &source{
		doc:        doc,
		context:    doc.Context,
		header:     doc.Document,
		agreement:  doc.Transaction.Agreement,
		delivery:   doc.Transaction.Delivery,
		settlement: doc.Transaction.Settlement,
		lines:      doc.Transaction.LineItems,
	}
	if s.context == nil {
		s.context = &cii.DocumentContext{}
	}
	if s.header == nil {
		s.header = &cii.ExchangedDocument{}
	}
	return s
}

// conversion is the state of mapping one document
type conversion struct {
	cfg   *config.Conversion
	shape ubl.Shape
	table *binding.Table
	kind  ubl.Kind
	errs  *diag.Collector

	currency    string
	taxCurrency string
}

func newConversion(cfg *config.Conversion, shape ubl.Shape, table *binding.Table, kind ubl.Kind, errs *diag.Collector) *conversion {
	return &conversion{cfg: cfg, shape: shape, table: table, kind: kind, errs: errs}
}

// run maps all sections in document order
func (c *conversion) run(s *source) *ubl.Body {
	body := &ubl.Body{}
	for _, r := range documentRules {
		r.apply(c, s, body)
	}
	return body
}

// report adds an entry for a business term, locating it by its source path
func (c *conversion) report(severity diag.Severity, term, message string) {
	e := diag.Entry{Severity: severity, Message: message, Term: term}
	if b, ok := c.table.Lookup(term); ok {
		e.Field = b.Source
	}
	c.errs.AddEntry(e)
}

func (c *conversion) errorf(term, format string, args ...any) {
	c.report(diag.Error, term, fmt.Sprintf(format, args...))
}

func (c *conversion) warnf(term, format string, args ...any) {
	c.report(diag.Warning, term, fmt.Sprintf(format, args...))
}

func (c *conversion) infof(term, format string, args ...any) {
	c.report(diag.Info, term, fmt.Sprintf(format, args...))
}

// missing reports the absence of a business term with the severity its
// presence in the binding table calls for. Optional terms are skipped.
func (c *conversion) missing(term string) {
	b, ok := c.table.Lookup(term)
	if !ok {
		c.errorf(term, "%s is missing", term)
		return
	}
	severity, ok := b.Severity()
	if !ok {
		return
	}
	c.report(severity, term, b.Label()+" is missing")
}

// text returns the trimmed value, reporting term when it is empty
func (c *conversion) text(term, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		c.missing(term)
	}
	return value
}

// decimal normalizes a decimal value. Unparseable values are reported as
// errors and returned unchanged.
func (c *conversion) decimal(term, value string) string {
	out, ok := numeric.Normalize(value)
	if !ok {
		c.errorf(term, "'%s' is not a valid decimal", out)
	}
	return out
}

// amount converts an amount into the document currency. Nil or blank
// amounts yield nil and are reported as missing.
func (c *conversion) amount(term string, a *cii.Amount) *ubl.Amount {
	return c.amountIn(term, a, c.currency)
}

func (c *conversion) amountIn(term string, a *cii.Amount, currency string) *ubl.Amount {
	if a == nil || strings.TrimSpace(a.Value) == "" {
		c.missing(term)
		return nil
	}
	return &ubl.Amount{CurrencyID: currency, Value: c.decimal(term, a.Value)}
}

// identifier converts an ID keeping its scheme. Blank IDs yield nil.
func identifier(id *cii.ID) *ubl.Identifier {
	if id == nil || strings.TrimSpace(id.Value) == "" {
		return nil
	}
	return &ubl.Identifier{SchemeID: strings.TrimSpace(id.SchemeID), Value: strings.TrimSpace(id.Value)}
}

// isTrue interprets an udt:Indicator value
func isTrue(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	}
	return false, false
}
