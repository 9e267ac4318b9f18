package mapper

import (
	"fmt"

	"github.com/en16931/cii2ubl/binding"
	"github.com/en16931/cii2ubl/cii"
	"github.com/en16931/cii2ubl/config"
	"github.com/en16931/cii2ubl/diag"
	"github.com/en16931/cii2ubl/ubl"
	"github.com/rs/zerolog/log"
)

// Converter turns CII documents into UBL documents of one version. It holds
// no per-document state and may be used from several goroutines.
type Converter struct {
	cfg   config.Conversion
	shape ubl.Shape
	table *binding.Table
}

// New creates a Converter. Configuration errors (unsupported UBL version,
// unknown creation mode or base quantity policy) are returned here, before
// any document is mapped.
func New(cfg config.Conversion) (*Converter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	shape, err := ubl.LookupShape(cfg.UBLVersion)
	if err != nil {
		return nil, err
	}

	table, err := binding.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load binding table: %w", err)
	}

	return &Converter{cfg: cfg, shape: shape, table: table}, nil
}

// Config returns the conversion settings in use
func (c *Converter) Config() config.Conversion {
	return c.cfg
}

// Version returns the target UBL version
func (c *Converter) Version() string {
	return c.shape.Version
}

// Convert maps src into a UBL Invoice or CreditNote. Every problem is
// recorded in errs. The result is nil when src lacks the transaction or
// one of its header agreement, delivery and settlement sections.
func (c *Converter) Convert(src *cii.CrossIndustryInvoice, errs *diag.Collector) ubl.Document {
	if errs == nil {
		errs = diag.NewCollector()
	}

	kind, err := ResolveKind(src, c.cfg.Mode, c.cfg.PayableSignFallback, errs)
	if err != nil {
		errs.Errorf("", "%s", err)
		log.Debug().Err(err).Msg("Conversion yields no result")
		return nil
	}

	conv := newConversion(&c.cfg, c.shape, c.table, kind, errs)
	body := conv.run(newSource(src))
	doc := c.shape.Build(kind, body)

	log.Debug().
		Str("id", doc.DocumentID()).
		Str("kind", kind.String()).
		Str("version", c.shape.Version).
		Int("lines", len(body.Lines)).
		Int("diagnostics", errs.Len()).
		Msg("Converted document")

	return doc
}

// Success reports whether a conversion produced a document without
// error-severity diagnostics
func Success(doc ubl.Document, errs *diag.Collector) bool {
	return doc != nil && !errs.HasErrors()
}
