package mapper

import (
	"strings"

	"github.com/en16931/cii2ubl/cii"
	"github.com/en16931/cii2ubl/ubl"
)

// UNTDID 4461 payment means codes that are converted. The list is the
// historically accepted set extended by 1 (not defined), 42 (payment to
// bank account) and 68 (online payment service).
var paymentMeansCodes = codeSet(
	"1", "10", "20", "30", "31", "42", "48", "49", "54", "55", "57", "58",
	"59", "68", "97", "ZZZ",
)

// IsPaymentMeansCode reports whether code is converted into cac:PaymentMeans
func IsPaymentMeansCode(code string) bool {
	_, ok := paymentMeansCodes[code]
	return ok
}

func isCreditTransfer(code string) bool { return code == "30" || code == "58" }
func isCardPayment(code string) bool    { return code == "48" || code == "54" || code == "55" }
func isDirectDebit(code string) bool    { return code == "49" || code == "59" }

// mapPaymentMeans converts every payment means (BG-16) with a supported
// code. Unsupported codes are warned about and produce no element.
func mapPaymentMeans(c *conversion, s *source, body *ubl.Body) {
	mandate := ""
	for _, terms := range s.settlement.PaymentTerms {
		if id := strings.TrimSpace(terms.DirectDebitMandateID); id != "" {
			mandate = id
			break
		}
	}
	remittance := strings.TrimSpace(s.settlement.PaymentReference)

	for _, pm := range s.settlement.PaymentMeans {
		code := c.text("BT-81", pm.TypeCode)
		if code == "" {
			continue
		}
		if !IsPaymentMeansCode(code) {
			c.warnf("BT-81", "payment means code '%s' is not supported, payment means dropped", code)
			continue
		}

		out := ubl.PaymentMeans{
			PaymentMeansCode: ubl.Code{Name: strings.TrimSpace(pm.Information), Value: code},
		}
		if remittance != "" {
			out.PaymentIDs = []string{remittance}
		}

		out.CardAccount = c.cardAccount(code, pm.Card)
		out.PayeeFinancialAccount = c.payeeAccount(code, &pm)
		if isDirectDebit(code) {
			out.PaymentMandate = paymentMandate(mandate, pm.PayerAccount)
		}

		body.PaymentMeans = append(body.PaymentMeans, out)
	}
}

// cardAccount maps BG-18. The network ID is not part of CII and comes from
// the configuration.
func (c *conversion) cardAccount(code string, card *cii.FinancialCard) *ubl.CardAccount {
	if card == nil {
		if isCardPayment(code) {
			c.warnf("BG-18", "card payment means '%s' without card information", code)
		}
		return nil
	}

	pan := c.text("BT-87", card.ID)
	if pan == "" {
		return nil
	}
	return &ubl.CardAccount{
		PrimaryAccountNumberID: pan,
		NetworkID:              c.cfg.CardAccountNetworkID,
		HolderName:             strings.TrimSpace(card.CardholderName),
	}
}

// payeeAccount maps BG-17. The IBAN is preferred over a proprietary
// account ID.
func (c *conversion) payeeAccount(code string, pm *cii.PaymentMeans) *ubl.FinancialAccount {
	acc := pm.PayeeAccount
	if acc == nil {
		if isCreditTransfer(code) {
			c.missing("BT-84")
		}
		return nil
	}

	id := strings.TrimSpace(acc.IBANID)
	if id == "" {
		id = strings.TrimSpace(acc.ProprietaryID)
	}
	if id == "" {
		c.missing("BT-84")
		return nil
	}

	out := &ubl.FinancialAccount{ID: id, Name: strings.TrimSpace(acc.AccountName)}
	if pm.PayeeInstitution != nil {
		if bic := strings.TrimSpace(pm.PayeeInstitution.BICID); bic != "" {
			out.FinancialInstitutionBranch = &ubl.FinancialInstitutionBranch{ID: bic}
		}
	}
	return out
}

// paymentMandate maps BG-19, nil when neither mandate nor debited account
// is known
func paymentMandate(mandate string, payer *cii.DebtorAccount) *ubl.PaymentMandate {
	out := &ubl.PaymentMandate{ID: mandate}
	if payer != nil {
		if iban := strings.TrimSpace(payer.IBANID); iban != "" {
			out.PayerFinancialAccount = &ubl.FinancialAccount{ID: iban}
		}
	}
	if out.ID == "" && out.PayerFinancialAccount == nil {
		return nil
	}
	return out
}

// mapPaymentTerms joins all payment terms descriptions (BT-20)
func mapPaymentTerms(_ *conversion, s *source, body *ubl.Body) {
	var notes []string
	for _, terms := range s.settlement.PaymentTerms {
		if d := strings.TrimSpace(terms.Description); d != "" {
			notes = append(notes, d)
		}
	}
	if len(notes) > 0 {
		body.PaymentTerms = &ubl.PaymentTerms{Notes: notes}
	}
}
