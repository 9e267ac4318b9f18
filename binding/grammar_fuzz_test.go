package binding

import (
	"fmt"
	"testing"
)

func FuzzParseRule(f *testing.F) {
	f.Add(`BT-1 mandatory "Invoice number" ExchangedDocument/ID -> cbc:ID`)
	f.Add(`BG-14 optional A/B -> cac:InvoicePeriod`)
	f.Add(`BT-31 recommended X[@schemeID=VA] -> cbc:CompanyID`)
	f.Add(`BT-1 mandatory`)
	f.Add(`->`)

	p, err := NewRuleParser()
	if err != nil {
		f.Fatal(err)
	}

	f.Fuzz(func(t *testing.T, input string) {
		b, err := p.Parse(input)
		if err != nil {
			return
		}

		rebuilt := fmt.Sprintf("%s %s %s -> %s", b.Term, b.Presence, b.Source, b.Target)
		again, err := p.Parse(rebuilt)
		if err != nil {
			t.Fatalf("reparse failed for %q (from %q): %v", rebuilt, input, err)
		}
		if again.Term != b.Term || again.Source != b.Source || again.Target != b.Target || again.Presence != b.Presence {
			t.Fatalf("round-trip mismatch for %q: %#v vs %#v", input, b, again)
		}
	})
}
