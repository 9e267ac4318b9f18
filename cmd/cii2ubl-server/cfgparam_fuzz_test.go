package main

import (
	"reflect"
	"testing"

	"github.com/en16931/cii2ubl/config"
)

func FuzzParseCfgParam(f *testing.F) {
	f.Add("")
	f.Add("2.1")
	f.Add("2.3:invoice")
	f.Add("UBL2.4:creditnote")
	f.Add(":auto")
	f.Add("2.2:")
	f.Add("3.0:invoice")
	f.Add("2.1:invoice:extra")

	defaults := config.DefaultConversion()

	f.Fuzz(func(t *testing.T, raw string) {
		parsed, err := ParseCfgParam(raw, defaults)
		if err != nil {
			return
		}

		rebuilt := BuildCfgParam(parsed)
		reparsed, err := ParseCfgParam(rebuilt, defaults)
		if err != nil {
			t.Fatalf("reparse failed for rebuilt cfg %q from raw %q: %v", rebuilt, raw, err)
		}

		if !reflect.DeepEqual(parsed, reparsed) {
			t.Fatalf("round-trip mismatch for raw %q: parsed=%#v reparsed=%#v rebuilt=%q", raw, parsed, reparsed, rebuilt)
		}
	})
}
