package main

import (
	"fmt"
	"strings"

	"github.com/en16931/cii2ubl/config"
	"github.com/en16931/cii2ubl/ubl"
)

// ConversionParams are the per-request conversion settings parsed from the
// cfg URL parameter. After parsing, empty fields are merged with the
// service defaults.
type ConversionParams struct {
	Version string
	Mode    config.Mode
}

// ParseCfgParam parses the compact cfg URL parameter.
//
// Format: version [ ":" mode ]
//
// An empty field keeps the value from defaults. The version is normalized
// to its plain token (e.g. "UBL2.3" becomes "2.3").
func ParseCfgParam(raw string, defaults config.Conversion) (ConversionParams, error) {
	fields := strings.Split(raw, ":")
	if len(fields) > 2 {
		return ConversionParams{}, fmt.Errorf("invalid cfg %q: expected at most 2 colon-separated fields, got %d", raw, len(fields))
	}

	version := fields[0]
	if version == "" {
		version = defaults.UBLVersion
	}
	shape, err := ubl.LookupShape(version)
	if err != nil {
		return ConversionParams{}, err
	}

	mode := string(defaults.Mode)
	if len(fields) == 2 && fields[1] != "" {
		mode = fields[1]
	}
	m, err := config.ParseMode(mode)
	if err != nil {
		return ConversionParams{}, err
	}

	return ConversionParams{Version: shape.Version, Mode: m}, nil
}

// BuildCfgParam serialises params back to the compact cfg string format
func BuildCfgParam(params ConversionParams) string {
	if params.Mode == "" {
		return params.Version
	}
	return params.Version + ":" + string(params.Mode)
}

// Apply returns conv with the parameters set
func (p ConversionParams) Apply(conv config.Conversion) config.Conversion {
	conv.UBLVersion = p.Version
	conv.Mode = p.Mode
	return conv
}
