package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	DefaultUBLVersion           = "2.1"
	DefaultVATSchemeID          = "VAT"
	DefaultCustomizationID      = "urn:cen.eu:en16931:2017#compliant#urn:fdc:peppol.eu:2017:poacc:billing:3.0"
	DefaultProfileID            = "urn:fdc:peppol.eu:2017:poacc:billing:01:1.0"
	DefaultCardAccountNetworkID = "mapped-from-cii"
	DefaultOrderRefID           = ""

	defaultPort      = 5726
	defaultLogLevel  = "warn"
	defaultBodyLimit = 4 * 1024 * 1024 // 4MB
)

// ErrInvalidMode is returned for creation modes other than automatic,
// invoice and creditnote.
var ErrInvalidMode = errors.New("invalid creation mode")

// Mode selects how the target document kind is chosen
type Mode string

const (
	ModeAutomatic  Mode = "automatic"
	ModeInvoice    Mode = "invoice"
	ModeCreditNote Mode = "creditnote"
)

// ParseMode converts a string to a Mode. The empty string is automatic.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto", "automatic":
		return ModeAutomatic, nil
	case "invoice":
		return ModeInvoice, nil
	case "creditnote", "credit-note", "credit_note":
		return ModeCreditNote, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// BaseQuantityPolicy controls how the price base quantity (BT-149) is emitted
type BaseQuantityPolicy string

const (
	// BaseQuantitySource maps the source base quantity and omits it when absent
	BaseQuantitySource BaseQuantityPolicy = "source"
	// BaseQuantityOne always emits a base quantity of 1
	BaseQuantityOne BaseQuantityPolicy = "one"
)

// ParseBaseQuantityPolicy converts a string to a BaseQuantityPolicy.
func ParseBaseQuantityPolicy(s string) (BaseQuantityPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "source":
		return BaseQuantitySource, nil
	case "one", "1":
		return BaseQuantityOne, nil
	default:
		return "", fmt.Errorf("invalid base quantity policy: %q", s)
	}
}

// Conversion holds the parameters of one conversion run. It is read-only
// once handed to the mapper and may be shared between goroutines.
type Conversion struct {
	UBLVersion               string             `yaml:"ublVersion,omitempty"`
	Mode                     Mode               `yaml:"mode,omitempty"`
	VATSchemeID              string             `yaml:"vatSchemeID,omitempty"`
	CustomizationID          string             `yaml:"customizationID,omitempty"`
	ProfileID                string             `yaml:"profileID,omitempty"`
	CardAccountNetworkID     string             `yaml:"cardAccountNetworkID,omitempty"`
	DefaultOrderRefID        string             `yaml:"defaultOrderRefID,omitempty"`
	SwapQuantitySignIfNeeded bool               `yaml:"swapQuantitySignIfNeeded"`
	BaseQuantity             BaseQuantityPolicy `yaml:"baseQuantity,omitempty"`
	PayableSignFallback      bool               `yaml:"payableSignFallback"`
}

// DefaultConversion returns the documented conversion defaults
func DefaultConversion() Conversion {
	return Conversion{
		UBLVersion:               DefaultUBLVersion,
		Mode:                     ModeAutomatic,
		VATSchemeID:              DefaultVATSchemeID,
		CustomizationID:          DefaultCustomizationID,
		ProfileID:                DefaultProfileID,
		CardAccountNetworkID:     DefaultCardAccountNetworkID,
		DefaultOrderRefID:        DefaultOrderRefID,
		SwapQuantitySignIfNeeded: true,
		BaseQuantity:             BaseQuantitySource,
		PayableSignFallback:      true,
	}
}

// Validate checks the enumerated fields of the conversion settings.
// The UBL version token is checked by the ubl package.
func (c *Conversion) Validate() error {
	mode, err := ParseMode(string(c.Mode))
	if err != nil {
		return err
	}
	c.Mode = mode

	policy, err := ParseBaseQuantityPolicy(string(c.BaseQuantity))
	if err != nil {
		return err
	}
	c.BaseQuantity = policy
	return nil
}

// Config represents the root configuration of the converter binaries
type Config struct {
	Port       int        `yaml:"port,omitempty"`
	LogLevel   string     `yaml:"loglevel,omitempty"`
	BodyLimit  int        `yaml:"bodyLimit,omitempty"`
	Conversion Conversion `yaml:"conversion"`
}

// Load reads a YAML configuration file. An empty path yields the defaults.
func Load(configFile string) (*Config, error) {
	cfg := &Config{Conversion: DefaultConversion()}

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file '%s': %w", configFile, err)
		}

		if len(data) == 0 {
			return nil, fmt.Errorf("EOF: config file '%s' is empty", configFile)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file '%s': %w", configFile, err)
		}
		log.Debug().Str("file", configFile).Msg("Loaded configuration")
	}

	ApplyDefaults(cfg)

	if err := cfg.Conversion.Validate(); err != nil {
		return nil, fmt.Errorf("invalid conversion settings in '%s': %w", configFile, err)
	}

	return cfg, nil
}

// ApplyDefaults sets default values for configuration fields if they are empty.
// DefaultOrderRefID is empty by default and therefore left alone.
func ApplyDefaults(config *Config) {
	defaults := map[*string]string{
		&config.LogLevel:                        defaultLogLevel,
		&config.Conversion.UBLVersion:           DefaultUBLVersion,
		&config.Conversion.VATSchemeID:          DefaultVATSchemeID,
		&config.Conversion.CustomizationID:      DefaultCustomizationID,
		&config.Conversion.ProfileID:            DefaultProfileID,
		&config.Conversion.CardAccountNetworkID: DefaultCardAccountNetworkID,
	}

	for field, defaultValue := range defaults {
		if *field == "" {
			*field = defaultValue
		}
	}

	if config.Conversion.Mode == "" {
		config.Conversion.Mode = ModeAutomatic
	}
	if config.Conversion.BaseQuantity == "" {
		config.Conversion.BaseQuantity = BaseQuantitySource
	}
	if config.Port == 0 {
		config.Port = defaultPort
	}
	if config.BodyLimit == 0 {
		config.BodyLimit = defaultBodyLimit
	}
}
