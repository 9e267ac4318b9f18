package main

import (
	"errors"
	"testing"

	"github.com/en16931/cii2ubl/config"
	"github.com/en16931/cii2ubl/ubl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCfgParam(t *testing.T) {
	defaults := config.DefaultConversion()

	tests := []struct {
		name     string
		raw      string
		expected ConversionParams
		wantErr  error
	}{
		{
			name:     "Empty cfg string uses defaults",
			raw:      "",
			expected: ConversionParams{Version: "2.1", Mode: config.ModeAutomatic},
		},
		{
			name:     "Version only",
			raw:      "2.3",
			expected: ConversionParams{Version: "2.3", Mode: config.ModeAutomatic},
		},
		{
			name:     "Version and mode",
			raw:      "2.4:creditnote",
			expected: ConversionParams{Version: "2.4", Mode: config.ModeCreditNote},
		},
		{
			name:     "Empty version keeps default",
			raw:      ":invoice",
			expected: ConversionParams{Version: "2.1", Mode: config.ModeInvoice},
		},
		{
			name:     "Empty mode keeps default",
			raw:      "2.2:",
			expected: ConversionParams{Version: "2.2", Mode: config.ModeAutomatic},
		},
		{
			name:     "Version token is normalized",
			raw:      "UBL2.3:auto",
			expected: ConversionParams{Version: "2.3", Mode: config.ModeAutomatic},
		},
		{
			name:    "Unknown version",
			raw:     "2.5",
			wantErr: ubl.ErrUnsupportedVersion,
		},
		{
			name:    "Unknown mode",
			raw:     "2.1:receipt",
			wantErr: config.ErrInvalidMode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseCfgParam(tt.raw, defaults)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseCfgParamTooManyFields(t *testing.T) {
	_, err := ParseCfgParam("2.1:invoice:one", config.DefaultConversion())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected at most 2 colon-separated fields, got 3")
}

func TestParseCfgParamServiceDefaults(t *testing.T) {
	defaults := config.DefaultConversion()
	defaults.UBLVersion = "v2.4"
	defaults.Mode = config.ModeCreditNote

	result, err := ParseCfgParam("", defaults)
	require.NoError(t, err)
	assert.Equal(t, ConversionParams{Version: "2.4", Mode: config.ModeCreditNote}, result)

	conv := result.Apply(config.DefaultConversion())
	assert.Equal(t, "2.4", conv.UBLVersion)
	assert.Equal(t, config.ModeCreditNote, conv.Mode)
	assert.Equal(t, config.DefaultProfileID, conv.ProfileID)
}

func TestBuildCfgParam(t *testing.T) {
	tests := []struct {
		name     string
		params   ConversionParams
		expected string
	}{
		{
			name:     "Version and mode",
			params:   ConversionParams{Version: "2.3", Mode: config.ModeInvoice},
			expected: "2.3:invoice",
		},
		{
			name:     "Version only",
			params:   ConversionParams{Version: "2.1"},
			expected: "2.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildCfgParam(tt.params))
		})
	}
}
