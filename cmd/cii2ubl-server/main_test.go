package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/en16931/cii2ubl/config"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", name))
	require.NoError(t, err)
	return string(data)
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)

	app := fiber.New()
	setupRoutes(app, cfg.Conversion)
	return app
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body))
}

func TestBindingsEndpoint(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/bindings", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Version string `json:"en16931"`
		Terms   []struct {
			Term     string `json:"term"`
			Presence string `json:"presence"`
			Source   string `json:"source"`
			Target   string `json:"target"`
		} `json:"terms"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.NotEmpty(t, result.Version)
	require.NotEmpty(t, result.Terms)
	assert.Equal(t, "BT-1", result.Terms[0].Term)
	assert.Equal(t, "mandatory", result.Terms[0].Presence)
	assert.Equal(t, "cbc:ID", result.Terms[0].Target)
}

func TestConvertEndpoint(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name    string
		fixture string
		query   string
		root    string
	}{
		{
			name:    "Invoice with defaults",
			fixture: "invoice-minimal.xml",
			root:    "Invoice",
		},
		{
			name:    "Credit note",
			fixture: "creditnote-minimal.xml",
			query:   "?version=2.4",
			root:    "CreditNote",
		},
		{
			name:    "Forced invoice through cfg",
			fixture: "creditnote-minimal.xml",
			query:   "?cfg=2.3:invoice",
			root:    "Invoice",
		},
		{
			name:    "Explicit mode overrides cfg",
			fixture: "creditnote-minimal.xml",
			query:   "?cfg=2.3:creditnote&mode=invoice",
			root:    "Invoice",
		},
		{
			name:    "Full invoice",
			fixture: "invoice-full.xml",
			query:   "?version=UBL2.2",
			root:    "Invoice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/convert"+tt.query, strings.NewReader(readFixture(t, tt.fixture)))
			req.Header.Set("Content-Type", "application/xml")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

			assert.Contains(t, resp.Header.Get("Content-Type"), "application/xml")
			_, err = uuid.Parse(resp.Header.Get(headerConversionID))
			assert.NoError(t, err)

			doc, err := xmlquery.Parse(bytes.NewReader(body))
			require.NoError(t, err)
			assert.NotNil(t, xmlquery.FindOne(doc, "/"+tt.root))
		})
	}
}

func TestConvertEndpointDiagnostics(t *testing.T) {
	app := newTestApp(t)

	src := strings.Replace(readFixture(t, "invoice-minimal.xml"),
		"<ram:TypeCode>380</ram:TypeCode>", "<ram:TypeCode>999</ram:TypeCode>", 1)

	req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(src))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var result struct {
		ID          string `json:"id"`
		Kind        string `json:"kind"`
		Version     string `json:"version"`
		Document    string `json:"document"`
		Diagnostics []struct {
			Severity string `json:"severity"`
			Message  string `json:"message"`
			Field    string `json:"field"`
			Term     string `json:"term"`
		} `json:"diagnostics"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.Equal(t, resp.Header.Get(headerConversionID), result.ID)
	assert.Equal(t, "2.1", result.Version)
	assert.Equal(t, "Invoice", result.Kind)
	require.NotEmpty(t, result.Diagnostics)
	assert.Equal(t, "error", result.Diagnostics[0].Severity)
	assert.Equal(t, "BT-3", result.Diagnostics[0].Term)

	// The partial document is included
	doc, err := xmlquery.Parse(strings.NewReader(result.Document))
	require.NoError(t, err)
	assert.Equal(t, "999", xmlquery.FindOne(doc, "/Invoice/cbc:InvoiceTypeCode").InnerText())
}

func TestConvertEndpointStructuralFailure(t *testing.T) {
	app := newTestApp(t)

	src := `<?xml version="1.0" encoding="UTF-8"?>
<rsm:CrossIndustryInvoice xmlns:rsm="urn:un:unece:uncefact:data:standard:CrossIndustryInvoice:100"
    xmlns:ram="urn:un:unece:uncefact:data:standard:ReusableAggregateBusinessInformationEntity:100">
  <rsm:ExchangedDocument>
    <ram:ID>EMPTY-1</ram:ID>
    <ram:TypeCode>380</ram:TypeCode>
  </rsm:ExchangedDocument>
</rsm:CrossIndustryInvoice>`

	req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(src))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.NotContains(t, result, "document")
	assert.NotContains(t, result, "kind")
	assert.NotEmpty(t, result["diagnostics"])
}

func TestConvertEndpointBadRequest(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name          string
		query         string
		body          string
		expectedError string
	}{
		{
			name:          "Unsupported version",
			query:         "?version=3.0",
			body:          readFixture(t, "invoice-minimal.xml"),
			expectedError: "unsupported UBL version",
		},
		{
			name:          "Unsupported version in cfg",
			query:         "?cfg=1.0",
			body:          readFixture(t, "invoice-minimal.xml"),
			expectedError: "unsupported UBL version",
		},
		{
			name:          "Unknown mode",
			query:         "?mode=receipt",
			body:          readFixture(t, "invoice-minimal.xml"),
			expectedError: "invalid creation mode",
		},
		{
			name:          "Malformed cfg",
			query:         "?cfg=2.1:invoice:extra",
			body:          readFixture(t, "invoice-minimal.xml"),
			expectedError: "expected at most 2",
		},
		{
			name:          "Invalid characters",
			query:         "?version=%3C2.1%3E",
			body:          readFixture(t, "invoice-minimal.xml"),
			expectedError: "version contains invalid characters",
		},
		{
			name:          "Parameter too long",
			query:         "?cfg=" + strings.Repeat("a", maxParamLength+1),
			body:          readFixture(t, "invoice-minimal.xml"),
			expectedError: "cfg too long",
		},
		{
			name:          "Not a CII document",
			body:          readFixture(t, "not-cii.xml"),
			expectedError: "not a Cross Industry Invoice document",
		},
		{
			name:          "Empty body",
			body:          "",
			expectedError: "not a Cross Industry Invoice document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/convert"+tt.query, strings.NewReader(tt.body))
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Empty(t, resp.Header.Get(headerConversionID))

			var result map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
			assert.Contains(t, result["error"], tt.expectedError)
		})
	}
}

func TestNewApp(t *testing.T) {
	app := newApp(&config.Config{
		BodyLimit:  64,
		Conversion: config.DefaultConversion(),
	})
	assert.Equal(t, 64, app.Config().BodyLimit)
	assert.True(t, app.Config().DisableStartupMessage)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
