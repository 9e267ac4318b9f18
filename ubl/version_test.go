package ubl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupShape(t *testing.T) {
	tests := []struct {
		token   string
		version string
		wantErr bool
	}{
		{token: "2.1", version: "2.1"},
		{token: "2.2", version: "2.2"},
		{token: "2.3", version: "2.3"},
		{token: "2.4", version: "2.4"},
		{token: " v2.3 ", version: "2.3"},
		{token: "UBL2.4", version: "2.4"},
		{token: "", wantErr: true},
		{token: "2.0", wantErr: true},
		{token: "2.5", wantErr: true},
		{token: "21", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			shape, err := LookupShape(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnsupportedVersion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.version, shape.Version)
		})
	}
}

func TestVersions(t *testing.T) {
	assert.Equal(t, []string{"2.1", "2.2", "2.3", "2.4"}, Versions())
}

func TestCreditNoteDueDatePlacement(t *testing.T) {
	tests := []struct {
		version     string
		withMeans   bool
		wantRoot    string
		wantInMeans string
	}{
		{version: "2.1", withMeans: true, wantInMeans: "2024-04-14"},
		{version: "2.1", withMeans: false},
		{version: "2.2", withMeans: true, wantInMeans: "2024-04-14"},
		{version: "2.3", withMeans: true, wantRoot: "2024-04-14"},
		{version: "2.4", withMeans: false, wantRoot: "2024-04-14"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			shape, err := LookupShape(tt.version)
			require.NoError(t, err)

			body := &Body{ID: "CN-1", DueDate: "2024-04-14"}
			if tt.withMeans {
				body.PaymentMeans = []PaymentMeans{{PaymentMeansCode: Code{Value: "58"}}}
			}

			cn := shape.CreditNote(body)
			assert.Equal(t, tt.wantRoot, cn.DueDate)
			if tt.withMeans {
				require.Len(t, cn.PaymentMeans, 1)
				assert.Equal(t, tt.wantInMeans, cn.PaymentMeans[0].PaymentDueDate)
				// The body stays untouched
				assert.Empty(t, body.PaymentMeans[0].PaymentDueDate)
			}
		})
	}
}

func TestInvoiceKeepsDueDate(t *testing.T) {
	for _, v := range Versions() {
		shape, err := LookupShape(v)
		require.NoError(t, err)

		inv := shape.Invoice(&Body{ID: "I-1", DueDate: "2024-04-14"})
		assert.Equal(t, "2024-04-14", inv.DueDate, v)
	}
}

func TestCreditNoteProjectReference(t *testing.T) {
	body := &Body{
		ID:               "CN-1",
		ProjectReference: &ProjectReference{ID: "PRJ-1"},
		AdditionalDocumentReferences: []DocumentReference{
			{ID: Identifier{Value: "ATT-1"}},
		},
	}

	shape21, err := LookupShape("2.1")
	require.NoError(t, err)
	cn := shape21.CreditNote(body)
	assert.Nil(t, cn.ProjectReference)
	require.Len(t, cn.AdditionalDocumentReferences, 2)
	assert.Equal(t, "ATT-1", cn.AdditionalDocumentReferences[0].ID.Value)
	assert.Equal(t, "PRJ-1", cn.AdditionalDocumentReferences[1].ID.Value)
	assert.Equal(t, ProjectDocumentTypeCode, cn.AdditionalDocumentReferences[1].DocumentTypeCode)
	assert.Len(t, body.AdditionalDocumentReferences, 1)

	shape22, err := LookupShape("2.2")
	require.NoError(t, err)
	cn = shape22.CreditNote(body)
	require.NotNil(t, cn.ProjectReference)
	assert.Equal(t, "PRJ-1", cn.ProjectReference.ID)
	assert.Len(t, cn.AdditionalDocumentReferences, 1)

	inv := shape21.Invoice(body)
	require.NotNil(t, inv.ProjectReference)
	assert.Equal(t, "PRJ-1", inv.ProjectReference.ID)
}

func TestBuildMovesLineQuantity(t *testing.T) {
	shape, err := LookupShape("2.1")
	require.NoError(t, err)

	body := &Body{
		ID: "X-1",
		Lines: []Line{
			{ID: "1", InvoicedQuantity: &Quantity{UnitCode: "C62", Value: "2"}},
		},
	}

	doc := shape.Build(KindCreditNote, body)
	require.Equal(t, KindCreditNote, doc.Kind())
	assert.Equal(t, "X-1", doc.DocumentID())
	cn := doc.(*CreditNote)
	require.Len(t, cn.CreditNoteLines, 1)
	assert.Nil(t, cn.CreditNoteLines[0].InvoicedQuantity)
	assert.Equal(t, "2", cn.CreditNoteLines[0].CreditedQuantity.Value)

	doc = shape.Build(KindInvoice, body)
	require.Equal(t, KindInvoice, doc.Kind())
	inv := doc.(*Invoice)
	require.Len(t, inv.InvoiceLines, 1)
	assert.Nil(t, inv.InvoiceLines[0].CreditedQuantity)
	assert.Equal(t, "C62", inv.InvoiceLines[0].InvoicedQuantity.UnitCode)

	// The body lines are not modified
	assert.NotNil(t, body.Lines[0].InvoicedQuantity)
	assert.Nil(t, body.Lines[0].CreditedQuantity)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Invoice", KindInvoice.String())
	assert.Equal(t, "CreditNote", KindCreditNote.String())
}
