package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teerapat-ng/docbox/constants"
)

func TestDecodePayloadFull(t *testing.T) {
	raw := []byte(`{
		"doc_type": "TAX_INVOICE",
		"confidence": 0.93,
		"amount": 1070.00,
		"vat_amount": "70.00",
		"contact_name": " ACME Trading Co., Ltd. ",
		"document_date": "2025-03-10",
		"document_number": "INV-001",
		"tax_id": "0-1055-51234-56-7",
		"description": "office supplies"
	}`)

	f, err := DecodePayload(raw, nil)
	require.NoError(t, err)

	assert.Equal(t, constants.DocTypeTaxInvoice, f.DocType)
	assert.InDelta(t, 0.93, float64(f.Confidence), 1e-6)
	require.NotNil(t, f.Amount)
	assert.InDelta(t, 1070.00, *f.Amount, 1e-9)
	require.NotNil(t, f.VatAmount)
	assert.InDelta(t, 70.00, *f.VatAmount, 1e-9)
	require.NotNil(t, f.ContactName)
	assert.Equal(t, "ACME Trading Co., Ltd.", *f.ContactName)
	require.NotNil(t, f.DocumentDate)
	assert.True(t, f.DocumentDate.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, f.TaxID)
	assert.Equal(t, "0105551234567", *f.TaxID)
	assert.Empty(t, f.Dropped)
}

func TestDecodePayloadMinimal(t *testing.T) {
	f, err := DecodePayload([]byte(`{"doc_type":"RECEIPT","confidence":0.5}`), nil)
	require.NoError(t, err)
	assert.Equal(t, constants.DocTypeReceipt, f.DocType)
	assert.Nil(t, f.Amount)
	assert.Nil(t, f.ContactName)
	assert.Nil(t, f.DocumentDate)
}

func TestDecodePayloadMoneyStrings(t *testing.T) {
	raw := []byte(`{
		"doc_type": "RECEIPT",
		"confidence": 0.8,
		"amount": "฿1,070.00",
		"vat_amount": "seventy"
	}`)
	f, err := DecodePayload(raw, nil)
	require.NoError(t, err)

	require.NotNil(t, f.Amount)
	assert.InDelta(t, 1070.00, *f.Amount, 1e-9)
	assert.Nil(t, f.VatAmount, "unparseable money is absent, not zero")
	assert.Contains(t, f.Dropped, "vat_amount")
}

func TestDecodePayloadBuddhistEraDate(t *testing.T) {
	raw := []byte(`{"doc_type":"RECEIPT","confidence":0.8,"document_date":"10/03/2568"}`)
	f, err := DecodePayload(raw, nil)
	require.NoError(t, err)
	require.NotNil(t, f.DocumentDate)
	assert.Equal(t, 2025, f.DocumentDate.Year())
}

func TestDecodePayloadUnknownDocType(t *testing.T) {
	raw := []byte(`{"doc_type":"MYSTERY_PAPER","confidence":0.4}`)
	f, err := DecodePayload(raw, nil)
	require.NoError(t, err)
	assert.Equal(t, constants.DocTypeOther, f.DocType)
	assert.Contains(t, f.Dropped, "doc_type(MYSTERY_PAPER)")
}

func TestDecodePayloadSynonyms(t *testing.T) {
	tests := []struct {
		label string
		want  constants.DocType
	}{
		{"tax invoice", constants.DocTypeTaxInvoice},
		{"TAX_INVOICE_ABB", constants.DocTypeTaxInvoiceAbb},
		{"transfer-slip", constants.DocTypeSlipTransfer},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			raw := []byte(`{"doc_type":"` + tt.label + `","confidence":0.9}`)
			f, err := DecodePayload(raw, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.DocType)
		})
	}
}

func TestDecodePayloadSchemaRejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing doc_type", `{"confidence":0.5}`},
		{"missing confidence", `{"doc_type":"RECEIPT"}`},
		{"confidence above one", `{"doc_type":"RECEIPT","confidence":1.5}`},
		{"unknown property", `{"doc_type":"RECEIPT","confidence":0.5,"surprise":true}`},
		{"amount wrong type", `{"doc_type":"RECEIPT","confidence":0.5,"amount":[1]}`},
		{"not an object", `[]`},
		{"not json", `not json at all`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePayload([]byte(tt.raw), nil)
			assert.Error(t, err)
		})
	}
}

func TestDecodePayloadInvalidDateDropped(t *testing.T) {
	raw := []byte(`{"doc_type":"RECEIPT","confidence":0.8,"document_date":"sometime in March"}`)
	f, err := DecodePayload(raw, nil)
	require.NoError(t, err)
	assert.Nil(t, f.DocumentDate)
	assert.Contains(t, f.Dropped, "document_date")
}

func TestDecodePayloadTaxIDWithoutDigitsDropped(t *testing.T) {
	raw := []byte(`{"doc_type":"RECEIPT","confidence":0.8,"tax_id":"unknown"}`)
	f, err := DecodePayload(raw, nil)
	require.NoError(t, err)
	assert.Nil(t, f.TaxID)
	assert.Contains(t, f.Dropped, "tax_id")
}
