package client

import (
	"context"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"khatapro-client/models"
)

func TestGenerateInvoiceSavesBinaryToFile(t *testing.T) {
	pdfBytes := []byte("%PDF-1.4\nfake invoice body\n%%EOF")
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate-invoice", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(pdfBytes)
	}))

	path, err := c.GenerateInvoice(context.Background(), models.GenerateInvoiceRequest{
		CustomerID: "c1",
		Items:      []models.InvoiceItem{{Name: "Sugar", Quantity: 2, UnitPrice: 42, Total: 84}},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".pdf"))

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, saved)
}

func TestGenerateInvoiceHTTPErrorReturnsNoFile(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"message":"Invoice needs at least one item"}`))
	}))

	_, err := c.GenerateInvoice(context.Background(), models.GenerateInvoiceRequest{CustomerID: "c1"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invoice needs at least one item", apiErr.Message)
}
