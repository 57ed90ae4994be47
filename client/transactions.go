package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"khatapro-client/models"
)

// Transactions lists transactions, optionally filtered to one
// customer.
func (c *Client) Transactions(ctx context.Context, customerID string) ([]models.Transaction, error) {
	path := "/api/transactions"
	if customerID != "" {
		path += "?customer_id=" + url.QueryEscape(customerID)
	}
	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decode[[]models.Transaction](raw)
}

// AddTransaction records a credit or payment. When the receipt image
// is a local file it is uploaded as multipart form data under the
// fixed field name "receipt"; a remote URL goes through as a JSON
// string. Transactions are immutable once created.
func (c *Client) AddTransaction(ctx context.Context, req models.AddTransactionRequest) (models.Transaction, error) {
	if !IsLocalFile(req.ReceiptImage) {
		raw, err := c.do(ctx, http.MethodPost, "/api/transaction", req)
		if err != nil {
			return models.Transaction{}, err
		}
		return decode[models.Transaction](raw)
	}

	fields := map[string]string{
		"customer_id": req.CustomerID,
		"type":        req.Type,
		"amount":      fmt.Sprintf("%g", req.Amount),
	}
	if req.Notes != "" {
		fields["notes"] = req.Notes
	}
	raw, err := c.doMultipart(ctx, http.MethodPost, "/api/transaction", fields, map[string]string{
		"receipt": req.ReceiptImage,
	})
	if err != nil {
		return models.Transaction{}, err
	}
	return decode[models.Transaction](raw)
}
