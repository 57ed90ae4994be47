package models

// InvoiceItem is one line of a generated invoice.
type InvoiceItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// GenerateInvoiceRequest is the body for POST /api/generate-invoice.
// The response is a binary PDF, not JSON.
type GenerateInvoiceRequest struct {
	CustomerID string        `json:"customer_id"`
	Items      []InvoiceItem `json:"items"`
	Discount   float64       `json:"discount,omitempty"`
	Notes      string        `json:"notes,omitempty"`
}
