package models

const (
	TransactionCredit  = "credit"
	TransactionPayment = "payment"
)

// Transaction is immutable once created; the backend exposes no
// update or delete endpoint for it.
type Transaction struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customer_id"`
	Type       string  `json:"type"`
	Amount     float64 `json:"amount"`
	Notes      string  `json:"notes"`
	ReceiptURL string  `json:"receipt_url"`
	CreatedAt  string  `json:"created_at"`
}

// AddTransactionRequest is the body for POST /api/transaction.
// ReceiptImage may be a local file path, in which case the request is
// sent as multipart form data with the file under the "receipt" field;
// an https URL is passed through as a plain JSON string.
type AddTransactionRequest struct {
	CustomerID   string  `json:"customer_id"`
	Type         string  `json:"type"`
	Amount       float64 `json:"amount"`
	Notes        string  `json:"notes,omitempty"`
	ReceiptImage string  `json:"receipt_image,omitempty"`
}
