package models

// Customer as seen by the client. Balance is signed: positive means
// the business will receive, negative means the business owes.
// The backend exposes create-only access for customers; there is no
// update or delete endpoint.
type Customer struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phone_number"`
	Balance     float64 `json:"balance"`
	CreatedAt   string  `json:"created_at"`
}

// AddCustomerRequest is the body for POST /api/customer.
type AddCustomerRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}
