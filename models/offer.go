package models

// Offer is a time-bound discount announcement shown to customers.
type Offer struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Discount    float64 `json:"discount"`
	ValidUntil  string  `json:"valid_until"`
}

// AddOfferRequest is the body for POST /api/offer.
type AddOfferRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Discount    float64 `json:"discount"`
	ValidUntil  string  `json:"valid_until,omitempty"`
}
