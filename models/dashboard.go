package models

// DashboardSummary is returned by GET /api/dashboard. Some backend
// versions nest it under a "summary" key; the client accepts both.
type DashboardSummary struct {
	TotalCredit     float64    `json:"total_credit"`
	TotalPayment    float64    `json:"total_payment"`
	RecentCustomers []Customer `json:"recent_customers"`
}
