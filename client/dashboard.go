package client

import (
	"context"
	"encoding/json"
	"net/http"

	"khatapro-client/models"
)

// Dashboard fetches the ledger summary. Older backend builds nest the
// payload under "summary"; newer ones return it at the top level. Both
// shapes are accepted.
func (c *Client) Dashboard(ctx context.Context) (models.DashboardSummary, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/dashboard", nil)
	if err != nil {
		return models.DashboardSummary{}, err
	}

	var nested struct {
		Summary *models.DashboardSummary `json:"summary"`
	}
	if err := json.Unmarshal(raw, &nested); err == nil && nested.Summary != nil {
		return *nested.Summary, nil
	}
	return decode[models.DashboardSummary](raw)
}
