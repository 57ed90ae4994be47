package client

import (
	"context"
	"net/http"

	"khatapro-client/models"
)

// Customers lists every customer of the business.
func (c *Client) Customers(ctx context.Context) ([]models.Customer, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/customers", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]models.Customer](raw)
}

// Customer fetches one customer by id.
func (c *Client) Customer(ctx context.Context, id string) (models.Customer, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/customer/"+id, nil)
	if err != nil {
		return models.Customer{}, err
	}
	return decode[models.Customer](raw)
}

// AddCustomer creates a customer. The backend exposes no update or
// delete for customers; create is the whole contract.
func (c *Client) AddCustomer(ctx context.Context, req models.AddCustomerRequest) (models.Customer, error) {
	raw, err := c.do(ctx, http.MethodPost, "/api/customer", req)
	if err != nil {
		return models.Customer{}, err
	}
	return decode[models.Customer](raw)
}
