package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"khatapro-client/models"
)

// Products lists the inventory.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/products", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]models.Product](raw)
}

// AddProduct creates an inventory product. A local image file is
// uploaded as multipart under the fixed field name "image".
func (c *Client) AddProduct(ctx context.Context, req models.AddProductRequest) (models.Product, error) {
	if !IsLocalFile(req.Image) {
		raw, err := c.do(ctx, http.MethodPost, "/api/product", req)
		if err != nil {
			return models.Product{}, err
		}
		return decode[models.Product](raw)
	}

	fields := map[string]string{
		"name":                req.Name,
		"category":            req.Category,
		"price":               fmt.Sprintf("%g", req.Price),
		"unit":                req.Unit,
		"stock_quantity":      strconv.Itoa(req.StockQuantity),
		"low_stock_threshold": strconv.Itoa(req.LowStockThreshold),
	}
	raw, err := c.doMultipart(ctx, http.MethodPost, "/api/product", fields, map[string]string{
		"image": req.Image,
	})
	if err != nil {
		return models.Product{}, err
	}
	return decode[models.Product](raw)
}

// UpdateProduct applies a partial update to one product.
func (c *Client) UpdateProduct(ctx context.Context, id string, req models.ProductUpdate) (models.Product, error) {
	raw, err := c.do(ctx, http.MethodPut, "/api/product/"+id, req)
	if err != nil {
		return models.Product{}, err
	}
	return decode[models.Product](raw)
}

// DeleteProduct removes a product from inventory.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/product/"+id, nil)
	return err
}
