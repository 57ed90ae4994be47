package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"khatapro-client/models"
)

// CatalogItems lists the customer-facing catalog.
func (c *Client) CatalogItems(ctx context.Context) ([]models.CatalogItem, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/catalog", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]models.CatalogItem](raw)
}

// AddCatalogItem creates a catalog listing. With PriceHidden set the
// backend stores price 0 and the listing reads "contact for price";
// a genuinely free item is indistinguishable by price alone.
func (c *Client) AddCatalogItem(ctx context.Context, req models.AddCatalogItemRequest) (models.CatalogItem, error) {
	if !IsLocalFile(req.Image) {
		raw, err := c.do(ctx, http.MethodPost, "/api/catalog/item", req)
		if err != nil {
			return models.CatalogItem{}, err
		}
		return decode[models.CatalogItem](raw)
	}

	fields := map[string]string{
		"name":         req.Name,
		"description":  req.Description,
		"price":        fmt.Sprintf("%g", req.Price),
		"price_hidden": strconv.FormatBool(req.PriceHidden),
	}
	raw, err := c.doMultipart(ctx, http.MethodPost, "/api/catalog/item", fields, map[string]string{
		"image": req.Image,
	})
	if err != nil {
		return models.CatalogItem{}, err
	}
	return decode[models.CatalogItem](raw)
}

// UpdateCatalogItem applies a partial update to one catalog item.
func (c *Client) UpdateCatalogItem(ctx context.Context, id string, req models.CatalogItemUpdate) (models.CatalogItem, error) {
	raw, err := c.do(ctx, http.MethodPut, "/api/catalog/item/"+id, req)
	if err != nil {
		return models.CatalogItem{}, err
	}
	return decode[models.CatalogItem](raw)
}

// DeleteCatalogItem removes a listing.
func (c *Client) DeleteCatalogItem(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/catalog/item/"+id, nil)
	return err
}

// SetCatalogVisibility toggles whether customers can see a listing.
func (c *Client) SetCatalogVisibility(ctx context.Context, id string, visible bool) (models.CatalogItem, error) {
	return c.UpdateCatalogItem(ctx, id, models.CatalogItemUpdate{Visible: &visible})
}

// Offers lists active offers.
func (c *Client) Offers(ctx context.Context) ([]models.Offer, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/offers", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]models.Offer](raw)
}

// AddOffer publishes an offer.
func (c *Client) AddOffer(ctx context.Context, req models.AddOfferRequest) (models.Offer, error) {
	raw, err := c.do(ctx, http.MethodPost, "/api/offer", req)
	if err != nil {
		return models.Offer{}, err
	}
	return decode[models.Offer](raw)
}

// DeleteOffer withdraws an offer.
func (c *Client) DeleteOffer(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/offer/"+id, nil)
	return err
}
