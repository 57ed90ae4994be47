package models

// CatalogItem is a customer-facing listing. PriceHidden means the
// seller declined to show a price; the backend then forces Price to 0.
// A price of 0 with PriceHidden false is taken at face value (a free
// item); only the flag distinguishes the two cases.
type CatalogItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	PriceHidden bool    `json:"price_hidden"`
	Visible     bool    `json:"visible"`
	ImageURL    string  `json:"image_url"`
}

// AddCatalogItemRequest is the body for POST /api/catalog/item.
type AddCatalogItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	PriceHidden bool    `json:"price_hidden"`
	Image       string  `json:"image,omitempty"`
}

// CatalogItemUpdate carries a partial field set for
// PUT /api/catalog/item/:id.
type CatalogItemUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	PriceHidden *bool    `json:"price_hidden,omitempty"`
	Visible     *bool    `json:"visible,omitempty"`
}
