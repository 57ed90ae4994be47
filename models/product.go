package models

// Product is an internal inventory record, distinct from the
// customer-facing CatalogItem.
type Product struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Price             float64 `json:"price"`
	Unit              string  `json:"unit"`
	StockQuantity     int     `json:"stock_quantity"`
	LowStockThreshold int     `json:"low_stock_threshold"`
	ImageURL          string  `json:"image_url"`
}

// AddProductRequest is the body for POST /api/product. Image may be a
// local file path (uploaded as multipart field "image") or a remote
// URL (passed through as JSON).
type AddProductRequest struct {
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Price             float64 `json:"price"`
	Unit              string  `json:"unit"`
	StockQuantity     int     `json:"stock_quantity"`
	LowStockThreshold int     `json:"low_stock_threshold"`
	Image             string  `json:"image,omitempty"`
}

// ProductUpdate carries a partial field set for PUT /api/product/:id.
type ProductUpdate struct {
	Name              *string  `json:"name,omitempty"`
	Category          *string  `json:"category,omitempty"`
	Price             *float64 `json:"price,omitempty"`
	Unit              *string  `json:"unit,omitempty"`
	StockQuantity     *int     `json:"stock_quantity,omitempty"`
	LowStockThreshold *int     `json:"low_stock_threshold,omitempty"`
}
