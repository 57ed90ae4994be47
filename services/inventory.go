package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"khatapro-client/client"
	"khatapro-client/models"
	"khatapro-client/storage"
)

// ErrStockBelowZero rejects a decrement that would drive stock
// negative. The guard runs before the local apply and before any
// network call.
var ErrStockBelowZero = errors.New("stock quantity cannot go below zero")

// InventoryService holds the in-memory product list behind the
// inventory screen: a staleness-gated cache plus optimistic ±1 stock
// adjustments.
type InventoryService struct {
	api    *client.Client
	cache  *ListCache[models.Product]
	logger *zap.Logger
}

func NewInventoryService(api *client.Client, store storage.Store, cfg CacheConfig, logger *zap.Logger) *InventoryService {
	s := &InventoryService{api: api, logger: logger}
	s.cache = &ListCache[models.Product]{
		TTL:    cfg.TTL,
		Store:  store,
		Key:    storage.KeyProductsCache,
		Fetch:  api.Products,
		Logger: logger,
		Now:    cfg.Now,
	}
	s.cache.LoadPersisted(context.Background())
	return s
}

// OnFocus is the screen-entry hook: cached list when fresh, refetch
// when stale.
func (s *InventoryService) OnFocus(ctx context.Context) ([]models.Product, bool, error) {
	return s.cache.OnFocus(ctx)
}

// Refresh is the pull-to-refresh hook; it always refetches.
func (s *InventoryService) Refresh(ctx context.Context) ([]models.Product, error) {
	return s.cache.Refresh(ctx)
}

// Products returns the current in-memory list.
func (s *InventoryService) Products() []models.Product {
	return s.cache.Items()
}

// AdjustStock applies a ±delta to one product optimistically: the
// local quantity changes first, the update call follows, and a
// rejected call restores the captured value. A decrement below zero is
// refused outright with no state change and no request.
func (s *InventoryService) AdjustStock(ctx context.Context, productID string, delta int) error {
	product, ok := s.find(productID)
	if !ok {
		return errors.New("product not found")
	}
	next := product.StockQuantity + delta
	if next < 0 {
		return ErrStockBelowZero
	}

	m := &Mutation[int]{
		Current:  func() int { p, _ := s.find(productID); return p.StockQuantity },
		Apply:    func(q int) { s.setStock(productID, q) },
		Reload:   func(ctx context.Context) error { _, err := s.cache.Refresh(ctx); return err },
		Strategy: RevertSnapshot,
		Logger:   s.logger,
	}
	return m.Do(ctx, next, func(ctx context.Context) error {
		_, err := s.api.UpdateProduct(ctx, productID, models.ProductUpdate{StockQuantity: &next})
		return err
	})
}

// UpdatePrice edits a single field, rolling back by full reload on
// failure (the coarse strategy, applied consistently to field edits).
func (s *InventoryService) UpdatePrice(ctx context.Context, productID string, price float64) error {
	m := &Mutation[float64]{
		Current:  func() float64 { p, _ := s.find(productID); return p.Price },
		Apply:    func(v float64) { s.setPrice(productID, v) },
		Reload:   func(ctx context.Context) error { _, err := s.cache.Refresh(ctx); return err },
		Strategy: ReloadFromServer,
		Logger:   s.logger,
	}
	return m.Do(ctx, price, func(ctx context.Context) error {
		_, err := s.api.UpdateProduct(ctx, productID, models.ProductUpdate{Price: &price})
		return err
	})
}

func (s *InventoryService) find(id string) (models.Product, bool) {
	for _, p := range s.cache.Items() {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *InventoryService) setStock(id string, quantity int) {
	s.mutate(id, func(p *models.Product) { p.StockQuantity = quantity })
}

func (s *InventoryService) setPrice(id string, price float64) {
	s.mutate(id, func(p *models.Product) { p.Price = price })
}

func (s *InventoryService) mutate(id string, fn func(*models.Product)) {
	s.cache.mu.Lock()
	defer s.cache.mu.Unlock()
	for i := range s.cache.items {
		if s.cache.items[i].ID == id {
			fn(&s.cache.items[i])
			return
		}
	}
}
