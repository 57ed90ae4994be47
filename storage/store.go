package storage

import (
	"context"
	"errors"
)

// Well-known keys. The client and session layer agree on these; no
// other component writes them.
const (
	KeyAuthToken      = "authToken"
	KeyUserData       = "userData"
	KeyBusinessID     = "businessId"
	KeyProductsCache  = "products_cache"
	KeySetupCompleted = "business_setup_completed"
)

// ErrNotFound is returned by Get for an absent key. Callers generally
// treat any Get failure the same as an absent key.
var ErrNotFound = errors.New("storage: key not found")

// Store is a small asynchronous key-value store. Writes are best
// effort from the caller's point of view: an operation whose network
// call succeeded still reports success when the follow-up Set fails.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
