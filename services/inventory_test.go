package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"khatapro-client/client"
	"khatapro-client/config"
	"khatapro-client/session"
	"khatapro-client/storage"
)

// inventoryFixture serves a one-product inventory and counts PUTs,
// optionally rejecting them.
type inventoryFixture struct {
	puts       atomic.Int64
	rejectPuts atomic.Bool
}

func (f *inventoryFixture) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			w.Write([]byte(`{"success":true,"data":[{"id":"p1","name":"Sugar","price":42,"stock_quantity":3,"low_stock_threshold":1}]}`))
		case r.Method == http.MethodPut:
			f.puts.Add(1)
			if f.rejectPuts.Load() {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"success":false,"message":"boom"}`))
				return
			}
			w.Write([]byte(`{"success":true,"data":{"id":"p1"}}`))
		}
	})
}

func newInventoryService(t *testing.T, f *inventoryFixture) *InventoryService {
	t.Helper()
	ts := httptest.NewServer(f.handler())
	t.Cleanup(ts.Close)

	store := storage.NewMemStore()
	sessions := session.NewManager(store, zap.NewNop())
	t.Cleanup(sessions.Close)
	cfg := &config.Config{API: config.APIConfig{BaseURL: ts.URL, Timeout: 5 * time.Second}}
	api := client.New(cfg, store, sessions, zap.NewNop())

	svc := NewInventoryService(api, store, CacheConfig{TTL: 5 * time.Minute}, zap.NewNop())
	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	return svc
}

func TestAdjustStockOptimisticConfirm(t *testing.T) {
	f := &inventoryFixture{}
	svc := newInventoryService(t, f)

	require.NoError(t, svc.AdjustStock(context.Background(), "p1", +1))
	assert.Equal(t, 4, svc.Products()[0].StockQuantity)
	assert.EqualValues(t, 1, f.puts.Load())
}

func TestAdjustStockRevertsOnFailure(t *testing.T) {
	f := &inventoryFixture{}
	svc := newInventoryService(t, f)
	f.rejectPuts.Store(true)

	err := svc.AdjustStock(context.Background(), "p1", -1)
	assert.Error(t, err)
	assert.Equal(t, 3, svc.Products()[0].StockQuantity, "failed decrement must be rolled back")
}

func TestDecrementBelowZeroRejectedBeforeAnyWork(t *testing.T) {
	f := &inventoryFixture{}
	svc := newInventoryService(t, f)

	err := svc.AdjustStock(context.Background(), "p1", -4)
	assert.ErrorIs(t, err, ErrStockBelowZero)
	// local state untouched, no network call issued
	assert.Equal(t, 3, svc.Products()[0].StockQuantity)
	assert.EqualValues(t, 0, f.puts.Load())
}

func TestUpdatePriceReloadsOnFailure(t *testing.T) {
	f := &inventoryFixture{}
	svc := newInventoryService(t, f)
	f.rejectPuts.Store(true)

	err := svc.UpdatePrice(context.Background(), "p1", 55)
	assert.Error(t, err)
	// rollback is a full reload: the server copy wins
	assert.Equal(t, 42.0, svc.Products()[0].Price)
}

func TestAdjustStockUnknownProduct(t *testing.T) {
	f := &inventoryFixture{}
	svc := newInventoryService(t, f)

	err := svc.AdjustStock(context.Background(), "missing", +1)
	assert.Error(t, err)
	assert.EqualValues(t, 0, f.puts.Load())
}
