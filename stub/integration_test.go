package stub_test

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"khatapro-client/client"
	"khatapro-client/config"
	"khatapro-client/models"
	"khatapro-client/session"
	"khatapro-client/storage"
	"khatapro-client/stub"
)

type fixture struct {
	api      *client.Client
	store    *storage.MemStore
	sessions *session.Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	server, err := stub.New(config.StubConfig{
		JWTSecret:      "integration-test-secret",
		JWTExpiryHours: 1,
		DBPath:         filepath.Join(t.TempDir(), "stub.db"),
	}, zap.NewNop())
	require.NoError(t, err)

	ts := httptest.NewServer(server.Engine)
	t.Cleanup(ts.Close)

	store := storage.NewMemStore()
	sessions := session.NewManager(store, zap.NewNop())
	t.Cleanup(sessions.Close)

	cfg := &config.Config{
		API:     config.APIConfig{BaseURL: ts.URL, Timeout: 10 * time.Second},
		Storage: config.StorageConfig{DownloadDir: t.TempDir()},
	}
	return &fixture{
		api:      client.New(cfg, store, sessions, zap.NewNop()),
		store:    store,
		sessions: sessions,
	}
}

func (f *fixture) signUp(t *testing.T, ctx context.Context) models.AuthResponse {
	t.Helper()
	auth, err := f.api.Register(ctx, "Sharma Traders", "9876543210", "secret12")
	require.NoError(t, err)
	_, err = f.api.Login(ctx, "9876543210", "secret12")
	require.NoError(t, err)
	return auth
}

func TestRegisterThenLoginFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	auth, err := f.api.Register(ctx, "Sharma Traders", "9876543210", "secret12")
	require.NoError(t, err)
	assert.NotEmpty(t, auth.Token)
	assert.NotEmpty(t, auth.BusinessID)
	assert.Equal(t, "Sharma Traders", auth.Business.BusinessName)

	// register never persists
	_, err = f.store.Get(ctx, storage.KeyAuthToken)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// duplicate phone is rejected
	_, err = f.api.Register(ctx, "Other Shop", "9876543210", "secret12")
	assert.True(t, client.IsStatus(err, 409))

	// wrong password: 401, and it must not look like token expiry
	_, err = f.api.Login(ctx, "9876543210", "wrong-pass")
	assert.True(t, client.IsStatus(err, 401))

	_, err = f.api.Login(ctx, "9876543210", "secret12")
	require.NoError(t, err)
	token, err := f.store.Get(ctx, storage.KeyAuthToken)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, f.sessions.Current(ctx).Authenticated)
}

func TestCustomerLedgerFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.signUp(t, ctx)

	customer, err := f.api.AddCustomer(ctx, models.AddCustomerRequest{Name: "Ravi", PhoneNumber: "9123456780"})
	require.NoError(t, err)
	require.NotEmpty(t, customer.ID)

	// invalid phone is a validation failure, not a crash
	_, err = f.api.AddCustomer(ctx, models.AddCustomerRequest{Name: "Bad", PhoneNumber: "12345"})
	assert.True(t, client.IsStatus(err, 400))

	// credit with a local receipt photo goes up as multipart
	receipt := filepath.Join(t.TempDir(), "receipt.jpg")
	require.NoError(t, os.WriteFile(receipt, []byte("jpeg-bytes"), 0o600))
	txn, err := f.api.AddTransaction(ctx, models.AddTransactionRequest{
		CustomerID:   customer.ID,
		Type:         models.TransactionCredit,
		Amount:       150,
		Notes:        "udhaar",
		ReceiptImage: receipt,
	})
	require.NoError(t, err)
	assert.Contains(t, txn.ReceiptURL, "https://cdn.khatapro.in/uploads/")

	_, err = f.api.AddTransaction(ctx, models.AddTransactionRequest{
		CustomerID: customer.ID,
		Type:       models.TransactionPayment,
		Amount:     50,
	})
	require.NoError(t, err)

	// running balance: +150 credit, -50 payment
	got, err := f.api.Customer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got.Balance)

	txns, err := f.api.Transactions(ctx, customer.ID)
	require.NoError(t, err)
	assert.Len(t, txns, 2)

	summary, err := f.api.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 150.0, summary.TotalCredit)
	assert.Equal(t, 50.0, summary.TotalPayment)
	require.NotEmpty(t, summary.RecentCustomers)
	assert.Equal(t, "Ravi", summary.RecentCustomers[0].Name)
}

func TestProductRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.signUp(t, ctx)

	created, err := f.api.AddProduct(ctx, models.AddProductRequest{
		Name:              "Sugar 1kg",
		Category:          "Grocery",
		Price:             42,
		Unit:              "kg",
		StockQuantity:     10,
		LowStockThreshold: 2,
	})
	require.NoError(t, err)

	products, err := f.api.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, created.ID, products[0].ID)
	assert.Equal(t, "Sugar 1kg", products[0].Name)
	assert.Equal(t, 42.0, products[0].Price)
	assert.Equal(t, 10, products[0].StockQuantity)

	newPrice := 45.0
	updated, err := f.api.UpdateProduct(ctx, created.ID, models.ProductUpdate{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 45.0, updated.Price)
	assert.Equal(t, "Sugar 1kg", updated.Name, "partial update leaves other fields")

	require.NoError(t, f.api.DeleteProduct(ctx, created.ID))
	products, err = f.api.Products(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	err = f.api.DeleteProduct(ctx, created.ID)
	assert.True(t, client.IsStatus(err, 404))
}

func TestCatalogHiddenPriceForcedToZero(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.signUp(t, ctx)

	item, err := f.api.AddCatalogItem(ctx, models.AddCatalogItemRequest{
		Name:        "Custom tailoring",
		Price:       500,
		PriceHidden: true,
	})
	require.NoError(t, err)
	assert.True(t, item.PriceHidden)
	assert.Equal(t, 0.0, item.Price, "hidden price is transmitted as zero")
	assert.True(t, item.Visible)

	hidden, err := f.api.SetCatalogVisibility(ctx, item.ID, false)
	require.NoError(t, err)
	assert.False(t, hidden.Visible)

	items, err := f.api.CatalogItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, f.api.DeleteCatalogItem(ctx, item.ID))
}

func TestOffersFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.signUp(t, ctx)

	offer, err := f.api.AddOffer(ctx, models.AddOfferRequest{Title: "Diwali sale", Discount: 10})
	require.NoError(t, err)

	offers, err := f.api.Offers(ctx)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "Diwali sale", offers[0].Title)

	require.NoError(t, f.api.DeleteOffer(ctx, offer.ID))
	offers, err = f.api.Offers(ctx)
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestProfileUpdateAndUploads(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.signUp(t, ctx)

	gst := "27AAPFU0939F1ZV"
	city := "Pune"
	profile, err := f.api.UpdateProfile(ctx, models.ProfileUpdate{GSTNumber: &gst, City: &city})
	require.NoError(t, err)
	assert.Equal(t, gst, profile.GSTNumber)
	assert.Equal(t, "Pune", profile.City)

	badGST := "not-a-gst"
	_, err = f.api.UpdateProfile(ctx, models.ProfileUpdate{GSTNumber: &badGST})
	assert.True(t, client.IsStatus(err, 400))

	logo := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(logo, []byte("png-bytes"), 0o600))
	uploaded, err := f.api.UploadLogo(ctx, logo)
	require.NoError(t, err)
	assert.Contains(t, uploaded.URL, "https://cdn.khatapro.in/uploads/")

	fetched, err := f.api.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, uploaded.URL, fetched.LogoURL)

	// Profile() refreshed the local cache
	cached, ok := f.api.CachedProfile(ctx)
	require.True(t, ok)
	assert.Equal(t, "Pune", cached.City)
}

func TestInvoicePDFSavedLocally(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.signUp(t, ctx)

	customer, err := f.api.AddCustomer(ctx, models.AddCustomerRequest{Name: "Ravi", PhoneNumber: "9123456780"})
	require.NoError(t, err)

	path, err := f.api.GenerateInvoice(ctx, models.GenerateInvoiceRequest{
		CustomerID: customer.ID,
		Items: []models.InvoiceItem{
			{Name: "Sugar 1kg", Quantity: 2, UnitPrice: 42, Total: 84},
			{Name: "Rice 5kg", Quantity: 1, UnitPrice: 300, Total: 300},
		},
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(raw) > 100)
	assert.Equal(t, "%PDF", string(raw[:4]))
}

func TestExpiredTokenClearsSessionButFailedLoginDoesNot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.signUp(t, ctx)

	// garbage token: the stub answers 401 "Token is invalid or expired"
	require.NoError(t, f.store.Set(ctx, storage.KeyAuthToken, "tampered"))
	_, err := f.api.Customers(ctx)
	assert.True(t, client.IsStatus(err, 401))
	_, err = f.store.Get(ctx, storage.KeyAuthToken)
	assert.ErrorIs(t, err, storage.ErrNotFound, "dead token must be purged")

	// fresh login, then a failed login attempt for someone else must
	// not purge the live session
	_, err = f.api.Login(ctx, "9876543210", "secret12")
	require.NoError(t, err)
	_, err = f.api.Login(ctx, "9876543210", "wrong-pass")
	assert.True(t, client.IsStatus(err, 401))

	token, err := f.store.Get(ctx, storage.KeyAuthToken)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}
