package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"khatapro-client/storage"
)

const authBody = `{"success":true,"data":{"token":"tok-new","business_id":"biz-7",
	"business":{"id":"biz-7","business_name":"Sharma Traders","phone_number":"9876543210"},
	"user":{"id":"biz-7","business_name":"Sharma Traders","phone_number":"9876543210"}}}`

func TestLoginPersistsSession(t *testing.T) {
	c, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "9876543210", body["phone_number"])
		w.Write([]byte(authBody))
	}))

	auth, err := c.Login(context.Background(), "9876543210", "secret12")
	require.NoError(t, err)
	assert.Equal(t, "tok-new", auth.Token)
	assert.Equal(t, "Sharma Traders", auth.Business.BusinessName)

	ctx := context.Background()
	token, err := store.Get(ctx, storage.KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-new", token)
	biz, err := store.Get(ctx, storage.KeyBusinessID)
	require.NoError(t, err)
	assert.Equal(t, "biz-7", biz)
	user, err := store.Get(ctx, storage.KeyUserData)
	require.NoError(t, err)
	assert.Contains(t, user, "Sharma Traders")
}

func TestLoginWithoutTokenRejected(t *testing.T) {
	c, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 2xx but malformed: no token
		w.Write([]byte(`{"success":true,"data":{"business_id":"biz-7"}}`))
	}))

	_, err := c.Login(context.Background(), "9876543210", "secret12")
	assert.ErrorIs(t, err, ErrNoToken)

	_, err = store.Get(context.Background(), storage.KeyAuthToken)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestLoginSucceedsWhenStoreWriteFails(t *testing.T) {
	store := &failingStore{MemStore: storage.NewMemStore()}
	c := newTestClientWithStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(authBody))
	}), store)

	// persistence failure degrades to a log line; the caller still gets
	// the authenticated response
	auth, err := c.Login(context.Background(), "9876543210", "secret12")
	require.NoError(t, err)
	assert.Equal(t, "tok-new", auth.Token)

	_, err = store.Get(context.Background(), storage.KeyAuthToken)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRegisterDoesNotPersistToken(t *testing.T) {
	c, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(authBody))
	}))

	auth, err := c.Register(context.Background(), "Sharma Traders", "9876543210", "secret12")
	require.NoError(t, err)
	assert.Equal(t, "tok-new", auth.Token)

	// persistence is deferred to CompleteSetup
	_, err = store.Get(context.Background(), storage.KeyAuthToken)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCompleteSetupPersistsDeferredSession(t *testing.T) {
	c, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(authBody))
	}))
	ctx := context.Background()

	auth, err := c.Register(ctx, "Sharma Traders", "9876543210", "secret12")
	require.NoError(t, err)
	c.CompleteSetup(ctx, auth)

	token, err := store.Get(ctx, storage.KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-new", token)
	flag, err := store.Get(ctx, storage.KeySetupCompleted)
	require.NoError(t, err)
	assert.Equal(t, "true", flag)
}

func TestLogoutClearsSessionEvenWhenServerFails(t *testing.T) {
	c, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"message":"boom"}`))
	}))
	ctx := context.Background()
	seedSession(t, store)

	require.NoError(t, c.Logout(ctx))

	_, err := store.Get(ctx, storage.KeyAuthToken)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = store.Get(ctx, storage.KeyUserData)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestLogoutClearsSessionOffline(t *testing.T) {
	c, store, ts := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()
	ctx := context.Background()
	seedSession(t, store)

	require.NoError(t, c.Logout(ctx))

	_, err := store.Get(ctx, storage.KeyAuthToken)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
