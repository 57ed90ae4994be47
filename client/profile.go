package client

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"khatapro-client/models"
	"khatapro-client/storage"
)

// Profile fetches the business profile and refreshes the local
// userData cache. A failed cache write does not fail the fetch.
func (c *Client) Profile(ctx context.Context) (models.BusinessProfile, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/profile", nil)
	if err != nil {
		return models.BusinessProfile{}, err
	}
	profile, err := decode[models.BusinessProfile](raw)
	if err != nil {
		return models.BusinessProfile{}, err
	}
	if cached, err := json.Marshal(profile); err == nil {
		if err := c.store.Set(ctx, storage.KeyUserData, string(cached)); err != nil {
			c.logger.Warn("failed to cache profile", zap.Error(err))
		}
	}
	return profile, nil
}

// CachedProfile returns the locally cached profile without touching
// the network; ok is false when nothing usable is cached.
func (c *Client) CachedProfile(ctx context.Context) (models.BusinessProfile, bool) {
	cached, err := c.store.Get(ctx, storage.KeyUserData)
	if err != nil || cached == "" {
		return models.BusinessProfile{}, false
	}
	var profile models.BusinessProfile
	if err := json.Unmarshal([]byte(cached), &profile); err != nil {
		return models.BusinessProfile{}, false
	}
	return profile, true
}

// UpdateProfile applies a partial profile update. The backend accepts
// any subset of fields.
func (c *Client) UpdateProfile(ctx context.Context, req models.ProfileUpdate) (models.BusinessProfile, error) {
	raw, err := c.do(ctx, http.MethodPut, "/api/profile", req)
	if err != nil {
		return models.BusinessProfile{}, err
	}
	return decode[models.BusinessProfile](raw)
}

// UploadProfilePhoto uploads a local image as the owner photo. The
// form field name is fixed by the backend.
func (c *Client) UploadProfilePhoto(ctx context.Context, path string) (models.UploadResponse, error) {
	return c.uploadPhoto(ctx, "/api/profile/upload-photo", "photo", path)
}

// UploadLogo uploads a local image as the business logo.
func (c *Client) UploadLogo(ctx context.Context, path string) (models.UploadResponse, error) {
	return c.uploadPhoto(ctx, "/api/profile/upload-logo", "logo", path)
}

// UploadShopPhoto uploads a local image of the shop front.
func (c *Client) UploadShopPhoto(ctx context.Context, path string) (models.UploadResponse, error) {
	return c.uploadPhoto(ctx, "/api/profile/upload-shop-photo", "shop_photo", path)
}

func (c *Client) uploadPhoto(ctx context.Context, path, field, file string) (models.UploadResponse, error) {
	raw, err := c.doMultipart(ctx, http.MethodPost, path, nil, map[string]string{field: file})
	if err != nil {
		return models.UploadResponse{}, err
	}
	return decode[models.UploadResponse](raw)
}
