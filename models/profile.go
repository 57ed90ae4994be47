package models

// BusinessProfile is the business record behind GET /api/profile,
// cached locally under the userData key.
type BusinessProfile struct {
	ID           string  `json:"id"`
	BusinessName string  `json:"business_name"`
	OwnerName    string  `json:"owner_name"`
	PhoneNumber  string  `json:"phone_number"`
	Email        string  `json:"email"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Pincode      string  `json:"pincode"`
	GSTNumber    string  `json:"gst_number"`
	Category     string  `json:"category"`
	Subcategory  string  `json:"subcategory"`
	PhotoURL     string  `json:"photo_url"`
	LogoURL      string  `json:"logo_url"`
	ShopPhotoURL string  `json:"shop_photo_url"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

// ProfileUpdate carries a partial field set for PUT /api/profile.
// Only non-nil fields are sent.
type ProfileUpdate struct {
	BusinessName *string  `json:"business_name,omitempty"`
	OwnerName    *string  `json:"owner_name,omitempty"`
	Email        *string  `json:"email,omitempty"`
	Address      *string  `json:"address,omitempty"`
	City         *string  `json:"city,omitempty"`
	State        *string  `json:"state,omitempty"`
	Pincode      *string  `json:"pincode,omitempty"`
	GSTNumber    *string  `json:"gst_number,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Subcategory  *string  `json:"subcategory,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

// UploadResponse is returned by the photo/logo/shop-photo upload
// endpoints.
type UploadResponse struct {
	URL string `json:"url"`
}
