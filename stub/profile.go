package stub

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"khatapro-client/utils"
)

type updateProfileInput struct {
	BusinessName *string  `json:"business_name"`
	OwnerName    *string  `json:"owner_name"`
	Email        *string  `json:"email"`
	Address      *string  `json:"address"`
	City         *string  `json:"city"`
	State        *string  `json:"state"`
	Pincode      *string  `json:"pincode"`
	GSTNumber    *string  `json:"gst_number"`
	Category     *string  `json:"category"`
	Subcategory  *string  `json:"subcategory"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

func (s *Server) getProfile(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	var business Business
	if err := s.DB.First(&business, "id = ?", bid).Error; err != nil {
		notFoundOrDBError(c, err, "Business")
		return
	}
	respond(c, http.StatusOK, businessProfile(business))
}

func (s *Server) updateProfile(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	var business Business
	if err := s.DB.First(&business, "id = ?", bid).Error; err != nil {
		notFoundOrDBError(c, err, "Business")
		return
	}

	var input updateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.GSTNumber != nil {
		if err := utils.ValidateGST(*input.GSTNumber); err != nil {
			respondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		business.GSTNumber = *input.GSTNumber
	}
	if input.BusinessName != nil {
		business.BusinessName = *input.BusinessName
	}
	if input.OwnerName != nil {
		business.OwnerName = *input.OwnerName
	}
	if input.Email != nil {
		business.Email = *input.Email
	}
	if input.Address != nil {
		business.Address = *input.Address
	}
	if input.City != nil {
		business.City = *input.City
	}
	if input.State != nil {
		business.State = *input.State
	}
	if input.Pincode != nil {
		business.Pincode = *input.Pincode
	}
	if input.Category != nil {
		business.Category = *input.Category
	}
	if input.Subcategory != nil {
		business.Subcategory = *input.Subcategory
	}
	if input.Latitude != nil {
		business.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		business.Longitude = *input.Longitude
	}

	if err := s.DB.Save(&business).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	respond(c, http.StatusOK, businessProfile(business))
}

// uploadPhoto handles the three photo endpoints; each has its own
// fixed form field name.
func (s *Server) uploadPhoto(field string) gin.HandlerFunc {
	return func(c *gin.Context) {
		bid, ok := businessID(c)
		if !ok {
			return
		}

		file, err := c.FormFile(field)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, "File missing under field "+field)
			return
		}
		url := s.storeUpload(c, file)

		column := map[string]string{
			"photo":      "photo_url",
			"logo":       "logo_url",
			"shop_photo": "shop_photo_url",
		}[field]
		if err := s.DB.Model(&Business{}).Where("id = ?", bid).Update(column, url).Error; err != nil {
			respondWithError(c, http.StatusInternalServerError, "Failed to save photo")
			return
		}
		respond(c, http.StatusOK, gin.H{"url": url})
	}
}

func businessProfile(b Business) gin.H {
	return gin.H{
		"id":             b.ID.String(),
		"business_name":  b.BusinessName,
		"owner_name":     b.OwnerName,
		"phone_number":   b.PhoneNumber,
		"email":          b.Email,
		"address":        b.Address,
		"city":           b.City,
		"state":          b.State,
		"pincode":        b.Pincode,
		"gst_number":     b.GSTNumber,
		"category":       b.Category,
		"subcategory":    b.Subcategory,
		"photo_url":      b.PhotoURL,
		"logo_url":       b.LogoURL,
		"shop_photo_url": b.ShopPhotoURL,
		"latitude":       b.Latitude,
		"longitude":      b.Longitude,
	}
}
