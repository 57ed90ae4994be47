package stub

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type addCatalogItemInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	PriceHidden bool    `json:"price_hidden"`
	Image       string  `json:"image"`
}

type updateCatalogItemInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	PriceHidden *bool    `json:"price_hidden"`
	Visible     *bool    `json:"visible"`
}

func (s *Server) addCatalogItem(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	var input addCatalogItemInput
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		input.Name = c.PostForm("name")
		input.Description = c.PostForm("description")
		input.Price, _ = strconv.ParseFloat(c.PostForm("price"), 64)
		input.PriceHidden, _ = strconv.ParseBool(c.PostForm("price_hidden"))

		file, err := c.FormFile("image")
		if err != nil {
			respondWithError(c, http.StatusBadRequest, "Image file missing")
			return
		}
		input.Image = s.storeUpload(c, file)
	} else if err := c.ShouldBindJSON(&input); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Name == "" {
		respondWithError(c, http.StatusBadRequest, "Name is required")
		return
	}

	item := CatalogItem{
		ID:          uuid.New(),
		BusinessID:  uuid.MustParse(bid),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		PriceHidden: input.PriceHidden,
		Visible:     true,
		ImageURL:    input.Image,
	}
	// Hidden-price listings carry price 0; "contact for price" and
	// "free" are indistinguishable here by price alone.
	if item.PriceHidden {
		item.Price = 0
	}

	if err := s.DB.Create(&item).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to create catalog item")
		return
	}
	respond(c, http.StatusCreated, catalogItemJSON(item))
}

func (s *Server) getCatalogItems(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	var items []CatalogItem
	if err := s.DB.Where("business_id = ?", bid).Order("name").Find(&items).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to retrieve catalog")
		return
	}
	out := make([]gin.H, 0, len(items))
	for _, item := range items {
		out = append(out, catalogItemJSON(item))
	}
	respond(c, http.StatusOK, out)
}

func (s *Server) updateCatalogItem(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	var item CatalogItem
	if err := s.DB.Where("business_id = ? AND id = ?", bid, c.Param("id")).First(&item).Error; err != nil {
		notFoundOrDBError(c, err, "Catalog item")
		return
	}

	var input updateCatalogItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.PriceHidden != nil {
		item.PriceHidden = *input.PriceHidden
	}
	if input.Visible != nil {
		item.Visible = *input.Visible
	}
	if item.PriceHidden {
		item.Price = 0
	}

	if err := s.DB.Save(&item).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to update catalog item")
		return
	}
	respond(c, http.StatusOK, catalogItemJSON(item))
}

func (s *Server) deleteCatalogItem(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	result := s.DB.Where("business_id = ? AND id = ?", bid, c.Param("id")).Delete(&CatalogItem{})
	if result.Error != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to delete catalog item")
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(c, http.StatusNotFound, "Catalog item not found")
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "Catalog item deleted"})
}

func catalogItemJSON(item CatalogItem) gin.H {
	return gin.H{
		"id":           item.ID.String(),
		"name":         item.Name,
		"description":  item.Description,
		"price":        item.Price,
		"price_hidden": item.PriceHidden,
		"visible":      item.Visible,
		"image_url":    item.ImageURL,
	}
}
