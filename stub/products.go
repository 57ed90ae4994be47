package stub

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"khatapro-client/utils"
)

type addProductInput struct {
	Name              string  `json:"name" binding:"required"`
	Category          string  `json:"category"`
	Price             float64 `json:"price" binding:"required"`
	Unit              string  `json:"unit"`
	StockQuantity     int     `json:"stock_quantity"`
	LowStockThreshold int     `json:"low_stock_threshold"`
	Image             string  `json:"image"`
}

type updateProductInput struct {
	Name              *string  `json:"name"`
	Category          *string  `json:"category"`
	Price             *float64 `json:"price"`
	Unit              *string  `json:"unit"`
	StockQuantity     *int     `json:"stock_quantity"`
	LowStockThreshold *int     `json:"low_stock_threshold"`
}

func (s *Server) addProduct(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	var input addProductInput
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		input.Name = c.PostForm("name")
		input.Category = c.PostForm("category")
		input.Unit = c.PostForm("unit")
		input.Price, _ = strconv.ParseFloat(c.PostForm("price"), 64)
		input.StockQuantity, _ = strconv.Atoi(c.PostForm("stock_quantity"))
		input.LowStockThreshold, _ = strconv.Atoi(c.PostForm("low_stock_threshold"))

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
	if err := utils.ValidatePrice(input.Price); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	product := Product{
		ID:                uuid.New(),
		BusinessID:        uuid.MustParse(bid),
		Name:              input.Name,
		Category:          input.Category,
		Price:             input.Price,
		Unit:              input.Unit,
		StockQuantity:     input.StockQuantity,
		LowStockThreshold: input.LowStockThreshold,
		ImageURL:          input.Image,
	}
	if err := s.DB.Create(&product).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to create product")
		return
	}
	respond(c, http.StatusCreated, productJSON(product))
}

func (s *Server) getProducts(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	var products []Product
	if err := s.DB.Where("business_id = ?", bid).Order("name").Find(&products).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}
	out := make([]gin.H, 0, len(products))
	for _, p := range products {
		out = append(out, productJSON(p))
	}
	respond(c, http.StatusOK, out)
}

func (s *Server) updateProduct(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	var product Product
	if err := s.DB.Where("business_id = ? AND id = ?", bid, c.Param("id")).First(&product).Error; err != nil {
		notFoundOrDBError(c, err, "Product")
		return
	}

	var input updateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Price != nil {
		if err := utils.ValidatePrice(*input.Price); err != nil {
			respondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		product.Price = *input.Price
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.StockQuantity != nil {
		if *input.StockQuantity < 0 {
			respondWithError(c, http.StatusBadRequest, "Stock quantity cannot be negative")
			return
		}
		product.StockQuantity = *input.StockQuantity
	}
	if input.LowStockThreshold != nil {
		product.LowStockThreshold = *input.LowStockThreshold
	}

	if err := s.DB.Save(&product).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to update product")
		return
	}
	respond(c, http.StatusOK, productJSON(product))
}

func (s *Server) deleteProduct(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	result := s.DB.Where("business_id = ? AND id = ?", bid, c.Param("id")).Delete(&Product{})
	if result.Error != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(c, http.StatusNotFound, "Product not found")
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "Product deleted"})
}

func productJSON(p Product) gin.H {
	return gin.H{
		"id":                  p.ID.String(),
		"name":                p.Name,
		"category":            p.Category,
		"price":               p.Price,
		"unit":                p.Unit,
		"stock_quantity":      p.StockQuantity,
		"low_stock_threshold": p.LowStockThreshold,
		"image_url":           p.ImageURL,
	}
}
