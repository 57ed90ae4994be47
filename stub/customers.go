package stub

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"khatapro-client/utils"
)

type addCustomerInput struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

func (s *Server) addCustomer(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	var input addCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := utils.ValidatePhone(input.PhoneNumber); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	customer := Customer{
		ID:          uuid.New(),
		BusinessID:  uuid.MustParse(bid),
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
	}
	if err := s.DB.Create(&customer).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}
	respond(c, http.StatusCreated, customerJSON(customer))
}

func (s *Server) getCustomers(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	var customers []Customer
	if err := s.DB.Where("business_id = ?", bid).Order("created_at desc").Find(&customers).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}
	out := make([]gin.H, 0, len(customers))
	for _, cu := range customers {
		out = append(out, customerJSON(cu))
	}
	respond(c, http.StatusOK, out)
}

func (s *Server) getCustomer(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	var customer Customer
	err := s.DB.Where("business_id = ? AND id = ?", bid, c.Param("id")).First(&customer).Error
	if err != nil {
		notFoundOrDBError(c, err, "Customer")
		return
	}
	respond(c, http.StatusOK, customerJSON(customer))
}

func customerJSON(cu Customer) gin.H {
	return gin.H{
		"id":           cu.ID.String(),
		"name":         cu.Name,
		"phone_number": cu.PhoneNumber,
		"balance":      cu.Balance,
		"created_at":   cu.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
