package stub

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type addOfferInput struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Discount    float64 `json:"discount"`
	ValidUntil  string  `json:"valid_until"`
}

func (s *Server) addOffer(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	var input addOfferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	offer := Offer{
		ID:          uuid.New(),
		BusinessID:  uuid.MustParse(bid),
		Title:       input.Title,
		Description: input.Description,
		Discount:    input.Discount,
		ValidUntil:  input.ValidUntil,
	}
	if err := s.DB.Create(&offer).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to create offer")
		return
	}
	respond(c, http.StatusCreated, offerJSON(offer))
}

func (s *Server) getOffers(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	var offers []Offer
	if err := s.DB.Where("business_id = ?", bid).Order("created_at desc").Find(&offers).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to retrieve offers")
		return
	}
	out := make([]gin.H, 0, len(offers))
	for _, o := range offers {
		out = append(out, offerJSON(o))
	}
	respond(c, http.StatusOK, out)
}

func (s *Server) deleteOffer(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	result := s.DB.Where("business_id = ? AND id = ?", bid, c.Param("id")).Delete(&Offer{})
	if result.Error != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to delete offer")
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(c, http.StatusNotFound, "Offer not found")
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "Offer deleted"})
}

func offerJSON(o Offer) gin.H {
	return gin.H{
		"id":          o.ID.String(),
		"title":       o.Title,
		"description": o.Description,
		"discount":    o.Discount,
		"valid_until": o.ValidUntil,
	}
}
