package stub

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) dashboard(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	var totalCredit float64
	s.DB.Model(&Transaction{}).
		Where("business_id = ? AND type = ?", bid, "credit").
		Select("COALESCE(SUM(amount), 0)").Scan(&totalCredit)

	var totalPayment float64
	s.DB.Model(&Transaction{}).
		Where("business_id = ? AND type = ?", bid, "payment").
		Select("COALESCE(SUM(amount), 0)").Scan(&totalPayment)

	var recent []Customer
	s.DB.Where("business_id = ?", bid).Order("created_at desc").Limit(5).Find(&recent)

	recentJSON := make([]gin.H, 0, len(recent))
	for _, cu := range recent {
		recentJSON = append(recentJSON, customerJSON(cu))
	}

	// Matches the deployed backend: the payload sits under "summary".
	respond(c, http.StatusOK, gin.H{
		"summary": gin.H{
			"total_credit":     totalCredit,
			"total_payment":    totalPayment,
			"recent_customers": recentJSON,
		},
	})
}
