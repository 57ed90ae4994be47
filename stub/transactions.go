package stub

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"khatapro-client/models"
	"khatapro-client/utils"
)

type addTransactionInput struct {
	CustomerID   string  `json:"customer_id" binding:"required"`
	Type         string  `json:"type" binding:"required,oneof=credit payment"`
	Amount       float64 `json:"amount" binding:"required"`
	Notes        string  `json:"notes"`
	ReceiptImage string  `json:"receipt_image"`
}

func (s *Server) addTransaction(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	var input addTransactionInput
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		input.CustomerID = c.PostForm("customer_id")
		input.Type = c.PostForm("type")
		input.Notes = c.PostForm("notes")
		amount, err := strconv.ParseFloat(c.PostForm("amount"), 64)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, "Invalid amount")
			return
		}
		input.Amount = amount

		// The receipt file arrives under a fixed field name.
		file, err := c.FormFile("receipt")
		if err != nil {
			respondWithError(c, http.StatusBadRequest, "Receipt file missing")
			return
		}
		input.ReceiptImage = s.storeUpload(c, file)
	} else if err := c.ShouldBindJSON(&input); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Type != models.TransactionCredit && input.Type != models.TransactionPayment {
		respondWithError(c, http.StatusBadRequest, "Type must be credit or payment")
		return
	}
	if err := utils.ValidateAmount(input.Amount); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var customer Customer
	if err := s.DB.Where("business_id = ? AND id = ?", bid, input.CustomerID).First(&customer).Error; err != nil {
		notFoundOrDBError(c, err, "Customer")
		return
	}

	txn := Transaction{
		ID:         uuid.New(),
		BusinessID: uuid.MustParse(bid),
		CustomerID: customer.ID,
		Type:       input.Type,
		Amount:     input.Amount,
		Notes:      input.Notes,
		ReceiptURL: input.ReceiptImage,
		CreatedAt:  time.Now(),
	}

	// Credit raises the running balance (business will receive),
	// payment lowers it.
	delta := input.Amount
	if input.Type == models.TransactionPayment {
		delta = -input.Amount
	}

	if err := s.DB.Create(&txn).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to record transaction")
		return
	}
	if err := s.DB.Model(&customer).Update("balance", customer.Balance+delta).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to update balance")
		return
	}

	respond(c, http.StatusCreated, transactionJSON(txn))
}

func (s *Server) getTransactions(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	query := s.DB.Where("business_id = ?", bid)
	if customerID := c.Query("customer_id"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}

	var txns []Transaction
	if err := query.Order("created_at desc").Find(&txns).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}
	out := make([]gin.H, 0, len(txns))
	for _, t := range txns {
		out = append(out, transactionJSON(t))
	}
	respond(c, http.StatusOK, out)
}

func transactionJSON(t Transaction) gin.H {
	return gin.H{
		"id":          t.ID.String(),
		"customer_id": t.CustomerID.String(),
		"type":        t.Type,
		"amount":      t.Amount,
		"notes":       t.Notes,
		"receipt_url": t.ReceiptURL,
		"created_at":  t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
