package stub

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"khatapro-client/utils"
)

type registerInput struct {
	BusinessName string `json:"business_name" binding:"required"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
	Password     string `json:"password" binding:"required,min=6"`
}

type loginInput struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

func (s *Server) register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := utils.ValidatePhone(input.PhoneNumber); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var existing Business
	result := s.DB.Where("phone_number = ?", input.PhoneNumber).First(&existing)
	if result.Error == nil {
		respondWithError(c, http.StatusConflict, "Phone number already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		respondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	business := Business{
		BusinessName: input.BusinessName,
		PhoneNumber:  input.PhoneNumber,
		Password:     input.Password, // hashed in BeforeCreate
	}
	if err := s.DB.Create(&business).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to create business")
		return
	}

	token, err := s.generateToken(business.ID.String())
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	respond(c, http.StatusCreated, authPayload(token, business))
}

func (s *Server) login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	var business Business
	result := s.DB.Where("phone_number = ?", strings.TrimSpace(input.PhoneNumber)).First(&business)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			// Deliberately free of the word "token": a failed login
			// must not look like an expired session to the client.
			respondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			respondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	if !utils.CheckPasswordHash(input.Password, business.Password) {
		respondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := s.generateToken(business.ID.String())
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	respond(c, http.StatusOK, authPayload(token, business))
}

func (s *Server) logout(c *gin.Context) {
	// Tokens are stateless; nothing to revoke server-side.
	respond(c, http.StatusOK, gin.H{"message": "Logged out"})
}

func authPayload(token string, b Business) gin.H {
	profile := businessProfile(b)
	return gin.H{
		"token":       token,
		"business_id": b.ID.String(),
		"business":    profile,
		"user":        profile,
	}
}

func (s *Server) generateToken(businessID string) (string, error) {
	if s.cfg.JWTSecret == "" {
		return "", errors.New("JWT_SECRET not set")
	}
	expiry := time.Duration(s.cfg.JWTExpiryHours) * time.Hour
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": businessID,
		"exp": time.Now().Add(expiry).Unix(),
		"iat": time.Now().Unix(),
	})
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			respondWithError(c, http.StatusUnauthorized, "Authorization header required")
			return
		}
		if len(tokenString) > 7 && strings.EqualFold(tokenString[0:6], "bearer") {
			tokenString = tokenString[7:]
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(s.cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			respondWithError(c, http.StatusUnauthorized, "Token is invalid or expired")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, "Token is invalid or expired")
			return
		}
		c.Set("businessId", claims["sub"])
		c.Next()
	}
}

// businessID pulls the authenticated business out of the context.
func businessID(c *gin.Context) (string, bool) {
	id, exists := c.Get("businessId")
	if !exists {
		respondWithError(c, http.StatusUnauthorized, "Business ID not found in context")
		return "", false
	}
	s, ok := id.(string)
	if !ok {
		respondWithError(c, http.StatusUnauthorized, "Business ID not found in context")
		return "", false
	}
	return s, true
}
