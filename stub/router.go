package stub

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (s *Server) setupRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(s.requestLogger())

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", s.register)
			auth.POST("/login", s.login)
			auth.POST("/logout", s.logout)
		}

		authed := api.Group("")
		authed.Use(s.authMiddleware())
		{
			authed.GET("/dashboard", s.dashboard)

			authed.GET("/customers", s.getCustomers)
			authed.GET("/customer/:id", s.getCustomer)
			authed.POST("/customer", s.addCustomer)

			authed.GET("/transactions", s.getTransactions)
			authed.POST("/transaction", s.addTransaction)

			authed.GET("/products", s.getProducts)
			authed.POST("/product", s.addProduct)
			authed.PUT("/product/:id", s.updateProduct)
			authed.DELETE("/product/:id", s.deleteProduct)

			authed.GET("/catalog", s.getCatalogItems)
			authed.POST("/catalog/item", s.addCatalogItem)
			authed.PUT("/catalog/item/:id", s.updateCatalogItem)
			authed.DELETE("/catalog/item/:id", s.deleteCatalogItem)

			authed.GET("/offers", s.getOffers)
			authed.POST("/offer", s.addOffer)
			authed.DELETE("/offer/:id", s.deleteOffer)

			authed.GET("/profile", s.getProfile)
			authed.PUT("/profile", s.updateProfile)
			authed.POST("/profile/upload-photo", s.uploadPhoto("photo"))
			authed.POST("/profile/upload-logo", s.uploadPhoto("logo"))
			authed.POST("/profile/upload-shop-photo", s.uploadPhoto("shop_photo"))

			authed.POST("/generate-invoice", s.generateInvoice)
		}
	}

	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// respond wraps every JSON payload in the backend's standard envelope.
func respond(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
}

func notFoundOrDBError(c *gin.Context, err error, what string) {
	if err == nil {
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondWithError(c, http.StatusNotFound, what+" not found")
		return
	}
	respondWithError(c, http.StatusInternalServerError, "Database error")
}
