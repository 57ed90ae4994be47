package stub

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"khatapro-client/utils"
)

// Business is the account record. Passwords are bcrypt-hashed in the
// BeforeCreate hook.
type Business struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	BusinessName string    `gorm:"not null"`
	OwnerName    string
	PhoneNumber  string `gorm:"uniqueIndex;not null"`
	Password     string `gorm:"not null"`
	Email        string
	Address      string
	City         string
	State        string
	Pincode      string
	GSTNumber    string
	Category     string
	Subcategory  string
	PhotoURL     string
	LogoURL      string
	ShopPhotoURL string
	Latitude     float64
	Longitude    float64

	gorm.Model
}

func (b *Business) BeforeCreate(tx *gorm.DB) (err error) {
	b.ID = uuid.New()
	hashed, err := utils.HashPassword(b.Password)
	if err != nil {
		return err
	}
	b.Password = hashed
	return
}

type Customer struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name        string `gorm:"not null"`
	PhoneNumber string `gorm:"not null"`
	Balance     float64

	gorm.Model
}

type Transaction struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`

	Type       string  `gorm:"not null"` // credit | payment
	Amount     float64 `gorm:"not null"`
	Notes      string
	ReceiptURL string
	CreatedAt  time.Time
}

type Product struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name              string `gorm:"not null"`
	Category          string
	Price             float64
	Unit              string
	StockQuantity     int
	LowStockThreshold int
	ImageURL          string

	gorm.Model
}

type CatalogItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name        string `gorm:"not null"`
	Description string
	Price       float64
	PriceHidden bool
	Visible     bool `gorm:"default:true"`
	ImageURL    string

	gorm.Model
}

type Offer struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null"`

	Title       string `gorm:"not null"`
	Description string
	Discount    float64
	ValidUntil  string

	gorm.Model
}
