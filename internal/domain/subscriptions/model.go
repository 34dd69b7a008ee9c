package subscriptions

import (
	"time"

	"subshop-backend/internal/domain/products"
)

const (
	StatusActive    = "active"
	StatusCancelled = "cancelled"
)

// Subscription is created by the payment settlement workflow only, one
// per cart line of a confirmed payment. Owner and product come from the
// payment snapshot, never re-derived from the live cart.
type Subscription struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;index"`
	ProductID uint `gorm:"not null"`
	Product   products.Product
	Status    string `gorm:"size:16;not null;default:active;index"`

	StartDate       time.Time `gorm:"not null"`
	EndDate         time.Time `gorm:"not null"`
	NextPaymentDate time.Time `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
