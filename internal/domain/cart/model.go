package cart

import (
	"time"

	"subshop-backend/internal/domain/products"
)

// Line is one product in a user's cart. PriceMinor snapshots the unit
// price at add time so later product edits don't shift a pending total.
type Line struct {
	ID         uint `gorm:"primaryKey"`
	UserID     uint `gorm:"not null;index;uniqueIndex:idx_cart_user_product"`
	ProductID  uint `gorm:"not null;uniqueIndex:idx_cart_user_product"`
	Product    products.Product
	Quantity   int   `gorm:"not null;default:1"`
	PriceMinor int64 `gorm:"column:price_minor;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Line) TableName() string {
	return "cart_lines"
}
