package products

import "time"

// Billing intervals a product can be sold on.
const (
	IntervalMonth = "month"
	IntervalYear  = "year"
)

type Product struct {
	ID          uint `gorm:"primaryKey"`
	Name        string
	Description string
	// PriceMinor is the price in kopecks. All money stays in integer
	// minor units until conversion to crypto.
	PriceMinor int64  `gorm:"column:price_minor;not null"`
	Interval   string `gorm:"size:10;not null"` // "month" | "year"
	IsActive   bool   `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
