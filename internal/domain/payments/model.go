package payments

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusExpired   Status = "expired"
)

// Terminal reports whether no further transition is allowed out of s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusExpired
}

type Method string

const (
	MethodUSDTTRC20 Method = "crypto_usdt_trc20"
	MethodUSDTERC20 Method = "crypto_usdt_erc20"
	// MethodCard is accepted on the wire but always rejected: card
	// processing is not wired to any provider yet.
	MethodCard Method = "card"
)

// SnapshotLine is one cart line frozen at payment-creation time. The
// live cart can change or disappear before confirmation; settlement
// works off this copy, never off the live cart.
type SnapshotLine struct {
	LineID    uint `json:"line_id"`
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type Snapshot []SnapshotLine

type PaymentRequest struct {
	ID     string `gorm:"type:uuid;primaryKey"`
	UserID uint   `gorm:"not null;index"`

	// AmountMinor is the fiat total in kopecks; AmountCrypto is derived
	// from it once, at creation, with the rate in effect at that moment.
	AmountMinor  int64           `gorm:"column:amount_minor;not null"`
	AmountCrypto decimal.Decimal `gorm:"column:amount_crypto;type:numeric(20,6);not null"`
	Currency     string          `gorm:"size:10;not null"` // e.g. "USDT"
	Network      string          `gorm:"size:10;not null"` // e.g. "TRC20"
	Method       Method          `gorm:"size:32;not null"`

	Status   Status                       `gorm:"size:16;not null;default:pending;index"`
	Snapshot datatypes.JSONType[Snapshot] `gorm:"column:snapshot"`

	TxHash      *string `gorm:"column:tx_hash"`
	CompletedAt *time.Time

	CreatedAt time.Time
	// ExpiresAt is fixed at creation and never extended.
	ExpiresAt time.Time `gorm:"not null"`
}

func (PaymentRequest) TableName() string {
	return "payment_requests"
}
