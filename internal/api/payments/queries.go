package payments

import (
	"errors"
	"time"

	"subshop-backend/internal/domain/cart"
	"subshop-backend/internal/domain/payments"
	"subshop-backend/internal/domain/subscriptions"

	"gorm.io/gorm"
)

// GormStore implements Store on the shared gorm handle.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CartLines(userID uint, lineIDs []uint) ([]cart.Line, error) {
	var lines []cart.Line
	err := s.db.
		Preload("Product").
		Where("user_id = ? AND id IN ?", userID, lineIDs).
		Find(&lines).Error
	return lines, err
}

func (s *GormStore) CreatePayment(p *payments.PaymentRequest) error {
	return s.db.Create(p).Error
}

func (s *GormStore) Payment(id string) (*payments.PaymentRequest, error) {
	var p payments.PaymentRequest
	if err := s.db.Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *GormStore) PaymentsByUser(userID uint) ([]payments.PaymentRequest, error) {
	var list []payments.PaymentRequest
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// Settle runs the whole settlement in one transaction. The status
// update is conditional on the row still being pending, so of two
// concurrent confirms only one creates subscriptions and clears the
// cart; the other gets ErrConflict. Subscriptions are written before
// the cart is cleared.
func (s *GormStore) Settle(p *payments.PaymentRequest, txHash string, subs []subscriptions.Subscription, completedAt time.Time) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&payments.PaymentRequest{}).
			Where("id = ? AND status = ?", p.ID, payments.StatusPending).
			Updates(map[string]interface{}{
				"status":       payments.StatusCompleted,
				"tx_hash":      txHash,
				"completed_at": completedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrConflict
		}

		for i := range subs {
			if err := tx.Create(&subs[i]).Error; err != nil {
				return err
			}
		}

		// The whole cart goes, not just the snapshot lines: one
		// pending checkout per user is assumed.
		return tx.Where("user_id = ?", p.UserID).Delete(&cart.Line{}).Error
	})
}
