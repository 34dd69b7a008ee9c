package admin

import (
	"net/http"
	"time"

	"subshop-backend/database"
	"subshop-backend/internal/domain/payments"
	"subshop-backend/internal/domain/subscriptions"
	"subshop-backend/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type AdminPayment struct {
	PaymentID    string  `json:"payment_id"`
	UserID       uint    `json:"user_id"`
	AmountMinor  int64   `json:"amount_minor"`
	AmountCrypto string  `json:"amount_crypto"`
	Currency     string  `json:"currency"`
	Network      string  `json:"network"`
	Status       string  `json:"status"`
	TxHash       *string `json:"tx_hash,omitempty"`
	CreatedAt    string  `json:"created_at"`
	ExpiresAt    string  `json:"expires_at"`
}

type AdminStats struct {
	TotalUsers          int64            `json:"total_users"`
	ActiveSubscriptions int64            `json:"active_subscriptions"`
	RevenueMinor        int64            `json:"revenue_minor"`
	PaymentsPerStatus   map[string]int64 `json:"payments_per_status"`
}

func AdminDashboard(c *gin.Context) {
	var stats AdminStats
	stats.PaymentsPerStatus = map[string]int64{}

	database.DB.Model(&users.User{}).Count(&stats.TotalUsers)
	database.DB.Model(&subscriptions.Subscription{}).
		Where("status = ? AND end_date > ?", subscriptions.StatusActive, time.Now()).
		Count(&stats.ActiveSubscriptions)

	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	database.DB.Model(&payments.PaymentRequest{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&counts)
	for _, sc := range counts {
		stats.PaymentsPerStatus[sc.Status] = sc.Count
	}

	// Revenue counts completed payments only, in kopecks.
	database.DB.Model(&payments.PaymentRequest{}).
		Where("status = ?", payments.StatusCompleted).
		Select("COALESCE(SUM(amount_minor), 0)").
		Scan(&stats.RevenueMinor)

	c.JSON(http.StatusOK, stats)
}

func ListAllUsers(c *gin.Context) {
	var list []users.User
	if err := database.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	adminUsers := make([]AdminUser, 0, len(list))
	for _, u := range list {
		adminUsers = append(adminUsers, AdminUser{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, adminUsers)
}

func ListAllPayments(c *gin.Context) {
	var list []payments.PaymentRequest
	if err := database.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	adminPayments := make([]AdminPayment, 0, len(list))
	for _, p := range list {
		adminPayments = append(adminPayments, AdminPayment{
			PaymentID:    p.ID,
			UserID:       p.UserID,
			AmountMinor:  p.AmountMinor,
			AmountCrypto: p.AmountCrypto.StringFixed(6),
			Currency:     p.Currency,
			Network:      p.Network,
			Status:       string(p.Status),
			TxHash:       p.TxHash,
			CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339),
			ExpiresAt:    p.ExpiresAt.UTC().Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, adminPayments)
}

// FailPayment writes off a pending payment whose window died without a
// transfer. Same conditional update as settlement: a payment that
// already left pending is not touched.
func FailPayment(c *gin.Context) {
	res := database.DB.Model(&payments.PaymentRequest{}).
		Where("id = ? AND status = ?", c.Param("id"), payments.StatusPending).
		Update("status", payments.StatusFailed)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment"})
		return
	}
	if res.RowsAffected == 0 {
		var p payments.PaymentRequest
		if err := database.DB.Where("id = ?", c.Param("id")).First(&p).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": "Payment is not pending"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment marked as failed"})
}
