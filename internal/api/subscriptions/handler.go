package subscriptions

import (
	"net/http"
	"time"

	"subshop-backend/database"
	"subshop-backend/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
)

type SubscriptionView struct {
	ID              uint      `json:"id"`
	ProductID       uint      `json:"product_id"`
	ProductName     string    `json:"product_name"`
	Status          string    `json:"status"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	NextPaymentDate time.Time `json:"next_payment_date"`
}

func ListSubscriptions(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var subs []subscriptions.Subscription
	if err := database.DB.
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscriptions"})
		return
	}

	views := make([]SubscriptionView, 0, len(subs))
	for _, s := range subs {
		views = append(views, SubscriptionView{
			ID:              s.ID,
			ProductID:       s.ProductID,
			ProductName:     s.Product.Name,
			Status:          s.Status,
			StartDate:       s.StartDate,
			EndDate:         s.EndDate,
			NextPaymentDate: s.NextPaymentDate,
		})
	}
	c.JSON(http.StatusOK, views)
}

func CancelSubscription(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	res := database.DB.Model(&subscriptions.Subscription{}).
		Where("id = ? AND user_id = ? AND status = ?", c.Param("id"), userID, subscriptions.StatusActive).
		Update("status", subscriptions.StatusCancelled)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel subscription"})
		return
	}
	if res.RowsAffected == 0 {
		// Either it doesn't exist or it's already cancelled.
		var sub subscriptions.Subscription
		if err := database.DB.
			Where("id = ? AND user_id = ?", c.Param("id"), userID).
			First(&sub).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": "Subscription is already cancelled"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription cancelled"})
}

// Library is the demo content route behind the active-subscription
// guard: it lists what the user currently has access to.
func Library(c *gin.Context) {
	userID := c.GetUint("user_id")

	var subs []subscriptions.Subscription
	if err := database.DB.
		Preload("Product").
		Where("user_id = ? AND status = ? AND end_date > ?", userID, subscriptions.StatusActive, time.Now()).
		Find(&subs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load library"})
		return
	}

	names := make([]string, 0, len(subs))
	for _, s := range subs {
		names = append(names, s.Product.Name)
	}
	c.JSON(http.StatusOK, gin.H{"products": names})
}
