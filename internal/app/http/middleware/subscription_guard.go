package middleware

import (
	"net/http"
	"time"

	"subshop-backend/database"
	"subshop-backend/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
)

func RequireActiveSubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		if userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var count int64
		if err := database.DB.Model(&subscriptions.Subscription{}).
			Where("user_id = ? AND status = ? AND end_date > ?",
				userID, subscriptions.StatusActive, time.Now()).
			Count(&count).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to check subscription"})
			return
		}

		if count == 0 {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error": "Subscription not found or expired",
			})
			return
		}

		c.Next()
	}
}
