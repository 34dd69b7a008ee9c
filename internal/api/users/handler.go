package users

import (
	"net/http"
	"time"

	"subshop-backend/database"
	"subshop-backend/internal/domain/subscriptions"
	"subshop-backend/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func GetCurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var activeSubs int64
	database.DB.Model(&subscriptions.Subscription{}).
		Where("user_id = ? AND status = ? AND end_date > ?", userID, subscriptions.StatusActive, time.Now()).
		Count(&activeSubs)

	c.JSON(http.StatusOK, gin.H{
		"id":                   user.ID,
		"name":                 user.Name,
		"email":                user.Email,
		"role":                 user.Role,
		"active_subscriptions": activeSubs,
	})
}
