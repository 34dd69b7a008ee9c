package cart

import (
	"errors"
	"net/http"

	"subshop-backend/database"
	"subshop-backend/internal/domain/cart"
	"subshop-backend/internal/domain/products"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LineView struct {
	ID          uint   `json:"id"`
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Interval    string `json:"interval"`
	Quantity    int    `json:"quantity"`
	PriceMinor  int64  `json:"price_minor"`
	TotalMinor  int64  `json:"total_minor"`
}

func GetCart(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var lines []cart.Line
	if err := database.DB.
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&lines).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	views := make([]LineView, 0, len(lines))
	var totalMinor int64
	for _, line := range lines {
		lineTotal := line.PriceMinor * int64(line.Quantity)
		totalMinor += lineTotal
		views = append(views, LineView{
			ID:          line.ID,
			ProductID:   line.ProductID,
			ProductName: line.Product.Name,
			Interval:    line.Product.Interval,
			Quantity:    line.Quantity,
			PriceMinor:  line.PriceMinor,
			TotalMinor:  lineTotal,
		})
	}

	c.JSON(http.StatusOK, gin.H{"items": views, "total_minor": totalMinor})
}

func AddToCart(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body struct {
		ProductID uint `json:"product_id" binding:"required"`
		Quantity  int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid product_id"})
		return
	}
	if body.Quantity <= 0 {
		body.Quantity = 1
	}

	var product products.Product
	if err := database.DB.
		Where("id = ? AND is_active = ?", body.ProductID, true).
		First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	// One line per (user, product): adding again bumps the quantity.
	var line cart.Line
	err := database.DB.
		Where("user_id = ? AND product_id = ?", userID, body.ProductID).
		First(&line).Error
	switch {
	case err == nil:
		line.Quantity += body.Quantity
		if err := database.DB.Save(&line).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		line = cart.Line{
			UserID:     userID,
			ProductID:  product.ID,
			Quantity:   body.Quantity,
			PriceMinor: product.PriceMinor, // unit price frozen at add time
		}
		if err := database.DB.Create(&line).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
			return
		}
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"line_id": line.ID, "quantity": line.Quantity})
}

func RemoveFromCart(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	res := database.DB.
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		Delete(&cart.Line{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart line"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart line not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Removed"})
}
