package products

import (
	"net/http"

	"subshop-backend/database"
	"subshop-backend/internal/domain/products"

	"github.com/gin-gonic/gin"
)

func ListProducts(c *gin.Context) {
	var list []products.Product
	if err := database.DB.
		Where("is_active = ?", true).
		Order("price_minor ASC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func GetProduct(c *gin.Context) {
	var product products.Product
	if err := database.DB.
		Where("id = ? AND is_active = ?", c.Param("id"), true).
		First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct is admin-only, registered under /admin.
func CreateProduct(c *gin.Context) {
	var body struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		PriceMinor  int64  `json:"price_minor" binding:"required"`
		Interval    string `json:"interval" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if body.Interval != products.IntervalMonth && body.Interval != products.IntervalYear {
		c.JSON(http.StatusBadRequest, gin.H{"error": "interval must be \"month\" or \"year\""})
		return
	}
	if body.PriceMinor <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price_minor must be positive"})
		return
	}

	product := products.Product{
		Name:        body.Name,
		Description: body.Description,
		PriceMinor:  body.PriceMinor,
		Interval:    body.Interval,
		IsActive:    true,
	}
	if err := database.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}
