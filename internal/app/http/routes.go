package routes

import (
	adminapi "subshop-backend/internal/api/admin"
	authapi "subshop-backend/internal/api/auth"
	cartapi "subshop-backend/internal/api/cart"
	paymentsapi "subshop-backend/internal/api/payments"
	productsapi "subshop-backend/internal/api/products"
	subsapi "subshop-backend/internal/api/subscriptions"
	usersapi "subshop-backend/internal/api/users"
	"subshop-backend/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, payments *paymentsapi.Handler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/products", productsapi.ListProducts)
	public.GET("/products/:id", productsapi.GetProduct)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", usersapi.GetCurrentUser)

	auth.GET("/cart", cartapi.GetCart)
	auth.POST("/cart", cartapi.AddToCart)
	auth.DELETE("/cart/:id", cartapi.RemoveFromCart)

	auth.POST("/payments", payments.CreatePaymentRequest)
	auth.GET("/payments", payments.GetPaymentHistory)
	auth.GET("/payments/:id/status", payments.GetPaymentStatus)
	auth.POST("/payments/:id/confirm", payments.ConfirmPayment)

	auth.GET("/subscriptions", subsapi.ListSubscriptions)
	auth.POST("/subscriptions/:id/cancel", subsapi.CancelSubscription)

	// Subscribed users
	subscribed := auth.Group("/")
	subscribed.Use(middleware.RequireActiveSubscription())
	subscribed.GET("/library", subsapi.Library)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/payments", adminapi.ListAllPayments)
	admin.POST("/payments/:id/confirm", payments.ConfirmPayment)
	admin.POST("/payments/:id/fail", adminapi.FailPayment)
	admin.POST("/products", productsapi.CreateProduct)
}
