package database

import (
	"fmt"
	"log"
	"os"

	"subshop-backend/internal/domain/cart"
	"subshop-backend/internal/domain/payments"
	"subshop-backend/internal/domain/products"
	"subshop-backend/internal/domain/subscriptions"
	"subshop-backend/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		// core
		&users.User{},
		&products.Product{},
		&cart.Line{},

		// settlement
		&payments.PaymentRequest{},
		&subscriptions.Subscription{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
