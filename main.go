package main

import (
	"os"
	"time"

	"subshop-backend/config"
	"subshop-backend/database"
	paymentsapi "subshop-backend/internal/api/payments"
	routes "subshop-backend/internal/app/http"
	"subshop-backend/internal/domain/payments"
	"subshop-backend/internal/infra/notify"
	"subshop-backend/internal/infra/qr"
	"subshop-backend/internal/infra/rates"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	paymentCfg := paymentsapi.Config{
		Wallets: map[payments.Method]paymentsapi.Wallet{
			payments.MethodUSDTTRC20: {
				Address:  config.USDT_TRC20_WALLET,
				Currency: "USDT",
				Network:  "TRC20",
			},
		},
		Window:       config.PAYMENT_WINDOW,
		FiatCurrency: "RUB",
		Warnings:     paymentsapi.DefaultWarnings(),
	}
	if config.USDT_ERC20_WALLET != "" {
		paymentCfg.Wallets[payments.MethodUSDTERC20] = paymentsapi.Wallet{
			Address:  config.USDT_ERC20_WALLET,
			Currency: "USDT",
			Network:  "ERC20",
		}
	}

	oracle := rates.New(config.RATE_API_URL, config.RATE_TTL)
	renderer := qr.NewRenderer()
	notifier := notify.NewTelegram(config.TELEGRAM_BOT_TOKEN, config.TELEGRAM_CHAT_ID)

	store := paymentsapi.NewGormStore(database.DB)
	svc := paymentsapi.NewService(store, paymentCfg, oracle, renderer, notifier)
	handler := paymentsapi.NewHandler(svc)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("CORS_ORIGIN")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, handler)

	r.Run(":" + config.PORT)
}
