package main

import (
	"database/sql"
	"log"
	"net/http"

	"nova-ecart-be/internal/api"
	"nova-ecart-be/internal/config"
	"nova-ecart-be/internal/db"
	"nova-ecart-be/internal/logger"
	"nova-ecart-be/internal/order"
	"nova-ecart-be/internal/payment"
	"nova-ecart-be/internal/product"
	"nova-ecart-be/internal/seller"
	"nova-ecart-be/internal/user"

	"go.uber.org/zap"
)

// Indirections for testing.
var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	router := newServer(cfg, database)

	logger.L().Info("server starting",
		zap.String("port", cfg.AppPort),
		zap.String("env", cfg.AppEnv),
	)

	return startServerFunc(":"+cfg.AppPort, router)
}

func newServer(cfg *config.Config, database *sql.DB) http.Handler {
	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	sellerRepo := seller.NewRepository(database)
	sellerSvc := seller.NewService(sellerRepo)

	orderRepo := order.NewRepository(database)
	gateway := payment.NewCryptomusGateway(payment.GatewayConfig{
		BaseURL:    cfg.CryptomusAPIURL,
		MerchantID: cfg.CryptomusMerchantID,
		APIKey:     cfg.CryptomusAPIKey,
		SiteURL:    cfg.SiteURL,
		APIURL:     cfg.APIURL,
	})
	paymentSvc := payment.NewService(gateway, orderRepo, cfg.CryptomusAPIKey)

	return api.NewRouter(api.Deps{
		Users:          userSvc,
		Products:       productSvc,
		Sellers:        sellerSvc,
		Payments:       paymentSvc,
		AllowedOrigins: []string{cfg.SiteURL},
	})
}
