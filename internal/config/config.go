package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string

	JWTSecret string

	CryptomusMerchantID string
	CryptomusAPIKey     string
	CryptomusAPIURL     string

	// SiteURL is the storefront base used for post-payment redirects;
	// APIURL is this service's public base used to build callback URLs.
	SiteURL string
	APIURL  string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		AppPort:    getEnv("APP_PORT", "8000"),
		AppEnv:     os.Getenv("APP_ENV"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		CryptomusMerchantID: os.Getenv("CRYPTOMUS_MERCHANT_ID"),
		CryptomusAPIKey:     os.Getenv("CRYPTOMUS_API_KEY"),
		CryptomusAPIURL:     getEnv("CRYPTOMUS_API_URL", "https://api.cryptomus.com/v1"),

		SiteURL: getEnv("SITE_URL", "http://localhost:3000"),
		APIURL:  getEnv("API_URL", "http://localhost:8000"),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
