package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var (
	// Server settings
	Port    = "8080"
	BaseURL = "https://cubitaproducciones.com"

	// Site identity
	SiteName = "Cubita Producciones"

	// Strapi settings
	StrapiURL      = "http://localhost:1337"
	StrapiAPIToken = ""

	// SMTP settings
	SMTPHost = ""
	SMTPPort = "587"
	SMTPUser = ""
	SMTPPass = ""

	// Default sender identity and agency inbox
	EmailFrom = "noreply@cubitaproducciones.com"
	EmailTo   = "info@cubitaproducciones.com"
)

func Init() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found or error loading it.")
	}

	// Helper to get env with default
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	Port = getEnv("PORT", "8080")
	BaseURL = getEnv("BASE_URL", "https://cubitaproducciones.com")

	StrapiURL = getEnv("STRAPI_URL", "http://localhost:1337")
	StrapiAPIToken = os.Getenv("STRAPI_API_TOKEN")

	SMTPHost = os.Getenv("SMTP_HOST")
	SMTPPort = getEnv("SMTP_PORT", "587")
	SMTPUser = os.Getenv("SMTP_USER")
	SMTPPass = os.Getenv("SMTP_PASS")

	EmailFrom = getEnv("EMAIL_FROM", "noreply@cubitaproducciones.com")
	EmailTo = getEnv("EMAIL_TO", "info@cubitaproducciones.com")
}
