package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  No .env file found, continuing with system environment variables")
	} else {
		log.Println("✅ .env file loaded")
	}
}

// BaseURL is the REST backend the app talks to.
func BaseURL() string {
	if url := os.Getenv("BASE_URL"); url != "" {
		return url
	}
	return "http://localhost:5000"
}

func RedisAddr() string {
	return os.Getenv("REDIS_HOST")
}

func RedisPassword() string {
	return os.Getenv("REDIS_PASSWORD")
}

func JWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
	}
	return secret
}

func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return port
}
