package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv pulls the .env file into the process environment when present.
// Deployed environments (Railway, Docker) ship env vars directly and carry
// no .env file, so a missing file is not an error.
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found, using system environment")
		} else {
			log.Println(".env file loaded")
		}
	} else {
		log.Println("running on Railway, using system environment")
	}
}

// GetEnv reads an env var with an optional fallback.
func GetEnv(key string, defaultValue ...string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}
