package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// BrowserAPIBase is the same-origin path the browser shell uses for API
// calls (proxied by the edge router to avoid CORS). Server-side code always
// talks to the backend directly via AppConfig.APIBase.
const BrowserAPIBase = "/api"

type Config struct {
	ListenPort string

	// APIBase is the backend API root. Resolved once at startup and
	// read-only afterwards.
	APIBase string
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		ListenPort: getEnv("LISTEN_PORT", "3000"),
		APIBase:    getEnv("PUBLIC_API_BASE", "http://nerine.localhost/api"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
