package initializers

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv loads .env, then .env.local for machine-specific overrides.
// Already-set process environment variables always win.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	_ = godotenv.Load(".env.local")
}
