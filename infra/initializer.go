package infra

import (
	"log"

	"github.com/joho/godotenv"
)

// Initialize loads .env so the persisted SECRET_KEY survives restarts.
func Initialize() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using environment variables")
	}
}
