package main

import (
	"log"

	"github.com/joho/godotenv"

	"staff-attendance-backend/config"
	"staff-attendance-backend/internal/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env not found, using system environment variables")
	}

	config.ConnectDB()
	database.SeedAll(config.DB)

	log.Println("seeding done")
}
