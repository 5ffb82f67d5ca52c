package main

import (
	"log"

	"github.com/joho/godotenv"

	"estuatlas/internal/cli"
)

func main() {
	// Optional .env carrying GEMINI_API_KEY; absence is fine, the
	// content-service features just report themselves unavailable.
	godotenv.Load()

	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
