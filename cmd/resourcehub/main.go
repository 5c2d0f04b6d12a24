package main

import (
	"github.com/joho/godotenv"

	"github.com/campushq/resourcehub/internal/adapters/driving/cli"
)

func main() {
	// Optional .env with OPENAI_API_KEY / QDRANT_* overrides.
	_ = godotenv.Load()

	cli.Execute()
}
