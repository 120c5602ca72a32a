package main

import (
	"github.com/joho/godotenv"

	"paydesk/internal/app/server"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	server.Run()
}
