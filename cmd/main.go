package main

import (
	"log"

	"hydration-service/internal/app"
	_ "hydration-service/docs"
)

// @title Hydration Service API
// @version 1.0
// @description Single-user daily water intake tracker: append-only event log,
// @description container type presets and derived hydration statistics.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	// Create and initialize the application
	application, err := app.New()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// Run the application
	if err := application.Run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}
