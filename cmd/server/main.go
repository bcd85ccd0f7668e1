package main

import (
	"log"

	"github.com/Defi-Oracle-Tooling/FusionAI-Orchestrator/internal/server"
)

func main() {
	config := server.NewConfig()

	// Setup routes
	router := server.SetupRoutes()

	// Create and start server
	httpServer := server.CreateServer(config, router)

	log.Fatal(server.StartServer(httpServer))
}
