package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/will8807/ggg-luck/internal/logger"
	"github.com/will8807/ggg-luck/pkg/luck"
	"github.com/will8807/ggg-luck/pkg/server"
)

func main() {
	// Stdout belongs to the JSON-RPC transport, so logs go to file only
	logger.SetShowDateTime(true)
	logger.SetLogOutput('f', "")

	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, relying on environment")
	}
	// Pick up any credentials godotenv just loaded
	luck.UpdateConfig(luck.DefaultLuckConfig())

	logger.Info("Starting ggg-luck MCP server")

	if err := luck.ValidateConfig(luck.Config); err != nil {
		logger.Error("Invalid configuration:", err)
		os.Exit(1)
	}

	if err := luck.EnsureSchema(); err != nil {
		logger.Warn("Could not initialise cache database, continuing without cache:", err)
	}
	defer luck.CloseDatabase()

	s := server.GetInstance()
	if err := s.Start(); err != nil {
		logger.Error("Server error:", err)
		os.Exit(1)
	}

	logger.Info("MCP server shutting down")
}
