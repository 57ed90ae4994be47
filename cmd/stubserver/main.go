package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"khatapro-client/config"
	"khatapro-client/stub"
	"khatapro-client/utils"
)

// stubserver runs the backend double on a local port for manual
// testing of the CLI without the production API.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	if cfg.Stub.JWTSecret == "" {
		cfg.Stub.JWTSecret = "local-dev-secret"
	}
	logger := utils.NewLogger(cfg.Logger)
	defer logger.Sync()

	server, err := stub.New(cfg.Stub, logger)
	if err != nil {
		logger.Fatal("failed to start stub backend", zap.Error(err))
	}
	logger.Info("stub backend listening", zap.String("port", cfg.Stub.Port))
	if err := server.Run(); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
