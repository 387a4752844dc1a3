// main.go
package main

import (
	"context"
	"log"
	"time"

	"ticket-service/cmd"
	"ticket-service/internal/data/repository"
	"ticket-service/internal/wire"
	"ticket-service/pkg/database"
	"ticket-service/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using zap production logger.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.Bool("api_key_required", config.Auth.APIKeyHash != ""),
	)

	// Payment ledger
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	schemaCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = repository.InitSchema(schemaCtx, db)
	cancel()
	if err != nil {
		logger.Fatal("Failed to initialize schema", zap.Error(err))
	}

	logger.Info("Database connected successfully")

	// Seat reservations
	rdb, err := database.InitRedis(config.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	logger.Info("Redis connected successfully", zap.String("addr", config.Redis.Addr))

	repos := repository.NewRepository(db, rdb, logger)

	app := wire.Wiring(repos, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}
