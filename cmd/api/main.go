package main

// @title EatGo Discovery API
// @version 1.0.0
// @description Discovery service for nearby food venues over free OpenStreetMap data.
// @description Resolves a location (coordinates or free text), queries the Overpass POI index,
// @description and returns a ranked shortlist of up to 5 venues.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/eatgo-discovery/docs"
	"github.com/eatgo-discovery/internal/config"
	httpDelivery "github.com/eatgo-discovery/internal/delivery/http"
	"github.com/eatgo-discovery/internal/delivery/http/handler"
	"github.com/eatgo-discovery/internal/infrastructure/nominatim"
	"github.com/eatgo-discovery/internal/infrastructure/overpass"
	"github.com/eatgo-discovery/internal/pkg/logger"
	"github.com/eatgo-discovery/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting EatGo Discovery")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Initialize upstream clients
	geocoder := nominatim.NewClient(&cfg.Nominatim, log)
	poiSource := overpass.NewClient(&cfg.Overpass, log)

	log.Info("Upstream clients initialized",
		zap.String("nominatim", cfg.Nominatim.BaseURL),
		zap.String("overpass", cfg.Overpass.BaseURL),
	)

	// 4. Initialize use cases
	discoveryUC := usecase.NewDiscoveryUseCase(geocoder, poiSource, usecase.MetadataScorer{}, log)

	// 5. Initialize HTTP handlers and server
	searchHandler := handler.NewSearchHandler(discoveryUC, log)
	server := httpDelivery.NewServer(cfg, log, searchHandler)

	log.Info("HTTP server initialized")

	// 6. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 7. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
