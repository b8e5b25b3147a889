// cmd/aes-workbench-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/aes-workbench/internal/api/rest/v1"
	"github.com/MGTheTrain/aes-workbench/internal/app"
	"github.com/MGTheTrain/aes-workbench/internal/domain/crypto"
	"github.com/MGTheTrain/aes-workbench/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/aes-workbench/internal/pkg/config"
	"github.com/MGTheTrain/aes-workbench/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	aesService, err := initializeAESService(log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, aesService, log)
}

// initializeAESService wires the AES processor into the application service
func initializeAESService(log logger.Logger) (crypto.AESService, error) {
	aesProcessor, err := cryptography.NewAESProcessor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}

	aesService, err := app.NewAESService(aesProcessor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES service: %w", err)
	}

	log.Info("AES service initialized successfully")
	return aesService, nil
}

// newRouter builds the gin engine with middleware and the version 1 routes
func newRouter(cfg *config.RestConfig, aesService crypto.AESService, log logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(v1.RequestID())
	r.Use(v1.RequestLogger(log))
	r.Use(v1.MaxBodySize(cfg.MaxBodyBytes))

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORS.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", v1.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Type", v1.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	v1.SetupRoutes(r, aesService, cfg.CipherDefaults)
	return r
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, aesService crypto.AESService, log logger.Logger) error {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, aesService, log),
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
