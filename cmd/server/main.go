package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lifekey_api/internal/config"
	"lifekey_api/internal/handler"
	"lifekey_api/internal/logger"
	"lifekey_api/internal/repository"
	"lifekey_api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat, "lifekey-api")
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	// --- Initialize Utilities ---
	hasher, err := utils.NewPasswordHasher(cfg.PasswordHashing)
	if err != nil {
		zlog.Fatal("Invalid PASSWORD_HASHING", zap.Error(err))
	}

	var tokens utils.TokenIssuer = utils.NewDemoTokenIssuer()
	if cfg.TokenMode == config.TokenModeJWT {
		tokens = utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpirationHours)
	} else {
		zlog.Warn("Using demo tokens: they are not signed and must not be used in production")
	}

	// --- Record Store ---
	store, err := repository.NewSeededStore(context.Background(), hasher.Hash)
	if err != nil {
		zlog.Fatal("Failed to seed record store", zap.Error(err))
	}

	// --- Setup Gin Router ---
	gin.SetMode(cfg.GinMode)
	router := handler.NewRouter(handler.RouterDeps{
		Store:         store,
		Tokens:        tokens,
		Hasher:        hasher,
		DemoPatientID: cfg.DemoPatientID,
		Logger:        zlog,
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		zlog.Info("Starting LifeKey ID API server", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("listen", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal("Server forced to shutdown", zap.Error(err))
	}

	zlog.Info("Server exiting")
}
