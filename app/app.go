// File: app/app.go
package app

import (
	"context"
	"go-beer-cellar-api/config"
	"go-beer-cellar-api/db"
	"go-beer-cellar-api/handler"
	"go-beer-cellar-api/logger"
	"go-beer-cellar-api/repository"
	"go-beer-cellar-api/router"
	"go-beer-cellar-api/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations("file://db/migrations"); err != nil {
		logger.Log.Fatalf("Error running migrations: %v", err)
	}

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to redis: %v", err)
	}
	defer redisClient.Close()

	authTokenExpiry, err := time.ParseDuration(config.AppConfig.JWT.AuthTokenExpiry)
	if err != nil {
		logger.Log.Fatalf("Invalid auth token expiry %q: %v", config.AppConfig.JWT.AuthTokenExpiry, err)
	}

	// --- Wiring All Layers Together ---
	tokenRepo := repository.NewTokenRepository(database)
	userRepo := repository.NewUserRepository(database)
	beerRepo := repository.NewBeerRepository(database)
	breweryRepo := repository.NewBreweryRepository(database)
	styleRepo := repository.NewStyleRepository(database)
	containerRepo := repository.NewContainerRepository(database)
	storageRepo := repository.NewStorageRepository(database)
	reviewRepo := repository.NewReviewRepository(database)
	statsRepo := repository.NewStatsRepository(database)

	authService := service.NewAuthService(tokenRepo, config.AppConfig.JWT.SecretKey, authTokenExpiry)
	userService := service.NewUserService(userRepo, authService)
	beerService := service.NewBeerService(beerRepo, redisClient)
	breweryService := service.NewBreweryService(breweryRepo)
	styleService := service.NewStyleService(styleRepo)
	containerService := service.NewContainerService(containerRepo)
	storageService := service.NewStorageService(database, storageRepo)
	reviewService := service.NewReviewService(reviewRepo, redisClient)
	statsService := service.NewStatsService(statsRepo, redisClient)

	if err := userService.EnsureInitialAdmin(config.AppConfig.Admin.Username, config.AppConfig.Admin.Password); err != nil {
		logger.Log.Fatalf("Error bootstrapping initial admin: %v", err)
	}

	handlers := router.Handlers{
		User:      handler.NewUserHandler(userService),
		Beer:      handler.NewBeerHandler(beerService),
		Brewery:   handler.NewBreweryHandler(breweryService),
		Style:     handler.NewStyleHandler(styleService),
		Container: handler.NewContainerHandler(containerService),
		Storage:   handler.NewStorageHandler(storageService),
		Review:    handler.NewReviewHandler(reviewService),
		Stats:     handler.NewStatsHandler(statsService),
	}
	authMiddleware := handler.NewAuthMiddleware(authService)

	r := router.NewRouter(handlers, authMiddleware)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
