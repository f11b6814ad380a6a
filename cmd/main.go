// @title Recipe Box Backend API
// @version 1.0
// @description Multi-tenant recipe management API with bearer token authentication

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"

	"github.com/rs/cors"
	"go.uber.org/zap"

	_ "github.com/recipebox/recipebox-backend/docs" // swagger docs
	"github.com/recipebox/recipebox-backend/internal/auth"
	"github.com/recipebox/recipebox-backend/internal/config"
	"github.com/recipebox/recipebox-backend/internal/handlers"
	"github.com/recipebox/recipebox-backend/internal/middleware"
	"github.com/recipebox/recipebox-backend/internal/repository"
	"github.com/recipebox/recipebox-backend/internal/routes"
	"github.com/recipebox/recipebox-backend/internal/service"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}

	// Open the store and apply migrations
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnTimeout)
	store, err := repository.NewPostgresManager(ctx, cfg.GetDSN(), cfg.Database.MaxConns)
	cancel()
	if err != nil {
		logger.Fatal("database setup failed", zap.Error(err))
	}
	defer store.Close()

	// Services
	tokenManager := auth.NewTokenManager(&cfg.JWT)
	userService := service.NewUserService(store.Users(), store.RefreshTokens(), tokenManager, cfg.JWT.RefreshTokenTTL)
	recipeService := service.NewRecipeService(store.Recipes())

	// Handlers and middleware
	authMW := middleware.NewAuthMiddleware(userService, logger)
	authHandler := handlers.NewAuthHandler(userService, logger)
	usersHandler := handlers.NewUsersHandler(userService)
	recipesHandler := handlers.NewRecipesHandler(recipeService)
	healthHandler := handlers.NewHealthHandler(store)
	googleAuthHandler := handlers.NewGoogleAuthHandler(userService, &cfg.GoogleOAuth, logger)

	mux := routes.SetupRoutes(authHandler, usersHandler, recipesHandler, healthHandler, googleAuthHandler, authMW)

	// CORS + request logging around the mux
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})
	handler := c.Handler(middleware.RequestLogger(logger, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("ListenAndServe failed", zap.Error(err))
		}
	}()

	// Wait for SIGINT, then shut down gracefully
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}
