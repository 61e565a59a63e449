package main

// @title           Bookdesk API
// @version         1.0
// @description     Inventory and catalog API for books: CRUD, stock assignment with an audit trail, and AI-generated summaries and chat.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookdesk/internal/ai"
	"github.com/snnyvrz/bookdesk/internal/auth"
	"github.com/snnyvrz/bookdesk/internal/config"
	"github.com/snnyvrz/bookdesk/internal/db"
	docs "github.com/snnyvrz/bookdesk/internal/docs"
	"github.com/snnyvrz/bookdesk/internal/handler"
	"github.com/snnyvrz/bookdesk/internal/ledger"
	"github.com/snnyvrz/bookdesk/internal/logging"
	"github.com/snnyvrz/bookdesk/internal/middleware"
	"github.com/snnyvrz/bookdesk/internal/model"
	"github.com/snnyvrz/bookdesk/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"
)

const appVersion = "0.1.0"

func main() {
	startTime := time.Now()

	cfg := config.Load()
	logging.Setup(cfg.GinMode)

	gin.SetMode(cfg.GinMode)

	e := gin.Default()

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	e.Use(cors.New(cors.Config{
		AllowOrigins: []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	docs.SwaggerInfo.BasePath = "/api"

	database := db.ConnectWithRetry(cfg)

	if err := database.AutoMigrate(&model.User{}, &model.Book{}, &model.Assignment{}); err != nil {
		panic(err)
	}

	var gw handler.TextGenerator
	gateway, err := ai.New(context.Background(), ai.Config{
		Provider:     cfg.AIProvider,
		OpenAIAPIKey: cfg.OpenAIAPIKey,
		GeminiAPIKey: cfg.GeminiAPIKey,
	})
	if err != nil {
		slog.Warn("AI gateway disabled", "error", err)
	} else {
		gw = gateway
		slog.Info("AI gateway ready", "provider", cfg.AIProvider)
	}

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		slog.Warn("JWT_SECRET not set, using an insecure development secret")
		jwtSecret = "insecure-dev-secret"
	}
	jwtManager := auth.NewJWTManager(jwtSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)

	userRepo := repository.NewGormUserRepository(database)
	authenticator := auth.NewPasswordAuthenticator(userRepo)

	healthHandler := handler.NewHealthHandler(database, startTime, appVersion, gw != nil)
	healthHandler.RegisterRoutes(e)

	aiLimiter := middleware.NewIPRateLimiter(rate.Every(2*time.Second), 3)

	api := e.Group("/api")
	{
		authHandler := handler.NewAuthHandler(authenticator, jwtManager)
		authHandler.RegisterRoutes(api)

		bookRepo := repository.NewGormBookRepository(database)
		bookHandler := handler.NewBookHandler(bookRepo, ledger.New(database), gw)
		bookHandler.RegisterRoutes(api,
			middleware.RequireAuth(jwtManager),
			middleware.RateLimit(aiLimiter),
		)
	}

	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	e.Run(":" + cfg.Port)
}
