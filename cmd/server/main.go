package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"premstore/internal/config"
	"premstore/internal/handlers"
	"premstore/internal/middleware"
	"premstore/internal/repositories/mongodb"
	"premstore/internal/services"
	"premstore/pkg/cache"
	"premstore/pkg/database"
	"premstore/pkg/logger"
	"premstore/routes"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	if err := database.NewMigrator(db.Database).Up(); err != nil {
		appLogger.Fatalf("Failed to run migrations: %v", err)
	}

	var cacheService mongodb.CacheService
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			appLogger.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisCache.Close()
		cacheService = redisCache
	}

	// Repositories
	userRepo := mongodb.NewUserRepository(db.Database)
	packageRepo := mongodb.NewPackageRepository(db.Database, cacheService)
	orderRepo := mongodb.NewOrderRepository(db.Database)
	promoRepo := mongodb.NewPromoCodeRepository(db.Database, cacheService)
	cookieRepo := mongodb.NewCookieRepository(db.Database)
	ratingRepo := mongodb.NewRatingRepository(db.Database)

	// Services
	authService := services.NewAuthService(userRepo, cfg.Security.JWTSecret, cfg.Security.JWTTokenTTL, appLogger)
	packageService := services.NewPackageService(packageRepo, appLogger)
	orderService := services.NewOrderService(orderRepo, packageRepo, promoRepo, appLogger)
	promoService := services.NewPromoService(promoRepo, appLogger)
	ratingService := services.NewRatingService(ratingRepo, orderRepo, appLogger)
	cookieService := services.NewCookieService(cookieRepo, appLogger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	packageHandler := handlers.NewPackageHandler(packageService)
	orderHandler := handlers.NewOrderHandler(orderService)
	promoHandler := handlers.NewPromoHandler(promoService)
	ratingHandler := handlers.NewRatingHandler(ratingService)
	cookieHandler := handlers.NewCookieHandler(cookieService)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	v1 := router.Group("/api/v1")
	{
		routes.SetupPublicRoutes(v1, packageHandler, orderHandler, promoHandler, ratingHandler)
		routes.SetupAdminRoutes(v1, cfg.Security.JWTSecret, authHandler, packageHandler, orderHandler, promoHandler, ratingHandler, cookieHandler)
	}

	router.GET("/health", func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if err := db.Ping(); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":  status,
			"version": cfg.App.Version,
		})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.Infof("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		appLogger.Fatalf("Server stopped: %v", err)
	}
}
