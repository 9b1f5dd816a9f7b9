// Package main is the entry point for the ledger service. It wires the
// Postgres and Redis connections, the repositories, the services and the
// HTTP surface.
package main

import (
	"context"
	"log"
	"time"

	"custodia/internal/config"
	"custodia/internal/converter"
	"custodia/internal/handlers"
	"custodia/internal/repositories"
	"custodia/internal/repositories/cache"
	"custodia/internal/services/statistics"
	"custodia/internal/services/transaction"
	"custodia/internal/services/user"
	"custodia/internal/services/wallet"
	"custodia/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadEnv()
	sysCfg := config.LoadSystemConfig()

	db, err := repositories.InitDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get database instance: %v", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Printf("failed to close database connection: %v", err)
		}
	}()

	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	redisClient := cache.NewRedisClient(&cache.RedisConfig{
		Host:     config.GetEnv("REDIS_HOST", "localhost"),
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	})
	cacheService := cache.NewCacheService(redisClient, 24*time.Hour)
	defer func() {
		if err := cacheService.Close(); err != nil {
			log.Printf("failed to close Redis connection: %v", err)
		}
	}()

	// Stale wallet balances must not survive a restart.
	if err := cacheService.FlushAll(context.Background()); err != nil {
		log.Printf("failed to flush Redis cache: %v", err)
	}

	walletRepo := repositories.NewWalletRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db, walletRepo)
	statisticsRepo := repositories.NewStatisticsRepository(db)
	userRepo := repositories.NewUserRepository(db)
	uow := repositories.NewUnitOfWork(db)

	var conv converter.Converter
	if accessKey := config.GetEnv("COINLAYER_ACCESS_KEY", ""); accessKey != "" {
		conv = converter.NewCoinLayer(accessKey)
	} else {
		conv = converter.FixedRate(config.GetFloatEnv("BTC_USD_RATE", 1.0))
	}

	userSvc := user.NewService(userRepo,
		validation.ShortUsernameValidator{MinLength: config.GetIntEnv("USERNAME_MIN_LENGTH", 3)},
		validation.LongUsernameValidator{MaxLength: config.GetIntEnv("USERNAME_MAX_LENGTH", 32)},
		validation.DuplicateUsernameValidator{Users: userRepo},
	)
	walletSvc := wallet.NewService(walletRepo, conv, cacheService, sysCfg,
		validation.APIKeyValidator{Users: userRepo},
		validation.WalletLimitValidator{Limit: sysCfg.WalletLimit, Wallets: walletRepo},
	)
	transactionSvc := transaction.NewService(walletRepo, transactionRepo, uow, sysCfg, cacheService)
	statisticsSvc := statistics.NewService(statisticsRepo, sysCfg)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ALLOW_ORIGINS", "*"),
		AllowHeaders: "Origin, Content-Type, Accept, X-API-Key",
		AllowMethods: "GET,POST",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use("/users", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	handlers.SetupRoutes(app,
		handlers.NewUserHandler(userSvc),
		handlers.NewWalletHandler(walletSvc),
		handlers.NewTransactionHandler(transactionSvc),
		handlers.NewStatisticsHandler(statisticsSvc),
	)

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
