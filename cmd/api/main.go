package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/emojisense/emojisense-backend/internal/config"
	"github.com/emojisense/emojisense-backend/internal/domain"
	"github.com/emojisense/emojisense-backend/internal/handler"
	"github.com/emojisense/emojisense-backend/internal/middleware"
	"github.com/emojisense/emojisense-backend/internal/repository"
	"github.com/emojisense/emojisense-backend/internal/routes"
	"github.com/emojisense/emojisense-backend/internal/service"
	pkgcache "github.com/emojisense/emojisense-backend/pkg/cache"
	pkglogger "github.com/emojisense/emojisense-backend/pkg/logger"
	pkgredis "github.com/emojisense/emojisense-backend/pkg/redis"
)

// @title           EmojiSense API
// @version         1.0
// @description     Emoji meaning corpus and message interpretation API
//
// @license.name    MIT
//
// @host            localhost:8080
// @BasePath        /api/v1

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	pkglogger.Init()
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.App.Env == "" {
		cfg.App.Env = env
	}
	config.LogResolved(cfg)

	// MySQL quota store. Unreachable DB degrades quota tracking to
	// always-permitted rather than blocking startup.
	var db *gorm.DB
	if cfg.Database.Enabled {
		db, err = initDB(cfg)
		if err != nil {
			pkglogger.Warn("quota store unavailable: %v (continuing without persistent quota)", err)
			db = nil
		} else {
			pkglogger.Info("Connected to MySQL")
			if err := db.AutoMigrate(&domain.QuotaUsage{}); err != nil {
				pkglogger.Warn("quota schema migration: %v", err)
			}
		}
	}

	// Redis backs the interpretation cache and the rate limiter. Both
	// degrade to pass-through when it is down.
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		pkglogger.Warn("Failed to connect to Redis: %v (continuing without cache)", err)
		redisClient = nil
	} else {
		pkglogger.Info("Connected to Redis")
	}
	cacheService := pkgcache.NewService(redisClient)

	// Content corpus
	emojiRepo := repository.NewEmojiRepository(cfg.Content.EmojiDir)
	comboRepo := repository.NewComboRepository(cfg.Content.ComboDir)
	middleware.SetContentRecordsLoaded("emoji", float64(len(emojiRepo.All())))
	middleware.SetContentRecordsLoaded("combo", float64(len(comboRepo.All())))
	pkglogger.Info("content loaded: %d emojis, %d combos", len(emojiRepo.All()), len(comboRepo.All()))

	// Services
	var quotaRepo repository.QuotaRepository
	if db != nil {
		quotaRepo = repository.NewQuotaRepository(db)
	}
	quotaService := service.NewQuotaService(quotaRepo, cfg.Interpret.DailyQuota)
	modelClient := service.NewModelClient(cfg.Model)
	interpreter := service.NewInterpreterService(emojiRepo, modelClient, cacheService)

	// Handlers
	emojiHandler := handler.NewEmojiHandler(emojiRepo)
	comboHandler := handler.NewComboHandler(comboRepo)
	interpretHandler := handler.NewInterpretHandler(interpreter, quotaService)
	healthHandler := handler.NewHealthHandler(cacheService, db != nil, cfg.Model.APIKey != "")

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     splitAndTrim(cfg.CORS.AllowOrigins, ","),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Client-ID", "X-Request-ID"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Remaining", "X-Quota-Remaining"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	if redisClient != nil && cfg.App.Env != "local" {
		router.Use(middleware.RateLimit(redisClient, middleware.DefaultRateLimitConfig()))
	}

	// Tighter per-client window on the model-backed endpoint
	var interpretLimiter gin.HandlerFunc
	if redisClient != nil {
		interpretLimiter = middleware.RateLimitPerClient(redisClient, cfg.Interpret.RequestsPerMinute)
	}

	routes.Setup(router, emojiHandler, comboHandler, interpretHandler, healthHandler, interpretLimiter)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	pkglogger.Info("Server listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// splitAndTrim splits a string by delimiter and trims spaces
func splitAndTrim(s, delimiter string) []string {
	parts := []string{}
	for _, part := range strings.Split(s, delimiter) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

// initDB opens the MySQL connection for the quota store
func initDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
