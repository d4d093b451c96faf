package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sleeptight/club-backend/internal/config"
	"github.com/sleeptight/club-backend/internal/handler"
	"github.com/sleeptight/club-backend/internal/middleware"
	"github.com/sleeptight/club-backend/internal/migration"
	"github.com/sleeptight/club-backend/internal/repository"
	"github.com/sleeptight/club-backend/internal/routes"
	"github.com/sleeptight/club-backend/internal/service"
	"github.com/sleeptight/club-backend/internal/venue"
	pkgcache "github.com/sleeptight/club-backend/pkg/cache"
	"github.com/sleeptight/club-backend/pkg/jwt"
	pkglogger "github.com/sleeptight/club-backend/pkg/logger"
	pkgredis "github.com/sleeptight/club-backend/pkg/redis"
)

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

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.Init(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Invalid venue timezone %q: %v", cfg.Venue.Timezone, err)
	}
	pkglogger.Info("Venue timezone: %s (open %02d:00-%02d:00)", loc, venue.OpenHour, venue.CloseHour)

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	pkglogger.Info("Database ready: %s", cfg.Database.Path)

	// Redis is optional: the feed cache degrades to DB reads without it
	var cacheService pkgcache.Service
	if cfg.Redis.Enabled {
		redisClient, err := pkgredis.NewClient(
			cfg.Redis.Host,
			cfg.Redis.Port,
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Redis.PoolSize,
		)
		if err != nil {
			pkglogger.Info("Warning: Failed to connect to Redis: %v (continuing without cache)", err)
		} else {
			cacheService = pkgcache.NewService(redisClient)
			pkglogger.Info("Connected to Redis")
		}
	}

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWTExpiry())
	adminValidator := middleware.NewSharedSecretValidator(cfg.Admin.Token)
	clock := venue.SystemClock{}

	// Repositories
	memberRepo := repository.NewMemberRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)
	modLogRepo := repository.NewModLogRepository(db)

	// Services
	authSvc := service.NewAuthService(memberRepo, jwtManager, clock)
	postSvc := service.NewPostService(postRepo, commentRepo, memberRepo, cacheService, clock, loc)
	commentSvc := service.NewCommentService(commentRepo, postRepo, memberRepo, clock, loc)
	messageSvc := service.NewMessageService(messageRepo, memberRepo, interactionRepo, clock)
	moderationSvc := service.NewModerationService(postRepo, modLogRepo, cacheService, clock)
	resetSvc := service.NewResetService(postRepo, cacheService, clock)

	// Daily reset scheduler
	scheduler := service.NewScheduler(resetSvc, clock, loc)
	scheduler.Start()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	allowOrigins := cfg.CORS.AllowOrigins
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     splitAndTrim(allowOrigins, ","),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Token", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID"},
		MaxAge:           86400 * time.Second,
	}))

	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "club-backend",
			"time":    time.Now().Unix(),
		})
	})

	routes.Setup(router, routes.Handlers{
		Status:     handler.NewStatusHandler(clock, loc),
		Auth:       handler.NewAuthHandler(authSvc),
		Post:       handler.NewPostHandler(postSvc),
		Comment:    handler.NewCommentHandler(commentSvc),
		Message:    handler.NewMessageHandler(messageSvc),
		Moderation: handler.NewModerationHandler(moderationSvc, resetSvc),
	}, jwtManager, adminValidator)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		pkglogger.Info("Sleep Tight server running on :%d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	pkglogger.Info("Shutting down")
	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		pkglogger.Error("Forced shutdown: %v", err)
	}
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
