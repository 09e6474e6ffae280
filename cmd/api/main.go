package main

import (
	"context"
	"log"
	"time"

	"screamy/config"
	"screamy/internal/domain/notification"
	"screamy/internal/domain/scream"
	"screamy/internal/domain/user"
	"screamy/internal/handler"
	"screamy/internal/redis"
	"screamy/internal/repository"
	"screamy/internal/server"
	"screamy/internal/services"
	"screamy/internal/storage"
	"screamy/pkg/database"
	"screamy/pkg/logger"
)

// noImageObject is the placeholder every new profile points at until the
// owner uploads a picture.
const noImageObject = "blank-profile-picture.png"

func main() {
	cfg := config.LoadConfig()

	logMode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		logMode = logger.ProductionMode
	}
	l := logger.New(logMode)
	logger.SetGlobalLogger(l)

	// Connect to Database
	database.Connect(cfg)

	if err := database.DB.AutoMigrate(
		&user.Identity{},
		&user.User{},
		&scream.Scream{},
		&scream.Like{},
		&notification.Notification{},
	); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	redis.Initialize(redis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
	})
	rateLimitCfg := redis.DefaultRateLimitConfig()
	rateLimitCfg.AuthLimit = cfg.AuthRateLimit
	limiter := redis.NewRateLimiter(redis.GetClient(), rateLimitCfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	store, err := storage.NewClient(ctx, storage.S3Config{
		Region:     cfg.S3Region,
		Bucket:     cfg.S3Bucket,
		AccessKey:  cfg.S3AccessKey,
		SecretKey:  cfg.S3SecretKey,
		Endpoint:   cfg.S3Endpoint,
		PublicBase: cfg.S3PublicBase,
	})
	if err != nil {
		log.Fatalf("Failed to create storage client: %v", err)
	}

	userRepo := repository.NewUserRepository(database.DB)
	screamRepo := repository.NewScreamRepository(database.DB)
	notifRepo := repository.NewNotificationRepository(database.DB)

	authService := services.NewAuthService(userRepo, cfg, store.FileURL(noImageObject))
	userService := services.NewUserService(userRepo, screamRepo, notifRepo)
	uploadService := services.NewUploadService(userRepo, store)
	notifService := services.NewNotificationService(notifRepo)

	handlers := &server.Handlers{
		Auth:         handler.NewAuthHandler(authService, l),
		User:         handler.NewUserHandler(userService),
		Upload:       handler.NewUploadHandler(uploadService, l),
		Notification: handler.NewNotificationHandler(notifService, l),
	}

	srv := server.New(cfg, l)
	srv.SetupRoutes(handlers, authService, limiter)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
