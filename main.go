package main

import (
	"context"
	"fmt"
	"log"

	"dishpatch-be/configs"
	"dishpatch-be/middlewares"
	"dishpatch-be/pkg/cache"
	"dishpatch-be/pkg/gateway"
	"dishpatch-be/pkg/logger"
	"dishpatch-be/pkg/mailer"
	"dishpatch-be/pkg/storage"
	"dishpatch-be/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()

	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer zl.Sync()

	// DB
	db, err := configs.ConnectDB(cfg)
	if err != nil {
		zl.Fatal("db connect failed", zap.Error(err))
	}
	if err := configs.SetupDatabase(db); err != nil {
		zl.Fatal("migrate failed", zap.Error(err))
	}
	if err := configs.SeedRoles(db); err != nil {
		zl.Fatal("seed roles failed", zap.Error(err))
	}
	if err := configs.SeedAdmin(db, cfg); err != nil {
		zl.Fatal("seed admin failed", zap.Error(err))
	}

	// Collaborators
	otpCache := cache.NewRedis(cache.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	uploader, err := storage.NewS3(context.Background(), cfg.S3Bucket, cfg.AWSRegion)
	if err != nil {
		zl.Fatal("s3 init failed", zap.Error(err))
	}
	mail := mailer.NewSMTP(mailer.SMTPConfig{
		Addr:     cfg.SMTPAddr,
		Host:     cfg.SMTPHost,
		From:     cfg.FromEmail,
		Password: cfg.FromPassword,
	})
	payGateway := gateway.NewREST(cfg.GatewayURL, cfg.GatewayAPIKey)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, &routes.Deps{
		DB:      db,
		Cfg:     cfg,
		Cache:   otpCache,
		Storage: uploader,
		Mailer:  mail,
		Gateway: payGateway,
		Log:     zl,
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	zl.Info("server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
