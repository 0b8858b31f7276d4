package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/digitalstore/digitalstore-api/config"
	_ "github.com/digitalstore/digitalstore-api/docs"
	"github.com/digitalstore/digitalstore-api/logger"
	"github.com/digitalstore/digitalstore-api/middleware"
	"github.com/digitalstore/digitalstore-api/services"
)

// @title Digital Store API
// @version 1.0
// @description Storefront catalog, cart and order API
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.LogLevel, !cfg.IsProduction()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.L()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info("starting Digital Store API", zap.String("env", cfg.GoEnv))

	if err := config.ConnectDatabase(cfg.DatabaseURL); err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	db := config.GetDB()
	if err := config.Migrate(db); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}
	log.Info("database migration completed")

	images, uploadDir, err := newImageService(context.Background(), cfg)
	if err != nil {
		log.Fatal("failed to init image storage", zap.Error(err))
	}

	auth, err := middleware.EnsureValidToken(cfg)
	if err != nil {
		log.Fatal("failed to init JWT validation", zap.Error(err))
	}

	router := setupRouter(routerDeps{
		DB:             db,
		Log:            log,
		Auth:           auth,
		AdminScope:     cfg.AdminScope,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Images:         images,
		UserInfo:       services.NewAuth0Service(cfg.Auth0Domain),
		UploadDir:      uploadDir,
	})

	addr := ":" + cfg.Port
	log.Info("server listening", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

// newImageService picks S3 when a bucket is configured and local disk otherwise.
// The returned directory is empty for S3.
func newImageService(ctx context.Context, cfg *config.Config) (services.ImageService, string, error) {
	if cfg.UsesS3() {
		s3, err := services.NewS3Service(ctx, cfg)
		if err != nil {
			return nil, "", err
		}
		logger.L().Info("storing images in S3", zap.String("bucket", cfg.AWSS3Bucket))
		return services.NewS3ImageService(s3), "", nil
	}

	logger.L().Info("storing images on local disk", zap.String("dir", cfg.UploadDir))
	return services.NewLocalImageService(cfg.UploadDir), cfg.UploadDir, nil
}
