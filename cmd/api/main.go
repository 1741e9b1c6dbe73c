package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"autohub/internal/assetstore"
	"autohub/internal/config"
	"autohub/internal/database"
	"autohub/internal/lifecycle"
	"autohub/internal/middleware"
	"autohub/internal/modules/auth"
	"autohub/internal/modules/blog"
	"autohub/internal/modules/brand"
	"autohub/internal/modules/car"
	"autohub/internal/modules/heroslide"
	"autohub/internal/modules/importer"
	jwtsvc "autohub/internal/pkg/jwt"
	"autohub/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logger.Fatal("mongo connect", zap.Error(err))
	}
	defer database.Disconnect(context.Background(), db)

	if err := database.EnsureIndexes(ctx, db); err != nil {
		logger.Fatal("ensure indexes", zap.Error(err))
	}

	store, err := buildStore(cfg)
	if err != nil {
		logger.Fatal("asset store", zap.Error(err))
	}
	assets := lifecycle.New(store, logger)

	userRepo := repository.NewUserRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	carRepo := repository.NewCarRepository(db)
	importerRepo := repository.NewImporterRepository(db)
	slideRepo := repository.NewHeroSlideRepository(db)
	blogRepo := repository.NewBlogRepository(db)

	tokens := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, tokens))
	brandHandler := brand.NewHandler(brand.NewService(brandRepo, assets))
	carHandler := car.NewHandler(car.NewService(carRepo, assets))
	importerHandler := importer.NewHandler(importer.NewService(importerRepo, assets))
	slideHandler := heroslide.NewHandler(heroslide.NewService(slideRepo, assets))
	blogHandler := blog.NewHandler(blog.NewService(blogRepo, assets))

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.StorageBackend == config.BackendLocal {
		r.Static("/uploads", cfg.UploadDir)
	}

	requireAuth := middleware.RequireAuth(tokens)
	requireAdmin := middleware.RequireAdmin()

	api := r.Group("/api")
	authHandler.RegisterRoutes(api, requireAuth, requireAdmin)
	brandHandler.RegisterRoutes(api, requireAuth, requireAdmin)
	carHandler.RegisterRoutes(api, requireAuth, requireAdmin)
	importerHandler.RegisterRoutes(api, requireAuth, requireAdmin)
	slideHandler.RegisterRoutes(api, requireAuth, requireAdmin)
	blogHandler.RegisterRoutes(api, requireAuth)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("server listening",
			zap.String("port", cfg.Port),
			zap.String("storage", cfg.StorageBackend),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProd() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func buildStore(cfg *config.Config) (assetstore.Store, error) {
	switch cfg.StorageBackend {
	case config.BackendCloudinary:
		return assetstore.NewCloudinaryStore(cfg.CloudinaryURL, cfg.AssetRootFolder)
	default:
		return assetstore.NewLocalStore(cfg.UploadDir)
	}
}
