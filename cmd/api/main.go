package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/campushq/course-planner-api/api/swagger"
	"github.com/campushq/course-planner-api/internal/catalogdata"
	"github.com/campushq/course-planner-api/internal/handler"
	internalmiddleware "github.com/campushq/course-planner-api/internal/middleware"
	"github.com/campushq/course-planner-api/internal/models"
	"github.com/campushq/course-planner-api/internal/repository"
	"github.com/campushq/course-planner-api/internal/service"
	"github.com/campushq/course-planner-api/pkg/cache"
	"github.com/campushq/course-planner-api/pkg/config"
	"github.com/campushq/course-planner-api/pkg/database"
	"github.com/campushq/course-planner-api/pkg/logger"
	corsmiddleware "github.com/campushq/course-planner-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campushq/course-planner-api/pkg/middleware/requestid"
)

// @title Course Planner API
// @version 0.1.0
// @description Course registration planning with schedule conflict detection
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	courses, err := loadCatalog(cfg, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to load catalog", "source", cfg.Catalog.Source, "error", err)
	}
	presets, err := catalogdata.Presets()
	if err != nil {
		logr.Sugar().Fatalw("failed to load presets", "error", err)
	}

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Redis.Host != "" {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, catalog cache disabled", "error", err)
		} else {
			defer redisClient.Close() //nolint:errcheck
			cacheRepo := repository.NewRedisCacheRepository(redisClient)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Catalog.CacheTTL, logr, true)
		}
	}

	catalogSvc := service.NewCatalogService(courses, cacheSvc, logr)
	detector := service.NewConflictDetector(catalogSvc, logr)
	worklistSvc := service.NewWorklistService(catalogSvc, detector, nil, logr, service.WorklistConfig{
		Name: cfg.Planner.WorklistName,
	})
	presetSvc := service.NewPresetService(presets, worklistSvc, logr)
	exportSvc := service.NewExportService(catalogSvc, logr)

	if cfg.Planner.InitialPreset != "" {
		if _, err := presetSvc.Load(cfg.Planner.InitialPreset); err != nil {
			logr.Sugar().Warnw("initial preset not loaded", "preset", cfg.Planner.InitialPreset, "error", err)
		}
	}

	var advisorSvc *service.AdvisorService
	if cfg.Advisor.Enabled {
		advisorSvc = service.NewAdvisorService(service.AdvisorConfig{
			ReplyDelay: cfg.Advisor.ReplyDelay,
			Workers:    cfg.Advisor.Workers,
		}, logr)
		advisorSvc.Start(context.Background())
		defer advisorSvc.Stop()
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.WithResponseMeta())
	r.Use(internalmiddleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	catalogHandler := handler.NewCatalogHandler(catalogSvc, worklistSvc)
	worklistHandler := handler.NewWorklistHandler(worklistSvc, metricsSvc)
	presetHandler := handler.NewPresetHandler(presetSvc)

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/courses", catalogHandler.List)
		api.GET("/courses/recommendations", catalogHandler.Recommendations)
		api.GET("/courses/:id", catalogHandler.Get)

		api.GET("/worklist", worklistHandler.Get)
		api.POST("/worklist/enrollments", worklistHandler.AddEnrollment)
		api.DELETE("/worklist/enrollments/:courseId", worklistHandler.RemoveEnrollment)
		api.GET("/worklist/conflicts", worklistHandler.Conflicts)
		api.POST("/worklist/conflicts/resolutions", worklistHandler.Resolutions)
		api.GET("/worklist/alternatives/:courseId", worklistHandler.Alternatives)
		api.POST("/worklist/reset", worklistHandler.Reset)

		api.GET("/presets", presetHandler.List)
		api.POST("/presets/:id/load", presetHandler.Load)

		if cfg.Exports.Enabled {
			exportHandler := handler.NewExportHandler(exportSvc, worklistSvc)
			api.GET("/worklist/export", exportHandler.Download)
		}

		if advisorSvc != nil {
			advisorHandler := handler.NewAdvisorHandler(advisorSvc)
			api.GET("/advisor/messages", advisorHandler.Messages)
			api.POST("/advisor/messages", advisorHandler.Send)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "catalog_source", cfg.Catalog.Source)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// loadCatalog reads the course catalog from the configured source. The
// embedded fixture catalog is the default; Postgres is only consulted when
// explicitly selected.
func loadCatalog(cfg *config.Config, logr *zap.Logger) ([]models.Course, error) {
	switch cfg.Catalog.Source {
	case "postgres":
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, err
		}
		defer db.Close() //nolint:errcheck

		repo := repository.NewCatalogRepository(db)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		courses, err := repo.LoadCourses(ctx)
		if err != nil {
			return nil, err
		}
		logr.Sugar().Infow("catalog loaded from postgres", "courses", len(courses))
		return courses, nil
	default:
		courses, err := catalogdata.Courses()
		if err != nil {
			return nil, err
		}
		logr.Sugar().Infow("catalog loaded from embedded data", "courses", len(courses))
		return courses, nil
	}
}
