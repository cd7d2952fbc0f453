package app

import (
	"context"
	"net/http"
	"time"

	"cyberedu_admin/internal/cache"
	"cyberedu_admin/internal/config"
	"cyberedu_admin/internal/controller"
	"cyberedu_admin/internal/media"
	"cyberedu_admin/internal/middleware"
	"cyberedu_admin/internal/service"
	"cyberedu_admin/internal/upstream"
	"cyberedu_admin/internal/util"
	"cyberedu_admin/internal/validation"
	"cyberedu_admin/pkg/configwatcher"
	"cyberedu_admin/pkg/database"
	"cyberedu_admin/pkg/logger"
	"cyberedu_admin/pkg/monitoring"
	"cyberedu_admin/pkg/security"
	"cyberedu_admin/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config          *config.Config
	ConfigDir       string
	Router          *gin.Engine
	Redis           *redis.Client
	ffmpeg          *media.FFmpeg
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type services struct {
	auth    *service.AuthService
	company *service.CompanyService
	course  *service.CourseService
	video   *service.VideoService
	result  *service.ResultService
	storage *service.StorageService
}

type controllers struct {
	auth    *controller.AuthController
	company *controller.CompanyController
	course  *controller.CourseController
	video   *controller.VideoController
	result  *controller.ResultController
	health  *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// thumbnailCache redis 不可用时退回进程内缓存
func (a *App) thumbnailCache(cfg *config.Config) cache.ThumbnailCache {
	if cfg.Cache.Type == util.CacheMemory {
		return cache.NewMemoryCache()
	}
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory thumbnail cache", zap.Error(err))
		return cache.NewMemoryCache()
	}
	a.Redis = rdb
	return cache.NewRedisCache(rdb, cfg.Cache.TTL)
}

func (a *App) initServices(cfg *config.Config, client *upstream.Client) *services {
	s := &services{}

	var sink media.ThumbnailSink
	if cfg.Storage.ExportThumbnails {
		s.storage = service.NewStorageService(&cfg.Storage)
		sink = s.storage
	}

	a.ffmpeg = media.NewFFmpeg(cfg.Media.FFmpegPath, cfg.Media.ProbeTimeout, cfg.Media.CaptureTimeout)
	extractor := media.NewExtractor(a.ffmpeg, a.ffmpeg, media.WithJPEGQuality(cfg.Media.JPEGQuality))
	enricher := media.NewEnricher(extractor, a.thumbnailCache(cfg), sink, cfg.Media.Concurrency)

	s.auth = service.NewAuthService(client)
	s.company = service.NewCompanyService(client)
	s.course = service.NewCourseService(client)
	s.video = service.NewVideoService(client, extractor, enricher, s.storage, cfg.Media)
	s.result = service.NewResultService(client, cfg.Media.MaxCertificateBytes())
	return s
}

func (a *App) healthChecks() map[string]controller.HealthCheck {
	checks := map[string]controller.HealthCheck{
		"ffmpeg": func(ctx context.Context) error {
			_, err := a.ffmpeg.Version(ctx)
			return err
		},
	}
	if a.Redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return a.Redis.Ping(ctx).Err()
		}
	}
	return checks
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		auth:    controller.NewAuthController(s.auth),
		company: controller.NewCompanyController(s.company),
		course:  controller.NewCourseController(s.course),
		video:   controller.NewVideoController(s.video),
		result:  controller.NewResultController(s.result),
		health:  controller.NewHealthController(a.healthChecks()),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	if cfg.RateLimit.MaxRequests > 0 {
		router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))
	}

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config, configDir string) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == gin.DebugMode {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := validation.Register(); err != nil {
		return nil, errors.Wrap(err, "register validators")
	}

	client, err := upstream.NewClient(cfg.Upstream)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:    cfg,
		ConfigDir: configDir,
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("cyberedu-admin", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
		} else {
			app.tracer = tp
		}
	}

	// 监控初始化
	monitoring.Init()

	svcs := app.initServices(cfg, client)
	ctrls := app.initControllers(svcs)

	router := gin.New()
	app.Router = router
	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, ctrls)

	if svcs.storage != nil && cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.SetMode(newCfg.Server.Mode)
	})

	return app, nil
}

// Run 阻塞直到 ctx 结束，然后优雅关闭
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()
	if a.ConfigDir != "" {
		go func() {
			err := configwatcher.WatchConfig(watchCtx, a.ConfigDir, func(newCfg *config.Config) {
				for _, cb := range a.configCallbacks {
					cb(newCfg)
				}
			})
			if err != nil {
				logger.Log.Warn("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return errors.Wrap(err, "listen")
		}
		return nil
	case <-ctx.Done():
	}
	logger.Log.Info("Shutting down server...")

	// 等待进行中的请求结束（设置10秒的超时时间）
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "server forced to shutdown")
	}

	a.close(shutdownCtx)
	logger.Log.Info("Server exiting")
	return nil
}

func (a *App) close(ctx context.Context) {
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Error("Failed to close redis", zap.Error(err))
		}
	}
}
