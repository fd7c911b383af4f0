package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tower_trivia_backend/internal/config"
	"tower_trivia_backend/internal/controller"
	"tower_trivia_backend/internal/repository"
	"tower_trivia_backend/internal/service"
	"tower_trivia_backend/pkg/database"
	"tower_trivia_backend/pkg/logger"
	"tower_trivia_backend/pkg/monitoring"
	"tower_trivia_backend/pkg/security"
	"tower_trivia_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	player      *repository.PlayerRepository
	content     *repository.ContentRepository
	progress    *repository.ProgressRepository
	response    *repository.ResponseRepository
	dungeon     *repository.DungeonRepository
	leaderboard *repository.LeaderboardRepository
}

type services struct {
	auth        *service.AuthService
	storage     *service.StorageService
	content     *service.ContentService
	story       *service.StoryService
	challenge   *service.ChallengeService
	leaderboard *service.LeaderboardService
	progress    *service.ProgressService
	response    *service.ResponseService
}

type controllers struct {
	auth        *controller.AuthController
	content     *controller.ContentController
	story       *controller.StoryController
	challenge   *controller.ChallengeController
	leaderboard *controller.LeaderboardController
	progress    *controller.ProgressController
	response    *controller.ResponseController
	player      *controller.PlayerController
	admin       *controller.AdminController
	health      *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		player:      repository.NewPlayerRepository(db),
		content:     repository.NewContentRepository(db),
		progress:    repository.NewProgressRepository(db),
		response:    repository.NewResponseRepository(db),
		dungeon:     repository.NewDungeonRepository(db),
		leaderboard: repository.NewLeaderboardRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.player, cfg, db)
	s.content = service.NewContentService(repos.content, rdb)
	s.story = service.NewStoryService(repos.content, repos.player, repos.progress)
	s.challenge = service.NewChallengeService(repos.dungeon, repos.content, repos.response)
	s.leaderboard = service.NewLeaderboardService(repos.leaderboard, rdb)
	s.progress = service.NewProgressService(db, repos.content, repos.player, repos.progress, s.leaderboard)
	s.response = service.NewResponseService(repos.player, repos.content, repos.response, s.leaderboard)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		content:     controller.NewContentController(s.content),
		story:       controller.NewStoryController(s.story),
		challenge:   controller.NewChallengeController(s.challenge),
		leaderboard: controller.NewLeaderboardController(s.leaderboard),
		progress:    controller.NewProgressController(s.progress),
		response:    controller.NewResponseController(s.response),
		player:      controller.NewPlayerController(repos.player, s.storage),
		admin:       controller.NewAdminController(s.content, s.challenge),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	if cfg.MigrateOnly {
		return app
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// The cache layers degrade to direct reads without redis.
		logger.Log.Warn("Redis unavailable, caching disabled", zap.Error(err))
		rdb = nil
	}
	app.Redis = rdb

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, repos, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("tower-trivia", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

// ReloadConfig picks up tunables that are safe to change at runtime.
// Anything baked into running middleware keeps its boot-time value.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config.JWT = cfg.JWT
	a.Config.Storage = cfg.Storage
	logger.Log.Info("Configuration reloaded")
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:         ":" + a.Config.Server.Port,
		Handler:      a.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
