package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"traininghub_backend/internal/config"
	"traininghub_backend/internal/controller"
	"traininghub_backend/internal/repository"
	"traininghub_backend/internal/service"
	"traininghub_backend/pkg/database"
	"traininghub_backend/pkg/logger"
	"traininghub_backend/pkg/monitoring"
	"traininghub_backend/pkg/security"
	"traininghub_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	user           *repository.UserRepository
	company        *repository.CompanyRepository
	assessmentType *repository.AssessmentTypeRepository
	assessment     *repository.AssessmentRepository
	submission     *repository.SubmissionRepository
}

type services struct {
	auth           *service.AuthService
	company        *service.CompanyService
	assessmentType *service.AssessmentTypeService
	assessment     *service.AssessmentService
	statistics     *service.StatisticsService
	submission     *service.SubmissionService
}

type controllers struct {
	auth           *controller.AuthController
	company        *controller.CompanyController
	assessmentType *controller.AssessmentTypeController
	assessment     *controller.AssessmentController
	submission     *controller.SubmissionController
	statistics     *controller.StatisticsController
	health         *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:           repository.NewUserRepository(db),
		company:        repository.NewCompanyRepository(db),
		assessmentType: repository.NewAssessmentTypeRepository(db),
		assessment:     repository.NewAssessmentRepository(db),
		submission:     repository.NewSubmissionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.user, cfg)
	s.company = service.NewCompanyService(repos.company, repos.user)
	s.assessmentType = service.NewAssessmentTypeService(repos.assessmentType)
	s.assessment = service.NewAssessmentService(repos.assessment)
	s.statistics = service.NewStatisticsService(
		repos.assessment,
		repos.submission,
		repos.assessmentType,
		repos.user,
		rdb,
		time.Duration(cfg.Grading.StatsCacheTTLMinutes)*time.Minute,
	)
	s.submission = service.NewSubmissionService(
		repos.submission,
		repos.assessment,
		repos.assessmentType,
		s.statistics,
		db,
	)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:           controller.NewAuthController(s.auth),
		company:        controller.NewCompanyController(s.company),
		assessmentType: controller.NewAssessmentTypeController(s.assessmentType),
		assessment:     controller.NewAssessmentController(s.assessment, s.auth),
		submission:     controller.NewSubmissionController(s.submission, s.auth),
		statistics:     controller.NewStatisticsController(s.statistics),
		health:         controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
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
	logger.InitLogger(cfg.Server.Mode)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("traininghub", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	return app
}

// ReloadConfig applies the hot-reloadable settings from a freshly parsed
// config file. Settings that need a restart (port, database, JWT secret)
// keep their startup values.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.services.statistics.CacheTTL = time.Duration(cfg.Grading.StatsCacheTTLMinutes) * time.Minute
	logger.Log.Info("Configuration reloaded",
		zap.Int("statsCacheTTLMinutes", cfg.Grading.StatsCacheTTLMinutes))
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
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
