package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adaptive_learning_backend/internal/config"
	"adaptive_learning_backend/internal/controller"
	"adaptive_learning_backend/internal/repository"
	"adaptive_learning_backend/internal/service"
	"adaptive_learning_backend/pkg/database"
	"adaptive_learning_backend/pkg/logger"
	"adaptive_learning_backend/pkg/monitoring"
	"adaptive_learning_backend/pkg/security"
	"adaptive_learning_backend/pkg/tracing"

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
	student     *repository.StudentRepository
	content     *repository.ContentRepository
	interaction *repository.InteractionRepository
}

type services struct {
	auth        *service.AuthService
	dashboard   *service.DashboardService
	recommender *service.RecommenderService
	chatbot     *service.ChatbotService
	interaction *service.InteractionService
	admin       *service.AdminService
	predictor   service.GapPredictor
}

type controllers struct {
	auth           *controller.AuthController
	dashboard      *controller.DashboardController
	admin          *controller.AdminController
	prediction     *controller.PredictionController
	recommendation *controller.RecommendationController
	interaction    *controller.InteractionController
	chatbot        *controller.ChatbotController
	health         *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		student:     repository.NewStudentRepository(db),
		content:     repository.NewContentRepository(db),
		interaction: repository.NewInteractionRepository(db),
	}
}

// initServices 三个模型引用（预测器、推荐器、外部聊天模型）在这里
// 解析一次，之后只读。
func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	ctx := context.Background()

	store, err := service.NewArtifactStore(&cfg.Storage)
	if err != nil {
		logger.Log.Warn("artifact store unavailable, prediction falls back to threshold rule", zap.Error(err))
		store = nil
	}
	s.predictor = service.LoadGapPredictor(ctx, store, cfg.Models)

	s.recommender = service.NewRecommenderService(repos.content, rdb, nil)

	var external service.Responder
	if cfg.Chat.APIKey != "" {
		gemini, err := service.NewGeminiResponder(ctx, cfg.Chat)
		if err != nil {
			logger.Log.Warn("external chat model init failed, using keyword rules", zap.Error(err))
		} else {
			logger.Log.Info("external chat model configured", zap.String("model", cfg.Chat.Model))
			external = gemini
		}
	} else {
		logger.Log.Info("chat API key not set, chatbot uses keyword rules")
	}
	s.chatbot = service.NewChatbotService(external)

	s.auth = service.NewAuthService(repos.student, cfg)
	s.interaction = service.NewInteractionService(repos.interaction)
	s.admin = service.NewAdminService(repos.student, repos.content)
	s.dashboard = service.NewDashboardService(repos.student, repos.content, repos.interaction, s.predictor, s.recommender)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:           controller.NewAuthController(s.auth),
		dashboard:      controller.NewDashboardController(s.dashboard),
		admin:          controller.NewAdminController(s.admin),
		prediction:     controller.NewPredictionController(s.predictor),
		recommendation: controller.NewRecommendationController(s.recommender),
		interaction:    controller.NewInteractionController(s.interaction),
		chatbot:        controller.NewChatbotController(s.chatbot),
		health:         controller.NewHealthController(db, rdb),
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
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/static", "./static")

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("adaptive-learning", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	return app
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

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.Redis != nil {
		a.Redis.Close()
	}

	log.Println("Server exiting")
}
