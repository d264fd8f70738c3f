package app

import (
	"adaptive_learning_backend/internal/config"
	"adaptive_learning_backend/internal/middleware"
	"adaptive_learning_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	// 页面路由。会话 cookie 有就解析，没有照常匿名访问。
	pages := router.Group("", middleware.TryAuthMiddleware(cfg))
	{
		pages.GET("/", c.dashboard.Index)
		pages.GET("/login", c.auth.ShowLogin)
		pages.POST("/login", c.auth.Login)
		pages.GET("/dashboard/:id", c.dashboard.StudentDashboard)
		pages.GET("/admin", c.admin.AdminDashboard)
		pages.GET("/chatbot", c.chatbot.ChatbotPage)
	}

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 历史 JSON 接口，线格式保持 {status,...}/{error}
		api.POST("/predict_learning_gap", c.prediction.PredictLearningGap)
		api.POST("/recommend_content", c.recommendation.RecommendContent)
		api.POST("/chatbot", c.chatbot.Chat)
		api.POST("/log_interaction", c.interaction.LogInteraction)

		authed := api.Group("")
		authed.Use(middleware.AuthMiddleware(cfg))
		{
			authed.GET("/profile", c.auth.GetProfile)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.AdminOnly())
		{
			admin.GET("/students", c.admin.ListStudents)
			admin.GET("/content", c.admin.ListContent)
		}
	}
}
