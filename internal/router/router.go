package router

import (
	"garshub/internal/handlers"
	"garshub/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	questionHandler := handlers.NewQuestionHandler()
	answerHandler := handlers.NewAnswerHandler()
	userHandler := handlers.NewUserHandler()
	adminHandler := handlers.NewAdminHandler()
	reportHandler := handlers.NewReportHandler()
	aiHandler := handlers.NewAIHandler()
	uploadHandler := handlers.NewUploadHandler()
	calendarHandler := handlers.NewCalendarHandler()

	// 인증 (Google OAuth)
	r.GET("/auth/google", authHandler.GoogleLogin)
	r.GET("/auth/google/callback", authHandler.GoogleCallback)
	r.GET("/auth/logout", authHandler.Logout)

	// 공개 API
	r.GET("/api/questions", questionHandler.List)
	r.GET("/api/questions/:id", questionHandler.Detail)
	r.GET("/api/answers/:id", answerHandler.Detail)
	r.GET("/api/rankings", userHandler.Rankings)
	r.GET("/api/ranking/score", userHandler.ScoreRanking)
	r.GET("/api/ranking/level", userHandler.LevelRanking)
	r.GET("/api/calendar/events", calendarHandler.List)

	// 로그인 필요 API
	authorized := r.Group("/api")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/user", userHandler.Me)
		authorized.PUT("/user/profile", userHandler.UpdateProfile)
		authorized.GET("/user/level", userHandler.LevelInfo)
		authorized.GET("/user/points", userHandler.Points)
		authorized.GET("/user/ranking", userHandler.MyRanking)

		authorized.POST("/questions", questionHandler.Create)
		authorized.PUT("/questions/:id", questionHandler.Update)
		authorized.DELETE("/questions/:id", questionHandler.Delete)
		authorized.POST("/questions/:id/answers", answerHandler.Create)
		authorized.PUT("/answers/:id", answerHandler.Update)
		authorized.DELETE("/answers/:id", answerHandler.Delete)

		authorized.POST("/upload", uploadHandler.Image)
		authorized.POST("/reports", reportHandler.Create)

		authorized.POST("/ai-chat", aiHandler.Chat)
		authorized.POST("/ai-question", aiHandler.Question)
	}

	// 관리자 API (moderator 이상)
	admin := r.Group("/api")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("/admin/check", adminHandler.Check)
		admin.GET("/admin/stats", adminHandler.Stats)
		admin.GET("/admin/users", adminHandler.Users)
		admin.GET("/admin/questions", adminHandler.Questions)
		admin.GET("/admin/logs", adminHandler.Logs)
		admin.PUT("/admin/users/:id/status", adminHandler.UpdateUserStatus)
		admin.PUT("/admin/users/:id/role", adminHandler.UpdateUserRole)
		admin.PUT("/admin/questions/:id/status", adminHandler.UpdateQuestionStatus)
		admin.PUT("/admin/answers/:id/status", adminHandler.UpdateAnswerStatus)

		admin.GET("/reports", reportHandler.List)
		admin.PUT("/reports/:id", reportHandler.Review)

		admin.POST("/calendar/events", calendarHandler.Create)
		admin.PUT("/calendar/events/:id", calendarHandler.Update)
		admin.DELETE("/calendar/events/:id", calendarHandler.Delete)
	}
}
