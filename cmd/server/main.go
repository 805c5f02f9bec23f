package main

import (
	"log"
	"os"

	"garshub/internal/db"
	"garshub/internal/handlers"
	"garshub/internal/middleware"
	"garshub/internal/router"
	"garshub/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init()

	// Google OAuth 설정
	handlers.InitGoogleOAuth()

	// AI 자동 답변 워커 시작
	services.GetAIAnswerService()

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("garshub_session", store))

	// 정적 파일 (프론트엔드와 업로드 이미지)
	r.Static("/public", "./public")
	r.Static("/uploads", "./uploads")
	r.StaticFile("/", "./public/index.html")

	// Middleware
	r.Use(middleware.LoadUser())

	// Routes
	router.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("GARS Q&A Hub server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
