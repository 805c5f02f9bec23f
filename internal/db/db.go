package db

import (
	"log"
	"os"

	"garshub/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// AI 자동 답변에 사용하는 내장 사용자
const AIAssistantID = "ai-assistant"

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=garshub port=5432 sslmode=disable TimeZone=Asia/Seoul"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	// Auto Migrate
	err = DB.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Answer{},
		&models.Image{},
		&models.Report{},
		&models.AdminLog{},
		&models.CalendarEvent{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	seedAIAssistant()
}

// seedAIAssistant AI 도우미 사용자가 없으면 생성
func seedAIAssistant() {
	var count int64
	DB.Model(&models.User{}).Where("id = ?", AIAssistantID).Count(&count)
	if count > 0 {
		return
	}

	email := "ai@garshub.com"
	ai := models.User{
		ID:          AIAssistantID,
		DisplayName: "AI 도우미",
		Email:       &email,
		Role:        models.RoleUser,
		Status:      models.UserStatusActive,
		Level:       1,
	}
	if err := DB.Create(&ai).Error; err != nil {
		log.Printf("Failed to create AI assistant user: %v", err)
		return
	}
	log.Println("AI assistant user created")
}
