package models

import (
	"time"
)

// 이미지가 붙는 엔티티 종류
const (
	EntityQuestion = "question"
	EntityAnswer   = "answer"
)

// Image 질문/답변에 첨부된 이미지 참조
type Image struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	URL        string    `gorm:"not null" json:"url"`
	EntityType string    `gorm:"size:20;not null;index:idx_images_entity" json:"entity_type"`
	EntityID   uint      `gorm:"not null;index:idx_images_entity" json:"entity_id"`
	CreatedAt  time.Time `json:"created_at"`
}
