package models

import (
	"time"
)

// 게시물 상태 (질문/답변 공용)
const (
	ContentStatusActive = "active"
	ContentStatusHidden = "hidden"
)

type Question struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       string     `gorm:"size:64;not null;index" json:"user_id"`
	User         User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Title        string     `gorm:"not null" json:"title"`
	Content      string     `gorm:"type:text;not null" json:"content"`
	Status       string     `gorm:"size:20;default:'active';not null;index" json:"status"`
	HiddenBy     *string    `gorm:"size:64" json:"hidden_by"`
	HiddenReason *string    `json:"hidden_reason"`
	HiddenAt     *time.Time `json:"hidden_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
