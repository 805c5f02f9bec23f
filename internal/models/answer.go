package models

import (
	"time"
)

type Answer struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	QuestionID   uint       `gorm:"not null;index" json:"question_id"`
	Question     Question   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID       string     `gorm:"size:64;not null;index" json:"user_id"`
	User         User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Content      string     `gorm:"type:text;not null" json:"content"`
	Status       string     `gorm:"size:20;default:'active';not null;index" json:"status"`
	HiddenBy     *string    `gorm:"size:64" json:"hidden_by"`
	HiddenReason *string    `json:"hidden_reason"`
	HiddenAt     *time.Time `json:"hidden_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
