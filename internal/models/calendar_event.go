package models

import (
	"time"
)

// CalendarEvent 커뮤니티 일정 (시험, 행사 등)
type CalendarEvent struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Date        string    `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	Time        string    `gorm:"size:5;not null" json:"time"`        // HH:MM
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
