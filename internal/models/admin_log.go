package models

import (
	"time"
)

// AdminLog 관리자 행동 기록
type AdminLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	AdminID    string    `gorm:"size:64;not null;index" json:"admin_id"`
	Admin      User      `gorm:"foreignKey:AdminID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"admin"`
	ActionType string    `gorm:"size:50;not null" json:"action_type"` // suspend_user, hide_question 등
	TargetType string    `gorm:"size:20;not null" json:"target_type"`
	TargetID   string    `gorm:"size:64;not null" json:"target_id"`
	Reason     *string   `json:"reason"`
	Details    *string   `gorm:"type:text" json:"details"` // JSON 문자열
	CreatedAt  time.Time `json:"created_at"`
}
