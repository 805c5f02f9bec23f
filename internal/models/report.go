package models

import (
	"time"
)

// 신고 상태
const (
	ReportStatusPending   = "pending"
	ReportStatusReviewed  = "reviewed"
	ReportStatusDismissed = "dismissed"
)

type Report struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ReporterID  string     `gorm:"size:64;not null;uniqueIndex:idx_reports_once" json:"reporter_id"`
	Reporter    User       `gorm:"foreignKey:ReporterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"reporter"`
	TargetType  string     `gorm:"size:20;not null;uniqueIndex:idx_reports_once" json:"target_type"` // question, answer
	TargetID    uint       `gorm:"not null;uniqueIndex:idx_reports_once" json:"target_id"`
	Reason      string     `gorm:"size:50;not null" json:"reason"`
	Description *string    `json:"description"`
	Status      string     `gorm:"size:20;default:'pending';not null;index" json:"status"`
	ReviewedBy  *string    `gorm:"size:64" json:"reviewed_by"`
	ReviewedAt  *time.Time `json:"reviewed_at"`
	AdminNotes  *string    `json:"admin_notes"`
	CreatedAt   time.Time  `json:"created_at"`
}
