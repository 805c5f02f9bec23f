package models

import (
	"time"
)

// 사용자 역할
const (
	RoleUser       = "user"
	RoleModerator  = "moderator"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// 사용자 상태
const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
	UserStatusBanned    = "banned"
)

type User struct {
	ID               string     `gorm:"primaryKey;size:64" json:"id"` // Google OAuth subject
	DisplayName      string     `gorm:"not null" json:"display_name"`
	Email            *string    `gorm:"index" json:"email"`
	StatusMessage    string     `gorm:"size:200" json:"status_message"` // 프로필 상태 메시지
	Role             string     `gorm:"size:20;default:'user';not null" json:"role"`
	Status           string     `gorm:"size:20;default:'active';not null" json:"status"`
	SuspensionReason *string    `json:"suspension_reason"`
	SuspendedUntil   *time.Time `json:"suspended_until"`
	SuspendedAt      *time.Time `json:"suspended_at"`
	Score            int        `gorm:"default:0" json:"score"`      // 레거시 점수, 랭킹용
	Level            int        `gorm:"default:1" json:"level"`      // EXP로 계산되는 레벨
	Experience       int        `gorm:"default:0" json:"experience"` // 누적 EXP, 감소하지 않음
	Points           int        `gorm:"default:0" json:"points"`     // AI 질문에 사용하는 포인트
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// IsStaff 운영진 여부 (moderator 이상)
func (u *User) IsStaff() bool {
	return u.Role == RoleModerator || u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}

// IsRestricted 정지/차단 상태 여부
func (u *User) IsRestricted() bool {
	return u.Status == UserStatusSuspended || u.Status == UserStatusBanned
}
