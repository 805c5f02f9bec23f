package services

import (
	"encoding/json"
	"log"

	"garshub/internal/db"
	"garshub/internal/models"
)

// LogAdminAction 관리자 행동을 admin_logs에 기록한다.
// 감사 기록 실패가 본 작업을 막지는 않는다.
func LogAdminAction(adminID, actionType, targetType, targetID string, reason *string, details interface{}) {
	var detailsJSON *string
	if details != nil {
		if b, err := json.Marshal(details); err == nil {
			s := string(b)
			detailsJSON = &s
		}
	}

	entry := models.AdminLog{
		AdminID:    adminID,
		ActionType: actionType,
		TargetType: targetType,
		TargetID:   targetID,
		Reason:     reason,
		Details:    detailsJSON,
	}
	if err := db.DB.Create(&entry).Error; err != nil {
		log.Printf("관리자 로그 기록 실패 (admin=%s, action=%s): %v", adminID, actionType, err)
	}
}

// GetAdminLogs 최근 관리자 로그 조회
func GetAdminLogs(limit, offset int) ([]models.AdminLog, error) {
	var logs []models.AdminLog
	err := db.DB.Preload("Admin").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error
	return logs, err
}
