package handlers

import (
	"net/http"
	"time"

	"garshub/internal/db"
	"garshub/internal/models"
	"garshub/internal/services"
	"garshub/internal/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// Check 관리자 권한 확인 (미들웨어 통과 여부만 반환)
func (h *AdminHandler) Check(c *gin.Context) {
	user := CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"isAdmin": true, "role": user.Role})
}

// Stats 운영 통계
func (h *AdminHandler) Stats(c *gin.Context) {
	var stats struct {
		ActiveUsers     int64 `json:"active_users"`
		SuspendedUsers  int64 `json:"suspended_users"`
		BannedUsers     int64 `json:"banned_users"`
		ActiveQuestions int64 `json:"active_questions"`
		HiddenQuestions int64 `json:"hidden_questions"`
		ActiveAnswers   int64 `json:"active_answers"`
		HiddenAnswers   int64 `json:"hidden_answers"`
		TodayActions    int64 `json:"today_actions"`
	}

	db.DB.Model(&models.User{}).Where("status = ?", models.UserStatusActive).Count(&stats.ActiveUsers)
	db.DB.Model(&models.User{}).Where("status = ?", models.UserStatusSuspended).Count(&stats.SuspendedUsers)
	db.DB.Model(&models.User{}).Where("status = ?", models.UserStatusBanned).Count(&stats.BannedUsers)
	db.DB.Model(&models.Question{}).Where("status = ?", models.ContentStatusActive).Count(&stats.ActiveQuestions)
	db.DB.Model(&models.Question{}).Where("status = ?", models.ContentStatusHidden).Count(&stats.HiddenQuestions)
	db.DB.Model(&models.Answer{}).Where("status = ?", models.ContentStatusActive).Count(&stats.ActiveAnswers)
	db.DB.Model(&models.Answer{}).Where("status = ?", models.ContentStatusHidden).Count(&stats.HiddenAnswers)

	startOfDay := time.Now().Truncate(24 * time.Hour)
	db.DB.Model(&models.AdminLog{}).Where("created_at >= ?", startOfDay).Count(&stats.TodayActions)

	c.JSON(http.StatusOK, stats)
}

// Users 사용자 목록
func (h *AdminHandler) Users(c *gin.Context) {
	limit := utils.StringToInt(c.DefaultQuery("limit", "50"))
	offset := utils.StringToInt(c.DefaultQuery("offset", "0"))

	var users []models.User
	db.DB.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users)

	c.JSON(http.StatusOK, users)
}

// Questions 모든 상태의 질문 목록 (숨김 포함)
func (h *AdminHandler) Questions(c *gin.Context) {
	var questions []models.Question
	db.DB.Preload("User").Order("created_at DESC").Find(&questions)

	c.JSON(http.StatusOK, buildQuestionJSON(questions))
}

// Logs 관리자 행동 로그
func (h *AdminHandler) Logs(c *gin.Context) {
	limit := utils.StringToInt(c.DefaultQuery("limit", "100"))
	offset := utils.StringToInt(c.DefaultQuery("offset", "0"))

	logs, err := services.GetAdminLogs(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "로그를 불러올 수 없습니다."})
		return
	}

	c.JSON(http.StatusOK, logs)
}

type updateUserStatusRequest struct {
	Status         string     `json:"status"`
	Reason         *string    `json:"reason"`
	SuspendedUntil *time.Time `json:"suspendedUntil"`
}

// UpdateUserStatus 사용자 정지/차단/복원
func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	admin := CurrentUser(c)
	targetID := c.Param("id")

	var req updateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다."})
		return
	}

	switch req.Status {
	case models.UserStatusActive, models.UserStatusSuspended, models.UserStatusBanned:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "유효하지 않은 상태입니다."})
		return
	}

	var target models.User
	if err := db.DB.First(&target, "id = ?", targetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "사용자를 찾을 수 없습니다."})
		return
	}

	updates := map[string]interface{}{
		"status":            req.Status,
		"suspension_reason": req.Reason,
		"suspended_until":   req.SuspendedUntil,
	}
	if req.Status == models.UserStatusSuspended || req.Status == models.UserStatusBanned {
		updates["suspended_at"] = time.Now()
	} else {
		// 정상 복원 시 정지 시각 초기화
		updates["suspended_at"] = nil
	}

	if err := db.DB.Model(&target).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "상태 변경에 실패했습니다."})
		return
	}

	services.LogAdminAction(admin.ID, "update_user_status", "user", targetID, req.Reason,
		gin.H{"status": req.Status, "suspendedUntil": req.SuspendedUntil})

	c.JSON(http.StatusOK, gin.H{"message": "사용자 상태가 변경되었습니다."})
}

type updateUserRoleRequest struct {
	Role string `json:"role"`
}

// UpdateUserRole 사용자 역할 변경
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	admin := CurrentUser(c)
	targetID := c.Param("id")

	var req updateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다."})
		return
	}

	switch req.Role {
	case models.RoleUser, models.RoleModerator, models.RoleAdmin, models.RoleSuperAdmin:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "유효하지 않은 역할입니다."})
		return
	}

	if err := db.DB.Model(&models.User{}).Where("id = ?", targetID).
		Update("role", req.Role).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "역할 변경에 실패했습니다."})
		return
	}

	services.LogAdminAction(admin.ID, "update_user_role", "user", targetID, nil,
		gin.H{"role": req.Role})

	c.JSON(http.StatusOK, gin.H{"message": "사용자 역할이 변경되었습니다."})
}

type updateContentStatusRequest struct {
	Status string  `json:"status"`
	Reason *string `json:"reason"`
}

// UpdateQuestionStatus 질문 숨기기/복원
func (h *AdminHandler) UpdateQuestionStatus(c *gin.Context) {
	admin := CurrentUser(c)
	id := utils.StringToUint(c.Param("id"))

	var req updateContentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다."})
		return
	}

	updates := contentStatusUpdates(admin.ID, req)
	if updates == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "유효하지 않은 상태입니다."})
		return
	}

	result := db.DB.Model(&models.Question{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil || result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "질문을 찾을 수 없습니다."})
		return
	}

	services.LogAdminAction(admin.ID, "update_question_status", "question", c.Param("id"), req.Reason,
		gin.H{"status": req.Status})

	c.JSON(http.StatusOK, gin.H{"message": "질문 상태가 변경되었습니다."})
}

// UpdateAnswerStatus 답변 숨기기/복원
func (h *AdminHandler) UpdateAnswerStatus(c *gin.Context) {
	admin := CurrentUser(c)
	id := utils.StringToUint(c.Param("id"))

	var req updateContentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다."})
		return
	}

	updates := contentStatusUpdates(admin.ID, req)
	if updates == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "유효하지 않은 상태입니다."})
		return
	}

	result := db.DB.Model(&models.Answer{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil || result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "답변을 찾을 수 없습니다."})
		return
	}

	services.LogAdminAction(admin.ID, "update_answer_status", "answer", c.Param("id"), req.Reason,
		gin.H{"status": req.Status})

	c.JSON(http.StatusOK, gin.H{"message": "답변 상태가 변경되었습니다."})
}

// contentStatusUpdates 숨김/복원에 따른 갱신 컬럼. 잘못된 상태면 nil
func contentStatusUpdates(adminID string, req updateContentStatusRequest) map[string]interface{} {
	switch req.Status {
	case models.ContentStatusHidden:
		return map[string]interface{}{
			"status":        models.ContentStatusHidden,
			"hidden_by":     adminID,
			"hidden_reason": req.Reason,
			"hidden_at":     time.Now(),
		}
	case models.ContentStatusActive:
		return map[string]interface{}{
			"status":        models.ContentStatusActive,
			"hidden_by":     nil,
			"hidden_reason": nil,
			"hidden_at":     nil,
		}
	default:
		return nil
	}
}
