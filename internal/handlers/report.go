package handlers

import (
	"net/http"
	"strings"
	"time"

	"garshub/internal/db"
	"garshub/internal/models"
	"garshub/internal/services"
	"garshub/internal/utils"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct{}

func NewReportHandler() *ReportHandler {
	return &ReportHandler{}
}

type createReportRequest struct {
	TargetType  string  `json:"targetType"`
	TargetID    uint    `json:"targetId"`
	Reason      string  `json:"reason"`
	Description *string `json:"description"`
}

// Create 게시물 신고. 같은 대상에 대한 중복 신고는 거부한다
func (h *ReportHandler) Create(c *gin.Context) {
	user := CurrentUser(c)

	var req createReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다."})
		return
	}

	if req.TargetType != models.EntityQuestion && req.TargetType != models.EntityAnswer {
		c.JSON(http.StatusBadRequest, gin.H{"error": "유효하지 않은 신고 대상입니다."})
		return
	}
	if req.Reason == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "신고 사유는 필수입니다."})
		return
	}

	report := models.Report{
		ReporterID:  user.ID,
		TargetType:  req.TargetType,
		TargetID:    req.TargetID,
		Reason:      req.Reason,
		Description: req.Description,
		Status:      models.ReportStatusPending,
	}
	if err := db.DB.Create(&report).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "idx_reports_once") {
			c.JSON(http.StatusConflict, gin.H{"error": "이미 신고한 게시물입니다."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "신고 등록에 실패했습니다."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": report.ID, "message": "신고가 접수되었습니다."})
}

// List 신고 목록 (운영진용)
func (h *ReportHandler) List(c *gin.Context) {
	status := c.DefaultQuery("status", models.ReportStatusPending)
	limit := utils.StringToInt(c.DefaultQuery("limit", "50"))
	offset := utils.StringToInt(c.DefaultQuery("offset", "0"))

	query := db.DB.Preload("Reporter").Order("created_at DESC").Limit(limit).Offset(offset)
	if status != "all" {
		query = query.Where("status = ?", status)
	}

	var reports []models.Report
	query.Find(&reports)

	c.JSON(http.StatusOK, reports)
}

type reviewReportRequest struct {
	Status     string  `json:"status"`
	AdminNotes *string `json:"adminNotes"`
}

// Review 신고 처리 (운영진용)
func (h *ReportHandler) Review(c *gin.Context) {
	admin := CurrentUser(c)
	id := utils.StringToUint(c.Param("id"))

	var req reviewReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다."})
		return
	}

	if req.Status != models.ReportStatusReviewed && req.Status != models.ReportStatusDismissed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "유효하지 않은 상태입니다."})
		return
	}

	result := db.DB.Model(&models.Report{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":      req.Status,
		"reviewed_by": admin.ID,
		"reviewed_at": time.Now(),
		"admin_notes": req.AdminNotes,
	})
	if result.Error != nil || result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "신고를 찾을 수 없습니다."})
		return
	}

	services.LogAdminAction(admin.ID, "review_report", "report", c.Param("id"), req.AdminNotes,
		gin.H{"status": req.Status})

	c.JSON(http.StatusOK, gin.H{"message": "신고가 처리되었습니다."})
}
