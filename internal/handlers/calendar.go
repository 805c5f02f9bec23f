package handlers

import (
	"net/http"

	"garshub/internal/db"
	"garshub/internal/models"
	"garshub/internal/utils"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct{}

func NewCalendarHandler() *CalendarHandler {
	return &CalendarHandler{}
}

// List 일정 목록 (공개)
func (h *CalendarHandler) List(c *gin.Context) {
	var events []models.CalendarEvent
	db.DB.Order("date ASC, time ASC").Find(&events)
	c.JSON(http.StatusOK, events)
}

type calendarEventRequest struct {
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Description *string `json:"description"`
}

// Create 일정 추가 (운영진용)
func (h *CalendarHandler) Create(c *gin.Context) {
	var req calendarEventRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Date == "" || req.Time == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "제목, 날짜, 시간은 필수입니다."})
		return
	}

	event := models.CalendarEvent{
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Description: req.Description,
	}
	if err := db.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "이벤트 생성에 실패했습니다."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "eventId": event.ID})
}

// Update 일정 수정 (운영진용)
func (h *CalendarHandler) Update(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var req calendarEventRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Date == "" || req.Time == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "제목, 날짜, 시간은 필수입니다."})
		return
	}

	result := db.DB.Model(&models.CalendarEvent{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":       req.Title,
		"date":        req.Date,
		"time":        req.Time,
		"description": req.Description,
	})
	if result.Error != nil || result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "이벤트를 찾을 수 없습니다."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete 일정 삭제 (운영진용)
func (h *CalendarHandler) Delete(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	if err := db.DB.Delete(&models.CalendarEvent{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "이벤트 삭제에 실패했습니다."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
