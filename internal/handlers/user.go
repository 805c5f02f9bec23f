package handlers

import (
	"log"
	"net/http"
	"strings"

	"garshub/internal/db"
	"garshub/internal/models"
	"garshub/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Me 로그인한 사용자 정보
func (h *UserHandler) Me(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "로그인이 필요합니다."})
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateProfileRequest struct {
	DisplayName   string  `json:"displayName"`
	StatusMessage *string `json:"statusMessage"`
}

// UpdateProfile 닉네임/상태 메시지 변경
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user := CurrentUser(c)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다."})
		return
	}

	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "닉네임은 필수입니다."})
		return
	}

	updates := map[string]interface{}{"display_name": displayName}
	if req.StatusMessage != nil {
		updates["status_message"] = strings.TrimSpace(*req.StatusMessage)
	}

	if err := db.DB.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "프로필 수정에 실패했습니다."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "프로필이 수정되었습니다."})
}

// LevelInfo 레벨/EXP/포인트 프로젝션 (프로필 UI용)
func (h *UserHandler) LevelInfo(c *gin.Context) {
	user := CurrentUser(c)

	info, err := services.GetUserLevelInfo(user.ID)
	if err != nil {
		log.Printf("레벨 정보 조회 실패 (user=%s): %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "레벨 정보를 불러올 수 없습니다."})
		return
	}
	if info == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "사용자를 찾을 수 없습니다."})
		return
	}

	c.JSON(http.StatusOK, info)
}

// Points 포인트 현황 (AI 질문 화면용)
func (h *UserHandler) Points(c *gin.Context) {
	user := CurrentUser(c)

	status, err := services.GetUserPoints(user.ID)
	if err != nil {
		log.Printf("포인트 조회 실패 (user=%s): %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "포인트 정보를 불러올 수 없습니다."})
		return
	}
	if status == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "사용자를 찾을 수 없습니다."})
		return
	}

	c.JSON(http.StatusOK, status)
}

// Rankings 점수 상위 10명 (메인 화면 랭킹판)
func (h *UserHandler) Rankings(c *gin.Context) {
	type rankRow struct {
		Name  string `json:"name"`
		Score int    `json:"score"`
	}

	var rankings []rankRow
	db.DB.Model(&models.User{}).
		Select("display_name as name, score").
		Order("score DESC").
		Limit(10).
		Scan(&rankings)

	c.JSON(http.StatusOK, rankings)
}

// rankingUserRow 랭킹 목록 응답 행
type rankingUserRow struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Score       int    `json:"score"`
	Level       int    `json:"level"`
	Experience  int    `json:"experience"`
	Points      int    `json:"points"`
}

// ScoreRanking 활성 사용자 점수 랭킹 상위 50명
func (h *UserHandler) ScoreRanking(c *gin.Context) {
	var rankings []rankingUserRow
	db.DB.Model(&models.User{}).
		Select("id, display_name, score, level, experience, points").
		Where("status = ?", models.UserStatusActive).
		Order("score DESC, experience DESC").
		Limit(50).
		Scan(&rankings)

	c.JSON(http.StatusOK, rankings)
}

// LevelRanking 활성 사용자 레벨 랭킹 상위 50명
func (h *UserHandler) LevelRanking(c *gin.Context) {
	var rankings []rankingUserRow
	db.DB.Model(&models.User{}).
		Select("id, display_name, score, level, experience, points").
		Where("status = ?", models.UserStatusActive).
		Order("level DESC, experience DESC, score DESC").
		Limit(50).
		Scan(&rankings)

	c.JSON(http.StatusOK, rankings)
}

// MyRanking 로그인 사용자의 점수/레벨 순위
func (h *UserHandler) MyRanking(c *gin.Context) {
	user := CurrentUser(c)

	var current models.User
	if err := db.DB.Select("score", "level", "experience", "points").
		First(&current, "id = ?", user.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "사용자 정보를 찾을 수 없습니다."})
		return
	}

	var scoreRank, levelRank int64
	db.DB.Model(&models.User{}).
		Where("status = ? AND score > ?", models.UserStatusActive, current.Score).
		Count(&scoreRank)
	db.DB.Model(&models.User{}).
		Where("status = ? AND (level > ? OR (level = ? AND experience > ?))",
			models.UserStatusActive, current.Level, current.Level, current.Experience).
		Count(&levelRank)

	c.JSON(http.StatusOK, gin.H{
		"score":      current.Score,
		"level":      current.Level,
		"experience": current.Experience,
		"points":     current.Points,
		"scoreRank":  scoreRank + 1,
		"levelRank":  levelRank + 1,
	})
}
