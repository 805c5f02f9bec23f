package handlers

import (
	"log"
	"net/http"

	"garshub/internal/db"
	"garshub/internal/models"
	"garshub/internal/services"
	"garshub/internal/utils"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct{}

func NewAnswerHandler() *AnswerHandler {
	return &AnswerHandler{}
}

type createAnswerRequest struct {
	Content string   `json:"content"`
	Images  []string `json:"images"`
}

// Create 답변 등록.
// 답변 행, 이미지, score +10을 하나의 트랜잭션으로 저장하고 커밋 후 보상을 지급한다.
func (h *AnswerHandler) Create(c *gin.Context) {
	user := CurrentUser(c)

	if user.IsRestricted() {
		c.JSON(http.StatusForbidden, gin.H{"error": "계정이 제한되어 답변을 작성할 수 없습니다."})
		return
	}

	questionID := utils.StringToUint(c.Param("id"))

	var req createAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "답변 내용은 필수입니다."})
		return
	}

	dedupKey := utils.DedupKey(user.ID, "answer", c.Param("id"), req.Content)
	if utils.GetCache().IsDuplicateRequest(dedupKey) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "잠시 후 다시 시도해주세요."})
		return
	}

	var question models.Question
	if err := db.DB.First(&question, questionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "질문을 찾을 수 없습니다."})
		return
	}

	answerID, err := services.CreateAnswer(question.ID, user.ID, Sanitize(req.Content), req.Images)
	if err != nil {
		log.Printf("답변 생성 오류 (user=%s, question=%d): %v", user.ID, question.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "답변 등록에 실패했습니다."})
		return
	}

	response := gin.H{"id": answerID, "message": "답변이 등록되었습니다."}

	reward, err := services.GrantContentReward(user.ID, services.ActionAnswerPosted)
	if err != nil {
		// 보상 실패는 답변 등록을 막지 않는다
		log.Printf("보상 처리 실패 (user=%s, action=%s): %v", user.ID, services.ActionAnswerPosted, err)
	} else if reward.LeveledUp {
		response["levelUp"] = reward
	}

	c.JSON(http.StatusCreated, response)
}

// Detail 답변 단건 조회
func (h *AnswerHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var answer models.Answer
	if err := db.DB.Preload("User").First(&answer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "답변을 찾을 수 없습니다."})
		return
	}

	var images []models.Image
	db.DB.Where("entity_type = ? AND entity_id = ?", models.EntityAnswer, answer.ID).Find(&images)
	urls := make([]string, len(images))
	for i, img := range images {
		urls[i] = img.URL
	}

	c.JSON(http.StatusOK, AnswerJSON{
		ID:      answer.ID,
		Content: answer.Content,
		Author: AuthorJSON{
			ID:    answer.User.ID,
			Name:  answer.User.DisplayName,
			Level: answer.User.Level,
		},
		Images:    urls,
		CreatedAt: answer.CreatedAt,
		Status:    answer.Status,
	})
}

type updateAnswerRequest struct {
	Content string `json:"content"`
}

// Update 답변 수정 (작성자 또는 운영진)
func (h *AnswerHandler) Update(c *gin.Context) {
	user := CurrentUser(c)
	id := utils.StringToUint(c.Param("id"))

	var answer models.Answer
	if err := db.DB.First(&answer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "답변을 찾을 수 없습니다."})
		return
	}

	if answer.UserID != user.ID && !user.IsStaff() {
		c.JSON(http.StatusForbidden, gin.H{"error": "수정 권한이 없습니다."})
		return
	}

	var req updateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "답변 내용은 필수입니다."})
		return
	}

	if err := db.DB.Model(&answer).Update("content", Sanitize(req.Content)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "답변 수정에 실패했습니다."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "답변이 수정되었습니다."})
}

// Delete 답변 삭제 (작성자 또는 운영진).
// score만 -10으로 되돌리며, 이미 지급된 EXP/포인트는 회수하지 않는다.
func (h *AnswerHandler) Delete(c *gin.Context) {
	user := CurrentUser(c)
	id := utils.StringToUint(c.Param("id"))

	var answer models.Answer
	if err := db.DB.First(&answer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "답변을 찾을 수 없습니다."})
		return
	}

	if answer.UserID != user.ID && !user.IsStaff() {
		c.JSON(http.StatusForbidden, gin.H{"error": "삭제 권한이 없습니다."})
		return
	}

	if err := services.DeleteAnswer(answer.ID); err != nil {
		log.Printf("답변 삭제 오류 (answer=%d): %v", answer.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "답변 삭제에 실패했습니다."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "답변이 삭제되었습니다."})
}
