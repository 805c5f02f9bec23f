package handlers

import (
	"log"
	"net/http"
	"time"

	"garshub/internal/db"
	"garshub/internal/models"
	"garshub/internal/services"
	"garshub/internal/utils"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct{}

func NewQuestionHandler() *QuestionHandler {
	return &QuestionHandler{}
}

// AuthorJSON 목록 응답용 작성자 요약
type AuthorJSON struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type AnswerJSON struct {
	ID        uint       `json:"id"`
	Content   string     `json:"content"`
	Author    AuthorJSON `json:"author"`
	Images    []string   `json:"images"`
	CreatedAt time.Time  `json:"created_at"`
	Status    string     `json:"status"`
}

type QuestionJSON struct {
	ID        uint         `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Author    AuthorJSON   `json:"author"`
	Images    []string     `json:"images"`
	Answers   []AnswerJSON `json:"answers"`
	CreatedAt time.Time    `json:"created_at"`
	Status    string       `json:"status"`
}

// fetchImageMap 엔티티별 이미지 URL을 한 번에 조회해 매핑한다
func fetchImageMap(entityType string, ids []uint) map[uint][]string {
	imageMap := make(map[uint][]string)
	if len(ids) == 0 {
		return imageMap
	}

	var images []models.Image
	db.DB.Where("entity_type = ? AND entity_id IN ?", entityType, ids).Find(&images)
	for _, img := range images {
		imageMap[img.EntityID] = append(imageMap[img.EntityID], img.URL)
	}
	return imageMap
}

// buildQuestionJSON 질문 + 답변 + 이미지 프로젝션 조립
func buildQuestionJSON(questions []models.Question) []QuestionJSON {
	questionIDs := make([]uint, len(questions))
	for i, q := range questions {
		questionIDs[i] = q.ID
	}

	var answers []models.Answer
	if len(questionIDs) > 0 {
		db.DB.Preload("User").
			Joins("JOIN users ON users.id = answers.user_id AND users.status = ?", models.UserStatusActive).
			Where("answers.question_id IN ? AND answers.status = ?", questionIDs, models.ContentStatusActive).
			Order("answers.created_at ASC").
			Find(&answers)
	}

	answerIDs := make([]uint, len(answers))
	for i, a := range answers {
		answerIDs[i] = a.ID
	}

	questionImages := fetchImageMap(models.EntityQuestion, questionIDs)
	answerImages := fetchImageMap(models.EntityAnswer, answerIDs)

	answerMap := make(map[uint][]AnswerJSON)
	for _, a := range answers {
		answerMap[a.QuestionID] = append(answerMap[a.QuestionID], AnswerJSON{
			ID:      a.ID,
			Content: a.Content,
			Author: AuthorJSON{
				ID:    a.User.ID,
				Name:  a.User.DisplayName,
				Level: a.User.Level,
			},
			Images:    answerImages[a.ID],
			CreatedAt: a.CreatedAt,
			Status:    a.Status,
		})
	}

	result := make([]QuestionJSON, 0, len(questions))
	for _, q := range questions {
		result = append(result, QuestionJSON{
			ID:      q.ID,
			Title:   q.Title,
			Content: q.Content,
			Author: AuthorJSON{
				ID:    q.User.ID,
				Name:  q.User.DisplayName,
				Level: q.User.Level,
			},
			Images:    questionImages[q.ID],
			Answers:   answerMap[q.ID],
			CreatedAt: q.CreatedAt,
			Status:    q.Status,
		})
	}
	return result
}

// List 활성 사용자의 활성 질문 목록 (답변/이미지 포함)
func (h *QuestionHandler) List(c *gin.Context) {
	var questions []models.Question
	db.DB.Preload("User").
		Joins("JOIN users ON users.id = questions.user_id AND users.status = ?", models.UserStatusActive).
		Where("questions.status = ?", models.ContentStatusActive).
		Order("questions.created_at DESC").
		Find(&questions)

	c.JSON(http.StatusOK, buildQuestionJSON(questions))
}

// Detail 질문 단건 조회
func (h *QuestionHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var question models.Question
	if err := db.DB.Preload("User").First(&question, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "질문을 찾을 수 없습니다."})
		return
	}

	result := buildQuestionJSON([]models.Question{question})
	c.JSON(http.StatusOK, result[0])
}

type createQuestionRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Images  []string `json:"images"`
}

// Create 질문 등록.
// 질문 행과 이미지는 하나의 트랜잭션으로 저장하고, 커밋된 뒤에만
// EXP/포인트 보상을 지급한다. 보상 실패는 로그만 남기고 응답은 성공으로 나간다.
func (h *QuestionHandler) Create(c *gin.Context) {
	user := CurrentUser(c)

	if user.IsRestricted() {
		c.JSON(http.StatusForbidden, gin.H{"error": "계정이 제한되어 질문을 작성할 수 없습니다."})
		return
	}

	var req createQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다."})
		return
	}

	if req.Title == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "제목과 내용은 필수입니다."})
		return
	}

	// 중복 제출 방지 (사용자 + 제목 + 내용, 5초 윈도우)
	dedupKey := utils.DedupKey(user.ID, "question", req.Title, req.Content)
	if utils.GetCache().IsDuplicateRequest(dedupKey) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "잠시 후 다시 시도해주세요."})
		return
	}

	questionID, err := services.CreateQuestion(user.ID, Sanitize(req.Title), Sanitize(req.Content), req.Images)
	if err != nil {
		log.Printf("질문 생성 오류 (user=%s): %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "질문 등록에 실패했습니다."})
		return
	}

	response := gin.H{"id": questionID, "message": "질문이 등록되었습니다."}

	reward, err := services.GrantContentReward(user.ID, services.ActionQuestionPosted)
	if err != nil {
		// 보상 실패는 질문 등록을 막지 않는다
		log.Printf("보상 처리 실패 (user=%s, action=%s): %v", user.ID, services.ActionQuestionPosted, err)
	} else if reward.LeveledUp {
		response["levelUp"] = reward
	}

	// AI 자동 답변은 백그라운드에서 생성
	services.GetAIAnswerService().Schedule(questionID)

	c.JSON(http.StatusCreated, response)
}

type updateQuestionRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Update 질문 수정 (작성자 또는 운영진)
func (h *QuestionHandler) Update(c *gin.Context) {
	user := CurrentUser(c)
	id := utils.StringToUint(c.Param("id"))

	var question models.Question
	if err := db.DB.First(&question, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "질문을 찾을 수 없습니다."})
		return
	}

	if question.UserID != user.ID && !user.IsStaff() {
		c.JSON(http.StatusForbidden, gin.H{"error": "수정 권한이 없습니다."})
		return
	}

	var req updateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "제목과 내용은 필수입니다."})
		return
	}

	if err := db.DB.Model(&question).Updates(map[string]interface{}{
		"title":   Sanitize(req.Title),
		"content": Sanitize(req.Content),
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "질문 수정에 실패했습니다."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "질문이 수정되었습니다."})
}

// Delete 질문 삭제 (작성자 또는 운영진).
// 질문과 이미지를 한 트랜잭션으로 삭제하며, 답변은 CASCADE로 함께 지워진다.
func (h *QuestionHandler) Delete(c *gin.Context) {
	user := CurrentUser(c)
	id := utils.StringToUint(c.Param("id"))

	var question models.Question
	if err := db.DB.First(&question, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "질문을 찾을 수 없습니다."})
		return
	}

	if question.UserID != user.ID && !user.IsStaff() {
		c.JSON(http.StatusForbidden, gin.H{"error": "삭제 권한이 없습니다."})
		return
	}

	if err := services.DeleteQuestion(question.ID); err != nil {
		log.Printf("질문 삭제 오류 (question=%d): %v", question.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "질문 삭제에 실패했습니다."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "질문이 삭제되었습니다."})
}
