package handlers

import (
	"log"
	"net/http"
	"strings"

	"garshub/internal/services"

	"github.com/gin-gonic/gin"
)

type AIHandler struct{}

func NewAIHandler() *AIHandler {
	return &AIHandler{}
}

type aiChatRequest struct {
	Message string `json:"message"`
}

// Chat 무료 AI 채팅 (포인트 차감 없음)
func (h *AIHandler) Chat(c *gin.Context) {
	var req aiChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "메시지를 입력해주세요."})
		return
	}

	gemini := services.GetGeminiService()
	if !gemini.Enabled {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI 서비스가 현재 사용할 수 없습니다. GEMINI_API_KEY를 설정해주세요."})
		return
	}

	response, err := gemini.AnswerTextQuestion(req.Message, "")
	if err != nil {
		log.Printf("AI 채팅 오류: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI 채팅에 실패했습니다."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"response": response,
		"message":  "AI 응답이 생성되었습니다.",
	})
}

type aiQuestionRequest struct {
	Question string   `json:"question"`
	Images   []string `json:"images"`
}

// Question 포인트를 차감하는 AI 질문.
// 잔액 검사는 차감 전에 여기서 수행한다. 원장의 0 클램프를 가드로 쓰지 않는다.
func (h *AIHandler) Question(c *gin.Context) {
	user := CurrentUser(c)

	var req aiQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "질문을 입력해주세요."})
		return
	}

	gemini := services.GetGeminiService()
	if !gemini.Enabled {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI 서비스가 현재 사용할 수 없습니다. GEMINI_API_KEY를 설정해주세요."})
		return
	}

	status, err := services.GetUserPoints(user.ID)
	if err != nil {
		log.Printf("포인트 조회 실패 (user=%s): %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "포인트 정보를 확인할 수 없습니다."})
		return
	}
	if status == nil || !status.CanAskAI {
		needed := services.AIQuestionCost
		if status != nil {
			needed = status.Needed
		}
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "포인트가 부족합니다.", "needed": needed})
		return
	}

	remaining, err := services.DeductUserPoints(user.ID, services.AIQuestionCost)
	if err != nil {
		log.Printf("포인트 차감 실패 (user=%s): %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "포인트 차감에 실패했습니다."})
		return
	}

	var answer string
	if len(req.Images) > 0 {
		answer, err = gemini.AnswerImageQuestion(req.Question, "", req.Images[0])
	} else {
		answer, err = gemini.AnswerTextQuestion(req.Question, "")
	}
	if err != nil {
		log.Printf("AI 질문 오류 (user=%s): %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI 질문에 실패했습니다."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"answer":          answer,
		"message":         "AI 답변이 생성되었습니다.",
		"pointsUsed":      services.AIQuestionCost,
		"remainingPoints": remaining,
	})
}
