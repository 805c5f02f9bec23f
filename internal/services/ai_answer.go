package services

import (
	"log"
	"sync"

	"garshub/internal/db"
	"garshub/internal/models"
)

// AIAnswerService 새 질문에 대한 AI 자동 답변을 백그라운드에서 생성하는 서비스
type AIAnswerService struct {
	queue   chan uint // 답변 대기 중인 질문 ID 큐
	pending map[uint]bool
	mu      sync.Mutex
}

var (
	aiAnswerService *AIAnswerService
	aiAnswerOnce    sync.Once
)

// GetAIAnswerService 싱글톤 AI 답변 서비스
func GetAIAnswerService() *AIAnswerService {
	aiAnswerOnce.Do(func() {
		aiAnswerService = &AIAnswerService{
			queue:   make(chan uint, 100), // 버퍼 큐, 핸들러 블로킹 방지
			pending: make(map[uint]bool),
		}
		go aiAnswerService.worker()
	})
	return aiAnswerService
}

// Schedule 질문을 AI 답변 큐에 추가한다 (비동기, 중복 제거)
func (s *AIAnswerService) Schedule(questionID uint) {
	if !GetGeminiService().Enabled {
		return
	}

	s.mu.Lock()
	if s.pending[questionID] {
		s.mu.Unlock()
		return
	}
	s.pending[questionID] = true
	s.mu.Unlock()

	select {
	case s.queue <- questionID:
	default:
		// 큐가 가득 찼으면 pending 표시를 해제하고 건너뛴다
		s.mu.Lock()
		delete(s.pending, questionID)
		s.mu.Unlock()
		log.Printf("AI 답변 큐가 가득 참, 질문 %d 건너뜀", questionID)
	}
}

// worker 큐의 질문을 순서대로 처리한다
func (s *AIAnswerService) worker() {
	for questionID := range s.queue {
		s.process(questionID)

		s.mu.Lock()
		delete(s.pending, questionID)
		s.mu.Unlock()
	}
}

func (s *AIAnswerService) process(questionID uint) {
	var question models.Question
	if err := db.DB.First(&question, questionID).Error; err != nil {
		log.Printf("AI 답변 대상 질문 조회 실패 (질문 #%d): %v", questionID, err)
		return
	}
	if question.Status != models.ContentStatusActive {
		return
	}

	var images []models.Image
	db.DB.Where("entity_type = ? AND entity_id = ?", models.EntityQuestion, questionID).
		Find(&images)

	gemini := GetGeminiService()

	var response string
	var err error
	if len(images) > 0 {
		response, err = gemini.AnswerImageQuestion(question.Title, question.Content, images[0].URL)
	} else {
		response, err = gemini.AnswerTextQuestion(question.Title, question.Content)
	}
	if err != nil {
		log.Printf("AI 답변 생성 실패 (질문 #%d): %v", questionID, err)
		return
	}

	answerID, err := CreateAnswer(questionID, db.AIAssistantID, response, nil)
	if err != nil {
		log.Printf("AI 답변 저장 실패 (질문 #%d): %v", questionID, err)
		return
	}

	// AI 도우미도 일반 답변과 동일한 보상 경로를 탄다
	if _, err := GrantContentReward(db.AIAssistantID, ActionAnswerPosted); err != nil {
		log.Printf("보상 처리 실패 (user=%s, action=%s): %v", db.AIAssistantID, ActionAnswerPosted, err)
	}

	log.Printf("AI 답변 생성 완료 (질문 #%d, 답변 #%d)", questionID, answerID)
}
