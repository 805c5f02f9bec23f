package services

import (
	"garshub/internal/db"
	"garshub/internal/models"

	"gorm.io/gorm"
)

// 답변 작성 시 점수 증가량 (레거시 score 카운터, EXP/포인트와 무관)
const AnswerScoreReward = 10

// CreateQuestion 질문과 첨부 이미지를 하나의 트랜잭션으로 저장한다.
// 커밋 이후의 보상 지급은 호출 측에서 GrantContentReward로 처리한다.
func CreateQuestion(userID, title, content string, imageURLs []string) (uint, error) {
	var question models.Question

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		question = models.Question{
			UserID:  userID,
			Title:   title,
			Content: content,
			Status:  models.ContentStatusActive,
		}
		if err := tx.Create(&question).Error; err != nil {
			return err
		}

		for _, url := range imageURLs {
			image := models.Image{
				URL:        url,
				EntityType: models.EntityQuestion,
				EntityID:   question.ID,
			}
			if err := tx.Create(&image).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return question.ID, nil
}

// CreateAnswer 답변, 첨부 이미지, 점수 증가를 하나의 트랜잭션으로 저장한다.
func CreateAnswer(questionID uint, userID, content string, imageURLs []string) (uint, error) {
	var answer models.Answer

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		answer = models.Answer{
			QuestionID: questionID,
			UserID:     userID,
			Content:    content,
			Status:     models.ContentStatusActive,
		}
		if err := tx.Create(&answer).Error; err != nil {
			return err
		}

		for _, url := range imageURLs {
			image := models.Image{
				URL:        url,
				EntityType: models.EntityAnswer,
				EntityID:   answer.ID,
			}
			if err := tx.Create(&image).Error; err != nil {
				return err
			}
		}

		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			UpdateColumn("score", gorm.Expr("score + ?", AnswerScoreReward)).
			Error
	})
	if err != nil {
		return 0, err
	}

	return answer.ID, nil
}

// DeleteQuestion 질문과 질문 이미지를 하나의 트랜잭션으로 삭제한다.
// 답변은 외래키 CASCADE로 함께 삭제된다.
func DeleteQuestion(questionID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("entity_type = ? AND entity_id = ?", models.EntityQuestion, questionID).
			Delete(&models.Image{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Question{}, questionID).Error
	})
}

// DeleteAnswer 답변 삭제의 역연산은 점수에만 적용된다.
// 이미 지급된 EXP/포인트는 되돌리지 않는다 (레벨 다운 경로는 존재하지 않음).
func DeleteAnswer(answerID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var answer models.Answer
		if err := tx.Select("user_id").First(&answer, answerID).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", answer.UserID).
			UpdateColumn("score", gorm.Expr("score - ?", AnswerScoreReward)).
			Error; err != nil {
			return err
		}

		if err := tx.Where("entity_type = ? AND entity_id = ?", models.EntityAnswer, answerID).
			Delete(&models.Image{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Answer{}, answerID).Error
	})
}
