package services

import (
	"errors"

	"garshub/internal/db"
	"garshub/internal/models"

	"gorm.io/gorm"
)

// 보상 대상 행동
const (
	ActionQuestionPosted = "question_posted"
	ActionAnswerPosted   = "answer_posted"
)

// EXP 보상 (레벨 진행용)
// 포인트 보상과는 별도의 트랙이며 서로 섞지 않는다.
const (
	ExpQuestionPosted = 20 // 질문 작성
	ExpAnswerPosted   = 30 // 답변 작성
	ExpFirstAnswer    = 10 // 첫 답변 보너스
	ExpHelpfulAnswer  = 15 // 도움이 된 답변
	ExpDailyLogin     = 5  // 일일 로그인
	ExpWeeklyActive   = 25 // 주간 활동 보너스
)

// 포인트 보상 (AI 질문 결제용)
const (
	PointsQuestionPosted = 3  // 질문 작성 시 3포인트
	PointsAnswerPosted   = 10 // 답변 작성 시 10포인트
	AIQuestionCost       = 50 // AI 질문 비용 50포인트
)

// ExpRewardFor 행동별 EXP 보상값
func ExpRewardFor(action string) int {
	switch action {
	case ActionQuestionPosted:
		return ExpQuestionPosted
	case ActionAnswerPosted:
		return ExpAnswerPosted
	default:
		return 0
	}
}

// PointRewardFor 행동별 포인트 보상값
func PointRewardFor(action string) int {
	switch action {
	case ActionQuestionPosted:
		return PointsQuestionPosted
	case ActionAnswerPosted:
		return PointsAnswerPosted
	default:
		return 0
	}
}

// PointsStatus 포인트 현황
type PointsStatus struct {
	Current  int  `json:"current"`
	Required int  `json:"required"`
	Needed   int  `json:"needed"`
	CanAskAI bool `json:"canAskAI"`
	Progress int  `json:"progress"`
}

// CanAskAI AI 질문 가능 여부
func CanAskAI(balance int) bool {
	return balance >= AIQuestionCost
}

// PointsAfterAIQuestion AI 질문 후 남을 포인트 (0 밑으로 내려가지 않음)
func PointsAfterAIQuestion(balance int) int {
	remaining := balance - AIQuestionCost
	if remaining < 0 {
		return 0
	}
	return remaining
}

// PointsStatusOf 잔액에 대한 포인트 현황을 계산한다.
// required가 0 이하이면 AI 질문 비용을 기준으로 한다.
func PointsStatusOf(current, required int) PointsStatus {
	if required <= 0 {
		required = AIQuestionCost
	}

	needed := required - current
	if needed < 0 {
		needed = 0
	}

	progress := current * 100 / required
	if progress > 100 {
		progress = 100
	}

	return PointsStatus{
		Current:  current,
		Required: required,
		Needed:   needed,
		CanAskAI: current >= required,
		Progress: progress,
	}
}

// AddUserPoints 사용자 포인트를 증가시키고 갱신된 잔액을 반환한다.
func AddUserPoints(userID string, amount int) (int, error) {
	if err := db.DB.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("points", gorm.Expr("points + ?", amount)).
		Error; err != nil {
		return 0, err
	}

	var user models.User
	if err := db.DB.Select("points").First(&user, "id = ?", userID).Error; err != nil {
		return 0, err
	}
	return user.Points, nil
}

// DeductUserPoints 사용자 포인트를 차감한다. 잔액은 0 밑으로 내려가지 않는다.
// 잔액 부족 검사는 호출 측(canAskAI)의 책임이다.
func DeductUserPoints(userID string, amount int) (int, error) {
	if err := db.DB.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("points", gorm.Expr("GREATEST(0, points - ?)", amount)).
		Error; err != nil {
		return 0, err
	}

	var user models.User
	if err := db.DB.Select("points").First(&user, "id = ?", userID).Error; err != nil {
		return 0, err
	}
	return user.Points, nil
}

// GetUserPoints 사용자의 포인트 현황을 조회한다. 없는 사용자는 nil을 반환한다.
func GetUserPoints(userID string) (*PointsStatus, error) {
	var user models.User
	if err := db.DB.Select("points").First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	status := PointsStatusOf(user.Points, 0)
	return &status, nil
}
