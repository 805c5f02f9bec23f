package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewardTables(t *testing.T) {
	// EXP 트랙과 포인트 트랙은 서로 다른 상수 테이블이다
	assert.Equal(t, 20, ExpRewardFor(ActionQuestionPosted))
	assert.Equal(t, 30, ExpRewardFor(ActionAnswerPosted))
	assert.Equal(t, 3, PointRewardFor(ActionQuestionPosted))
	assert.Equal(t, 10, PointRewardFor(ActionAnswerPosted))

	// 알 수 없는 행동은 보상 없음
	assert.Equal(t, 0, ExpRewardFor("unknown"))
	assert.Equal(t, 0, PointRewardFor("unknown"))
}

func TestCanAskAI(t *testing.T) {
	assert.False(t, CanAskAI(0))
	assert.False(t, CanAskAI(49))
	assert.True(t, CanAskAI(AIQuestionCost))
	assert.True(t, CanAskAI(100))
}

func TestPointsAfterAIQuestionFloor(t *testing.T) {
	// 차감 결과는 절대 음수가 되지 않는다
	for _, balance := range []int{0, 1, 30, 49, 50, 51, 100, 1000} {
		remaining := PointsAfterAIQuestion(balance)
		assert.GreaterOrEqual(t, remaining, 0, "balance %d", balance)
		if balance <= AIQuestionCost {
			assert.Equal(t, 0, remaining, "balance %d", balance)
		} else {
			assert.Equal(t, balance-AIQuestionCost, remaining, "balance %d", balance)
		}
	}
}

func TestPointsAfterAIQuestionRepeatedSpend(t *testing.T) {
	// 100포인트에서 50을 쓰면 정확히 50, 한 번 더 쓰면 0
	balance := 100
	balance = PointsAfterAIQuestion(balance)
	assert.Equal(t, 50, balance)
	balance = PointsAfterAIQuestion(balance)
	assert.Equal(t, 0, balance)
	// 잔액 0에서 또 쓰더라도 음수가 아닌 0으로 고정
	assert.Equal(t, 0, PointsAfterAIQuestion(balance))
}

func TestPointsStatusOf(t *testing.T) {
	status := PointsStatusOf(40, 0)
	assert.Equal(t, 40, status.Current)
	assert.Equal(t, AIQuestionCost, status.Required)
	assert.Equal(t, 10, status.Needed)
	assert.False(t, status.CanAskAI)
	assert.Equal(t, 80, status.Progress)

	status = PointsStatusOf(120, 0)
	assert.Equal(t, 0, status.Needed)
	assert.True(t, status.CanAskAI)
	assert.Equal(t, 100, status.Progress, "진행률은 100을 넘지 않는다")
}

func TestPointsStatusConsistency(t *testing.T) {
	// canAskAI는 항상 (current >= required)와 일치한다
	for current := 0; current <= 120; current += 7 {
		for _, required := range []int{10, 50, 100} {
			status := PointsStatusOf(current, required)
			assert.Equal(t, current >= required, status.CanAskAI,
				"current=%d required=%d", current, required)
			assert.GreaterOrEqual(t, status.Needed, 0)
		}
	}
}
