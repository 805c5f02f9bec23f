package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredExp(t *testing.T) {
	// 레벨 1 이하는 항상 0
	assert.Equal(t, 0, RequiredExp(0))
	assert.Equal(t, 0, RequiredExp(1))
	assert.Equal(t, 0, RequiredExp(-3))

	// level*100 + (level-1)*50
	assert.Equal(t, 250, RequiredExp(2))
	assert.Equal(t, 400, RequiredExp(3))
	assert.Equal(t, 550, RequiredExp(4))
	assert.Equal(t, 700, RequiredExp(5))

	// 레벨 간격은 매 레벨 150씩 일정하게 증가한다
	for level := 2; level < 60; level++ {
		assert.Equal(t, 150, RequiredExp(level+1)-RequiredExp(level), "level %d", level)
	}
}

func TestExpToNextLevel(t *testing.T) {
	assert.Equal(t, 250, ExpToNextLevel(1, 0))
	assert.Equal(t, 100, ExpToNextLevel(1, 150))
	// 이미 임계값을 넘었으면 0으로 잘린다
	assert.Equal(t, 0, ExpToNextLevel(1, 300))
}

func TestProgressPercentage(t *testing.T) {
	assert.Equal(t, 0, ProgressPercentage(1, 0))
	assert.Equal(t, 100, ProgressPercentage(1, 250))
	assert.Equal(t, 50, ProgressPercentage(1, 125))

	// 반올림 확인: 구간 700~850에서 775는 정확히 50%
	assert.Equal(t, 50, ProgressPercentage(5, 775))
}

func TestAddExperienceZeroDelta(t *testing.T) {
	result := AddExperience(3, 420, 0)
	assert.Equal(t, 3, result.NewLevel)
	assert.Equal(t, 420, result.NewExp)
	assert.False(t, result.LeveledUp)
	assert.Equal(t, 0, result.LevelsGained)
}

func TestAddExperienceSingleLevelUp(t *testing.T) {
	// 레벨 4에서 다음 임계값 1 아래 → 답변 보상으로 정확히 한 레벨 상승
	startExp := RequiredExp(5) - 1
	result := AddExperience(4, startExp, ExpAnswerPosted)

	assert.True(t, result.LeveledUp)
	assert.Equal(t, 1, result.LevelsGained)
	assert.Equal(t, 5, result.NewLevel)
	assert.Equal(t, startExp+ExpAnswerPosted, result.NewExp)
}

func TestAddExperienceMultiLevelJump(t *testing.T) {
	const delta = 1200
	result := AddExperience(1, 0, delta)

	// 기대 레벨은 공식에서 직접 유도한다
	expectedLevel := 1
	for delta >= RequiredExp(expectedLevel+1) {
		expectedLevel++
	}
	require.Greater(t, expectedLevel, 2, "테스트 델타는 두 단계 이상을 넘어야 한다")

	assert.Equal(t, expectedLevel, result.NewLevel)
	assert.Equal(t, expectedLevel-1, result.LevelsGained)
	assert.True(t, result.LeveledUp)
	assert.Equal(t, delta, result.NewExp)
}

func TestAddExperienceQuestionAtLevelOne(t *testing.T) {
	// 질문 작성 EXP(20)로는 레벨 1에서 레벨업하지 않는다
	result := AddExperience(1, 0, ExpQuestionPosted)
	assert.Equal(t, 1, result.NewLevel)
	assert.Equal(t, ExpQuestionPosted, result.NewExp)
	assert.False(t, result.LeveledUp)
}

func TestAddExperienceInvariant(t *testing.T) {
	// 어떤 호출 순서에서도 레벨은 항상 저장된 EXP에 맞는 값이어야 한다
	level, exp := 1, 0
	deltas := []int{0, 5, 20, 30, 30, 250, 1200, 7, 30, 999}

	for _, delta := range deltas {
		result := AddExperience(level, exp, delta)

		require.GreaterOrEqual(t, result.NewExp, exp, "EXP는 감소하지 않는다")
		require.GreaterOrEqual(t, result.NewExp, RequiredExp(result.NewLevel))
		require.Less(t, result.NewExp, RequiredExp(result.NewLevel+1))
		require.GreaterOrEqual(t, result.NewLevel, 1)
		require.Equal(t, result.LeveledUp, result.LevelsGained > 0)

		level, exp = result.NewLevel, result.NewExp
	}
}

func TestLevelTitle(t *testing.T) {
	assert.Equal(t, "새로운 멤버", LevelTitle(1))
	assert.Equal(t, "입문자", LevelTitle(3))
	assert.Equal(t, "중급자", LevelTitle(5))
	assert.Equal(t, "전문가", LevelTitle(20))
	assert.Equal(t, "전설의 지식인", LevelTitle(50))
	assert.Equal(t, "전설의 지식인", LevelTitle(99))
}

func TestLevelColor(t *testing.T) {
	assert.Equal(t, "#808080", LevelColor(1))
	assert.Equal(t, "#1E90FF", LevelColor(5))
	assert.Equal(t, "#FFD700", LevelColor(50))
}

func TestLevelUpMessage(t *testing.T) {
	single := LevelUpMessage(5, 1)
	multi := LevelUpMessage(5, 3)

	assert.Contains(t, single, "Level 5")
	assert.Contains(t, single, "중급자")
	assert.Contains(t, multi, "Level 5")
	// 여러 레벨을 한 번에 넘었을 때는 문구가 달라진다
	assert.NotEqual(t, single, multi)
}
