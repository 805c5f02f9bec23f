package services

import (
	"fmt"
	"math"
)

// LevelUpResult EXP 추가 한 번의 결과
type LevelUpResult struct {
	NewLevel     int    `json:"newLevel"`
	NewExp       int    `json:"newExp"`
	LeveledUp    bool   `json:"leveledUp"`
	LevelsGained int    `json:"levelsGained"`
	Message      string `json:"message,omitempty"`
}

// RequiredExp 해당 레벨 도달에 필요한 누적 EXP
// Level 2: 250, Level 3: 450, Level 4: 700, Level 5: 1000 ...
// 공식: level * 100 + (level - 1) * 50
func RequiredExp(level int) int {
	if level <= 1 {
		return 0
	}
	return level*100 + (level-1)*50
}

// ExpToNextLevel 다음 레벨까지 남은 EXP
func ExpToNextLevel(currentLevel, currentExp int) int {
	remaining := RequiredExp(currentLevel+1) - currentExp
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ProgressPercentage 현재 레벨 구간에서의 진행률 (0-100)
func ProgressPercentage(currentLevel, currentExp int) int {
	currentLevelExp := RequiredExp(currentLevel)
	nextLevelExp := RequiredExp(currentLevel + 1)
	progress := currentExp - currentLevelExp
	total := nextLevelExp - currentLevelExp
	return int(math.Round(float64(progress) / float64(total) * 100))
}

// AddExperience EXP를 추가하고 레벨업을 계산한다.
// 보상 하나로 여러 레벨을 한 번에 넘는 경우까지 임계값을 반복 확인한다.
func AddExperience(currentLevel, currentExp, expToAdd int) LevelUpResult {
	newExp := currentExp + expToAdd
	newLevel := currentLevel
	levelsGained := 0

	for newExp >= RequiredExp(newLevel+1) {
		newLevel++
		levelsGained++
	}

	return LevelUpResult{
		NewLevel:     newLevel,
		NewExp:       newExp,
		LeveledUp:    levelsGained > 0,
		LevelsGained: levelsGained,
	}
}

// LevelTitle 레벨별 칭호
func LevelTitle(level int) string {
	switch {
	case level >= 50:
		return "전설의 지식인"
	case level >= 40:
		return "지식의 대가"
	case level >= 30:
		return "지혜로운 멘토"
	case level >= 25:
		return "경험 많은"
	case level >= 20:
		return "전문가"
	case level >= 15:
		return "숙련자"
	case level >= 10:
		return "열정적인"
	case level >= 5:
		return "중급자"
	case level >= 3:
		return "입문자"
	default:
		return "새로운 멤버"
	}
}

// LevelColor 레벨별 표시 색상
func LevelColor(level int) string {
	switch {
	case level >= 50:
		return "#FFD700" // 금색
	case level >= 40:
		return "#C0C0C0" // 은색
	case level >= 30:
		return "#CD7F32" // 동색
	case level >= 20:
		return "#8A2BE2" // 보라색
	case level >= 15:
		return "#FF4500" // 주황색
	case level >= 10:
		return "#32CD32" // 초록색
	case level >= 5:
		return "#1E90FF" // 파란색
	default:
		return "#808080" // 회색
	}
}

// LevelUpMessage 레벨업 알림 메시지
func LevelUpMessage(level, levelsGained int) string {
	title := LevelTitle(level)
	if levelsGained == 1 {
		return fmt.Sprintf("🎉 레벨업! Level %d 달성! \"%s\" 칭호를 획득했습니다!", level, title)
	}
	return fmt.Sprintf("🎉 대단해요! Level %d 달성! \"%s\" 칭호를 획득했습니다!", level, title)
}
