package services

import (
	"errors"

	"garshub/internal/db"
	"garshub/internal/models"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("사용자를 찾을 수 없습니다")

// AddUserExperience EXP를 지급하고 레벨업을 반영한다.
// 조회-계산-갱신을 하나의 트랜잭션으로 묶는다.
func AddUserExperience(userID string, expToAdd int) (*LevelUpResult, error) {
	var result LevelUpResult

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Select("level", "experience").First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		result = AddExperience(user.Level, user.Experience, expToAdd)

		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			Updates(map[string]interface{}{
				"level":      result.NewLevel,
				"experience": result.NewExp,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	if result.LeveledUp {
		result.Message = LevelUpMessage(result.NewLevel, result.LevelsGained)
	}
	return &result, nil
}

// GrantContentReward 질문/답변 등록이 커밋된 뒤 EXP와 포인트를 지급한다.
// 본문 트랜잭션 바깥에서 실행되며, 여기서의 실패는 호출 측에서 로그만 남기고
// 무시해야 한다. 보상 실패가 등록 자체를 되돌리지는 않는다.
func GrantContentReward(userID, action string) (*LevelUpResult, error) {
	result, err := AddUserExperience(userID, ExpRewardFor(action))
	if err != nil {
		return nil, err
	}

	// 포인트 지급은 EXP 갱신과 별도 문장으로 처리한다 (원자성 없음)
	if _, err := AddUserPoints(userID, PointRewardFor(action)); err != nil {
		return nil, err
	}

	return result, nil
}

// LevelInfo 프로필/랭킹 화면용 레벨 정보 프로젝션
type LevelInfo struct {
	Level      int          `json:"level"`
	Experience int          `json:"experience"`
	ExpToNext  int          `json:"expToNext"`
	Progress   int          `json:"progress"`
	Title      string       `json:"title"`
	Color      string       `json:"color"`
	Points     PointsStatus `json:"points"`
}

// GetUserLevelInfo 사용자의 레벨/포인트 정보를 조회한다. 없는 사용자는 nil.
func GetUserLevelInfo(userID string) (*LevelInfo, error) {
	var user models.User
	if err := db.DB.Select("level", "experience", "points").First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &LevelInfo{
		Level:      user.Level,
		Experience: user.Experience,
		ExpToNext:  ExpToNextLevel(user.Level, user.Experience),
		Progress:   ProgressPercentage(user.Level, user.Experience),
		Title:      LevelTitle(user.Level),
		Color:      LevelColor(user.Level),
		Points:     PointsStatusOf(user.Points, 0),
	}, nil
}
