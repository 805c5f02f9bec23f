package handlers

import (
	"garshub/internal/middleware"
	"garshub/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// 사용자 입력 본문에 적용하는 HTML 정화 정책
var ugcPolicy = bluemonday.UGCPolicy()

// CurrentUser 컨텍스트에서 로그인 사용자를 꺼낸다. 비로그인 시 nil
func CurrentUser(c *gin.Context) *models.User {
	if val, exists := c.Get(middleware.CheckUserKey); exists {
		return val.(*models.User)
	}
	return nil
}

// Sanitize 사용자 입력 HTML 정화
func Sanitize(s string) string {
	return ugcPolicy.Sanitize(s)
}
