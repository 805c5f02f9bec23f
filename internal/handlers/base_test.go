package handlers

import (
	"net/http/httptest"
	"testing"

	"garshub/internal/middleware"
	"garshub/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	// 스크립트는 제거되고 일반 텍스트는 남는다
	assert.Equal(t, "안녕하세요", Sanitize(`<script>alert(1)</script>안녕하세요`))

	// UGC 정책이 허용하는 서식 태그는 유지된다
	assert.Equal(t, "<b>중요</b>", Sanitize("<b>중요</b>"))

	assert.NotContains(t, Sanitize(`<img src=x onerror="alert(1)">수식`), "onerror")
}

func TestCurrentUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, CurrentUser(c), "비로그인 요청은 nil")

	user := &models.User{ID: "google-123", DisplayName: "테스터", Level: 1}
	c.Set(middleware.CheckUserKey, user)
	assert.Equal(t, user, CurrentUser(c))
}
