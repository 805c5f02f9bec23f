package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGet(t *testing.T) {
	cache := GetCache()

	cache.Set("key1", "value1", time.Minute)
	assert.Equal(t, "value1", cache.Get("key1"))

	assert.Nil(t, cache.Get("missing"))

	cache.Delete("key1")
	assert.Nil(t, cache.Get("key1"))
}

func TestCacheExpiry(t *testing.T) {
	cache := GetCache()

	cache.Set("short", 42, 10*time.Millisecond)
	assert.Equal(t, 42, cache.Get("short"))

	time.Sleep(20 * time.Millisecond)
	assert.Nil(t, cache.Get("short"), "만료된 항목은 nil")
}

func TestDedupKey(t *testing.T) {
	a := DedupKey("user-1", "question", "제목", "내용")
	b := DedupKey("user-1", "question", "제목", "내용")
	c := DedupKey("user-2", "question", "제목", "내용")
	d := DedupKey("user-1", "question", "제목-다름", "내용")

	assert.Equal(t, a, b, "같은 입력은 같은 키")
	assert.NotEqual(t, a, c, "사용자가 다르면 키가 다르다")
	assert.NotEqual(t, a, d, "본문이 다르면 키가 다르다")
}

func TestIsDuplicateRequest(t *testing.T) {
	cache := GetCache()
	key := DedupKey("dup-user", "answer", "7", "같은 답변 내용")

	assert.False(t, cache.IsDuplicateRequest(key), "첫 요청은 중복이 아니다")
	assert.True(t, cache.IsDuplicateRequest(key), "윈도우 안의 재요청은 중복이다")

	cache.Delete(key)
	assert.False(t, cache.IsDuplicateRequest(key))
}
