package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"log"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheItem 캐시 데이터와 만료 시각
type CacheItem struct {
	Data      interface{}
	ExpiresAt time.Time
}

// GlobalCache 전역 로컬 캐시 래퍼
type GlobalCache struct {
	lruCache *lru.Cache[string, CacheItem]
}

var cacheInstance *GlobalCache

// GetCache 싱글톤 캐시 인스턴스
func GetCache() *GlobalCache {
	if cacheInstance == nil {
		l, err := lru.New[string, CacheItem](1000)
		if err != nil {
			log.Fatalf("Failed to create LRU cache: %v", err)
		}
		cacheInstance = &GlobalCache{
			lruCache: l,
		}
	}
	return cacheInstance
}

// Set TTL과 함께 캐시를 저장한다
func (c *GlobalCache) Set(key string, data interface{}, ttl time.Duration) {
	c.lruCache.Add(key, CacheItem{
		Data:      data,
		ExpiresAt: time.Now().Add(ttl),
	})
}

// Get 캐시를 조회한다. 없거나 만료되었으면 nil
func (c *GlobalCache) Get(key string) interface{} {
	val, ok := c.lruCache.Get(key)
	if !ok {
		return nil
	}

	if time.Now().After(val.ExpiresAt) {
		c.lruCache.Remove(key)
		return nil
	}

	return val.Data
}

// Delete 지정한 키를 삭제한다
func (c *GlobalCache) Delete(key string) {
	c.lruCache.Remove(key)
}

// 중복 제출 판정 윈도우
const DedupWindow = 5 * time.Second

// DedupKey 사용자와 요청 본문으로 중복 제출 키를 만든다
func DedupKey(userID string, payload ...string) string {
	h := sha256.New()
	h.Write([]byte(userID))
	for _, p := range payload {
		h.Write([]byte{0})
		h.Write([]byte(p))
	}
	return "dedup:" + hex.EncodeToString(h.Sum(nil))
}

// IsDuplicateRequest 같은 키의 요청이 윈도우 안에 이미 있었는지 확인하고 기록한다
func (c *GlobalCache) IsDuplicateRequest(key string) bool {
	if c.Get(key) != nil {
		return true
	}
	c.Set(key, time.Now(), DedupWindow)
	return false
}
