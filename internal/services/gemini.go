package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// GeminiService Google Gemini 호출 래퍼
// GEMINI_API_KEY가 없으면 비활성 상태로 동작한다.
type GeminiService struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
	Enabled bool
}

var geminiService *GeminiService

// GetGeminiService 싱글톤 Gemini 서비스
func GetGeminiService() *GeminiService {
	if geminiService == nil {
		apiKey := os.Getenv("GEMINI_API_KEY")

		baseURL := os.Getenv("GEMINI_BASE_URL")
		if baseURL == "" {
			baseURL = "https://generativelanguage.googleapis.com"
		}

		model := os.Getenv("GEMINI_MODEL")
		if model == "" {
			model = "gemini-1.5-flash"
		}

		geminiService = &GeminiService{
			apiKey:  apiKey,
			baseURL: baseURL,
			model:   model,
			client:  &http.Client{Timeout: 30 * time.Second},
			Enabled: apiKey != "",
		}
	}
	return geminiService
}

// 프롬프트 인젝션에 쓰이는 위험 패턴
var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ignore\s+previous\s+instructions`),
	regexp.MustCompile(`(?i)forget\s+everything`),
	regexp.MustCompile(`(?i)new\s+instructions`),
	regexp.MustCompile(`(?i)system\s+prompt`),
	regexp.MustCompile(`(?i)act\s+as\s+if`),
	regexp.MustCompile(`(?i)pretend\s+to\s+be`),
	regexp.MustCompile(`(?i)you\s+are\s+now`),
	regexp.MustCompile(`(?i)from\s+now\s+on`),
	regexp.MustCompile(`(?i)override`),
	regexp.MustCompile(`(?i)jailbreak`),
	regexp.MustCompile(`(?i)roleplay`),
	regexp.MustCompile(`[\[\]{}]`),
}

// SanitizeInput 사용자 입력에서 위험 패턴을 제거하고 길이를 제한한다.
func SanitizeInput(input string) string {
	sanitized := input
	for _, pattern := range dangerousPatterns {
		sanitized = pattern.ReplaceAllString(sanitized, "")
	}

	if len(sanitized) > 1000 {
		sanitized = sanitized[:1000]
	}

	return strings.TrimSpace(sanitized)
}

type geminiPart struct {
	Text       string          `json:"text,omitempty"`
	InlineData *geminiInlineDt `json:"inline_data,omitempty"`
}

type geminiInlineDt struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

const answerPromptTemplate = `당신은 학습 도우미입니다. 사용자의 질문을 분석하여 교육적인 답변을 제공해주세요.

질문 제목: %s
질문 내용: %s

이미지에 문제나 텍스트가 있다면 OCR을 수행하여 내용을 파악하고, 질문에 대한 상세한 답변을 제공해주세요.
답변은 다음 형식으로 작성해주세요:

1. 이미지 내용 설명 (있다면)
2. 문제 분석
3. 해결 과정 또는 답변
4. 추가 설명 (필요시)

답변은 한국어로, 친근하고 이해하기 쉽게 작성해주세요.
교육적인 목적으로만 답변해주세요.`

// AnswerTextQuestion 텍스트 질문에 대한 답변 생성
func (s *GeminiService) AnswerTextQuestion(title, content string) (string, error) {
	if !s.Enabled {
		return "", fmt.Errorf("AI 서비스가 비활성화되어 있습니다")
	}

	prompt := fmt.Sprintf(answerPromptTemplate, SanitizeInput(title), SanitizeInput(content))
	parts := []geminiPart{{Text: prompt}}
	return s.generate(parts)
}

// AnswerImageQuestion 이미지가 첨부된 질문에 대한 답변 생성
func (s *GeminiService) AnswerImageQuestion(title, content, imageURL string) (string, error) {
	if !s.Enabled {
		return "", fmt.Errorf("AI 서비스가 비활성화되어 있습니다")
	}

	imageData, mimeType, err := loadImage(imageURL)
	if err != nil {
		return "", fmt.Errorf("이미지 로드 실패: %w", err)
	}

	prompt := fmt.Sprintf(answerPromptTemplate, SanitizeInput(title), SanitizeInput(content))
	parts := []geminiPart{
		{Text: prompt},
		{InlineData: &geminiInlineDt{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(imageData),
		}},
	}
	return s.generate(parts)
}

// generate generateContent API 호출
func (s *GeminiService) generate(parts []geminiPart) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: parts}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("요청 직렬화 실패: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequest("POST", url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("요청 생성 실패: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("Gemini API 호출 실패: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Gemini API 오류 (%d): %s", resp.StatusCode, string(body))
	}

	var result geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("응답 파싱 실패: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("Gemini 응답이 비어 있습니다")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

// loadImage 업로드 디렉터리의 로컬 파일 또는 원격 URL에서 이미지를 읽는다.
func loadImage(imageURL string) ([]byte, string, error) {
	if strings.HasPrefix(imageURL, "/uploads/") {
		path := filepath.Join("uploads", filepath.Base(imageURL))
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", err
		}
		return data, mimeTypeFor(path), nil
	}

	resp, err := http.Get(imageURL)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("이미지 다운로드 실패: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return data, mimeType, nil
}

func mimeTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
