package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadHandler struct {
	uploadDir string
}

func NewUploadHandler() *UploadHandler {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	os.MkdirAll(dir, 0o755)
	return &UploadHandler{uploadDir: dir}
}

// 업로드 허용 확장자
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

const maxUploadSize = 5 << 20 // 5MB

// Image 이미지 업로드. 저장 파일명은 uuid로 생성한다
func (h *UploadHandler) Image(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "이미지가 업로드되지 않았습니다."})
		return
	}

	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "이미지는 5MB 이하만 업로드할 수 있습니다."})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "지원하지 않는 이미지 형식입니다."})
		return
	}

	filename := uuid.New().String() + ext
	dst := filepath.Join(h.uploadDir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "이미지 저장에 실패했습니다."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": fmt.Sprintf("/uploads/%s", filename)})
}
