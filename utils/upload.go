package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// UploadsDir returns the configured uploads directory, created on
// first use.
func UploadsDir() string {
	dir := os.Getenv("UPLOADS_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return dir
}

// SaveUpload stores a multipart file in the uploads directory as
// <unix-millis>-<original-filename> and returns the public URL under
// /uploads.
func SaveUpload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	dir := UploadsDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}

	return "/uploads/" + filename, nil
}

// AttachmentTypeFor maps a MIME type to the stored attachment type.
func AttachmentTypeFor(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	case strings.HasPrefix(contentType, "video/"):
		return "video"
	default:
		return "file"
	}
}
