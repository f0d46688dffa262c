package helpers

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

func GetFileContentType(file *multipart.FileHeader) string {
	contentTypes := file.Header["Content-Type"]
	if len(contentTypes) > 0 {
		return contentTypes[0]
	}
	return ""
}

func IsXlsxFile(fileName string) bool {
	return strings.EqualFold(filepath.Ext(fileName), ".xlsx")
}
