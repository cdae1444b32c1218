package service

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/certification/internal/entity"
)

// validatePhoto enforces the size ceiling and sniffs the content, returning the detected type and file extension.
func validatePhoto(photo entity.Photo) (string, string, error) {
	if len(photo.Data) == 0 {
		return "", "", fmt.Errorf("%w: photo is empty", entity.ErrValidation)
	}

	if len(photo.Data) > entity.MaxPhotoSize {
		return "", "", fmt.Errorf("%w: %d bytes", entity.ErrPhotoTooLarge, len(photo.Data))
	}

	contentType := http.DetectContentType(photo.Data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", "", fmt.Errorf("%w: detected %s", entity.ErrPhotoNotImage, contentType)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(photo.Name), "."))
	if ext == "" {
		ext = strings.TrimPrefix(contentType, "image/")
	}

	return contentType, ext, nil
}

func validateID(id uuid.UUID, name string) error {
	if id.IsNil() {
		return fmt.Errorf("%w: %s is required", entity.ErrValidation, name)
	}

	return nil
}
