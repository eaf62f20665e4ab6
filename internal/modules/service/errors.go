package service

import (
	"errors"

	"gorm.io/gorm"
)

// Service layer errors, mapped to HTTP statuses at the handler layer.
var (
	ErrNotFound = errors.New("record not found")

	// ErrUnsupportedMedia: the uploaded blob is neither an image nor a video.
	ErrUnsupportedMedia = errors.New("unsupported media type")

	// ErrUploadFailed wraps blob-storage failures so handlers can surface
	// "upload failed" distinctly from row-mutation failures.
	ErrUploadFailed = errors.New("upload failed")
)

// mapNotFound translates gorm's missing-row sentinel into ErrNotFound so
// the repo error never leaks past the service boundary.
func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
