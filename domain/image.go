package domain

import (
	"context"
	"io"
)

type ProfileImage struct {
	ID       string `gorm:"primaryKey"`
	FileName string
	URL      string
	// UploadDate keeps the calendar date only, formatted YYYY-MM-DD.
	UploadDate string
	UserID     string `gorm:"uniqueIndex"`
}

type ProfileImageRepo interface {
	Create(ctx context.Context, image *ProfileImage) error
	GetByUserID(ctx context.Context, userID string) (*ProfileImage, error)
	DeleteByUserID(ctx context.Context, userID string) error
}

type ProfileImageUseCase interface {
	Upload(ctx context.Context, userID, fileName, contentType string, file io.Reader) (*ProfileImage, error)
	Get(ctx context.Context, userID string) (*ProfileImage, error)
	Delete(ctx context.Context, userID string) error
}

// ObjectStoreRepo is the binary blob store behind profile images.
type ObjectStoreRepo interface {
	Upload(ctx context.Context, fileReader io.Reader, key string) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}
