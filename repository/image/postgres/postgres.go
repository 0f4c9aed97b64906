package repository

import (
	"context"

	"github.com/pkg/errors"

	"github.com/superj80820/user-profile-service/domain"
	ormKit "github.com/superj80820/user-profile-service/kit/orm"
)

type imageEntity struct {
	domain.ProfileImage
}

func (imageEntity) TableName() string {
	return "image"
}

type profileImageRepo struct {
	db *ormKit.DB
}

func CreateProfileImageRepo(db *ormKit.DB) domain.ProfileImageRepo {
	return &profileImageRepo{
		db: db,
	}
}

func (p *profileImageRepo) Create(ctx context.Context, image *domain.ProfileImage) error {
	if err := p.db.Create(&imageEntity{ProfileImage: *image}).Error; err != nil {
		// user_id carries a unique constraint, a concurrent upload
		// surfaces here as a duplicated key.
		if duplicatedErr, ok := ormKit.ConvertDuplicatedKeyErr(err); ok {
			return duplicatedErr
		}
		return errors.Wrap(err, "create image failed")
	}
	return nil
}

func (p *profileImageRepo) GetByUserID(ctx context.Context, userID string) (*domain.ProfileImage, error) {
	var image imageEntity
	if err := p.db.First(&image, "user_id = ?", userID); err != nil {
		return nil, errors.Wrap(err, "get image failed")
	}
	return &image.ProfileImage, nil
}

func (p *profileImageRepo) DeleteByUserID(ctx context.Context, userID string) error {
	if err := p.db.Delete(&imageEntity{}, "user_id = ?", userID).Error; err != nil {
		return errors.Wrap(err, "delete image failed")
	}
	return nil
}
