package image

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/superj80820/user-profile-service/domain"
	"github.com/superj80820/user-profile-service/kit/code"
	loggerKit "github.com/superj80820/user-profile-service/kit/logger"
	ormKit "github.com/superj80820/user-profile-service/kit/orm"
	utilKit "github.com/superj80820/user-profile-service/kit/util"
)

var (
	allowedContentTypes = map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
	}
	allowedExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
	}
)

type profileImageUseCase struct {
	profileImageRepo domain.ProfileImageRepo
	objectStoreRepo  domain.ObjectStoreRepo
	logger           *loggerKit.Logger
}

func CreateProfileImageUseCase(
	profileImageRepo domain.ProfileImageRepo,
	objectStoreRepo domain.ObjectStoreRepo,
	logger *loggerKit.Logger,
) (domain.ProfileImageUseCase, error) {
	if logger == nil {
		return nil, errors.New("create use case failed")
	}
	return &profileImageUseCase{
		profileImageRepo: profileImageRepo,
		objectStoreRepo:  objectStoreRepo,
		logger:           logger,
	}, nil
}

// Upload stores the blob first and only then the record, so a stored
// record always has a backing object. A record create that loses the
// race against a concurrent upload renders as 409, same as the
// up-front existence check.
func (p *profileImageUseCase) Upload(ctx context.Context, userID, fileName, contentType string, file io.Reader) (*domain.ProfileImage, error) {
	extension := strings.ToLower(filepath.Ext(fileName))
	if !allowedContentTypes[contentType] || !allowedExtensions[extension] {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.InvalidFile, fileName)
	}

	_, err := p.profileImageRepo.GetByUserID(ctx, userID)
	if err == nil {
		return nil, code.CreateErrorCode(http.StatusConflict).AddCode(code.ImageExists)
	} else if !errors.Is(err, ormKit.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "get profile image failed")
	}

	imageID := utilKit.GetUUID()
	generatedFileName := imageID + extension
	key := objectKey(userID, generatedFileName)
	if err := p.objectStoreRepo.Upload(ctx, file, key); err != nil {
		return nil, errors.Wrap(err, "upload object failed")
	}

	image := &domain.ProfileImage{
		ID:         imageID,
		FileName:   generatedFileName,
		URL:        p.objectStoreRepo.URL(key),
		UploadDate: time.Now().Format("2006-01-02"),
		UserID:     userID,
	}
	if err := p.profileImageRepo.Create(ctx, image); err != nil {
		if errors.Is(err, ormKit.ErrDuplicatedKey) {
			if deleteErr := p.objectStoreRepo.Delete(ctx, key); deleteErr != nil {
				p.logger.Error("delete orphan object failed", loggerKit.Error(deleteErr), loggerKit.String("key", key))
			}
			return nil, code.CreateErrorCode(http.StatusConflict).AddCode(code.ImageExists).AddErrorMetaData(err)
		}
		return nil, errors.Wrap(err, "create profile image failed")
	}

	return image, nil
}

func (p *profileImageUseCase) Get(ctx context.Context, userID string) (*domain.ProfileImage, error) {
	image, err := p.profileImageRepo.GetByUserID(ctx, userID)
	if errors.Is(err, ormKit.ErrRecordNotFound) {
		return nil, code.CreateErrorCode(http.StatusNotFound).AddErrorMetaData(err)
	} else if err != nil {
		return nil, errors.Wrap(err, "get profile image failed")
	}
	return image, nil
}

// Delete removes the blob before the record. If the blob delete fails
// the record stays, so a retry still finds the key to remove.
func (p *profileImageUseCase) Delete(ctx context.Context, userID string) error {
	image, err := p.profileImageRepo.GetByUserID(ctx, userID)
	if errors.Is(err, ormKit.ErrRecordNotFound) {
		return code.CreateErrorCode(http.StatusNotFound).AddErrorMetaData(err)
	} else if err != nil {
		return errors.Wrap(err, "get profile image failed")
	}

	if err := p.objectStoreRepo.Delete(ctx, objectKey(userID, image.FileName)); err != nil {
		return errors.Wrap(err, "delete object failed")
	}
	if err := p.profileImageRepo.DeleteByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "delete profile image failed")
	}
	return nil
}

func objectKey(userID, fileName string) string {
	return userID + "/" + fileName
}
