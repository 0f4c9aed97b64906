package image

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superj80820/user-profile-service/domain"
	"github.com/superj80820/user-profile-service/kit/code"
	loggerKit "github.com/superj80820/user-profile-service/kit/logger"
	ormKit "github.com/superj80820/user-profile-service/kit/orm"
	objectStoreMemoryRepo "github.com/superj80820/user-profile-service/repository/objectstore/memory"
)

type fakeProfileImageRepo struct {
	lock   sync.Mutex
	images map[string]*domain.ProfileImage

	createErr error
}

func createFakeProfileImageRepo() *fakeProfileImageRepo {
	return &fakeProfileImageRepo{images: make(map[string]*domain.ProfileImage)}
}

func (f *fakeProfileImageRepo) Create(ctx context.Context, image *domain.ProfileImage) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.images[image.UserID]; ok {
		return ormKit.ErrDuplicatedKey
	}
	clone := *image
	f.images[image.UserID] = &clone
	return nil
}

func (f *fakeProfileImageRepo) GetByUserID(ctx context.Context, userID string) (*domain.ProfileImage, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	if image, ok := f.images[userID]; ok {
		clone := *image
		return &clone, nil
	}
	return nil, ormKit.ErrRecordNotFound
}

func (f *fakeProfileImageRepo) DeleteByUserID(ctx context.Context, userID string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	if _, ok := f.images[userID]; !ok {
		return ormKit.ErrRecordNotFound
	}
	delete(f.images, userID)
	return nil
}

func createTestImageUseCase(t *testing.T, imageRepo domain.ProfileImageRepo, objectStore domain.ObjectStoreRepo) domain.ProfileImageUseCase {
	t.Helper()
	logger, err := loggerKit.NewLogger(filepath.Join(t.TempDir(), "test.log"), loggerKit.InfoLevel, loggerKit.NoStdout)
	require.NoError(t, err)
	useCase, err := CreateProfileImageUseCase(imageRepo, objectStore, logger)
	require.NoError(t, err)
	return useCase
}

func TestUploadImage(t *testing.T) {
	imageRepo := createFakeProfileImageRepo()
	objectStore := objectStoreMemoryRepo.CreateObjectStoreRepo()
	useCase := createTestImageUseCase(t, imageRepo, objectStore)

	image, err := useCase.Upload(context.Background(), "user-id", "avatar.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	assert.NotEmpty(t, image.ID)
	assert.Equal(t, image.ID+".png", image.FileName)
	assert.Equal(t, "user-id", image.UserID)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, image.UploadDate)
	assert.True(t, objectStore.Exists("user-id/"+image.ID+".png"))
	assert.Contains(t, image.URL, image.ID+".png")
}

func TestUploadImageInvalidFile(t *testing.T) {
	testCases := []struct {
		name        string
		fileName    string
		contentType string
	}{
		{name: "bad content type", fileName: "avatar.png", contentType: "application/pdf"},
		{name: "bad extension", fileName: "avatar.pdf", contentType: "image/png"},
		{name: "no extension", fileName: "avatar", contentType: "image/png"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			objectStore := objectStoreMemoryRepo.CreateObjectStoreRepo()
			useCase := createTestImageUseCase(t, createFakeProfileImageRepo(), objectStore)

			_, err := useCase.Upload(context.Background(), "user-id", testCase.fileName, testCase.contentType, strings.NewReader("bytes"))
			require.Error(t, err)
			errorCode := code.ParseErrorCode(err)
			assert.Equal(t, http.StatusBadRequest, errorCode.HTTPCode)
			assert.Equal(t, code.InvalidFile, errorCode.Code)
			assert.Equal(t, "invalid file: "+testCase.fileName, errorCode.Message)
			assert.Zero(t, objectStore.Len())
		})
	}
}

func TestUploadImageAlreadyExists(t *testing.T) {
	imageRepo := createFakeProfileImageRepo()
	objectStore := objectStoreMemoryRepo.CreateObjectStoreRepo()
	useCase := createTestImageUseCase(t, imageRepo, objectStore)

	_, err := useCase.Upload(context.Background(), "user-id", "avatar.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	_, err = useCase.Upload(context.Background(), "user-id", "other.jpg", "image/jpeg", strings.NewReader("jpg-bytes"))
	require.Error(t, err)
	errorCode := code.ParseErrorCode(err)
	assert.Equal(t, http.StatusConflict, errorCode.HTTPCode)
	assert.Equal(t, code.ImageExists, errorCode.Code)

	// the losing upload leaves no second blob behind
	assert.Equal(t, 1, objectStore.Len())
}

func TestUploadImageBlobFailure(t *testing.T) {
	imageRepo := createFakeProfileImageRepo()
	objectStore := objectStoreMemoryRepo.CreateObjectStoreRepo()
	objectStore.UploadErr = errors.New("upstream unavailable")
	useCase := createTestImageUseCase(t, imageRepo, objectStore)

	_, err := useCase.Upload(context.Background(), "user-id", "avatar.png", "image/png", strings.NewReader("png-bytes"))
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, code.ParseErrorCode(err).HTTPCode)

	// no record without a backing blob
	_, err = imageRepo.GetByUserID(context.Background(), "user-id")
	assert.ErrorIs(t, err, ormKit.ErrRecordNotFound)
}

func TestUploadImageRecordRace(t *testing.T) {
	imageRepo := createFakeProfileImageRepo()
	imageRepo.createErr = ormKit.ErrDuplicatedKey
	objectStore := objectStoreMemoryRepo.CreateObjectStoreRepo()
	useCase := createTestImageUseCase(t, imageRepo, objectStore)

	_, err := useCase.Upload(context.Background(), "user-id", "avatar.png", "image/png", strings.NewReader("png-bytes"))
	require.Error(t, err)
	errorCode := code.ParseErrorCode(err)
	assert.Equal(t, http.StatusConflict, errorCode.HTTPCode)
	assert.Equal(t, code.ImageExists, errorCode.Code)

	// the orphan blob is removed again
	assert.Zero(t, objectStore.Len())
}

func TestGetImage(t *testing.T) {
	imageRepo := createFakeProfileImageRepo()
	objectStore := objectStoreMemoryRepo.CreateObjectStoreRepo()
	useCase := createTestImageUseCase(t, imageRepo, objectStore)

	uploaded, err := useCase.Upload(context.Background(), "user-id", "avatar.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	image, err := useCase.Get(context.Background(), "user-id")
	require.NoError(t, err)
	assert.Equal(t, uploaded.ID, image.ID)

	_, err = useCase.Get(context.Background(), "other-user")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, code.ParseErrorCode(err).HTTPCode)
}

func TestDeleteImage(t *testing.T) {
	imageRepo := createFakeProfileImageRepo()
	objectStore := objectStoreMemoryRepo.CreateObjectStoreRepo()
	useCase := createTestImageUseCase(t, imageRepo, objectStore)

	_, err := useCase.Upload(context.Background(), "user-id", "avatar.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	require.NoError(t, useCase.Delete(context.Background(), "user-id"))
	assert.Zero(t, objectStore.Len())

	_, err = useCase.Get(context.Background(), "user-id")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, code.ParseErrorCode(err).HTTPCode)
}

func TestDeleteImageNotFound(t *testing.T) {
	useCase := createTestImageUseCase(t, createFakeProfileImageRepo(), objectStoreMemoryRepo.CreateObjectStoreRepo())

	err := useCase.Delete(context.Background(), "user-id")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, code.ParseErrorCode(err).HTTPCode)
}

func TestDeleteImageBlobFailureKeepsRecord(t *testing.T) {
	imageRepo := createFakeProfileImageRepo()
	objectStore := objectStoreMemoryRepo.CreateObjectStoreRepo()
	useCase := createTestImageUseCase(t, imageRepo, objectStore)

	_, err := useCase.Upload(context.Background(), "user-id", "avatar.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	objectStore.DeleteErr = errors.New("upstream unavailable")
	err = useCase.Delete(context.Background(), "user-id")
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, code.ParseErrorCode(err).HTTPCode)

	// record survives so a retry still knows the key
	_, err = imageRepo.GetByUserID(context.Background(), "user-id")
	assert.NoError(t, err)
}
