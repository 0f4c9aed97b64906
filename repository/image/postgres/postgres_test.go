package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superj80820/user-profile-service/domain"
	ormKit "github.com/superj80820/user-profile-service/kit/orm"
)

func createTestRepo(t *testing.T) domain.ProfileImageRepo {
	t.Helper()
	db, err := ormKit.CreateDB(ormKit.UseSQLite(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, err)
	schema, err := os.ReadFile("schema.sql")
	require.NoError(t, err)
	require.NoError(t, db.Exec(string(schema)).Error)
	return CreateProfileImageRepo(db)
}

func TestProfileImageRepo(t *testing.T) {
	repo := createTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.ProfileImage{
		ID:         "image-1",
		FileName:   "image-1.png",
		URL:        "https://bucket.s3.us-east-1.amazonaws.com/user-1/image-1.png",
		UploadDate: "2026-08-31",
		UserID:     "user-1",
	}))

	image, err := repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "image-1", image.ID)
	assert.Equal(t, "image-1.png", image.FileName)

	_, err = repo.GetByUserID(ctx, "user-2")
	assert.ErrorIs(t, err, ormKit.ErrRecordNotFound)

	require.NoError(t, repo.DeleteByUserID(ctx, "user-1"))
	_, err = repo.GetByUserID(ctx, "user-1")
	assert.ErrorIs(t, err, ormKit.ErrRecordNotFound)
}

// one image per user, enforced by the store
func TestProfileImageRepoUniqueUserID(t *testing.T) {
	repo := createTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.ProfileImage{
		ID: "image-1", FileName: "image-1.png", URL: "u", UploadDate: "2026-08-31", UserID: "user-1",
	}))
	err := repo.Create(ctx, &domain.ProfileImage{
		ID: "image-2", FileName: "image-2.jpg", URL: "u", UploadDate: "2026-08-31", UserID: "user-1",
	})
	assert.ErrorIs(t, err, ormKit.ErrDuplicatedKey)
}
