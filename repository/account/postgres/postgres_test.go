package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superj80820/user-profile-service/domain"
	ormKit "github.com/superj80820/user-profile-service/kit/orm"
)

func createTestRepo(t *testing.T) domain.AccountRepo {
	t.Helper()
	db, err := ormKit.CreateDB(ormKit.UseSQLite(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, err)
	schema, err := os.ReadFile("schema.sql")
	require.NoError(t, err)
	require.NoError(t, db.Exec(string(schema)).Error)
	return CreateAccountRepo(db)
}

func testAccount(id, email string) *domain.Account {
	token := "token-" + id
	expiration := time.Now().Add(15 * time.Minute)
	return &domain.Account{
		ID:                          id,
		Email:                       email,
		Password:                    "bcrypt-hash",
		FirstName:                   "Jane",
		LastName:                    "Doe",
		VerificationToken:           &token,
		VerificationTokenExpiration: &expiration,
		AccountCreated:              time.Now(),
		AccountUpdated:              time.Now(),
	}
}

func TestAccountRepo(t *testing.T) {
	repo := createTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testAccount("id-1", "jane.doe@example.com")))

	byID, err := repo.GetByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@example.com", byID.Email)

	byEmail, err := repo.GetByEmail(ctx, "jane.doe@example.com")
	require.NoError(t, err)
	assert.Equal(t, "id-1", byEmail.ID)

	byToken, err := repo.GetByVerificationToken(ctx, "token-id-1")
	require.NoError(t, err)
	assert.Equal(t, "id-1", byToken.ID)

	_, err = repo.GetByID(ctx, "no-such-id")
	assert.ErrorIs(t, err, ormKit.ErrRecordNotFound)
}

func TestAccountRepoDuplicateEmail(t *testing.T) {
	repo := createTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testAccount("id-1", "jane.doe@example.com")))
	err := repo.Create(ctx, testAccount("id-2", "jane.doe@example.com"))
	assert.ErrorIs(t, err, ormKit.ErrDuplicatedKey)
}

func TestAccountRepoUpdate(t *testing.T) {
	repo := createTestRepo(t)
	ctx := context.Background()

	account := testAccount("id-1", "jane.doe@example.com")
	require.NoError(t, repo.Create(ctx, account))

	account.EmailVerified = true
	account.VerificationToken = nil
	account.VerificationTokenExpiration = nil
	require.NoError(t, repo.Update(ctx, account))

	updated, err := repo.GetByID(ctx, "id-1")
	require.NoError(t, err)
	assert.True(t, updated.EmailVerified)
	assert.Nil(t, updated.VerificationToken)
	assert.Nil(t, updated.VerificationTokenExpiration)

	_, err = repo.GetByVerificationToken(ctx, "token-id-1")
	assert.ErrorIs(t, err, ormKit.ErrRecordNotFound)
}
