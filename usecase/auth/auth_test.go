package auth

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superj80820/user-profile-service/domain"
	"github.com/superj80820/user-profile-service/kit/code"
	loggerKit "github.com/superj80820/user-profile-service/kit/logger"
	ormKit "github.com/superj80820/user-profile-service/kit/orm"
	utilKit "github.com/superj80820/user-profile-service/kit/util"
)

type fakeAccountRepo struct {
	accounts map[string]*domain.Account
}

func (f *fakeAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	f.accounts[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	for _, account := range f.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, ormKit.ErrRecordNotFound
}

func (f *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if account, ok := f.accounts[email]; ok {
		return account, nil
	}
	return nil, ormKit.ErrRecordNotFound
}

func (f *fakeAccountRepo) GetByVerificationToken(ctx context.Context, token string) (*domain.Account, error) {
	return nil, ormKit.ErrRecordNotFound
}

func (f *fakeAccountRepo) Update(ctx context.Context, account *domain.Account) error {
	f.accounts[account.Email] = account
	return nil
}

func createTestAuthUseCase(t *testing.T, emailVerified bool) domain.AuthUseCase {
	t.Helper()

	hash, err := utilKit.GetBcrypt("somepassword")
	require.NoError(t, err)

	accountRepo := &fakeAccountRepo{accounts: map[string]*domain.Account{
		"jane.doe@example.com": {
			ID:            "account-id",
			Email:         "jane.doe@example.com",
			Password:      hash,
			EmailVerified: emailVerified,
		},
	}}

	logger, err := loggerKit.NewLogger(filepath.Join(t.TempDir(), "test.log"), loggerKit.InfoLevel, loggerKit.NoStdout)
	require.NoError(t, err)

	useCase, err := CreateAuthUseCase(accountRepo, logger)
	require.NoError(t, err)
	return useCase
}

func TestAuthenticate(t *testing.T) {
	useCase := createTestAuthUseCase(t, true)

	account, err := useCase.Authenticate(context.Background(), "jane.doe@example.com", "somepassword")
	require.NoError(t, err)
	assert.Equal(t, "account-id", account.ID)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	useCase := createTestAuthUseCase(t, true)

	_, err := useCase.Authenticate(context.Background(), "nobody@example.com", "somepassword")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, code.ParseErrorCode(err).HTTPCode)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	useCase := createTestAuthUseCase(t, true)

	_, err := useCase.Authenticate(context.Background(), "jane.doe@example.com", "wrongpassword")
	require.Error(t, err)
	errorCode := code.ParseErrorCode(err)
	assert.Equal(t, http.StatusUnauthorized, errorCode.HTTPCode)
	assert.Equal(t, code.PasswordInvalid, errorCode.Code)
}

func TestAuthenticateNotVerified(t *testing.T) {
	useCase := createTestAuthUseCase(t, false)

	_, err := useCase.Authenticate(context.Background(), "jane.doe@example.com", "somepassword")
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, code.ParseErrorCode(err).HTTPCode)
}
