package auth

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/superj80820/user-profile-service/domain"
	"github.com/superj80820/user-profile-service/kit/code"
	loggerKit "github.com/superj80820/user-profile-service/kit/logger"
	ormKit "github.com/superj80820/user-profile-service/kit/orm"
	utilKit "github.com/superj80820/user-profile-service/kit/util"
)

type authUseCase struct {
	accountRepo domain.AccountRepo
	logger      *loggerKit.Logger
}

func CreateAuthUseCase(accountRepo domain.AccountRepo, logger *loggerKit.Logger) (domain.AuthUseCase, error) {
	if logger == nil {
		return nil, errors.New("create use case failed")
	}
	return &authUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}, nil
}

// Authenticate verifies Basic credentials against the store. Unknown
// email and wrong password both map to 401, an unverified email to 403.
// No state is created, callers re-authenticate on every request.
func (a *authUseCase) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	account, err := a.accountRepo.GetByEmail(ctx, email)
	if errors.Is(err, ormKit.ErrRecordNotFound) {
		return nil, code.CreateErrorCode(http.StatusUnauthorized).AddErrorMetaData(err)
	} else if err != nil {
		return nil, errors.Wrap(err, "get account failed")
	}

	if err := utilKit.CompareBcrypt([]byte(account.Password), []byte(password)); err != nil {
		return nil, code.CreateErrorCode(http.StatusUnauthorized).AddCode(code.PasswordInvalid).AddErrorMetaData(err)
	}

	if !account.EmailVerified {
		return nil, code.CreateErrorCode(http.StatusForbidden)
	}

	return account, nil
}
