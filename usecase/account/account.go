package account

import (
	"context"
	"net/http"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/pkg/errors"

	"github.com/superj80820/user-profile-service/domain"
	"github.com/superj80820/user-profile-service/kit/code"
	loggerKit "github.com/superj80820/user-profile-service/kit/logger"
	mqKit "github.com/superj80820/user-profile-service/kit/mq"
	ormKit "github.com/superj80820/user-profile-service/kit/orm"
	utilKit "github.com/superj80820/user-profile-service/kit/util"
)

type accountUseCase struct {
	accountRepo       domain.AccountRepo
	mailRepo          domain.MailRepo
	accountEventTopic mqKit.MQTopic
	logger            *loggerKit.Logger

	appBaseURL           string
	verificationTokenTTL time.Duration

	// notifyFailureAborts makes a failed account-created publish fail
	// the whole request instead of only being logged.
	notifyFailureAborts bool
}

func CreateAccountUseCase(
	accountRepo domain.AccountRepo,
	mailRepo domain.MailRepo,
	accountEventTopic mqKit.MQTopic,
	logger *loggerKit.Logger,
	appBaseURL string,
	verificationTokenTTL time.Duration,
	notifyFailureAborts bool,
) (domain.AccountUseCase, error) {
	if logger == nil {
		return nil, errors.New("create use case failed")
	}
	return &accountUseCase{
		accountRepo:          accountRepo,
		mailRepo:             mailRepo,
		accountEventTopic:    accountEventTopic,
		logger:               logger,
		appBaseURL:           appBaseURL,
		verificationTokenTTL: verificationTokenTTL,
		notifyFailureAborts:  notifyFailureAborts,
	}, nil
}

func (a *accountUseCase) Create(ctx context.Context, email, password, firstName, lastName string) (*domain.Account, error) {
	email = strings.TrimSpace(email)
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	for _, field := range []struct {
		name  string
		value string
	}{
		{name: "email", value: email},
		{name: "password", value: strings.TrimSpace(password)},
		{name: "firstName", value: firstName},
		{name: "lastName", value: lastName},
	} {
		if field.value == "" {
			return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.MissingField, field.name)
		}
	}
	if err := validation.Validate(email, is.Email); err != nil {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.EmailInvalid).AddErrorMetaData(err)
	}

	hash, err := utilKit.GetBcrypt(password)
	if err != nil {
		return nil, errors.Wrap(err, "get bcrypt failed")
	}

	now := time.Now()
	verificationToken := utilKit.GetUUID()
	verificationTokenExpiration := now.Add(a.verificationTokenTTL)
	account := &domain.Account{
		ID:                          utilKit.GetUUID(),
		Email:                       email,
		Password:                    hash,
		FirstName:                   firstName,
		LastName:                    lastName,
		EmailVerified:               false,
		VerificationToken:           &verificationToken,
		VerificationTokenExpiration: &verificationTokenExpiration,
		AccountCreated:              now,
		AccountUpdated:              now,
	}

	if err := a.accountRepo.Create(ctx, account); err != nil {
		// duplicate email renders as 400 on this endpoint
		if errors.Is(err, ormKit.ErrDuplicatedKey) {
			return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.EmailExists).AddErrorMetaData(err)
		}
		return nil, errors.Wrap(err, "create account failed")
	}

	go a.sendVerificationEmail(account.Email, account.FirstName, verificationToken)

	if err := a.accountEventTopic.Produce(ctx, &domain.AccountCreatedEvent{
		AccountID: account.ID,
		Email:     account.Email,
		CreatedAt: account.AccountCreated,
	}); err != nil {
		if a.notifyFailureAborts {
			return nil, errors.Wrap(err, "produce account created event failed")
		}
		a.logger.Error("produce account created event failed", loggerKit.Error(err))
	}

	return account, nil
}

func (a *accountUseCase) sendVerificationEmail(email, firstName, verificationToken string) {
	verifyURL := a.appBaseURL + "/verify-email?token=" + verificationToken
	// mail delivery never blocks nor fails the request
	if err := a.mailRepo.SendVerificationEmail(context.Background(), email, firstName, verifyURL); err != nil {
		a.logger.Error("send verification email failed", loggerKit.Error(err), loggerKit.String("email", email))
	}
}

func (a *accountUseCase) Get(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := a.accountRepo.GetByID(ctx, accountID)
	if errors.Is(err, ormKit.ErrRecordNotFound) {
		return nil, code.CreateErrorCode(http.StatusNotFound).AddErrorMetaData(err)
	} else if err != nil {
		return nil, errors.Wrap(err, "get account failed")
	}
	return account, nil
}

func (a *accountUseCase) Update(ctx context.Context, accountID string, update domain.AccountUpdate) (*domain.Account, error) {
	account, err := a.accountRepo.GetByID(ctx, accountID)
	if errors.Is(err, ormKit.ErrRecordNotFound) {
		return nil, code.CreateErrorCode(http.StatusNotFound).AddErrorMetaData(err)
	} else if err != nil {
		return nil, errors.Wrap(err, "get account failed")
	}

	// email is immutable, providing the unchanged value is a no-op
	if update.Email != nil && strings.TrimSpace(*update.Email) != account.Email {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.EmailImmutable)
	}

	if update.FirstName != nil {
		firstName := strings.TrimSpace(*update.FirstName)
		if firstName == "" {
			return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.MissingField, "firstName")
		}
		account.FirstName = firstName
	}
	if update.LastName != nil {
		lastName := strings.TrimSpace(*update.LastName)
		if lastName == "" {
			return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.MissingField, "lastName")
		}
		account.LastName = lastName
	}
	if update.Password != nil {
		if strings.TrimSpace(*update.Password) == "" {
			return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.MissingField, "password")
		}
		hash, err := utilKit.GetBcrypt(*update.Password)
		if err != nil {
			return nil, errors.Wrap(err, "get bcrypt failed")
		}
		account.Password = hash
	}

	account.AccountUpdated = time.Now()
	if err := a.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Wrap(err, "update account failed")
	}

	return account, nil
}

// VerifyEmail consumes a verification token. The token is single use,
// it is cleared together with its expiration once consumed.
func (a *accountUseCase) VerifyEmail(ctx context.Context, token string) error {
	account, err := a.accountRepo.GetByVerificationToken(ctx, token)
	if errors.Is(err, ormKit.ErrRecordNotFound) {
		return code.CreateErrorCode(http.StatusNotFound).AddCode(code.TokenInvalid).AddErrorMetaData(err)
	} else if err != nil {
		return errors.Wrap(err, "get account failed")
	}

	if account.VerificationTokenExpiration == nil || !account.VerificationTokenExpiration.After(time.Now()) {
		return code.CreateErrorCode(http.StatusNotFound).AddCode(code.TokenInvalid)
	}

	account.EmailVerified = true
	account.VerificationToken = nil
	account.VerificationTokenExpiration = nil
	account.AccountUpdated = time.Now()
	if err := a.accountRepo.Update(ctx, account); err != nil {
		return errors.Wrap(err, "update account failed")
	}

	return nil
}
