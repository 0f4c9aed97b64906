package domain

import (
	"context"
	"time"
)

type Account struct {
	ID        string `gorm:"primaryKey"`
	Email     string
	Password  string
	FirstName string
	LastName  string

	EmailVerified               bool
	VerificationToken           *string
	VerificationTokenExpiration *time.Time

	AccountCreated time.Time
	AccountUpdated time.Time
}

// AccountUpdate carries the mutable subset of an account. A nil field
// means "leave unchanged". Email is accepted only so the use case can
// reject attempts to change it.
type AccountUpdate struct {
	Email     *string
	FirstName *string
	LastName  *string
	Password  *string
}

type AccountRepo interface {
	Create(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, id string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByVerificationToken(ctx context.Context, token string) (*Account, error)
	Update(ctx context.Context, account *Account) error
}

type AccountUseCase interface {
	Create(ctx context.Context, email, password, firstName, lastName string) (*Account, error)
	Get(ctx context.Context, accountID string) (*Account, error)
	Update(ctx context.Context, accountID string, update AccountUpdate) (*Account, error)
	VerifyEmail(ctx context.Context, token string) error
}

// AuthUseCase resolves Basic credentials to an account. Every request
// re-authenticates, there is no session state.
type AuthUseCase interface {
	Authenticate(ctx context.Context, email, password string) (*Account, error)
}

type HealthUseCase interface {
	Ping(ctx context.Context) error
}
