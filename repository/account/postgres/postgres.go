package repository

import (
	"context"

	"github.com/pkg/errors"

	"github.com/superj80820/user-profile-service/domain"
	ormKit "github.com/superj80820/user-profile-service/kit/orm"
)

type accountEntity struct {
	domain.Account
}

func (accountEntity) TableName() string {
	return "account"
}

type accountRepo struct {
	db *ormKit.DB
}

func CreateAccountRepo(db *ormKit.DB) domain.AccountRepo {
	return &accountRepo{
		db: db,
	}
}

func (a *accountRepo) Create(ctx context.Context, account *domain.Account) error {
	if err := a.db.Create(&accountEntity{Account: *account}).Error; err != nil {
		if duplicatedErr, ok := ormKit.ConvertDuplicatedKeyErr(err); ok {
			return duplicatedErr
		}
		return errors.Wrap(err, "create account failed")
	}
	return nil
}

func (a *accountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	var account accountEntity
	if err := a.db.First(&account, "id = ?", id); err != nil {
		return nil, errors.Wrap(err, "get account failed")
	}
	return &account.Account, nil
}

func (a *accountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var account accountEntity
	if err := a.db.First(&account, "email = ?", email); err != nil {
		return nil, errors.Wrap(err, "get account failed")
	}
	return &account.Account, nil
}

func (a *accountRepo) GetByVerificationToken(ctx context.Context, token string) (*domain.Account, error) {
	var account accountEntity
	if err := a.db.First(&account, "verification_token = ?", token); err != nil {
		return nil, errors.Wrap(err, "get account failed")
	}
	return &account.Account, nil
}

func (a *accountRepo) Update(ctx context.Context, account *domain.Account) error {
	if err := a.db.Save(&accountEntity{Account: *account}).Error; err != nil {
		return errors.Wrap(err, "save account failed")
	}
	return nil
}
