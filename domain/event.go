package domain

import (
	"encoding/json"
	"time"
)

type AccountCreatedEvent struct {
	AccountID string    `json:"account_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *AccountCreatedEvent) GetKey() string {
	return a.AccountID
}

func (a *AccountCreatedEvent) Marshal() ([]byte, error) {
	return json.Marshal(a)
}
