package domain

import "context"

type MailRepo interface {
	SendVerificationEmail(ctx context.Context, toEmail, firstName, verifyURL string) error
}
