package repository

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	sendgridMail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/superj80820/user-profile-service/domain"
)

type mailRepo struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func CreateMailRepo(apiKey, fromEmail, fromName string) domain.MailRepo {
	return &mailRepo{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (m *mailRepo) SendVerificationEmail(ctx context.Context, toEmail, firstName, verifyURL string) error {
	from := sendgridMail.NewEmail(m.fromName, m.fromEmail)
	to := sendgridMail.NewEmail(firstName, toEmail)
	plainText := fmt.Sprintf("Hi %s, please verify your email address: %s", firstName, verifyURL)
	htmlText := fmt.Sprintf(`Hi %s,<br><br>please verify your email address: <a href="%s">%s</a>`, firstName, verifyURL, verifyURL)
	message := sendgridMail.NewSingleEmail(from, "Verify your email address", to, plainText, htmlText)

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return errors.Wrap(err, "send mail failed")
	}
	if response.StatusCode >= 400 {
		return errors.Errorf("send mail failed with status %d", response.StatusCode)
	}
	return nil
}
