package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type Mailer struct {
	client *ses.Client
	from   string
}

func NewMailer(ctx context.Context) (*Mailer, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, fmt.Errorf("AWS config load failed: %v", err)
	}
	return &Mailer{client: ses.NewFromConfig(cfg), from: os.Getenv("SES_EMAIL")}, nil
}

// generic SES sender
func (m *Mailer) send(ctx context.Context, to, subject, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(m.from),
	}

	_, err := m.client.SendEmail(ctx, input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendResetEmail mails the password-reset link for the given token.
func (m *Mailer) SendResetEmail(ctx context.Context, to, token string) error {
	link := fmt.Sprintf("%s/reset-password/%s", os.Getenv("APP_URL"), token)
	subject := "Password Reset Request"
	body := fmt.Sprintf("You requested a password reset.\n\nOpen this link to set a new password: %s\n\nThe link expires in 15 minutes. If you did not request this, ignore this email.", link)
	return m.send(ctx, to, subject, body)
}
