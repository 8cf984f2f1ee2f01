package utils

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	log "github.com/sirupsen/logrus"
)

var (
	sesClient *ses.Client
	sesSender string
)

// InitMailer wires the SES client. When region or sender is empty the
// mailer stays disabled and sends become no-ops; local development and
// tests run without AWS credentials.
func InitMailer(region, sender string) {
	if region == "" || sender == "" {
		log.Warn("mailer disabled: AWS_REGION or SES_EMAIL not set")
		return
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		log.Fatalf("aws config load failed: %v", err)
	}
	sesClient = ses.NewFromConfig(cfg)
	sesSender = sender
}

func sendEmail(to, subject, body string) error {
	if sesClient == nil {
		log.WithField("to", to).Debug("mailer disabled, dropping email")
		return nil
	}

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
		Source: aws.String(sesSender),
	}

	_, err := sesClient.SendEmail(context.Background(), input)
	if err != nil {
		log.Errorf("ses send error: %v", err)
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// SendResetEmail delivers a password-reset code.
func SendResetEmail(to, code string) error {
	subject := "Password Reset Code"
	body := fmt.Sprintf("Your password reset code is: %s\n\nUse this in the app to set a new password.", code)
	return sendEmail(to, subject, body)
}
