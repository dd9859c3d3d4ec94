package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/lawsa-dev/portal-api/internal/models"
	pkglogger "github.com/lawsa-dev/portal-api/pkg/logger"
)

// AWSSESEmailService sends verification-decision notifications using AWS SES
type AWSSESEmailService struct {
	sesClient   *ses.Client
	fromAddress string
	logger      *slog.Logger
}

// NewAWSSESEmailService creates a new AWS SES email service
func NewAWSSESEmailService(region, fromAddress string, logger *slog.Logger) (*AWSSESEmailService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &AWSSESEmailService{
		sesClient:   ses.NewFromConfig(cfg),
		fromAddress: fromAddress,
		logger:      logger,
	}, nil
}

// SendVerificationDecision emails a student the outcome of their review.
func (s *AWSSESEmailService) SendVerificationDecision(ctx context.Context, email, fullName, status, reason string) error {
	var subject, body string
	switch status {
	case models.VerificationVerified:
		subject = "LAWSA Portal: your account has been verified"
		body = fmt.Sprintf(
			"Dear %s,\n\nYour student profile has been verified by the Secretariat. "+
				"You now have full access to the resource library and member services.\n\n"+
				"Sign in again to refresh your access.\n\n— LAWSA Secretariat",
			fullName)
	case models.VerificationRejected:
		body = fmt.Sprintf(
			"Dear %s,\n\nWe could not verify your student profile.",
			fullName)
		if reason != "" {
			body += fmt.Sprintf("\n\nReason: %s", reason)
		}
		body += "\n\nPlease contact the Secretariat for assistance.\n\n— LAWSA Secretariat"
		subject = "LAWSA Portal: verification unsuccessful"
	default:
		return fmt.Errorf("unknown decision status: %s", status)
	}

	input := &ses.SendEmailInput{
		Source: aws.String(s.fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{email},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data:    aws.String(body),
					Charset: aws.String("UTF-8"),
				},
			},
		},
	}

	if _, err := s.sesClient.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send decision email: %w", err)
	}

	s.logger.Info("decision notification sent",
		slog.String("status", status),
		slog.String("recipient", pkglogger.SanitizedEmail(email)))
	return nil
}
