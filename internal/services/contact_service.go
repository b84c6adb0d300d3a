package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/calebmorton/hireboard/internal/models"
)

// ContactRepository defines the contact message storage operations
type ContactRepository interface {
	Create(ctx context.Context, message *models.ContactMessage) (*models.ContactMessage, error)
}

// Notifier forwards a stored contact message to the site operators
type Notifier interface {
	NotifyContactMessage(ctx context.Context, message *models.ContactMessage) error
}

// ContactService stores contact-form submissions and forwards them by email.
// Notification is best effort; a delivery failure never fails the submission.
type ContactService struct {
	messages ContactRepository
	notifier Notifier
	logger   *slog.Logger
}

// NewContactService creates a new ContactService. notifier may be nil when
// email notifications are not configured.
func NewContactService(messages ContactRepository, notifier Notifier, logger *slog.Logger) *ContactService {
	return &ContactService{
		messages: messages,
		notifier: notifier,
		logger:   logger,
	}
}

// Submit stores the message and, when a notifier is configured, forwards it.
func (s *ContactService) Submit(ctx context.Context, name, email, message string) (*models.ContactMessage, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email address", models.ErrBadRequest)
	}

	stored, err := s.messages.Create(ctx, &models.ContactMessage{
		Name:    strings.TrimSpace(name),
		Email:   email,
		Message: strings.TrimSpace(message),
	})
	if err != nil {
		s.logger.Error("failed to store contact message", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyContactMessage(ctx, stored); err != nil {
			s.logger.Error("failed to forward contact message",
				slog.String("message_id", stored.ID),
				slog.Any("error", err))
		}
	}

	s.logger.Info("contact message received", slog.String("message_id", stored.ID))
	return stored, nil
}

// SESNotificationService forwards contact messages using AWS SES
type SESNotificationService struct {
	sesClient   *ses.Client
	fromAddress string
	toAddress   string
	logger      *slog.Logger
}

// NewSESNotificationService creates a new AWS SES notification service
func NewSESNotificationService(region, fromAddress, toAddress string, logger *slog.Logger) (*SESNotificationService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &SESNotificationService{
		sesClient:   ses.NewFromConfig(cfg),
		fromAddress: fromAddress,
		toAddress:   toAddress,
		logger:      logger,
	}, nil
}

// NotifyContactMessage emails the stored message to the site operators.
func (s *SESNotificationService) NotifyContactMessage(ctx context.Context, message *models.ContactMessage) error {
	textBody := fmt.Sprintf(`New contact form submission

From: %s <%s>
Received: %s

%s
`, message.Name, message.Email, message.CreatedAt.Format("2006-01-02 15:04:05 MST"), message.Message)

	input := &ses.SendEmailInput{
		Source: aws.String(s.fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{s.toAddress},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(fmt.Sprintf("Contact form: message from %s", message.Name)),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(textBody),
				},
			},
		},
	}

	result, err := s.sesClient.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("contact notification sent",
		slog.String("message_id", message.ID),
		slog.String("ses_message_id", *result.MessageId))

	return nil
}
