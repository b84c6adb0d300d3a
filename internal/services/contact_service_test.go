package services

import (
	"context"
	"errors"
	"testing"

	"github.com/calebmorton/hireboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactSubmit_StoresAndNotifies(t *testing.T) {
	var stored *models.ContactMessage
	messages := &MockContactRepository{
		CreateFunc: func(ctx context.Context, message *models.ContactMessage) (*models.ContactMessage, error) {
			message.ID = "msg-1"
			stored = message
			return message, nil
		},
	}

	var notified *models.ContactMessage
	notifier := &MockNotifier{
		NotifyContactMessageFunc: func(ctx context.Context, message *models.ContactMessage) error {
			notified = message
			return nil
		},
	}

	svc := NewContactService(messages, notifier, testLogger())

	msg, err := svc.Submit(context.Background(), "  Bob  ", "BOB@Example.com", "Hello there")
	require.NoError(t, err)

	assert.Equal(t, "Bob", stored.Name)
	assert.Equal(t, "bob@example.com", stored.Email)
	require.NotNil(t, notified)
	assert.Equal(t, msg.ID, notified.ID)
}

func TestContactSubmit_NotifierFailureDoesNotFailSubmission(t *testing.T) {
	messages := &MockContactRepository{}
	notifier := &MockNotifier{
		NotifyContactMessageFunc: func(ctx context.Context, message *models.ContactMessage) error {
			return errors.New("ses unavailable")
		},
	}

	svc := NewContactService(messages, notifier, testLogger())

	_, err := svc.Submit(context.Background(), "Bob", "bob@example.com", "Hello")
	assert.NoError(t, err)
}

func TestContactSubmit_NoNotifierConfigured(t *testing.T) {
	svc := NewContactService(&MockContactRepository{}, nil, testLogger())

	msg, err := svc.Submit(context.Background(), "Bob", "bob@example.com", "Hello")
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
}

func TestContactSubmit_InvalidEmail(t *testing.T) {
	svc := NewContactService(&MockContactRepository{}, nil, testLogger())

	_, err := svc.Submit(context.Background(), "Bob", "not-an-email", "Hello")
	assert.ErrorIs(t, err, models.ErrBadRequest)
}
