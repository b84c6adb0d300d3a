package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/calebmorton/hireboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactSubmitHandler(t *testing.T) {
	var gotName, gotEmail, gotMessage string
	service := &MockContactService{
		SubmitFunc: func(ctx context.Context, name, email, message string) (*models.ContactMessage, error) {
			gotName, gotEmail, gotMessage = name, email, message
			return &models.ContactMessage{ID: "msg-1"}, nil
		},
	}
	handler := NewContactHandler(service)

	body := `{"name":"Bob","email":"bob@example.com","message":"Hello"}`
	rec := httptest.NewRecorder()
	handler.Submit(rec, authRequest(t, http.MethodPost, "/api/contact", body, nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "Bob", gotName)
	assert.Equal(t, "bob@example.com", gotEmail)
	assert.Equal(t, "Hello", gotMessage)
}

func TestContactSubmitHandler_MissingFields(t *testing.T) {
	handler := NewContactHandler(&MockContactService{})

	rec := httptest.NewRecorder()
	handler.Submit(rec, authRequest(t, http.MethodPost, "/api/contact", `{"name":"Bob"}`, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactSubmitHandler_InvalidEmail(t *testing.T) {
	service := &MockContactService{
		SubmitFunc: func(ctx context.Context, name, email, message string) (*models.ContactMessage, error) {
			return nil, models.ErrBadRequest
		},
	}
	handler := NewContactHandler(service)

	body := `{"name":"Bob","email":"nope","message":"Hello"}`
	rec := httptest.NewRecorder()
	handler.Submit(rec, authRequest(t, http.MethodPost, "/api/contact", body, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
