package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/calebmorton/hireboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-token-tests"

func testUser() *models.User {
	return &models.User{
		ID:    "user-123",
		Email: "bob@x.com",
		Role:  models.RoleEmployer,
	}
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, 24*time.Hour)
	user := testUser()

	token, err := tm.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Role, claims.Role)
	assert.NotEmpty(t, claims.ID, "token should carry a jti")
}

func TestTokenManager_ExpirySetFromIssuance(t *testing.T) {
	tm := NewTokenManager(testSecret, 24*time.Hour)

	token, err := tm.Issue(testUser())
	require.NoError(t, err)

	claims, err := tm.Verify(token)
	require.NoError(t, err)

	expectedExpiry := time.Now().Add(24 * time.Hour)
	assert.WithinDuration(t, expectedExpiry, claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenManager_ExpiredTokenRejected(t *testing.T) {
	tm := NewTokenManager(testSecret, -1*time.Minute)

	token, err := tm.Issue(testUser())
	require.NoError(t, err)

	_, err = tm.Verify(token)
	assert.Error(t, err)
}

func TestTokenManager_TamperedSignatureRejected(t *testing.T) {
	tm := NewTokenManager(testSecret, 24*time.Hour)

	token, err := tm.Issue(testUser())
	require.NoError(t, err)

	// Flip a character in the signature segment
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = tm.Verify(tampered)
	assert.Error(t, err)
}

func TestTokenManager_WrongSecretRejected(t *testing.T) {
	tm := NewTokenManager(testSecret, 24*time.Hour)
	other := NewTokenManager("a-completely-different-secret", 24*time.Hour)

	token, err := tm.Issue(testUser())
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestTokenManager_MalformedTokenRejected(t *testing.T) {
	tm := NewTokenManager(testSecret, 24*time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := tm.Verify(tok)
		assert.Error(t, err, "token %q should be rejected", tok)
	}
}
