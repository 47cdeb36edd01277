package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify_Success(t *testing.T) {
	s := New("super-secret", time.Hour)
	userID := "8c0a7a3e-9f0a-4bfb-8f3e-2d5b7a1c9e44"

	tok, err := s.Issue(userID, "ada@example.com", "ADMIN")
	require.NoError(t, err, "Issue should not error")
	require.NotEmpty(t, tok, "token must not be empty")

	claims, err := s.Verify(tok)
	require.NoError(t, err, "Verify should not error for fresh token")
	require.NotNil(t, claims)

	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.Time.After(time.Now().Add(-1*time.Second)))
}

func TestNew_DefaultTTL(t *testing.T) {
	s := New("k", 0)

	tok, err := s.Issue("u-1", "a@b.co", "USER")
	require.NoError(t, err)

	claims, err := s.Verify(tok)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestVerify_Table(t *testing.T) {
	makeToken := func(secret string, ttl time.Duration) string {
		s := New(secret, ttl)
		tok, err := s.Issue("user-42", "worker@example.com", "USER")
		require.NoError(t, err)
		return tok
	}

	tests := []struct {
		name    string
		secret  string
		token   string
		wantErr error
	}{
		{
			name:   "valid token",
			secret: "k1",
			token:  makeToken("k1", 5*time.Minute),
		},
		{
			name:    "invalid secret (signature mismatch)",
			secret:  "k2",
			token:   makeToken("k1", 5*time.Minute),
			wantErr: ErrTokenInvalid,
		},
		{
			name:    "expired token",
			secret:  "k1",
			token:   makeToken("k1", -1*time.Minute),
			wantErr: ErrTokenExpired,
		},
		{
			name:    "malformed token string",
			secret:  "k1",
			token:   "not-a-jwt",
			wantErr: ErrTokenInvalid,
		},
		{
			name:    "empty token",
			secret:  "k1",
			token:   "",
			wantErr: ErrTokenMissing,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.secret, time.Minute)

			claims, err := s.Verify(tt.token)
			if tt.wantErr == nil {
				require.NoError(t, err)
				require.NotNil(t, claims)
				assert.Equal(t, "user-42", claims.Subject)
				assert.Equal(t, "worker@example.com", claims.Email)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, claims)
		})
	}
}
