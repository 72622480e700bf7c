package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/project-service/internal/domain"
)

const testSecret = "test-secret"

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	token, err := Issue(IssueParams{
		Secret:      testSecret,
		Issuer:      "identity",
		UserID:      userID,
		Permissions: []string{"stages:change_status_to_completed"},
		TTL:         time.Hour,
	})
	require.NoError(t, err)

	p, err := NewVerifier(testSecret, "identity").Verify(token)
	require.NoError(t, err)

	assert.Equal(t, userID, p.UserID)
	assert.True(t, p.HasPermission("stages:change_status_to_completed"))
	assert.False(t, p.HasPermission("stages:change_status_to_confirmed"))
}

func TestVerify_Rejects(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	now := time.Now()

	sign := func(t *testing.T, p IssueParams) string {
		t.Helper()
		token, err := Issue(p)
		require.NoError(t, err)
		return token
	}

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject: userID.String(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "garbage",
			token: "not.a.jwt",
		},
		{
			name:  "wrong secret",
			token: sign(t, IssueParams{Secret: "other", UserID: userID}),
		},
		{
			name:  "expired",
			token: sign(t, IssueParams{Secret: testSecret, UserID: userID, TTL: time.Minute, Now: now.Add(-time.Hour)}),
		},
		{
			name:  "wrong issuer",
			token: sign(t, IssueParams{Secret: testSecret, Issuer: "someone-else", UserID: userID}),
		},
		{
			name:  "unsigned",
			token: noneToken,
		},
		{
			name:  "subject is not a uuid",
			token: signRaw(t, jwt.RegisteredClaims{Subject: "ada", Issuer: "identity"}),
		},
	}

	v := NewVerifier(testSecret, "identity")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := v.Verify(tt.token)
			if !errors.Is(err, domain.ErrUnauthenticated) {
				t.Errorf("Verify() error = %v, want %v", err, domain.ErrUnauthenticated)
			}
		})
	}
}

func TestVerify_IssuerOptional(t *testing.T) {
	t.Parallel()

	token, err := Issue(IssueParams{Secret: testSecret, Issuer: "anything", UserID: uuid.New()})
	require.NoError(t, err)

	_, err = NewVerifier(testSecret, "").Verify(token)
	assert.NoError(t, err)
}

func TestIssue_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := Issue(IssueParams{UserID: uuid.New()})
	assert.ErrorIs(t, err, errEmptySecret)
}

func signRaw(t *testing.T, claims jwt.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}
