// Package auth verifies and issues the HS256 bearer tokens that identify the
// caller of the API. The identity service signs production tokens with the
// shared secret; Issue exists for local development and tests.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-service/internal/domain"
)

// Claims is the token payload. The subject is the user id.
type Claims struct {
	Permissions []string `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}

// Verifier checks token signatures and turns valid tokens into principals.
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewVerifier creates a Verifier for secret. A non-empty issuer must match
// the token's iss claim.
func NewVerifier(secret, issuer string) *Verifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5 * time.Second),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return &Verifier{secret: []byte(secret), parser: jwt.NewParser(opts...)}
}

// Verify parses raw and returns the principal it names. Every failure wraps
// domain.ErrUnauthenticated.
func (v *Verifier) Verify(raw string) (domain.Principal, error) {
	var claims Claims
	_, err := v.parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: subject is not a user id", domain.ErrUnauthenticated)
	}

	return domain.Principal{UserID: userID, Permissions: claims.Permissions}, nil
}

// IssueParams describes a token to sign.
type IssueParams struct {
	Secret      string
	Issuer      string
	UserID      uuid.UUID
	Permissions []string
	TTL         time.Duration
	Now         time.Time
}

var errEmptySecret = errors.New("signing secret is empty")

// Issue signs a token for p.UserID.
func Issue(p IssueParams) (string, error) {
	if p.Secret == "" {
		return "", errEmptySecret
	}
	if p.Now.IsZero() {
		p.Now = time.Now()
	}

	claims := Claims{
		Permissions: p.Permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  p.UserID.String(),
			Issuer:   p.Issuer,
			IssuedAt: jwt.NewNumericDate(p.Now),
		},
	}
	if p.TTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(p.Now.Add(p.TTL))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(p.Secret))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}
