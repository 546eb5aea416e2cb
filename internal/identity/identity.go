// Package identity resolves bearer credentials to the caller's identity.
package identity

import (
	"context"
	"crypto/subtle"
	"strings"

	"google.golang.org/api/idtoken"

	"studyflow/internal/domain"
	"studyflow/internal/errors"
)

// Verifier resolves a bearer token to an identity. Failures are AuthErrors.
type Verifier interface {
	Verify(ctx context.Context, token string) (domain.Identity, error)
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.NewAuthError("missing authorization header", nil)
	}
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errors.NewAuthError("authorization header must be a bearer token", nil)
	}
	return strings.TrimSpace(token), nil
}

// payloadValidator is satisfied by *idtoken.Validator
type payloadValidator interface {
	Validate(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)
}

// GoogleVerifier accepts Google-issued ID tokens for one OAuth client
type GoogleVerifier struct {
	validator payloadValidator
	clientID  string
}

// NewGoogleVerifier creates a verifier for tokens issued to clientID
func NewGoogleVerifier(ctx context.Context, clientID string) (*GoogleVerifier, error) {
	v, err := idtoken.NewValidator(ctx)
	if err != nil {
		return nil, err
	}
	return &GoogleVerifier{validator: v, clientID: clientID}, nil
}

// Verify checks signature, expiry and audience, then reads the profile claims
func (g *GoogleVerifier) Verify(ctx context.Context, token string) (domain.Identity, error) {
	payload, err := g.validator.Validate(ctx, token, g.clientID)
	if err != nil {
		return domain.Identity{}, errors.NewAuthError("invalid Google ID token", err)
	}
	if payload.Subject == "" {
		return domain.Identity{}, errors.NewAuthError("Google ID token has no subject", nil)
	}

	return domain.Identity{
		OwnerID: domain.OwnerID(payload.Subject),
		Email:   claim(payload.Claims, "email"),
		Name:    claim(payload.Claims, "name"),
		Picture: claim(payload.Claims, "picture"),
	}, nil
}

func claim(claims map[string]interface{}, key string) string {
	s, _ := claims[key].(string)
	return s
}

// DevIdentity is the identity the development token resolves to.
var DevIdentity = domain.Identity{
	OwnerID: "dev-user-123",
	Email:   "devuser@example.com",
	Name:    "Dev User",
	Picture: "https://ui-avatars.com/api/?name=Dev+User&background=2C2C2C&color=fff",
}

// StaticVerifier maps one fixed token to one identity. It is meant for local
// development and is only built when a token is configured.
type StaticVerifier struct {
	token    string
	identity domain.Identity
}

// NewStaticVerifier creates a verifier that accepts exactly token
func NewStaticVerifier(token string, identity domain.Identity) *StaticVerifier {
	return &StaticVerifier{token: token, identity: identity}
}

func (s *StaticVerifier) Verify(_ context.Context, token string) (domain.Identity, error) {
	if s.token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(s.token)) != 1 {
		return domain.Identity{}, errors.NewAuthError("unrecognised token", nil)
	}
	return s.identity, nil
}

// Chain tries each verifier in order and returns the first identity found
type Chain []Verifier

func (c Chain) Verify(ctx context.Context, token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, errors.NewAuthError("missing bearer token", nil)
	}

	var lastErr error
	for _, v := range c {
		id, err := v.Verify(ctx, token)
		if err == nil {
			return id, nil
		}
		lastErr = err
	}
	return domain.Identity{}, errors.NewAuthError("invalid credential", lastErr)
}
