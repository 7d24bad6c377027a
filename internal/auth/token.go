package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer   = "threadapp-api"
	tokenAudience = "threadapp-client"

	// defaultTokenTTL bounds token lifetime. Tokens are stateless and cannot
	// be revoked, so they must not be eternally valid.
	defaultTokenTTL = 24 * time.Hour
)

// TokenIssuer mints and validates signed identity tokens. It is constructed
// once at startup and injected wherever tokens are needed; the signing secret
// never lives in a package-level variable.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer signing with the given secret.
func NewTokenIssuer(secret string) (*TokenIssuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("auth: JWT secret not configured")
	}
	return &TokenIssuer{secret: []byte(secret), ttl: defaultTokenTTL}, nil
}

// Issue mints an HS256 token whose subject claim is the user's ID.
func (t *TokenIssuer) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iss": tokenIssuer,
		"aud": tokenAudience,
		"exp": now.Add(t.ttl).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing token: %w", err)
	}
	return signed, nil
}

// Parse validates the token's signature, method, issuer, audience, and time
// claims, and returns the user ID from the subject claim.
func (t *TokenIssuer) Parse(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("auth: unexpected signing method %q", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithAudience(tokenAudience), jwt.WithExpirationRequired())
	if err != nil {
		return uuid.Nil, fmt.Errorf("auth: invalid token: %w", err)
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("auth: missing subject claim: %w", err)
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("auth: invalid user ID in subject claim: %w", err)
	}
	return userID, nil
}
