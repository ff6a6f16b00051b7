package auth

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoPrivateKey is returned by Issue when the Tokens were built without a signing key.
var ErrNoPrivateKey = errors.New("no private key configured")

// Tokens issues and verifies RS256 session tokens.
type Tokens struct {
	public  *rsa.PublicKey
	private *rsa.PrivateKey
	ttl     time.Duration
	issuer  string
}

// NewTokens parses the PEM encoded keys. The private key is optional for
// verification only setups.
func NewTokens(publicPEM, privatePEM string, ttl time.Duration, issuer string) (*Tokens, error) {
	pub, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	var priv *rsa.PrivateKey
	if privatePEM != "" {
		priv, err = jwt.ParseRSAPrivateKeyFromPEM([]byte(privatePEM))
		if err != nil {
			return nil, fmt.Errorf("could not parse RSA private key: %w", err)
		}
	}

	return &Tokens{public: pub, private: priv, ttl: ttl, issuer: issuer}, nil
}

// Issue signs a token for subject that is valid for the configured TTL, or for
// ttl when it is positive.
func (t *Tokens) Issue(subject string, now time.Time, ttl time.Duration) (string, time.Time, error) {
	if t.private == nil {
		return "", time.Time{}, ErrNoPrivateKey
	}
	if ttl <= 0 {
		ttl = t.ttl
	}

	expiresAt := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    t.issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(t.private)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify validates the token and returns its subject.
func (t *Tokens) Verify(token string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if t.issuer != "" {
		opts = append(opts, jwt.WithIssuer(t.issuer))
	}

	var claims jwt.RegisteredClaims
	if _, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return t.public, nil
	}, opts...); err != nil {
		return "", fmt.Errorf("could not parse token: %w", err)
	}
	if claims.Subject == "" {
		return "", errors.New("token has no subject")
	}

	return claims.Subject, nil
}
