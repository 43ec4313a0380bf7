package identity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ayoisaiah/zenfocus/internal/apperr"
)

var (
	errMissingSecret = &apperr.Error{
		Message: "a jwt secret is required (set server.jwt_secret)",
	}

	errMissingUser = &apperr.Error{
		Message: "a user id is required",
	}

	// ErrInvalidToken is returned for tokens that fail verification.
	ErrInvalidToken = &apperr.Error{
		Message: "invalid token",
	}
)

// Issuer signs and verifies HS256 tokens.
type Issuer struct {
	now    func() time.Time
	secret []byte
	ttl    time.Duration
}

// NewIssuer returns an Issuer. A zero ttl issues tokens that never expire.
func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, errMissingSecret
	}

	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue returns a signed token for the user.
func (i *Issuer) Issue(userID, name string) (string, error) {
	if userID == "" {
		return "", errMissingUser
	}

	now := i.now()

	claims := Claims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userID,
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}

	if i.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(i.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(i.secret)
}

// Verify checks the signature and expiry of token and returns its user.
func (i *Issuer) Verify(tokenString string) (User, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(_ *jwt.Token) (any, error) {
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !token.Valid {
		return User{}, ErrInvalidToken.Wrap(err)
	}

	if claims.Subject == "" {
		return User{}, ErrInvalidToken
	}

	return User{ID: claims.Subject, Name: claims.Name}, nil
}
