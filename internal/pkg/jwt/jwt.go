package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrMissingExp   = errors.New("token has no expiry claim")
)

// Claims is the subset of the backend session token the client cares about.
type Claims struct {
	UserID string `json:"id,omitempty"`
	Mobile string `json:"mobile,omitempty"`
	jwt.RegisteredClaims
}

// Decode reads the payload segment without checking the signature.
// Signature verification belongs to the backend; the client only needs the claims.
func Decode(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	return claims, nil
}

// ExpiresAt returns the embedded exp claim.
func ExpiresAt(tokenString string) (time.Time, error) {
	claims, err := Decode(tokenString)
	if err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrMissingExp
	}
	return claims.ExpiresAt.Time, nil
}

// CheckExpiry fails closed: malformed tokens and tokens without exp count as expired.
func CheckExpiry(tokenString string, now time.Time) error {
	exp, err := ExpiresAt(tokenString)
	if err != nil {
		return errors.Join(ErrExpiredToken, err)
	}
	if !now.Before(exp) {
		return ErrExpiredToken
	}
	return nil
}

// Sign mints an HS256 token. Only test fixtures and local tooling need it.
func Sign(secret string, claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// NewClaims builds claims expiring at exp.
func NewClaims(userID string, issuedAt, exp time.Time) Claims {
	return Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
}
