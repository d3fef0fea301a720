package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenExpired is returned by CheckTokenExpiry for a JWT whose exp
// claim is in the past.
var ErrTokenExpired = errors.New("token expired")

// TokenExpiry returns the exp claim of a JWT without verifying its
// signature. ok is false when the token carries no exp claim.
//
// The blob service owns the signing key; the client only inspects the
// claim to fail fast before sending a request that would be rejected.
func TokenExpiry(tokenString string) (exp time.Time, ok bool, err error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse token: %w", err)
	}

	claims, isMap := token.Claims.(jwt.MapClaims)
	if !isMap {
		return time.Time{}, false, errors.New("invalid token claims")
	}

	date, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, false, fmt.Errorf("read exp claim: %w", err)
	}
	if date == nil {
		return time.Time{}, false, nil
	}

	return date.Time, true, nil
}

// CheckTokenExpiry returns ErrTokenExpired when tokenString is a JWT whose
// exp claim is not after now. Opaque (non-JWT) tokens and tokens without
// exp pass.
func CheckTokenExpiry(tokenString string, now time.Time) error {
	exp, ok, err := TokenExpiry(tokenString)
	if err != nil || !ok {
		return nil
	}
	if !exp.After(now) {
		return fmt.Errorf("%w at %s", ErrTokenExpired, exp.UTC().Format(time.RFC3339))
	}
	return nil
}
