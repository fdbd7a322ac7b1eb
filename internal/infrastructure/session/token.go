package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenRemaining decodes the upstream bearer token without verifying it
// (the upstream API is the verifier) just to read its exp claim, so a
// session never outlives the token it carries.
func tokenRemaining(token string) (time.Duration, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return 0, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0, false
	}

	remaining := time.Until(exp.Time)
	if remaining <= 0 {
		return 0, false
	}
	return remaining, true
}
