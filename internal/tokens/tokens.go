package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims identifies a back-office session. Tokens carry no expiry:
// they stay usable exactly as long as the stored session they name.
type SessionClaims struct {
	Role      string `json:"role"`
	LoginTime int64  `json:"loginTime"` // unix milliseconds
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid session token")

// GenerateSessionToken creates a signed HS256 token for the given session fields.
func GenerateSessionToken(secret, username, role string, loginTime time.Time) (string, error) {
	claims := SessionClaims{
		Role:      role,
		LoginTime: loginTime.UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  username,
			IssuedAt: jwt.NewNumericDate(loginTime),
		},
	}
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jt.SignedString([]byte(secret))
}

// ParseSessionToken verifies the signature and returns the claims.
func ParseSessionToken(secret, raw string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !tok.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
