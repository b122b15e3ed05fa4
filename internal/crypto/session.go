package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidSession = errors.New("invalid session token")

// SessionClaims is the payload of the signed session cookie. The token
// deliberately carries no expiry: the cookie itself is a browser
// session cookie and vanishes when the browser closes.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// SignSession creates the signed token stored in the session cookie.
func SignSession(userID int64, secret string) (string, error) {
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   "quicknote",
			Audience: jwt.ClaimStrings{"quicknote-web"},
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifySession validates a session token and returns the user ID it
// carries. Any tampering, truncation, or wrong-secret signature yields
// ErrInvalidSession, never a partially decoded value. Strict decoding
// rejects non-canonical base64, so every bit of the token is covered.
func VerifySession(tokenString, secret string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return []byte(secret), nil
	}, jwt.WithIssuer("quicknote"), jwt.WithAudience("quicknote-web"), jwt.WithStrictDecoding())
	if err != nil {
		return 0, ErrInvalidSession
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return 0, ErrInvalidSession
	}

	return claims.UserID, nil
}
