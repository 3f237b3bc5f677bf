package utils

import (
	"errors"
	"fmt"
	"medibook-web/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func GenerateSessionID() string {
	return uuid.NewString()
}

// GenerateSessionJWT signs the session id for the session cookie. There is
// no exp claim, the session record lives until it is cleared.
func GenerateSessionJWT(sessionID, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		constvars.SessionJWTClaimID: sessionID,
		"iat":                       time.Now().Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func ParseSessionJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid session token claims")
	}

	sessionID, ok := claims[constvars.SessionJWTClaimID].(string)
	if !ok || sessionID == "" {
		return "", errors.New("session token has no session id")
	}

	if _, err := uuid.Parse(sessionID); err != nil {
		return "", err
	}
	return sessionID, nil
}
