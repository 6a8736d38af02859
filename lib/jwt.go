package lib

import (
	"fmt"
	"net/http"
	"posadmin_server/structs"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// IssueAccessToken creates a signed access token for a POS terminal
func IssueAccessToken(terminal, secret string, expiry time.Duration) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(expiry)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"terminal": terminal,
		"iat":      now.Unix(),
		"exp":      exp.Unix(),
		"jti":      uuid.NewString(),
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, exp, nil
}

// ParseToken parses and validates a JWT token string and returns the claims
func ParseToken(tokenStr, secret string) (*structs.AuthClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	terminal, ok := claims["terminal"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid terminal claim")
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid iat claim")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid exp claim")
	}

	jtiStr, ok := claims["jti"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid jti claim")
	}

	jti, err := uuid.Parse(jtiStr)
	if err != nil {
		return nil, fmt.Errorf("invalid UUID in jti claim: %w", err)
	}

	return &structs.AuthClaims{
		Terminal: terminal,
		Iat:      time.Unix(int64(iat), 0),
		Exp:      time.Unix(int64(exp), 0),
		Jti:      jti,
	}, nil
}

// ExtractClaims reads the access token cookie from a request and validates it
func ExtractClaims(r *http.Request, secret string) (*structs.AuthClaims, error) {
	accessToken, err := GetCookieValue(AccessCookieName, r)
	if err != nil {
		return nil, err
	}

	return ParseToken(accessToken, secret)
}
