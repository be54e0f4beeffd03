package token

import (
	"errors"
	"fmt"
	"time"

	"scratch_backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateAccessToken токен оператора с ролью admin
func GenerateAccessToken(subject string, secretKey []byte, ttl time.Duration) (string, error) {
	if len(secretKey) == 0 {
		return "", errors.New("empty signing key")
	}
	now := time.Now()
	claims := model.AdminClaims{
		Role: model.AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

func VerifyToken(tokenStr string, secretKey []byte) (*model.AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: invalid token: %v", model.ErrUnauthorized, err)
	}

	claims, ok := token.Claims.(*model.AdminClaims)
	if !ok || claims.Role != model.AdminRole {
		return nil, fmt.Errorf("%w: invalid token claims", model.ErrUnauthorized)
	}

	return claims, nil
}
