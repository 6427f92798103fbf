package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried in every access token.
type Claims struct {
	UserID uint     `json:"userId"`
	Roles  []string `json:"userRoles"`
	Email  string   `json:"email"`
	jwt.RegisteredClaims
}

func GenerateToken(userID uint, roles []string, email, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: userID,
		Roles:  roles,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
