package services

import (
	"time"

	"github.com/dgrijalva/jwt-go"

	"savanna/config"
	"savanna/errors"
)

// UserInfo is the identity payload carried inside the access token.
type UserInfo struct {
	UserID uint   `json:"userid"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// TokenExpiryHours is fixed; there is no refresh flow.
const TokenExpiryHours = 24

func jwtSecret() []byte {
	return []byte(config.GetEnv("JWT_SECRET"))
}

func GenerateToken(userInfo UserInfo) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour * TokenExpiryHours).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ParseToken verifies signature and expiry and returns the identity. Every
// failure collapses into the same invalid-token error; callers must not leak
// which check failed.
func ParseToken(tokenString string) (*UserInfo, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "invalid token", nil)
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "invalid token", err)
	}
	return &claims.UserInfo, nil
}
