package services

import (
	"time"

	"github.com/dgrijalva/jwt-go"

	"hotelbooking/config"
	"hotelbooking/errors"
)

// UserInfo is the identity carried inside the access token.
type UserInfo struct {
	UserID uint   `json:"userid"`
	Role   string `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func secretKey() []byte {
	return []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
}

// GenerateToken signs an access token for the user.
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// GetUserIDFromToken verifies the token and returns the user id and role.
func GetUserIDFromToken(tokenString string) (uint, string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "unexpected signing method", nil)
		}
		return secretKey(), nil
	})
	if err != nil || !token.Valid {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "invalid token", err)
	}
	return claims.UserInfo.UserID, claims.UserInfo.Role, nil
}
