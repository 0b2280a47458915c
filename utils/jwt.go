package utils

import (
	"errors"
	"time"

	"homeserve/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "homeserve-dev-secret"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT with the verified phone number as
// subject. The token expires after the specified duration.
func GenerateToken(phone string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": phone,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// PhoneFromToken validates the token and returns the phone number it was
// issued for.
func PhoneFromToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	phone, _ := claims["sub"].(string)
	if phone == "" {
		return "", errors.New("token missing subject")
	}
	return phone, nil
}
