package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtKey = signingKey()

func signingKey() []byte {
	if key := os.Getenv("JWT_KEY"); key != "" {
		return []byte(key)
	}
	// Demo portal default so the verification flow works without setup.
	return []byte("ipt-demo-signing-key")
}

// VerifyClaims is the payload of an email-verification link token.
type VerifyClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateVerifyToken signs a verification token for the given email.
func GenerateVerifyToken(email string, duration time.Duration) (string, error) {
	claims := &VerifyClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ValidateVerifyToken checks a verification token and returns the email it
// was issued for.
func ValidateVerifyToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &VerifyClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtKey, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*VerifyClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	return claims.Email, nil
}
