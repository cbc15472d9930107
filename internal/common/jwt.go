package common

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"instapost/internal/config"
)

var (
	jwtSecret = []byte(os.Getenv("JWT_SECRET"))
	jwtExpiry = 24 * time.Hour
)

// ConfigureJWT overrides the package defaults from config. Called once at
// startup by the injector.
func ConfigureJWT(cfg config.JWTConfig) {
	if cfg.Secret != "" {
		jwtSecret = []byte(cfg.Secret)
	}
	if cfg.ExpiryHours > 0 {
		jwtExpiry = time.Duration(cfg.ExpiryHours) * time.Hour
	}
}

// Claims represents the data stored in a JWT token.
type Claims struct {
	Handle               string `json:"handle"` // custom claim
	jwt.RegisteredClaims        // exp, iat, iss, sub
}

func GenerateToken(handle string) (string, error) {
	claims := &Claims{
		Handle: handle,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(jwtExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "instapost",
			Subject:   "user-auth",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(jwtSecret)
}

func ValidToken(tokenstring string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenstring, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
