package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned for tokens that fail parsing or validation
	ErrInvalidToken = errors.New("invalid token")
	// ErrMissingSecret is returned when no signing secret has been configured
	ErrMissingSecret = errors.New("jwt secret not configured")
)

// Claims represents JWT claims carried by shopper tokens
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

var (
	mu         sync.RWMutex
	secret     []byte
	expiration = 24 * time.Hour
)

// SetSecret configures the HMAC secret and token lifetime
func SetSecret(key string, ttl time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	secret = []byte(key)
	if ttl > 0 {
		expiration = ttl
	}
}

func signingKey() ([]byte, time.Duration, error) {
	mu.RLock()
	defer mu.RUnlock()
	if len(secret) == 0 {
		return nil, 0, ErrMissingSecret
	}
	return secret, expiration, nil
}

// GenerateToken generates a new JWT token
func GenerateToken(userID uint, username, role string) (string, error) {
	key, ttl, err := signingKey()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := &Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// ValidateToken validates a JWT token and returns the claims
func ValidateToken(tokenString string) (*Claims, error) {
	key, _, err := signingKey()
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return key, nil
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}
