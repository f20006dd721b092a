package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned when a token's expiry has passed.
	ErrTokenExpired = errors.New("token is expired")
	// ErrTokenMalformed is returned when a token cannot be decoded or its
	// signature does not verify.
	ErrTokenMalformed = errors.New("invalid token")
)

// JWTService defines JWT token operations. Tokens carry only registered
// claims: the subject is the username, exp is issue time plus the
// configured expiry.
type JWTService interface {
	GenerateToken(username string) (string, error)
	ValidateToken(tokenString string) (string, error)
	GetAccessExpiry() time.Duration
}

type jwtService struct {
	secret       string
	accessExpiry time.Duration
}

// NewJWTService creates a new JWTService instance.
// Returns nil if the secret is empty or shorter than 32 bytes.
func NewJWTService(secret string, accessExpiry time.Duration) JWTService {
	if len(secret) < 32 {
		return nil
	}
	return &jwtService{
		secret:       secret,
		accessExpiry: accessExpiry,
	}
}

func (s *jwtService) GenerateToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.accessExpiry)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// ValidateToken verifies the signature and expiry and returns the subject.
// Expiry and malformation are reported as distinct errors so callers can
// tell the two rejection reasons apart.
func (s *jwtService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenMalformed
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" || claims.ExpiresAt == nil {
		return "", ErrTokenMalformed
	}

	return claims.Subject, nil
}

func (s *jwtService) GetAccessExpiry() time.Duration {
	return s.accessExpiry
}
