package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const sessionTokenType = "session"

// TokenService issues and validates the signed session cookie value.
type TokenService struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secretKey: []byte(secret), ttl: ttl, now: time.Now}
}

// NewSession returns a fresh session id and its signed token.
func (s *TokenService) NewSession() (string, string, error) {
	sessionID := uuid.NewString()
	token, err := s.Issue(sessionID)
	if err != nil {
		return "", "", err
	}
	return sessionID, token, nil
}

// Issue signs a token for sessionID.
func (s *TokenService) Issue(sessionID string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sid": sessionID,
		"typ": sessionTokenType,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// Parse validates tokenStr and returns the session id it carries.
func (s *TokenService) Parse(tokenStr string) (string, error) {
	parser := jwt.Parser{}
	token, err := parser.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil || token == nil || !token.Valid {
		return "", fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}
	if typ, ok := claims["typ"].(string); !ok || typ != sessionTokenType {
		return "", fmt.Errorf("invalid token type")
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", fmt.Errorf("invalid token: sid claim is missing")
	}
	return sid, nil
}
