package common

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionToken is the decoded content of a bearer token.
type SessionToken struct {
	UserID    string
	Username  string
	SessionID string
	ExpiresAt time.Time
}

// TokenService signs and validates the session JWTs handed to clients at
// login. The token only carries identifiers; authorization state lives in
// the session store.
type TokenService struct {
	secretKey []byte
}

func NewTokenService(secretKey []byte) *TokenService {
	return &TokenService{secretKey: secretKey}
}

// SignSessionToken produces a bearer token for an established session.
func (s *TokenService) SignSessionToken(session *SessionData) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  session.UserID,
		"username": session.Username,
		"jti":      session.SessionID,
		"exp":      session.ExpiresAt.Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateSessionToken parses a bearer token and returns its identifiers.
// Expiry is enforced here and again against the session store.
func (s *TokenService) ValidateSessionToken(tokenString string) (*SessionToken, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	userID, ok := (*claims)["user_id"].(string)
	if !ok {
		return nil, errors.New("missing or invalid user_id claim")
	}
	username, _ := (*claims)["username"].(string)
	sessionID, ok := (*claims)["jti"].(string)
	if !ok {
		return nil, errors.New("missing or invalid jti claim")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, errors.New("missing expiry claim")
	}
	if time.Now().After(exp.Time) {
		return nil, errors.New("token expired")
	}

	return &SessionToken{
		UserID:    userID,
		Username:  username,
		SessionID: sessionID,
		ExpiresAt: exp.Time,
	}, nil
}
