package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"skylogger/dronelog/internal/constants"
)

// SessionTTL is how long a login stays valid without a refresh.
const SessionTTL = 7 * 24 * time.Hour

var ErrSessionNotFound = errors.New("session not found")

// SessionData is the server-side session record. There is exactly one
// current session per client; logging in again replaces it.
type SessionData struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionService manages sessions in the configured cache backend.
type SessionService struct {
	cache CacheInterface
}

func NewSessionService(cache CacheInterface) *SessionService {
	return &SessionService{cache: cache}
}

// CreateSession creates a new session for a user and returns its ID.
func (s *SessionService) CreateSession(ctx context.Context, userID, username string) (*SessionData, error) {
	now := time.Now()
	session := &SessionData{
		SessionID: uuid.New().String(),
		UserID:    userID,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	s.cache.Set(sessionKey(session.SessionID), string(data), SessionTTL)
	return session, nil
}

// GetSession resolves a session ID, expiring stale entries on read.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*SessionData, error) {
	val, found := s.cache.Get(sessionKey(sessionID))
	if !found {
		return nil, ErrSessionNotFound
	}

	raw, ok := val.(string)
	if !ok {
		return nil, ErrSessionNotFound
	}

	var session SessionData
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		s.DeleteSession(ctx, sessionID)
		return nil, ErrSessionNotFound
	}

	return &session, nil
}

// DeleteSession removes a session (logout).
func (s *SessionService) DeleteSession(ctx context.Context, sessionID string) {
	s.cache.Delete(sessionKey(sessionID))
}

func sessionKey(sessionID string) string {
	return string(constants.CachePrefixSession) + sessionID
}
