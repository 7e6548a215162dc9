package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	xerrors "lionscars-service/internal/pkg/errors"

	"github.com/redis/go-redis/v9"
)

// Manager stores console sessions in redis, keyed by user id and token jti.
// Redis is the single source of truth; a missing key means the session is
// gone, whether it expired or was revoked.
type Manager struct {
	client *redis.Client
}

func NewManager(client *redis.Client) *Manager {
	return &Manager{client: client}
}

func (m *Manager) sessionKey(userID int64, jti string) string {
	return fmt.Sprintf("session:%d:%s", userID, jti)
}

// CreateSession stores a new session with a TTL matching its expiry.
func (m *Manager) CreateSession(ctx context.Context, s *SessionData) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	if err := m.client.Set(ctx, m.sessionKey(s.UserID, s.JTI), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// GetSession retrieves a live session or ErrSessionExpired.
func (m *Manager) GetSession(ctx context.Context, userID int64, jti string) (*SessionData, error) {
	data, err := m.client.Get(ctx, m.sessionKey(userID, jti)).Bytes()
	if err == redis.Nil {
		return nil, xerrors.ErrSessionExpired
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var s SessionData
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &s, nil
}

// DeleteSession revokes one session (logout).
func (m *Manager) DeleteSession(ctx context.Context, userID int64, jti string) error {
	return m.client.Del(ctx, m.sessionKey(userID, jti)).Err()
}
