package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Secret:   "test-secret",
		Issuer:   "lionscars",
		Audience: "lionscars-console",
		TTL:      time.Hour,
	}
}

func TestNewManager_RequiresSecret(t *testing.T) {
	_, err := NewManager(Config{})
	assert.Error(t, err)
}

func TestNewManager_DefaultTTL(t *testing.T) {
	m, err := NewManager(Config{Secret: "s"})
	require.NoError(t, err)
	assert.Equal(t, 12*time.Hour, m.TTL())
}

func TestGenerateAndVerify(t *testing.T) {
	m, err := NewManager(testConfig())
	require.NoError(t, err)

	token, jti, err := m.Generate(7, "pedro", "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, jti)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "pedro", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, jti, claims.ID)
	assert.True(t, claims.IsAdmin())
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	m1, err := NewManager(testConfig())
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Secret = "another-secret"
	m2, err := NewManager(cfg)
	require.NoError(t, err)

	token, _, err := m1.Generate(1, "ana", "vendedor")
	require.NoError(t, err)

	_, err = m2.Verify(token)
	assert.Error(t, err)
}

func TestVerify_RejectsWrongIssuer(t *testing.T) {
	cfg := testConfig()
	cfg.Issuer = "someone-else"
	other, err := NewManager(cfg)
	require.NoError(t, err)

	m, err := NewManager(testConfig())
	require.NoError(t, err)

	token, _, err := other.Generate(1, "ana", "vendedor")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestVerify_RejectsExpiredToken(t *testing.T) {
	// NewManager clamps non-positive TTLs, so build the manager directly.
	m := &Manager{secret: []byte("test-secret"), issuer: "lionscars", ttl: -time.Minute}

	token, _, err := m.Generate(1, "ana", "vendedor")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestVerify_RejectsGarbage(t *testing.T) {
	m, err := NewManager(testConfig())
	require.NoError(t, err)

	_, err = m.Verify("not.a.token")
	assert.Error(t, err)
}
