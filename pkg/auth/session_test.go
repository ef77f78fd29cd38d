package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndParse(t *testing.T) {
	m, err := NewManager("test-secret", time.Hour, "talent-intake")
	require.NoError(t, err)

	token, expires, err := m.Issue("admin-1", "super_admin")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, 5*time.Second)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.Subject)
	assert.Equal(t, "super_admin", claims.Role)
}

func TestManager_Rejects(t *testing.T) {
	m, err := NewManager("test-secret", time.Hour, "talent-intake")
	require.NoError(t, err)

	t.Run("Should reject a token signed with another secret", func(t *testing.T) {
		other, _ := NewManager("other-secret", time.Hour, "talent-intake")
		token, _, err := other.Issue("admin-1", "admin")
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Should reject an expired token", func(t *testing.T) {
		past, _ := NewManager("test-secret", time.Minute, "talent-intake")
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, _, err := past.Issue("admin-1", "admin")
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Should reject the none algorithm", func(t *testing.T) {
		claims := SessionClaims{
			Role: "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "admin-1",
				Issuer:    "talent-intake",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Should reject a foreign issuer", func(t *testing.T) {
		other, _ := NewManager("test-secret", time.Hour, "someone-else")
		token, _, err := other.Issue("admin-1", "admin")
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Should reject garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNewManager_RequiresSecret(t *testing.T) {
	_, err := NewManager("", time.Hour, "")
	assert.ErrorIs(t, err, ErrMissingSecret)
}
