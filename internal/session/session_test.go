package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	manager := NewManager("test-secret", time.Hour, false)
	userID := uuid.New()

	token, err := manager.Issue(userID, "ana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", claims.Email)
	parsedID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestValidate_ExpiredToken(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute, false)

	token, err := manager.Issue(uuid.New(), "ana@example.com")
	require.NoError(t, err)

	_, err = manager.Validate(token)
	assert.Error(t, err)
}

func TestValidate_WrongSecret(t *testing.T) {
	manager := NewManager("test-secret", time.Hour, false)
	other := NewManager("other-secret", time.Hour, false)

	token, err := manager.Issue(uuid.New(), "ana@example.com")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestValidate_Garbage(t *testing.T) {
	manager := NewManager("test-secret", time.Hour, false)

	_, err := manager.Validate("not-a-token")
	assert.Error(t, err)
}

func TestValidate_NonUUIDSubject(t *testing.T) {
	manager := NewManager("test-secret", time.Hour, false)

	now := time.Now()
	claims := Claims{
		Email: "ana@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "not-a-uuid",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = manager.Validate(token)
	assert.Error(t, err)
}

func TestValidate_UnsignedToken(t *testing.T) {
	manager := NewManager("test-secret", time.Hour, false)

	claims := Claims{
		Email: "ana@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = manager.Validate(token)
	assert.Error(t, err)
}

func TestShouldRefresh(t *testing.T) {
	manager := NewManager("test-secret", time.Hour, false)

	fresh := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	assert.False(t, manager.ShouldRefresh(fresh))

	aging := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-45 * time.Minute)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
		},
	}
	assert.True(t, manager.ShouldRefresh(aging))

	missing := &Claims{}
	assert.False(t, manager.ShouldRefresh(missing))
}
