package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/common"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func TestStore_SetPersistsAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewStore(path)

	require.NoError(t, s.Set("tok-1", "admin@jobsstorm.com"))
	assert.Equal(t, "tok-1", s.Token())
	assert.Equal(t, "admin@jobsstorm.com", s.Email())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// A fresh store over the same file picks the session up.
	s2 := NewStore(path)
	assert.Equal(t, "tok-1", s2.Token())
	assert.Equal(t, "admin@jobsstorm.com", s2.Email())
}

func TestStore_MissingFileStartsEmpty(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nope.json"))
	assert.Empty(t, s.Token())
	assert.Empty(t, s.Email())
}

func TestStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewStore(path)
	require.NoError(t, s.Set("tok", "a@b.c"))

	require.NoError(t, s.Clear())
	assert.Empty(t, s.Token())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing twice is fine.
	require.NoError(t, s.Clear())
}

func TestStore_ExpiresAt(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "session.json"))

	_, err := s.ExpiresAt()
	assert.ErrorIs(t, err, common.ErrNoSession)

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	require.NoError(t, s.Set(signedToken(t, exp), "a@b.c"))

	got, err := s.ExpiresAt()
	require.NoError(t, err)
	assert.True(t, got.Equal(exp))
}

func TestStore_Valid(t *testing.T) {
	now := time.Now()
	s := NewStore(filepath.Join(t.TempDir(), "session.json"))

	assert.False(t, s.Valid(now), "empty store is never valid")

	require.NoError(t, s.Set(signedToken(t, now.Add(time.Hour)), "a@b.c"))
	assert.True(t, s.Valid(now))
	assert.False(t, s.Valid(now.Add(2*time.Hour)), "expired token is invalid")
}

func TestStore_OpaqueTokenHasNoExpiry(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, s.Set("not-a-jwt", "a@b.c"))

	got, err := s.ExpiresAt()
	require.NoError(t, err)
	assert.True(t, got.IsZero())
	assert.True(t, s.Valid(time.Now()), "a token without readable expiry is assumed live")
}
