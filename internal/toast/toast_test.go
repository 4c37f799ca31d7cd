package toast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_ShowAndExpire(t *testing.T) {
	now := time.Now()
	m := NewManager(func() time.Time { return now })

	assert.Nil(t, m.Active())

	m.Show("Saved", Success)
	msg := m.Active()
	require.NotNil(t, msg)
	assert.Equal(t, "Saved", msg.Text)
	assert.Equal(t, Success, msg.Kind)

	now = now.Add(DefaultTTL - time.Millisecond)
	assert.NotNil(t, m.Active())

	now = now.Add(2 * time.Millisecond)
	assert.Nil(t, m.Active())
}

func TestManager_ReplaceNotQueue(t *testing.T) {
	now := time.Now()
	m := NewManager(func() time.Time { return now })

	m.Show("first", Success)
	m.Show("second", Error)

	msg := m.Active()
	require.NotNil(t, msg)
	assert.Equal(t, "second", msg.Text)
	assert.Equal(t, Error, msg.Kind)

	// The replaced toast never comes back after the replacement expires.
	now = now.Add(DefaultTTL + time.Second)
	assert.Nil(t, m.Active())
}

func TestManager_TakeClearsSlot(t *testing.T) {
	now := time.Now()
	m := NewManager(func() time.Time { return now })

	assert.Nil(t, m.Take())

	m.Show("Saved", Success)
	msg := m.Take()
	require.NotNil(t, msg)
	assert.Equal(t, "Saved", msg.Text)

	assert.Nil(t, m.Take(), "a taken toast is gone")
	assert.Nil(t, m.Active())

	// Take respects expiry like Active does.
	m.Show("late", Error)
	now = now.Add(DefaultTTL + time.Millisecond)
	assert.Nil(t, m.Take())
}

func TestManager_NewToastResetsTTL(t *testing.T) {
	now := time.Now()
	m := NewManager(func() time.Time { return now })

	m.Show("first", Success)
	now = now.Add(DefaultTTL - time.Millisecond)
	m.Show("second", Success)

	now = now.Add(DefaultTTL - time.Millisecond)
	require.NotNil(t, m.Active())
}
