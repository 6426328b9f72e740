package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

func TestValue(t *testing.T) {
	manager, _ := startedManager(t)
	require.NoError(t, manager.Set("name", "alice"))
	require.NoError(t, manager.Set("admin", true))
	require.NoError(t, manager.Set("tags", []string{"a", "b"}))

	t.Run("string", func(t *testing.T) {
		val, ok, err := session.String(manager, "name")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "alice", val)
	})

	t.Run("bool", func(t *testing.T) {
		val, ok, err := session.Bool(manager, "admin")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, val)
	})

	t.Run("generic slice", func(t *testing.T) {
		val, ok, err := session.Value[[]string](manager, "tags")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, val)
	})

	t.Run("wrong type", func(t *testing.T) {
		val, ok, err := session.String(manager, "admin")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, val)
	})

	t.Run("missing key", func(t *testing.T) {
		_, ok, err := session.Bool(manager, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("not active", func(t *testing.T) {
		inactive, _ := setupManager(t)
		_, ok, err := session.String(inactive, "name")
		assert.ErrorIs(t, err, session.ErrSessionNotActive)
		assert.False(t, ok)
	})
}

func TestInt(t *testing.T) {
	manager, _ := startedManager(t)

	tests := []struct {
		name     string
		value    any
		expected int
		ok       bool
	}{
		{name: "int", value: 42, expected: 42, ok: true},
		{name: "int64", value: int64(42), expected: 42, ok: true},
		{name: "int32", value: int32(42), expected: 42, ok: true},
		{name: "float64", value: float64(42), expected: 42, ok: true},
		{name: "string", value: "42", expected: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, manager.Set("n", tt.value))
			val, ok, err := session.Int(manager, "n")
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, val)
		})
	}
}
