package session_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/logger"
	"github.com/dmitrymomot/sessionkit/pkg/session"
)

func TestContext(t *testing.T) {
	manager, _ := setupManager(t)

	t.Run("round trip", func(t *testing.T) {
		ctx := session.WithManager(context.Background(), manager)
		got, ok := session.FromContext(ctx)
		assert.True(t, ok)
		assert.Same(t, manager, got)
		assert.Same(t, manager, session.MustFromContext(ctx))
	})

	t.Run("missing", func(t *testing.T) {
		_, ok := session.FromContext(context.Background())
		assert.False(t, ok)
		assert.Panics(t, func() {
			session.MustFromContext(context.Background())
		})
	})
}

func TestLoggerExtractor(t *testing.T) {
	manager, _ := startedManager(t)
	id, err := manager.ID()
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(session.LoggerExtractor()),
	)

	log.InfoContext(session.WithManager(context.Background(), manager), "handled")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, id, entry["session_id"])

	t.Run("destroy writes a single line", func(t *testing.T) {
		out := &bytes.Buffer{}
		lg := logger.New(
			logger.WithOutput(out),
			logger.WithLevel(slog.LevelDebug),
			logger.WithContextExtractors(session.LoggerExtractor()),
		)
		m := session.New(session.WithLogger(lg))
		ctx := session.WithManager(context.Background(), m)
		require.NoError(t, m.Start(ctx))
		out.Reset()

		require.NoError(t, m.Destroy(ctx))
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], "session destroyed")
		assert.NotContains(t, lines[0], "precondition")
	})

	t.Run("inactive session logs nothing extra", func(t *testing.T) {
		out := &bytes.Buffer{}
		lg := logger.New(
			logger.WithOutput(out),
			logger.WithLevel(slog.LevelDebug),
			logger.WithContextExtractors(session.LoggerExtractor()),
		)
		m := session.New(session.WithLogger(lg))

		lg.InfoContext(session.WithManager(context.Background(), m), "handled")
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 1)
		assert.NotContains(t, lines[0], "session_id")
	})

	t.Run("inactive session adds nothing", func(t *testing.T) {
		inactive, _ := setupManager(t)
		attr, ok := session.LoggerExtractor()(session.WithManager(context.Background(), inactive))
		assert.False(t, ok)
		assert.Empty(t, attr.Key)
	})
}
