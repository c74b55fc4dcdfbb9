package logger_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mbii55/servio-admin-sub000/core/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json formatter emits json records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
		)

		log.Info("test message", logger.Component("test"))

		output := buf.String()
		assert.Contains(t, output, `"msg":"test message"`)
		assert.Contains(t, output, `"component":"test"`)
	})

	t.Run("level filters records below threshold", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithLevel(slog.LevelWarn),
			logger.WithOutput(&buf),
		)

		log.Info("dropped")
		log.Warn("kept")

		output := buf.String()
		assert.NotContains(t, output, "dropped")
		assert.Contains(t, output, "kept")
	})

	t.Run("development preset enables debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithDevelopment("servio-admin"),
			logger.WithOutput(&buf),
		)

		log.Debug("debug detail")

		output := buf.String()
		assert.Contains(t, output, "debug detail")
		assert.Contains(t, output, "app=servio-admin")
	})

	t.Run("static attrs appear on every record", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("service", "admin-console")),
		)

		log.Info("first")
		log.Info("second")

		output := buf.String()
		assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte(`"service":"admin-console"`)))
		assert.Contains(t, output, "first")
		assert.Contains(t, output, "second")
	})
}

func TestContextExtraction(t *testing.T) {
	t.Parallel()

	type ctxKey struct{}

	t.Run("extractor injects attribute from context", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
			logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
				if v, ok := ctx.Value(ctxKey{}).(string); ok {
					return logger.RequestID(v), true
				}
				return slog.Attr{}, false
			}),
		)

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-12345")
		log.InfoContext(ctx, "with context")
		log.Info("without context")

		output := buf.String()
		assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte(`"request_id":"req-12345"`)))
		assert.Contains(t, output, "with context")
		assert.Contains(t, output, "without context")
	})

	t.Run("context value extractor reads typed key", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
			logger.WithContextValue("user_id", ctxKey{}),
		)

		ctx := context.WithValue(context.Background(), ctxKey{}, "user-67890")
		log.InfoContext(ctx, "lookup")

		assert.Contains(t, buf.String(), `"user_id":"user-67890"`)
	})
}

func TestAttrHelpers(t *testing.T) {
	t.Parallel()

	t.Run("nil error yields empty attr", func(t *testing.T) {
		t.Parallel()

		attr := logger.Error(nil)
		assert.True(t, attr.Equal(slog.Attr{}))
	})

	t.Run("non-nil error yields error attr", func(t *testing.T) {
		t.Parallel()

		err := errors.New("boom")
		attr := logger.Error(err)
		assert.Equal(t, "error", attr.Key)
	})

	t.Run("errors skips nil entries", func(t *testing.T) {
		t.Parallel()

		attr := logger.Errors(nil, errors.New("first"), nil, errors.New("second"))
		require.Equal(t, "errors", attr.Key)

		group := attr.Value.Group()
		require.Len(t, group, 2)
		assert.Equal(t, "1", group[0].Key)
		assert.Equal(t, "3", group[1].Key)
	})

	t.Run("all nil errors yield empty attr", func(t *testing.T) {
		t.Parallel()

		attr := logger.Errors(nil, nil)
		assert.True(t, attr.Equal(slog.Attr{}))
	})

	t.Run("empty id yields empty attr", func(t *testing.T) {
		t.Parallel()

		assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
		assert.True(t, logger.ID("user_id", nil).Equal(slog.Attr{}))
	})
}
