package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/growbuddy/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	t.Run("plant id", func(t *testing.T) {
		attr := logger.PlantID("PLT-AB1234")
		assert.Equal(t, "plant_id", attr.Key)
		assert.Equal(t, "PLT-AB1234", attr.Value.String())
		assert.True(t, logger.PlantID("").Equal(slog.Attr{}))
	})

	t.Run("field", func(t *testing.T) {
		attr := logger.Field("owner_email")
		assert.Equal(t, "field", attr.Key)
		assert.Equal(t, "owner_email", attr.Value.String())
	})

	t.Run("record index", func(t *testing.T) {
		attr := logger.RecordIndex(3)
		assert.Equal(t, "record_index", attr.Key)
		assert.Equal(t, int64(3), attr.Value.Int64())
	})

	t.Run("request id", func(t *testing.T) {
		attr := logger.RequestID("abc")
		assert.Equal(t, "request_id", attr.Key)
		assert.Equal(t, "abc", attr.Value.Any())
		assert.True(t, logger.RequestID(nil).Equal(slog.Attr{}))
	})

	t.Run("duration", func(t *testing.T) {
		attr := logger.Duration(2 * time.Second)
		assert.Equal(t, "duration", attr.Key)
		assert.Equal(t, 2*time.Second, attr.Value.Duration())
	})
}
