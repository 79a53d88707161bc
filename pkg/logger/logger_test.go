package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	l := NewLogger()
	require.NotNil(t, l)

	zl, ok := l.(*zerologLogger)
	require.True(t, ok)
	assert.Equal(t, zerolog.InfoLevel, zl.logger.GetLevel())
}

func TestNewLoggerWithLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"unknown", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := NewLoggerWithLevel(tt.level)
			zl, ok := l.(*zerologLogger)
			require.True(t, ok)
			assert.Equal(t, tt.want, zl.logger.GetLevel())
		})
	}
}

func TestWithFieldReturnsNewLogger(t *testing.T) {
	base := NewLogger()
	derived := base.WithField("stage", "products")

	assert.NotSame(t, base, derived)

	// Deriving again must not mutate the parent.
	derived2 := derived.WithFields(map[string]interface{}{"count": 10, "workspace_id": "ws"})
	assert.NotSame(t, derived, derived2)
}
