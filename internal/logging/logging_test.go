package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/dublyo/dockergen/internal/logging"
)

func TestNewLevels(t *testing.T) {
	cases := []struct {
		name string
		opts logging.Options
		want zapcore.Level
	}{
		{name: "default", opts: logging.Options{}, want: zapcore.InfoLevel},
		{name: "verbose", opts: logging.Options{Verbose: true}, want: zapcore.DebugLevel},
		{name: "quiet", opts: logging.Options{Quiet: true}, want: zapcore.WarnLevel},
		{name: "verbose wins over quiet", opts: logging.Options{Verbose: true, Quiet: true}, want: zapcore.DebugLevel},
		{name: "json", opts: logging.Options{JSON: true}, want: zapcore.InfoLevel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := logging.New(tc.opts)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tc.want))
			if tc.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tc.want-1))
			}
		})
	}
}

func TestNopDiscards(t *testing.T) {
	assert.False(t, logging.Nop().Core().Enabled(zapcore.ErrorLevel))
	assert.NotNil(t, logging.MustNew(logging.Options{}))
}
