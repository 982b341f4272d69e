package logger_test

import (
	"errors"
	"testing"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rise-and-shine/solid/logger"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logger.Config
		wantErr bool
	}{
		{name: "json", cfg: logger.Config{Level: "info", Encoding: logger.EncodingJSON}},
		{name: "pretty", cfg: logger.Config{Level: "debug", Encoding: logger.EncodingPretty}},
		{name: "disabled ignores level", cfg: logger.Config{Level: "nonsense", Disable: true}},
		{name: "invalid level", cfg: logger.Config{Level: "loud", Encoding: logger.EncodingJSON}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, err := logger.New(tc.cfg)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errx.IsCodeIn(err, logger.CodeInvalidLevel))
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestErrorxAttachesErrxFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logger.FromZap(zap.New(core))

	l.Errorx(errx.New("boom", errx.WithCode("SOME_CODE"), errx.WithType(errx.T_Validation)))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Contains(t, entries[0].Message, "boom")
	assert.Equal(t, "SOME_CODE", entries[0].ContextMap()["error_code"])
}

func TestWarnxPlainError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logger.FromZap(zap.New(core))

	l.Warnx(errors.New("plain"))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "plain", entries[0].Message)
	assert.NotContains(t, entries[0].ContextMap(), "error_code")
}

func TestNamedAndWith(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logger.FromZap(zap.New(core)).Named("ocp").Named("runner").With("k", "v")

	l.Info("hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "ocp.runner", entries[0].LoggerName)
	assert.Equal(t, "v", entries[0].ContextMap()["k"])
}
