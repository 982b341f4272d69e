package wrapper_test

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rise-and-shine/solid/logger"
	"github.com/rise-and-shine/solid/ocp"
	"github.com/rise-and-shine/solid/ocp/wrapper"
)

func TestLoggerWrapper(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var out bytes.Buffer

	cmd, err := ocp.NewFactory(ocp.WithOutput(&out)).Create(ocp.KindUndo)
	require.NoError(t, err)

	r := ocp.NewRunner(ocp.WithWrappers(wrapper.NewLoggerWrapper(logger.FromZap(zap.New(core)))))
	require.NoError(t, r.Run(cmd))

	assert.Equal(t, "Undo command is executed.\n", out.String())

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "ocp.command.logger", entries[0].LoggerName)
	assert.Equal(t, "command executed", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "UndoCommand", fields["command_name"])
	assert.NotEmpty(t, fields["execution_time"])
	_, parseErr := uuid.Parse(fields["execution_id"].(string))
	assert.NoError(t, parseErr)
}

func TestTracingWrapper(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var out bytes.Buffer
	cmd, err := ocp.NewFactory(ocp.WithOutput(&out)).Create(ocp.KindPrepareLog)
	require.NoError(t, err)

	l, err := logger.New(logger.Config{Disable: true})
	require.NoError(t, err)

	r := ocp.NewRunner(
		ocp.WithLogger(l),
		ocp.WithWrappers(wrapper.NewLoggerWrapper(l), wrapper.NewTracingWrapper()),
	)
	require.NoError(t, r.Run(cmd))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "PrepareLogCommand", spans[0].Name())
	assert.Equal(t, "PrepareLog command is executed.\n", out.String())
}

func TestLoggerWrapperNamesInnermostCommand(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	cmd, err := ocp.NewFactory(ocp.WithOutput(&bytes.Buffer{})).Create(ocp.KindRedo)
	require.NoError(t, err)

	// tracing sits inside the logger wrapper
	r := ocp.NewRunner(ocp.WithWrappers(
		wrapper.NewLoggerWrapper(logger.FromZap(zap.New(core))),
		wrapper.NewTracingWrapper(),
	))
	require.NoError(t, r.Run(cmd))

	require.Len(t, logs.All(), 1)
	assert.Equal(t, "RedoCommand", logs.All()[0].ContextMap()["command_name"])
}
