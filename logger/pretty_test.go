package logger

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyEncoderOutput(t *testing.T) {
	color.NoColor = true

	cfg, err := Config{Level: "debug", Encoding: EncodingPretty}.getZapConfig()
	require.NoError(t, err)

	var buf bytes.Buffer
	z := newPrettyLoggerTo(cfg, &buf).Named("srp.file")

	z.Sugar().With("path", "./logs/app.log").Warn("disk almost full")

	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "srp.file")
	assert.Contains(t, out, "disk almost full")
	assert.Contains(t, out, `"path": "./logs/app.log"`)
	assert.NotContains(t, out, `"msg"`)
}

func TestPrettyEncoderNoMetadata(t *testing.T) {
	color.NoColor = true

	cfg, err := Config{Level: "info", Encoding: EncodingPretty}.getZapConfig()
	require.NoError(t, err)

	var buf bytes.Buffer
	newPrettyLoggerTo(cfg, &buf).Info("only header")
	newPrettyLoggerTo(cfg, &buf).Debug("filtered out")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)
	assert.Contains(t, string(lines[0]), "INFO only header")
}
