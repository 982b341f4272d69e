package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

//nolint:gochecknoglobals // palette is a static lookup shared across encoder instances.
var levelPalette = map[zapcore.Level]*color.Color{
	zapcore.DebugLevel:   color.New(color.FgCyan, color.Bold),
	zapcore.InfoLevel:    color.New(color.FgGreen, color.Bold),
	zapcore.WarnLevel:    color.New(color.FgYellow, color.Bold),
	zapcore.ErrorLevel:   color.New(color.FgRed, color.Bold),
	zapcore.DPanicLevel:  color.New(color.FgHiRed, color.Bold),
	zapcore.PanicLevel:   color.New(color.FgHiRed, color.Bold),
	zapcore.FatalLevel:   color.New(color.FgMagenta, color.Bold),
	zapcore.InvalidLevel: color.New(color.FgWhite),
}

//nolint:gochecknoglobals // static styles reused by every encoder.
var (
	timeStyle    = color.New(color.FgHiBlack)
	textStyle    = color.New(color.FgWhite)
	metaKeyStyle = color.New(color.FgHiCyan)
	warnStyle    = color.New(color.FgHiYellow)
	errorStyle   = color.New(color.FgHiRed)
)

// prettyEncoder wraps zap's JSON encoder to produce colorized, indented output suited for terminals.
type prettyEncoder struct {
	zapcore.Encoder
}

// Clone ensures derived loggers keep the pretty encoder wrapper.
func (e *prettyEncoder) Clone() zapcore.Encoder {
	return &prettyEncoder{Encoder: e.Encoder.Clone()}
}

func newPrettyLogger(cfg *zap.Config) *zap.Logger {
	return newPrettyLoggerTo(cfg, os.Stdout)
}

func newPrettyLoggerTo(cfg *zap.Config, w io.Writer) *zap.Logger {
	enc := &prettyEncoder{Encoder: zapcore.NewJSONEncoder(cfg.EncoderConfig)}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), cfg.Level)
	return zap.New(core, buildPrettyOptions(cfg)...)
}

func buildPrettyOptions(cfg *zap.Config) []zap.Option {
	opts := []zap.Option{zap.ErrorOutput(zapcore.AddSync(os.Stderr))}
	if cfg.Development {
		opts = append(opts, zap.Development())
	}
	if len(cfg.InitialFields) > 0 {
		keys := make([]string, 0, len(cfg.InitialFields))
		for k := range cfg.InitialFields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]zap.Field, 0, len(keys))
		for _, k := range keys {
			fields = append(fields, zap.Any(k, cfg.InitialFields[k]))
		}
		opts = append(opts, zap.Fields(fields...))
	}
	return opts
}

// EncodeEntry renders a header line and, when present, the indented metadata of the entry.
func (e *prettyEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	jsonBuf, err := e.Encoder.EncodeEntry(entry, fields)
	if err != nil {
		return nil, err
	}

	raw := append([]byte(nil), jsonBuf.Bytes()...)
	jsonBuf.Reset()

	var payload map[string]any
	if unmarshalErr := json.Unmarshal(bytes.TrimSpace(raw), &payload); unmarshalErr != nil {
		// not a JSON object, emit as is
		_, _ = jsonBuf.Write(raw)
		if len(raw) == 0 || raw[len(raw)-1] != '\n' {
			jsonBuf.AppendByte('\n')
		}
		return jsonBuf, nil
	}

	jsonBuf.AppendString(buildHeader(entry))
	writeMetadata(jsonBuf, filterReserved(payload), entry.Level)

	return jsonBuf, nil
}

func buildHeader(entry zapcore.Entry) string {
	timestamp := entry.Time
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	levelStyle, ok := levelPalette[entry.Level]
	if !ok {
		levelStyle = levelPalette[zapcore.InfoLevel]
	}

	var b strings.Builder
	b.WriteString(timeStyle.Sprint("[" + timestamp.Format(time.DateTime) + "]"))
	b.WriteByte(' ')
	b.WriteString(levelStyle.Sprint(entry.Level.CapitalString()))
	if entry.LoggerName != "" {
		b.WriteByte(' ')
		b.WriteString(timeStyle.Sprint(entry.LoggerName))
	}
	if entry.Message != "" {
		b.WriteByte(' ')
		b.WriteString(messageStyle(entry.Level).Sprint(entry.Message))
	}
	b.WriteByte('\n')
	return b.String()
}

func filterReserved(payload map[string]any) map[string]any {
	meta := make(map[string]any, len(payload))
	for k, v := range payload {
		switch k {
		case timeKey, levelKey, messageKey, nameKey:
			continue
		default:
			meta[k] = v
		}
	}
	return meta
}

func writeMetadata(buf *buffer.Buffer, meta map[string]any, level zapcore.Level) {
	if len(meta) == 0 {
		return
	}

	valStyle := messageStyle(level)
	pretty, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		buf.AppendString(valStyle.Sprint(metaFallback(meta)))
		buf.AppendByte('\n')
		return
	}

	for _, line := range bytes.Split(pretty, []byte("\n")) {
		formatted := styleMetaLine(line, valStyle)
		if formatted == "" {
			continue
		}
		buf.AppendString(formatted)
		buf.AppendByte('\n')
	}
}

func messageStyle(level zapcore.Level) *color.Color {
	switch level {
	case zapcore.WarnLevel:
		return warnStyle
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return errorStyle
	case zapcore.DebugLevel, zapcore.InfoLevel, zapcore.InvalidLevel:
		return textStyle
	default:
		return textStyle
	}
}

func metaFallback(meta map[string]any) string {
	raw, err := json.Marshal(meta)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func styleMetaLine(line []byte, valStyle *color.Color) string {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return ""
	}
	indent := string(line[:len(line)-len(bytes.TrimLeft(line, " "))])
	colonIdx := bytes.IndexByte(trimmed, ':')
	if colonIdx == -1 {
		return indent + valStyle.Sprint(string(trimmed))
	}
	key := string(trimmed[:colonIdx])
	rest := string(trimmed[colonIdx+1:])
	return indent + metaKeyStyle.Sprint(key) + ":" + valStyle.Sprint(rest)
}
