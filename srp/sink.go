package srp

import (
	"fmt"
	"strings"

	"github.com/code19m/errx"
	"github.com/rise-and-shine/solid/logger"
	"github.com/samber/lo"
)

// Logger is a destination for log records.
type Logger interface {
	// Log records message at level. err may be nil.
	Log(level Level, message string, err error)
}

// SinkKind selects a Logger implementation.
type SinkKind int

const (
	SinkFile SinkKind = iota + 1
	SinkDatabase
)

//nolint:gochecknoglobals // static lookup tables
var (
	sinkNames = map[SinkKind]string{
		SinkFile:     "file",
		SinkDatabase: "database",
	}
	sinksByName = lo.Invert(sinkNames)
)

func (k SinkKind) String() string {
	if name, ok := sinkNames[k]; ok {
		return name
	}
	return fmt.Sprintf("SinkKind(%d)", int(k))
}

// ParseSinkKind resolves a sink kind from its name, ignoring case.
func ParseSinkKind(name string) (SinkKind, error) {
	k, ok := sinksByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, errx.New(
			"unknown sink kind",
			errx.WithCode(CodeInvalidArgument),
			errx.WithType(errx.T_Validation),
			errx.WithDetails(errx.D{"name": name}),
		)
	}
	return k, nil
}

// SinkConfig holds the targets of the available sinks.
type SinkConfig struct {
	FilePath string `yaml:"file_path" default:"./logs/app.log"`
	Table    string `yaml:"table"     default:"logs"`
}

// NewSink builds the Logger selected by kind.
func NewSink(kind SinkKind, cfg SinkConfig, l logger.Logger) (Logger, error) {
	switch kind {
	case SinkFile:
		return NewFileLogger(cfg.FilePath, l), nil
	case SinkDatabase:
		return NewDatabaseLogger(cfg.Table, l), nil
	default:
		return nil, errx.New(
			"unknown sink kind",
			errx.WithCode(CodeInvalidArgument),
			errx.WithType(errx.T_Validation),
			errx.WithDetails(errx.D{"kind": kind.String()}),
		)
	}
}

// FileLogger is a file sink. It hands records to the structured logger tagged with
// the target path; writing the file itself is left to the log pipeline.
type FileLogger struct {
	path   string
	logger logger.Logger
}

// NewFileLogger creates a FileLogger for path.
func NewFileLogger(path string, l logger.Logger) *FileLogger {
	return &FileLogger{
		path:   path,
		logger: l.Named("srp.file").With("path", path),
	}
}

// Path returns the target file path.
func (f *FileLogger) Path() string {
	return f.path
}

func (f *FileLogger) Log(level Level, message string, err error) {
	emit(f.logger, level, message, err)
}

// DatabaseLogger is a database sink. It hands records to the structured logger tagged
// with the target table; no database is contacted.
type DatabaseLogger struct {
	table  string
	logger logger.Logger
}

// NewDatabaseLogger creates a DatabaseLogger for table.
func NewDatabaseLogger(table string, l logger.Logger) *DatabaseLogger {
	return &DatabaseLogger{
		table:  table,
		logger: l.Named("srp.database").With("table", table),
	}
}

// Table returns the target table name.
func (d *DatabaseLogger) Table() string {
	return d.table
}

func (d *DatabaseLogger) Log(level Level, message string, err error) {
	emit(d.logger, level, message, err)
}

func emit(l logger.Logger, level Level, message string, err error) {
	l = l.With("level", level.String())
	if err != nil {
		l = l.With("error", err.Error())
	}

	switch level {
	case LevelWarning:
		l.Warn(message)
	case LevelError:
		l.Error(message)
	case LevelInfo:
		l.Info(message)
	default:
		l.Info(message)
	}
}
