package logger

// Error codes for logger construction.
const (
	// CodeInvalidLevel is returned when Config.Level is not a known zap level.
	CodeInvalidLevel = "INVALID_LOG_LEVEL"
)
