package srp

import "github.com/code19m/errx"

// LoggingService is what application code depends on for logging.
type LoggingService interface {
	LogInfo(message string)
	LogWarning(message string)
	LogError(message string, err error)
}

type loggingService struct {
	sink Logger
}

// NewLoggingService creates a LoggingService writing to sink.
func NewLoggingService(sink Logger) (LoggingService, error) {
	if sink == nil {
		return nil, errx.New(
			"the sink is nil",
			errx.WithCode(CodeNullArgument),
			errx.WithType(errx.T_Validation),
		)
	}
	return &loggingService{sink: sink}, nil
}

func (s *loggingService) LogInfo(message string) {
	s.sink.Log(LevelInfo, message, nil)
}

func (s *loggingService) LogWarning(message string) {
	s.sink.Log(LevelWarning, message, nil)
}

func (s *loggingService) LogError(message string, err error) {
	s.sink.Log(LevelError, message, err)
}
