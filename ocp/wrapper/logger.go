package wrapper

import (
	"time"

	"github.com/google/uuid"
	"github.com/rise-and-shine/solid/logger"
	"github.com/rise-and-shine/solid/ocp"
)

type loggerWrapper struct {
	logger  logger.Logger
	next    ocp.Command
	cmdName string
}

// NewLoggerWrapper logs every execution with its duration and a fresh execution id.
func NewLoggerWrapper(l logger.Logger) ocp.WrapFunc {
	return func(next ocp.Command) ocp.Command {
		name := commandName(next)
		return &loggerWrapper{
			logger:  l.Named("ocp.command.logger").With("command_name", name),
			next:    next,
			cmdName: name,
		}
	}
}

func (w *loggerWrapper) Execute() {
	start := time.Now()

	w.next.Execute()

	w.logger.
		With("execution_id", uuid.NewString()).
		With("execution_time", time.Since(start).String()).
		Info("command executed")
}

func (w *loggerWrapper) Unwrap() ocp.Command {
	return w.next
}
