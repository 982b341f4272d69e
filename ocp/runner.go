package ocp

import (
	"fmt"
	"reflect"
	"runtime"

	"github.com/code19m/errx"
	"github.com/rise-and-shine/solid/logger"
)

// WrapFunc decorates a Command with extra behaviour.
type WrapFunc func(Command) Command

// Runner executes commands.
type Runner interface {
	// Run executes cmd exactly once.
	// It fails with CodeNullArgument when cmd is nil and with CodeCommandPanicked
	// when the command panics.
	Run(cmd Command) error
}

// RunnerOption configures a Runner.
type RunnerOption func(*runner)

// WithLogger sets the logger used to report recovered panics.
func WithLogger(l logger.Logger) RunnerOption {
	return func(r *runner) {
		r.logger = l
	}
}

// WithWrappers decorates every executed command. The first wrapper is the outermost.
func WithWrappers(wrappers ...WrapFunc) RunnerOption {
	return func(r *runner) {
		r.wrappers = append(r.wrappers, wrappers...)
	}
}

type runner struct {
	logger   logger.Logger
	wrappers []WrapFunc
}

// NewRunner creates a Runner.
func NewRunner(opts ...RunnerOption) Runner {
	r := &runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logger.Named("ocp.runner")
	}
	return r
}

func (r *runner) Run(cmd Command) error {
	if isNil(cmd) {
		return errx.New(
			"the command is nil, terminating",
			errx.WithCode(CodeNullArgument),
			errx.WithType(errx.T_Validation),
		)
	}

	wrapped := cmd
	for i := len(r.wrappers) - 1; i >= 0; i-- {
		wrapped = r.wrappers[i](wrapped)
	}

	err := executeWithRecovery(wrapped)
	if err != nil {
		r.logger.With("command_type", fmt.Sprintf("%T", cmd)).Errorx(err)
	}
	return err
}

func executeWithRecovery(cmd Command) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			stackTrace := make([]byte, 4096) // 4KB
			stackTrace = stackTrace[:runtime.Stack(stackTrace, false)]
			err = errx.New("panic recovered while executing command",
				errx.WithCode(CodeCommandPanicked),
				errx.WithType(errx.T_Internal),
				errx.WithDetails(errx.D{
					"stack_trace":  string(stackTrace),
					"panic_values": fmt.Sprintf("%v", rec),
				}),
			)
		}
	}()

	cmd.Execute()
	return nil
}

// isNil reports whether cmd is nil or wraps a nil pointer.
func isNil(cmd Command) bool {
	if cmd == nil {
		return true
	}
	v := reflect.ValueOf(cmd)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
