package wrapper

import (
	"context"

	"github.com/rise-and-shine/solid/ocp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "ocp/command"

type tracingWrapper struct {
	tracer   trace.Tracer
	spanName string
	next     ocp.Command
}

// NewTracingWrapper opens a span named after the command type around every execution.
// Commands carry no context, so each execution starts a new trace.
func NewTracingWrapper() ocp.WrapFunc {
	return func(next ocp.Command) ocp.Command {
		return &tracingWrapper{
			tracer:   otel.Tracer(tracerName),
			spanName: commandName(next),
			next:     next,
		}
	}
}

func (w *tracingWrapper) Execute() {
	_, span := w.tracer.Start(context.Background(), w.spanName,
		trace.WithAttributes(attribute.String("command.name", w.spanName)),
	)
	defer span.End()

	w.next.Execute()
}

func (w *tracingWrapper) Unwrap() ocp.Command {
	return w.next
}
