// Package srp implements a logging service built around the Single Responsibility Principle.
//
// LoggingService only knows how to turn info, warning and error calls into records;
// where a record ends up is the single concern of a Logger sink. Sinks are picked
// by SinkKind through NewSink, so the service never branches on destination.
package srp
