package srp

// Error codes for the logging service.
const (
	// CodeInvalidArgument is returned when a sink kind or sink name is not known.
	CodeInvalidArgument = "INVALID_ARGUMENT"

	// CodeNullArgument is returned when the logging service is given no sink.
	CodeNullArgument = "NULL_ARGUMENT"
)
