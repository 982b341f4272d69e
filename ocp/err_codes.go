package ocp

// Error codes for command dispatch.
const (
	// CodeInvalidArgument is returned when a kind or kind name matches no command variant.
	CodeInvalidArgument = "INVALID_ARGUMENT"

	// CodeNullArgument is returned when the runner is given no command.
	CodeNullArgument = "NULL_ARGUMENT"

	// CodeCommandPanicked is returned when a command panics during execution.
	CodeCommandPanicked = "COMMAND_PANICKED"
)
