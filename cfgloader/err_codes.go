package cfgloader

// Error codes for configuration loading.
const (
	// CodeInvalidConfigTarget is returned when the config type parameter is a pointer.
	CodeInvalidConfigTarget = "INVALID_CONFIG_TARGET"

	// CodeInvalidEnvironment is returned when ENVIRONMENT is unset or not a known environment.
	CodeInvalidEnvironment = "INVALID_ENVIRONMENT"

	// CodeConfigNotFound is returned when the environment's yaml file does not exist.
	CodeConfigNotFound = "CONFIG_NOT_FOUND"

	// CodeConfigUnreadable is returned when the yaml file exists but cannot be read or parsed.
	CodeConfigUnreadable = "CONFIG_UNREADABLE"

	// CodeInvalidConfig is returned when defaults cannot be applied or validation fails.
	CodeInvalidConfig = "INVALID_CONFIG"
)
