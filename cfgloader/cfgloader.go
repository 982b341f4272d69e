// Package cfgloader provides a simple way to load and validate configuration at the start of an application.
package cfgloader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"slices"

	"github.com/code19m/errx"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rise-and-shine/solid/logger"
	"gopkg.in/yaml.v3"
)

const (
	EnvProduction = "production"
	EnvStaging    = "staging"
	EnvDev        = "dev"
	EnvLocal      = "local"
	EnvTest       = "test"

	envVar = "ENVIRONMENT"
)

// MustLoad loads and validates configuration from a YAML file based on the ENVIRONMENT variable.
// The files must be named ${ENVIRONMENT}.yaml and located in the config directory (./config by default).
//
// The configuration struct should use `yaml` struct tags to map fields to the YAML file structure.
//
// Default values for configuration fields can be set using the `default` struct tag. These values are applied before validation
// if the corresponding fields are not explicitly defined in the YAML file.
//
// Validations are done using the go-playground/validator package.
// See https://pkg.go.dev/github.com/go-playground/validator/v10 for more information.
//
// Example:
//
//	type Config struct {
//	    Host        string `yaml:"host" validate:"required"`  // Maps to the "host" field in the YAML file, required
//	    Port        int    `yaml:"port" default:"8080"`       // Maps to the "port" field in the YAML file, defaults to 8080
//	    LogLevel    string `yaml:"log_level" default:"info"`  // Maps to the "log_level" field, defaults to "info"
//	}
//
// Any failure is logged and the process exits with status 1.
func MustLoad[T any](opts ...Option) T {
	config, err := Load[T](opts...)
	if err != nil {
		logger.Named("cfgloader").Fatalx(err)
	}
	return config
}

// Load is MustLoad without the exit: failures are returned as errx errors.
func Load[T any](opts ...Option) (T, error) {
	var config T
	o := buildOptions(opts)

	if reflect.ValueOf(&config).Elem().Kind() == reflect.Ptr {
		return config, errx.New(
			"config type must not be a pointer",
			errx.WithCode(CodeInvalidConfigTarget),
			errx.WithType(errx.T_Internal),
		)
	}

	_ = godotenv.Load()

	env, err := defineEnvironment()
	if err != nil {
		return config, err
	}

	data, err := readConfigFile(filepath.Join(o.Dir, env+".yaml"))
	if err != nil {
		return config, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	if err = yaml.Unmarshal(data, &config); err != nil {
		return config, errx.Wrap(err,
			errx.WithCode(CodeConfigUnreadable),
			errx.WithDetails(errx.D{"environment": env}),
		)
	}

	if err = defaults.Set(&config); err != nil {
		return config, errx.Wrap(err, errx.WithCode(CodeInvalidConfig))
	}

	if err = validateConfig(&config, env); err != nil {
		return config, err
	}

	if !o.Silent {
		printConfig(config)
	}

	return config, nil
}

func defineEnvironment() (string, error) {
	env := os.Getenv(envVar)
	if !slices.Contains([]string{EnvProduction, EnvStaging, EnvDev, EnvLocal, EnvTest}, env) {
		return "", errx.New(
			"ENVIRONMENT env variable is not set or invalid. Choices are: production, staging, dev, local, test",
			errx.WithCode(CodeInvalidEnvironment),
			errx.WithType(errx.T_Validation),
			errx.WithDetails(errx.D{"environment": env}),
		)
	}
	return env, nil
}

func readConfigFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, errx.New(
			fmt.Sprintf("config file not found in the path %s - make sure that the yaml file exists for each environment", path),
			errx.WithCode(CodeConfigNotFound),
			errx.WithType(errx.T_NotFound),
		)
	}
	if err != nil {
		return nil, errx.Wrap(err,
			errx.WithCode(CodeConfigUnreadable),
			errx.WithDetails(errx.D{"path": path}),
		)
	}
	return data, nil
}

func validateConfig(config any, env string) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.Struct(config)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errx.Wrap(err, errx.WithCode(CodeInvalidConfig))
	}

	fields := make(errx.M)
	for _, fieldErr := range validationErrors {
		tag := fieldErr.Tag()
		if fieldErr.Param() != "" {
			tag += "=" + fieldErr.Param()
		}
		fields[fieldErr.Namespace()] = tag
	}

	return errx.New(
		fmt.Sprintf("invalid fields in %s config", env),
		errx.WithCode(CodeInvalidConfig),
		errx.WithType(errx.T_Validation),
		errx.WithFields(fields),
	)
}
