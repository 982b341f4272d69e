package cfgloader

const defaultConfigDir = "./config"

// Options holds configuration options for Load and MustLoad.
type Options struct {
	// Silent disables printing the loaded config.
	Silent bool

	// Dir is the directory holding ${ENVIRONMENT}.yaml files. Default is ./config.
	Dir string
}

// Option is a functional option for configuring Load and MustLoad behavior.
type Option func(*Options)

// WithSilent disables printing the loaded config.
func WithSilent() Option {
	return func(o *Options) {
		o.Silent = true
	}
}

// WithConfigDir sets the directory the yaml files are read from.
func WithConfigDir(dir string) Option {
	return func(o *Options) {
		o.Dir = dir
	}
}

func buildOptions(opts []Option) Options {
	o := Options{Dir: defaultConfigDir}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
