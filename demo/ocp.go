package demo

import (
	"io"

	"github.com/code19m/errx"
	"github.com/rise-and-shine/solid/logger"
	"github.com/rise-and-shine/solid/ocp"
	"github.com/rise-and-shine/solid/ocp/wrapper"
)

//nolint:gochecknoglobals // default demo order
var defaultCommands = []ocp.Kind{ocp.KindRedo, ocp.KindUndo, ocp.KindPrepareLog}

// RunOCP creates and runs every configured command in order, writing command output to out.
// It stops at the first failure.
func RunOCP(cfg OCPConfig, out io.Writer, l logger.Logger) error {
	kinds, err := parseKinds(cfg.Commands)
	if err != nil {
		return errx.Wrap(err)
	}

	factory := ocp.NewFactory(ocp.WithOutput(out))
	runner := ocp.NewRunner(
		ocp.WithLogger(l.Named("ocp.runner")),
		ocp.WithWrappers(wrapper.NewLoggerWrapper(l), wrapper.NewTracingWrapper()),
	)

	for _, kind := range kinds {
		cmd, err := factory.Create(kind)
		if err != nil {
			return errx.Wrap(err)
		}
		if err = runner.Run(cmd); err != nil {
			return errx.Wrap(err, errx.WithDetails(errx.D{"kind": kind.String()}))
		}
	}

	return nil
}

func parseKinds(names []string) ([]ocp.Kind, error) {
	if len(names) == 0 {
		return defaultCommands, nil
	}

	kinds := make([]ocp.Kind, 0, len(names))
	for _, name := range names {
		kind, err := ocp.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}
