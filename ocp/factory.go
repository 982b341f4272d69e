package ocp

import (
	"io"
	"os"

	"github.com/code19m/errx"
)

// Factory builds commands by kind.
type Factory interface {
	// Create returns a new Command for kind.
	// It fails with CodeInvalidArgument when kind is not defined.
	Create(kind Kind) (Command, error)
}

// FactoryOption configures a Factory.
type FactoryOption func(*factory)

// WithOutput sets the writer every built command writes to.
func WithOutput(w io.Writer) FactoryOption {
	return func(f *factory) {
		f.out = w
	}
}

type factory struct {
	out io.Writer
}

// NewFactory creates a Factory. Commands write to standard output unless WithOutput is given.
func NewFactory(opts ...FactoryOption) Factory {
	f := &factory{out: os.Stdout}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *factory) Create(kind Kind) (Command, error) {
	switch kind {
	case KindUndo:
		return &UndoCommand{out: f.out}, nil
	case KindRedo:
		return &RedoCommand{out: f.out}, nil
	case KindPrepareLog:
		return &PrepareLogCommand{out: f.out}, nil
	default:
		return nil, errx.New(
			"unknown command kind",
			errx.WithCode(CodeInvalidArgument),
			errx.WithType(errx.T_Validation),
			errx.WithDetails(errx.D{"kind": kind.String()}),
		)
	}
}
