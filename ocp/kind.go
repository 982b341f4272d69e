package ocp

import (
	"fmt"
	"strings"

	"github.com/code19m/errx"
	"github.com/samber/lo"
)

// Kind identifies which Command variant a Factory builds.
type Kind int

const (
	KindUndo Kind = iota + 1
	KindRedo
	KindPrepareLog
)

//nolint:gochecknoglobals // static lookup tables
var (
	kindNames = map[Kind]string{
		KindUndo:       "undo",
		KindRedo:       "redo",
		KindPrepareLog: "prepare_log",
	}
	kindsByName = lo.Invert(kindNames)
)

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds returns every defined kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindUndo, KindRedo, KindPrepareLog}
}

// ParseKind resolves a kind from its name, ignoring case and surrounding spaces.
func ParseKind(name string) (Kind, error) {
	k, ok := kindsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, errx.New(
			"unknown command kind",
			errx.WithCode(CodeInvalidArgument),
			errx.WithType(errx.T_Validation),
			errx.WithDetails(errx.D{
				"name":    name,
				"choices": strings.Join(lo.Map(Kinds(), func(k Kind, _ int) string { return k.String() }), ", "),
			}),
		)
	}
	return k, nil
}
