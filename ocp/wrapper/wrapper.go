// Package wrapper provides decorators for ocp commands.
//
// Wrappers add cross-cutting behaviour such as logging and tracing to any command
// without touching the command itself or the runner that executes it.
package wrapper

import (
	"fmt"
	"strings"

	"github.com/rise-and-shine/solid/ocp"
)

type unwrapper interface {
	Unwrap() ocp.Command
}

// commandName returns the bare type name of the innermost command, e.g. "UndoCommand".
func commandName(cmd ocp.Command) string {
	for {
		u, ok := cmd.(unwrapper)
		if !ok {
			break
		}
		cmd = u.Unwrap()
	}

	fullType := strings.TrimPrefix(fmt.Sprintf("%T", cmd), "*")

	parts := strings.Split(fullType, ".")
	if len(parts) > 1 {
		return parts[len(parts)-1]
	}

	return fullType
}
