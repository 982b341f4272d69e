package ocp

import (
	"fmt"
	"io"
	"os"
)

// Command is a unit of work with no input and no result.
type Command interface {
	// Execute performs the command's side effect.
	Execute()
}

const (
	undoMessage       = "Undo command is executed."
	redoMessage       = "Redo command is executed."
	prepareLogMessage = "PrepareLog command is executed."
)

// UndoCommand reverts the last action. The zero value writes to standard output.
type UndoCommand struct {
	out io.Writer
}

func (c *UndoCommand) Execute() {
	writeLine(c.out, undoMessage)
}

// RedoCommand re-applies the last reverted action. The zero value writes to standard output.
type RedoCommand struct {
	out io.Writer
}

func (c *RedoCommand) Execute() {
	writeLine(c.out, redoMessage)
}

// PrepareLogCommand prepares the log file. The zero value writes to standard output.
type PrepareLogCommand struct {
	out io.Writer
}

func (c *PrepareLogCommand) Execute() {
	writeLine(c.out, prepareLogMessage)
}

func writeLine(w io.Writer, line string) {
	if w == nil {
		w = os.Stdout
	}
	_, _ = fmt.Fprintln(w, line)
}
