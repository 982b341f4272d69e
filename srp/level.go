package srp

import "fmt"

// Level is the severity of a log record.
type Level int

const (
	LevelInfo Level = iota + 1
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}
