package basiclog

import (
	"fmt"
	"strings"
)

// Level defines log severity.
type Level int32

const (
	// DEBUG is the lowest severity.
	DEBUG Level = iota
	// INFO marks informational messages.
	INFO
	// WARN marks warning messages.
	WARN
	// ERROR marks error messages.
	ERROR
	// FATAL is the highest severity. It is only a level; nothing exits.
	FATAL
)

// AllLevels returns all supported levels, lowest first.
func AllLevels() []Level {
	return []Level{DEBUG, INFO, WARN, ERROR, FATAL}
}

// String returns the level tag as it appears in the output header.
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive
// and ignores surrounding whitespace.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "FATAL":
		return FATAL, nil
	}
	return DEBUG, fmt.Errorf("unknown log level %q", s)
}
