package logger

import (
	"fmt"
	"os"
	"time"
)

// Level classifies a log line. Levels are informational only; nothing is
// filtered or throttled by severity.
type Level int

const (
	Info Level = iota
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Info:
		return "INFO"
	case Warning:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger appends timestamped, leveled lines to a shared log file and echoes
// them to stdout. The file is opened and closed on every call; there is no
// buffering. Logging never fails loudly: if the file cannot be opened the
// call writes nothing and returns.
type Logger struct {
	path string
}

func New(path string) *Logger {
	return &Logger{path: path}
}

// Path returns the log file location.
func (lg *Logger) Path() string { return lg.path }

// Log appends one line in the form "[<timestamp>][<LEVEL>] <message>".
func (lg *Logger) Log(level Level, message string) {
	line := fmt.Sprintf("[%s][%s] %s\n", time.Now().Format(time.ANSIC), level, message)

	f, err := os.OpenFile(lg.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err == nil {
		f.WriteString(line)
		f.Close()
	}

	fmt.Printf("[%s] %s\n", level, message)
}

func (lg *Logger) Infof(format string, args ...any) {
	lg.Log(Info, fmt.Sprintf(format, args...))
}

func (lg *Logger) Warnf(format string, args ...any) {
	lg.Log(Warning, fmt.Sprintf(format, args...))
}

func (lg *Logger) Errorf(format string, args ...any) {
	lg.Log(Error, fmt.Sprintf(format, args...))
}
