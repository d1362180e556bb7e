package logger

import (
	"fmt"
	"io"
	"log"
)

// Logger is the logger shared by views and directories.
//
// Output is discarded unless SetOutput is called. A hook can be
// registered with SetOnLog to receive every formatted message.
type Logger struct {
	onLog  func(format string, a ...any)
	logger *log.Logger
	prefix string
}

// NewLogger constructs a Logger that writes nowhere.
func NewLogger() *Logger {
	return &Logger{
		onLog:  func(format string, a ...any) {},
		logger: log.New(io.Discard, "", log.LstdFlags),
	}
}

// SetPrefix sets the prefix prepended to every message.
//
// E.g. "view" results in "view: message".
func (l *Logger) SetPrefix(prefix string) {
	l.logger.SetPrefix(prefix)
	if prefix == "" {
		l.prefix = ""
		return
	}
	l.prefix = fmt.Sprintf("%s: ", prefix)
}

// Prefix returns the prefix set with SetPrefix.
func (l *Logger) Prefix() string {
	return l.logger.Prefix()
}

func (l *Logger) Writer() io.Writer {
	return l.logger.Writer()
}

func (l *Logger) SetOutput(writer io.Writer) {
	l.logger.SetOutput(writer)
}

// SetOnLog sets a hook called on every Log call.
//
// A nil hook disables it.
func (l *Logger) SetOnLog(hook func(format string, a ...any)) {
	l.onLog = hook
}

// Log formats and writes a message, calling the hook first.
func (l *Logger) Log(format string, a ...any) {
	format = l.prefix + format
	if l.onLog != nil {
		l.onLog(format, a...)
	}
	l.logger.Printf(format+"\n", a...)
}
