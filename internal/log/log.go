package log

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Error Level = iota
	Info
	Warning
	Debug
)

var levelNames = [...]string{"ERROR", "INFO", "WARNING", "DEBUG"}

func (l Level) String() string {
	if l < Error || l > Debug {
		return "UNKNOWN"
	}
	return levelNames[l]
}

func StringToLevel(str string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(str, name) {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("%s is not a supported log level", str)
}

// Shared state of a logger and all loggers derived from it by Named.
type sink struct {
	mu    sync.Mutex
	level Level
	out   io.Writer
}

type Logger struct {
	*sink
	name string
}

func New(out io.Writer, level Level) *Logger {
	return &Logger{sink: &sink{out: out, level: level}}
}

// Discard returns a logger that drops every message.
func Discard() *Logger {
	return New(nil, Error)
}

// Named returns a logger writing to the same output with the component name
// prepended to every message. Level changes are shared.
func (l *Logger) Named(name string) *Logger {
	if l.name != "" {
		name = l.name + "." + name
	}
	return &Logger{sink: l.sink, name: name}
}

func (l *Logger) log(calldepth int, level Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.level < level || l.out == nil {
		return
	}
	hour, min, sec := time.Now().Clock()
	_, file, line, ok := runtime.Caller(calldepth)
	if !ok {
		file = "???"
		line = 0
	}
	msg := fmt.Sprintf(format, args...)
	if l.name != "" {
		msg = l.name + ": " + msg
	}
	fmt.Fprintf(l.out, "%02d:%02d:%02d %s %s:%d %s\n", hour, min, sec, level, filepath.Base(file), line, msg)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.log(2, Error, format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.log(2, Info, format, args...)
}

func (l *Logger) Warning(format string, args ...interface{}) {
	l.log(2, Warning, format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(2, Debug, format, args...)
}

func (l *Logger) SetOutput(out io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = out
}

func (l *Logger) SetLevel(level Level) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < Error || level > Debug {
		return fmt.Errorf("unsupported log level: %v", level)
	}
	l.level = level
	return nil
}

func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}
