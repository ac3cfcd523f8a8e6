package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the demo log file, relative to the working directory.
const DefaultPath = "logs/demo.txt"

// maxLines caps the in-memory history the HUD reads from.
const maxLines = 200

// Logger keeps recent timestamped lines in memory and appends every line to a file.
// A nil echo writer disables console output.
type Logger struct {
	mu    sync.Mutex
	path  string
	echo  io.Writer
	lines []string
	now   func() time.Time
}

// New returns a Logger writing to path (DefaultPath if empty) and ensures its directory
// exists.
func New(path string, echo io.Writer) *Logger {
	if path == "" {
		path = DefaultPath
	}
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	return &Logger{path: path, echo: echo, lines: make([]string, 0), now: time.Now}
}

// Path returns the log file path.
func (l *Logger) Path() string {
	return l.path
}

// Log records one line prefixed with [timestamp] in local time.
func (l *Logger) Log(line string) {
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	if len(l.lines) > maxLines {
		l.lines = append(l.lines[:0], l.lines[len(l.lines)-maxLines:]...)
	}
	echo := l.echo
	l.mu.Unlock()

	if echo != nil {
		_, _ = fmt.Fprintln(echo, stamped)
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats and records one line.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Last returns up to n most recent lines, oldest first.
func (l *Logger) Last(n int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n > len(l.lines) {
		n = len(l.lines)
	}
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	copy(out, l.lines[len(l.lines)-n:])
	return out
}
