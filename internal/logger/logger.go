// Package logger builds the application logger. Every entry goes to stderr, an optional
// append-only file, and an in-memory history the console draws from.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultFile is the log file path, relative to the working directory.
const DefaultFile = "logs/shapeshift.log"

// maxHistory bounds the in-memory history.
const maxHistory = 500

// Options configures New.
type Options struct {
	// Level is a charmbracelet/log level name; empty means info.
	Level string
	// File, when set, is opened for appending.
	File   string
	Prefix string
	// Writer replaces stderr.
	Writer io.Writer
}

// Logger is a charmbracelet logger that also remembers what it wrote.
type Logger struct {
	*log.Logger
	history *history
	file    *os.File
}

// New returns a logger configured by opts.
func New(opts Options) (*Logger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		lv, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		level = lv
	}

	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}
	h := &history{}
	writers := []io.Writer{out, h}

	var file *os.File
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		file = f
		writers = append(writers, f)
	}

	l := log.NewWithOptions(io.MultiWriter(writers...), log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return &Logger{Logger: l, history: h, file: file}, nil
}

// Record appends a line, such as console input, to the history without a level or prefix.
func (l *Logger) Record(line string) {
	l.history.add("[" + time.Now().Format(time.DateTime) + "] " + line)
}

// Lines returns a copy of the history, oldest first.
func (l *Logger) Lines() []string {
	return l.history.lines()
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

type history struct {
	mu  sync.Mutex
	buf []string
}

func (h *history) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		h.add(line)
	}
	return len(p), nil
}

func (h *history) add(line string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buf = append(h.buf, line)
	if over := len(h.buf) - maxHistory; over > 0 {
		h.buf = append(h.buf[:0], h.buf[over:]...)
	}
}

func (h *history) lines() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.buf))
	copy(out, h.buf)
	return out
}
