package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel парсит уровень из строки конфига (debug, info, warn, error)
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("logger: unknown level %q", s)
	}
}

// Logger пишет в stdout и, если указан файл, дублирует записи в него
type Logger struct {
	mu    sync.Mutex
	l     *log.Logger
	level Level
	file  *os.File
}

// New создает логгер. Пустой filePath означает вывод только в stdout.
func New(filePath string, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var (
		out  io.Writer = os.Stdout
		file *os.File
	)
	if filePath != "" {
		file, err = os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file %s: %w", filePath, err)
		}
		out = io.MultiWriter(os.Stdout, file)
	}

	return &Logger{
		l:     log.New(out, "", log.LstdFlags|log.Lmicroseconds),
		level: lvl,
		file:  file,
	}, nil
}

// NewWithWriter создает логгер поверх произвольного writer (используется в тестах)
func NewWithWriter(w io.Writer, level Level) *Logger {
	return &Logger{
		l:     log.New(w, "", 0),
		level: level,
	}
}

func (lg *Logger) Debug(format string, v ...interface{}) {
	lg.write(LevelDebug, format, v...)
}

func (lg *Logger) Info(format string, v ...interface{}) {
	lg.write(LevelInfo, format, v...)
}

func (lg *Logger) Warn(format string, v ...interface{}) {
	lg.write(LevelWarn, format, v...)
}

func (lg *Logger) Error(format string, v ...interface{}) {
	lg.write(LevelError, format, v...)
}

// Fatal пишет ошибку и завершает процесс
func (lg *Logger) Fatal(format string, v ...interface{}) {
	lg.write(LevelError, format, v...)
	lg.Close()
	os.Exit(1)
}

// Close закрывает файл лога, если он был открыт
func (lg *Logger) Close() error {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	if lg.file == nil {
		return nil
	}
	err := lg.file.Close()
	lg.file = nil
	return err
}

func (lg *Logger) write(level Level, format string, v ...interface{}) {
	if level < lg.level {
		return
	}

	lg.mu.Lock()
	defer lg.mu.Unlock()
	lg.l.Printf("[%s] %s", level, fmt.Sprintf(format, v...))
}
