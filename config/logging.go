package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	LogFileName = "moodify.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
	maxLogFiles = 3                // Keep 3 backup files
)

// RotatingFile is an append-only log file that rotates itself once it
// grows past maxLogSize, keeping maxLogFiles numbered backups.
type RotatingFile struct {
	mu      sync.Mutex
	path    string
	file    *os.File
	size    int64
	maxSize int64
}

// OpenRotatingFile opens (or creates) the log file at path, rotating first
// if the existing file is already over the limit.
func OpenRotatingFile(path string) (*RotatingFile, error) {
	r := &RotatingFile{path: path, maxSize: maxLogSize}

	if info, err := os.Stat(path); err == nil {
		r.size = info.Size()
		if r.size >= r.maxSize {
			if err := rotateLogs(path); err != nil {
				return nil, fmt.Errorf("failed to rotate logs: %w", err)
			}
			r.size = 0
		}
	}

	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RotatingFile) open() error {
	file, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.file = file
	return nil
}

// Write appends p, rotating beforehand when p would push the file over the limit
func (r *RotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return 0, os.ErrClosed
	}

	if r.size > 0 && r.size+int64(len(p)) > r.maxSize {
		r.file.Close()
		r.file = nil
		if err := rotateLogs(r.path); err != nil {
			return 0, err
		}
		if err := r.open(); err != nil {
			return 0, err
		}
		r.size = 0
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// Close closes the underlying file handle
func (r *RotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// rotateLogs shifts moodify.log -> .1 -> .2 -> .3, dropping the oldest
func rotateLogs(basePath string) error {
	os.Remove(fmt.Sprintf("%s.%d", basePath, maxLogFiles))

	for i := maxLogFiles - 1; i >= 1; i-- {
		oldPath := fmt.Sprintf("%s.%d", basePath, i)
		newPath := fmt.Sprintf("%s.%d", basePath, i+1)
		os.Rename(oldPath, newPath)
	}

	if err := os.Rename(basePath, basePath+".1"); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ParseLogLevel maps a config string to a zerolog level, falling back to info
func ParseLogLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// LogFilePath returns the location of moodify.log
func LogFilePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogFileName), nil
}

// InitLogger points the global zerolog logger at the rotating log file and,
// when console is non-nil, at a human readable console writer as well.
// The returned closer must be closed on shutdown.
func InitLogger(logPath string, level string, console io.Writer) (io.Closer, error) {
	file, err := OpenRotatingFile(logPath)
	if err != nil {
		return nil, err
	}

	writers := []io.Writer{file}
	if console != nil {
		writers = append(writers, zerolog.ConsoleWriter{Out: console, TimeFormat: "15:04:05"})
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(ParseLogLevel(level)).
		With().
		Timestamp().
		Logger()

	log.Info().
		Str("component", "config").
		Str("path", logPath).
		Str("level", ParseLogLevel(level).String()).
		Msg("logger initialized")

	return file, nil
}
