package logging

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
)

// FileLogs is a logger writing to a general log file and an error-only
// log file in the same directory, optionally mirrored to a console handler.
type FileLogs struct {
	Logger  *slog.Logger
	LogPath string
	ErrPath string
	files   []*os.File
}

// OpenFileLogs opens (appending) dir/logName for debug and above and
// dir/errName for errors only. console may be nil.
func OpenFileLogs(dir, logName, errName, user, host string, console slog.Handler) (*FileLogs, error) {
	fl := &FileLogs{
		LogPath: filepath.Join(dir, logName),
		ErrPath: filepath.Join(dir, errName),
	}
	logF, err := openAppend(fl.LogPath)
	if err != nil {
		return nil, err
	}
	errF, err := openAppend(fl.ErrPath)
	if err != nil {
		_ = logF.Close()
		return nil, err
	}
	fl.files = []*os.File{logF, errF}

	handlers := []slog.Handler{
		NewLineHandler(logF, slog.LevelDebug, slog.Level(math.MaxInt), user, host),
		NewLineHandler(errF, slog.LevelError, slog.Level(math.MaxInt), user, host),
	}
	if console != nil {
		handlers = append(handlers, console)
	}
	fl.Logger = slog.New(slog.NewMultiHandler(handlers...))
	return fl, nil
}

// Close closes both log files.
func (fl *FileLogs) Close() error {
	var errs []error
	for _, f := range fl.files {
		errs = append(errs, f.Close())
	}
	return errors.Join(errs...)
}

func openAppend(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return f, nil
}
