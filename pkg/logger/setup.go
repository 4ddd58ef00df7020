package logger

import (
	"io"
	"os"

	"github.com/cloudposse/fngen/pkg/schema"
)

const logFilePerms = 0o644

// nopCloser is returned when logs go to a standard stream.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup configures the default logger from the logs section of the configuration.
// The returned closer releases the log file, if one was opened.
func Setup(cfg schema.Logs) (io.Closer, error) {
	level, err := ParseLogLevel(cfg.Level)
	if err != nil {
		return nopCloser{}, err
	}

	l := New()
	l.SetLevel(ConvertLogLevel(level))

	var closer io.Closer = nopCloser{}
	switch cfg.File {
	case "", "/dev/stderr":
		l.SetOutput(os.Stderr)
	case "/dev/stdout":
		l.SetOutput(os.Stdout)
	default:
		f, err := os.OpenFile(cfg.File, os.O_WRONLY|os.O_APPEND|os.O_CREATE, logFilePerms)
		if err != nil {
			return nopCloser{}, err
		}
		l.SetOutput(f)
		closer = f
	}

	SetDefault(l)
	return closer, nil
}
