package options

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Logger opens a console logger writing to path. An empty path disables
// logging.
func Logger(path string) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, errors.Wrapf(err, "opening log %s", path)
	}
	w := zerolog.ConsoleWriter{Out: f, NoColor: true, TimeFormat: time.RFC3339}
	return zerolog.New(w).With().Timestamp().Logger(), f, nil
}
