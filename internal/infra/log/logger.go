package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds a configured zerolog. It writes to stderr so stdout stays
// reserved for the run result.
func NewLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)
}
