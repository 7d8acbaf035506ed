// Package logger configures the process-wide zerolog logger shared by the
// backend and the admin tool. Every line carries the service name so the
// downstream agents can tell producers apart in aggregated logs.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

const serviceName = "shopping-planner"

var Logger zerolog.Logger

// Init reads LOG_LEVEL and LOG_FORMAT ("json" or "console", console by
// default) and wires both the package and global loggers to stdout.
func Init() {
	InitWithWriter(os.Stdout)
}

func InitWithWriter(w io.Writer) {
	level, err := zerolog.ParseLevel(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var base zerolog.Logger
	if os.Getenv("LOG_FORMAT") == "json" {
		base = zerolog.New(w)
	} else {
		base = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
	}

	Logger = base.With().
		Timestamp().
		Str("service", serviceName).
		Logger().
		Level(level)

	zlog.Logger = Logger
}
