package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var log = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init configures the global logger. development switches to a human readable
// console writer; otherwise JSON lines are written to stdout.
func Init(level string, development bool) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if development {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	log = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// SetOutput redirects the logger, mostly for tests.
func SetOutput(w io.Writer) {
	log = zerolog.New(w).With().Timestamp().Logger()
}

func get() *zerolog.Logger {
	return &log
}

func Debug(msg string, keyvals ...any) {
	get().Debug().Fields(keyvals).Msg(msg)
}

func Info(msg string, keyvals ...any) {
	get().Info().Fields(keyvals).Msg(msg)
}

func Warn(msg string, keyvals ...any) {
	get().Warn().Fields(keyvals).Msg(msg)
}

func Error(msg string, keyvals ...any) {
	get().Error().Fields(keyvals).Msg(msg)
}

// Fatal logs and exits the process.
func Fatal(msg string, keyvals ...any) {
	get().Fatal().Fields(keyvals).Msg(msg)
}
