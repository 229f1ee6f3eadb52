package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/acd-annotator/acd-annotator-go/internal/config"
	"github.com/acd-annotator/acd-annotator-go/internal/constants"
)

// ACDTimeFormat matches the timestamps written by other ACD services,
// e.g. 2021-04-20T14:54:18.693Z.
const ACDTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// InitLogger initializes the application logger with the given configuration
func InitLogger(cfg *config.AppConfig) {
	initLogger(cfg, os.Stdout)
}

func initLogger(cfg *config.AppConfig, out io.Writer) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Logging.Level))
	if err != nil {
		// Default to info level if invalid
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = ACDTimeFormat
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }

	output := out
	if strings.ToLower(cfg.Logging.Format) == "console" && !cfg.App.IsProduction() {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	log.Logger = zerolog.New(output).
		With().
		Timestamp().
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Str("env", cfg.App.Environment).
		Logger()

	log.Info().Msg("Logger initialized")
}

// RequestLogger creates a logger with request-specific context. It is handed
// to annotators so that their log lines carry the correlation id.
func RequestLogger(correlationID, method, path string) zerolog.Logger {
	return log.With().
		Str(constants.LogKeyCorrelationID, correlationID).
		Str(constants.LogKeyMethod, method).
		Str(constants.LogKeyPath, path).
		Logger()
}

// LogHTTPRequest logs the completion of an HTTP request with its kv summary
func LogHTTPRequest(logger zerolog.Logger, method, path string, statusCode int, summary string) {
	// Health checks are polled constantly; keep them out of non-debug logs
	if strings.HasSuffix(path, constants.HealthCheckPath) && zerolog.GlobalLevel() > zerolog.DebugLevel {
		return
	}

	event := logger.Info()
	switch {
	case statusCode >= 500:
		event = logger.Error()
	case statusCode >= 400:
		event = logger.Warn()
	}

	event.
		Int(constants.LogKeyStatus, statusCode).
		Msgf("<%s %s %s", method, path, summary)
}

// LogPanic logs a recovered panic value
func LogPanic(logger zerolog.Logger, recovered interface{}, stack []byte) {
	logger.Error().
		Str("panic", fmt.Sprintf("%v", recovered)).
		Str("stack", string(stack)).
		Msg("Panic recovered")
}

// GetLogLevel returns the current global log level as a string
func GetLogLevel() string {
	return zerolog.GlobalLevel().String()
}

// SetLogLevel updates the global log level
func SetLogLevel(level string) error {
	parsedLevel, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level: %s", level)
	}

	zerolog.SetGlobalLevel(parsedLevel)
	log.Info().Str("level", parsedLevel.String()).Msg("Log level changed")

	return nil
}
