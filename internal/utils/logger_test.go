package utils_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acd-annotator/acd-annotator-go/internal/config"
	"github.com/acd-annotator/acd-annotator-go/internal/utils"
)

// captureStdout captures stdout during function execution
func captureStdout(fn func()) string {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

// captureOutput captures global log output for testing
func captureOutput(fn func()) string {
	original := log.Logger
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).With().Timestamp().Logger()

	fn()

	log.Logger = original
	return buf.String()
}

func createTestConfig(format string) *config.AppConfig {
	return &config.AppConfig{
		App: config.AppSettings{
			Environment: "testing",
			Name:        "test-annotator",
			Version:     "v1",
		},
		Logging: config.LoggingSettings{
			Level:  "debug",
			Format: format,
		},
	}
}

func TestInitLogger(t *testing.T) {
	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
	}()

	output := captureStdout(func() {
		utils.InitLogger(createTestConfig("json"))
	})

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.Contains(t, output, `"app":"test-annotator"`)
	assert.Contains(t, output, `"version":"v1"`)
	assert.Contains(t, output, `"env":"testing"`)
	assert.Contains(t, output, "Logger initialized")
	assert.Regexp(t, `"time":"\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z"`, output)
}

func TestInitLoggerConsoleAndBadLevel(t *testing.T) {
	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
	}()

	cfg := createTestConfig("console")
	cfg.Logging.Level = "chatty"
	output := captureStdout(func() {
		utils.InitLogger(cfg)
	})

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	assert.Contains(t, output, "Logger initialized")
	assert.NotContains(t, output, `"app"`)
}

func TestRequestLogger(t *testing.T) {
	output := captureOutput(func() {
		logger := utils.RequestLogger("cid-42", "POST", "/process")
		logger.Info().Msg("annotating")
	})

	assert.Contains(t, output, `"correlation_id":"cid-42"`)
	assert.Contains(t, output, `"method":"POST"`)
	assert.Contains(t, output, `"path":"/process"`)
}

func TestLogHTTPRequest(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	tests := []struct {
		name      string
		path      string
		status    int
		wantLevel string
		wantEmpty bool
	}{
		{name: "success", path: "/api/v1/process", status: 200, wantLevel: "info"},
		{name: "client error", path: "/api/v1/process", status: 415, wantLevel: "warn"},
		{name: "server error", path: "/api/v1/process", status: 500, wantLevel: "error"},
		{name: "health check", path: "/api/v1/status/health_check", status: 200, wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			utils.LogHTTPRequest(zerolog.New(&buf), "POST", tt.path, tt.status, "kv|api_rc=200|")

			if tt.wantEmpty {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), `"level":"`+tt.wantLevel+`"`)
			assert.Contains(t, buf.String(), "<POST "+tt.path+" kv|api_rc=200|")
		})
	}
}

func TestLogPanic(t *testing.T) {
	var buf bytes.Buffer
	utils.LogPanic(zerolog.New(&buf), "kaboom", []byte("goroutine 1"))

	assert.Contains(t, buf.String(), `"panic":"kaboom"`)
	assert.Contains(t, buf.String(), `"stack":"goroutine 1"`)
	assert.Contains(t, buf.String(), "Panic recovered")
}

func TestGetSetLogLevel(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	captureOutput(func() {
		require.NoError(t, utils.SetLogLevel("WARN"))
	})
	assert.Equal(t, "warn", utils.GetLogLevel())

	err := utils.SetLogLevel("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
	assert.Equal(t, "warn", utils.GetLogLevel())
}
