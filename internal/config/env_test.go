package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("ANNOTATOR_NAME", "env-annotator")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "45s")
	t.Setenv("LOG_REQUESTS", "false")
	t.Setenv("ANNOTATOR_PATTERNS", `\bpain\b, \bfever\b`)
	t.Setenv("ANNOTATOR_PERMISSIVE_VALIDATION", "false")
	// The first name in a tag wins over its legacy alias
	t.Setenv("com_ibm_watson_health_common_python_permissive_validation", "true")

	config := &AppConfig{}
	require.NoError(t, LoadEnv(config))

	assert.Equal(t, "production", config.App.Environment)
	assert.Equal(t, "env-annotator", config.App.Name)
	assert.Equal(t, 9090, config.Server.Port)
	assert.Equal(t, 45*time.Second, config.Server.ShutdownTimeout)
	assert.False(t, config.Logging.RequestLogEnabled())
	assert.Equal(t, []string{`\bpain\b`, `\bfever\b`}, config.Annotator.Patterns)
	require.NotNil(t, config.Validation.Permissive)
	assert.False(t, *config.Validation.Permissive)
}

func TestLoadEnvLegacyNames(t *testing.T) {
	t.Setenv("com_ibm_watson_health_common_annotator_name", "legacy")
	t.Setenv("com_ibm_watson_health_common_base_url", "/services/legacy/api/v1")
	t.Setenv("com_ibm_watson_health_common_version", "v7")

	config := &AppConfig{}
	require.NoError(t, LoadEnv(config))

	assert.Equal(t, "legacy", config.App.Name)
	assert.Equal(t, "/services/legacy/api/v1", config.Annotator.BaseURL)
	assert.Equal(t, "v7", config.App.Version)
	assert.Nil(t, config.Validation.Permissive)
}

func TestProcessStructEnv(t *testing.T) {
	type TestStruct struct {
		StringField string        `env:"TEST_STRING"`
		IntField    int           `env:"TEST_INT"`
		UintField   uint16        `env:"TEST_UINT"`
		BoolField   bool          `env:"TEST_BOOL"`
		BoolPtr     *bool         `env:"TEST_BOOL_PTR"`
		DurField    time.Duration `env:"TEST_DURATION"`
		FloatField  float64       `env:"TEST_FLOAT"`
		StrSlice    []string      `env:"TEST_SLICE"`
		Aliased     string        `env:"TEST_PRIMARY,TEST_ALIAS"`
		NoEnvTag    string
	}

	t.Setenv("TEST_STRING", "test-value")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_UINT", "7")
	t.Setenv("TEST_BOOL", "TRUE")
	t.Setenv("TEST_BOOL_PTR", "false")
	t.Setenv("TEST_DURATION", "15m")
	t.Setenv("TEST_FLOAT", "3.14")
	t.Setenv("TEST_SLICE", "item1, item2,item3")
	t.Setenv("TEST_ALIAS", "from-alias")

	testStruct := &TestStruct{}
	require.NoError(t, processStructEnv(testStruct))

	assert.Equal(t, "test-value", testStruct.StringField)
	assert.Equal(t, 42, testStruct.IntField)
	assert.Equal(t, uint16(7), testStruct.UintField)
	assert.True(t, testStruct.BoolField)
	require.NotNil(t, testStruct.BoolPtr)
	assert.False(t, *testStruct.BoolPtr)
	assert.Equal(t, 15*time.Minute, testStruct.DurField)
	assert.InDelta(t, 3.14, testStruct.FloatField, 1e-9)
	assert.Equal(t, []string{"item1", "item2", "item3"}, testStruct.StrSlice)
	assert.Equal(t, "from-alias", testStruct.Aliased)
	assert.Empty(t, testStruct.NoEnvTag)
}

func TestProcessStructEnvErrors(t *testing.T) {
	type TestStruct struct {
		IntField   int           `env:"TEST_INT"`
		BoolField  bool          `env:"TEST_BOOL"`
		BoolPtr    *bool         `env:"TEST_BOOL_PTR"`
		DurField   time.Duration `env:"TEST_DURATION"`
		FloatField float64       `env:"TEST_FLOAT"`
		UintField  uint          `env:"TEST_UINT"`
	}

	tests := []struct {
		name     string
		envName  string
		envValue string
	}{
		{name: "Invalid int", envName: "TEST_INT", envValue: "not-an-int"},
		{name: "Invalid bool", envName: "TEST_BOOL", envValue: "not-a-bool"},
		{name: "Invalid optional bool", envName: "TEST_BOOL_PTR", envValue: "maybe"},
		{name: "Invalid duration", envName: "TEST_DURATION", envValue: "not-a-duration"},
		{name: "Invalid float", envName: "TEST_FLOAT", envValue: "not-a-float"},
		{name: "Negative uint", envName: "TEST_UINT", envValue: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envName, tt.envValue)

			err := processStructEnv(&TestStruct{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.envName)
		})
	}
}
