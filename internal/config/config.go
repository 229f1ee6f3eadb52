package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/acd-annotator/acd-annotator-go/internal/constants"
)

// AppConfig represents the entire application configuration
type AppConfig struct {
	App        AppSettings        `yaml:"app"`
	Server     ServerSettings     `yaml:"server"`
	Logging    LoggingSettings    `yaml:"logging"`
	Annotator  AnnotatorSettings  `yaml:"annotator"`
	Validation ValidationSettings `yaml:"validation"`
}

// AppSettings contains general application settings. Name, description and
// version identify the annotator to ACD.
type AppSettings struct {
	Environment string `yaml:"environment" env:"APP_ENV" validate:"oneof=development testing production"`
	Name        string `yaml:"name" env:"ANNOTATOR_NAME,com_ibm_watson_health_common_annotator_name" validate:"required"`
	Description string `yaml:"description" env:"ANNOTATOR_DESCRIPTION,com_ibm_watson_health_common_annotator_description"`
	Version     string `yaml:"version" env:"ANNOTATOR_VERSION,com_ibm_watson_health_common_version" validate:"required"`
}

// ServerSettings contains HTTP server settings
type ServerSettings struct {
	Host            string        `yaml:"host" env:"SERVER_HOST"`
	Port            int           `yaml:"port" env:"SERVER_PORT" validate:"min=1,max=65535"`
	MaxThreads      int           `yaml:"max_threads" env:"SERVER_MAX_THREADS,com_ibm_watson_health_common_python_max_threads" validate:"min=1"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
}

// LoggingSettings contains logging configuration
type LoggingSettings struct {
	Level      string `yaml:"level" env:"LOG_LEVEL" validate:"oneof=trace debug info warn error fatal panic"`
	Format     string `yaml:"format" env:"LOG_FORMAT" validate:"oneof=json console"`
	RequestLog *bool  `yaml:"request_log" env:"LOG_REQUESTS"`
}

// AnnotatorSettings selects and parameterizes the annotator the service hosts.
type AnnotatorSettings struct {
	Kind    string `yaml:"kind" env:"ANNOTATOR_KIND" validate:"required"`
	BaseURL string `yaml:"base_url" env:"ANNOTATOR_BASE_URL,com_ibm_watson_health_common_base_url" validate:"startswith=/"`

	// Patterns overrides the regex annotator's expressions.
	Patterns []string `yaml:"patterns" env:"ANNOTATOR_PATTERNS"`

	// CodeHierarchy overrides the code resolution annotator's hierarchy,
	// most general code first.
	CodeHierarchy []string `yaml:"code_hierarchy" env:"ANNOTATOR_CODE_HIERARCHY"`
}

// ValidationSettings contains container validation settings
type ValidationSettings struct {
	Permissive *bool `yaml:"permissive" env:"ANNOTATOR_PERMISSIVE_VALIDATION,com_ibm_watson_health_common_python_permissive_validation"`
}

// ServerAddress returns the complete server address
func (ss *ServerSettings) ServerAddress() string {
	return fmt.Sprintf("%s:%d", ss.Host, ss.Port)
}

// IsDevelopment checks if the application is running in development mode
func (as *AppSettings) IsDevelopment() bool {
	return strings.ToLower(as.Environment) == constants.EnvDevelopment
}

// IsProduction checks if the application is running in production mode
func (as *AppSettings) IsProduction() bool {
	return strings.ToLower(as.Environment) == constants.EnvProduction
}

// IsTesting checks if the application is running in testing mode
func (as *AppSettings) IsTesting() bool {
	return strings.ToLower(as.Environment) == constants.EnvTesting
}

// RequestLogEnabled reports whether requests are logged on entry and exit.
func (ls *LoggingSettings) RequestLogEnabled() bool {
	return ls.RequestLog == nil || *ls.RequestLog
}

// IsPermissive reports whether non-critical container violations are
// downgraded to warnings.
func (vs *ValidationSettings) IsPermissive() bool {
	if vs.Permissive == nil {
		return constants.DefaultPermissiveValidation
	}
	return *vs.Permissive
}

var (
	// cfg holds the current application configuration
	cfg *AppConfig
)

// Load loads the configuration from a config file and environment variables
func Load(configPath string) (*AppConfig, error) {
	config := &AppConfig{}

	// Load configuration from file if it exists
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}

			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("error parsing config file: %w", err)
			}
		}
	}

	// Override with environment variables
	if err := LoadEnv(config); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	setDefaults(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg = config

	logConfig(config)

	return config, nil
}

// Get returns the current application configuration
func Get() *AppConfig {
	if cfg == nil {
		log.Fatal().Msg("configuration not loaded")
	}
	return cfg
}

// setDefaults sets default values for any missing configuration
func setDefaults(config *AppConfig) {
	// App defaults
	if config.App.Environment == "" {
		config.App.Environment = constants.EnvDevelopment
	}
	config.App.Environment = strings.ToLower(config.App.Environment)
	if config.App.Name == "" {
		config.App.Name = constants.DefaultServiceName
	}
	if config.App.Description == "" {
		config.App.Description = constants.DefaultServiceDescription
	}
	if config.App.Version == "" {
		config.App.Version = constants.DefaultServiceVersion
	}

	// Server defaults
	if config.Server.Port == 0 {
		config.Server.Port = constants.DefaultServerPort
	}
	if config.Server.MaxThreads == 0 {
		config.Server.MaxThreads = constants.DefaultMaxThreads
	}
	if config.Server.ReadTimeout == 0 {
		config.Server.ReadTimeout = constants.DefaultReadTimeout
	}
	if config.Server.WriteTimeout == 0 {
		config.Server.WriteTimeout = constants.DefaultWriteTimeout
	}
	if config.Server.ShutdownTimeout == 0 {
		config.Server.ShutdownTimeout = constants.DefaultShutdownTimeout
	}

	// Logging defaults
	if config.Logging.Level == "" {
		config.Logging.Level = constants.DefaultLogLevel
	}
	config.Logging.Level = strings.ToLower(config.Logging.Level)
	if config.Logging.Format == "" {
		config.Logging.Format = constants.DefaultLogFormat
	}

	// Annotator defaults
	if config.Annotator.Kind == "" {
		config.Annotator.Kind = constants.DefaultAnnotatorKind
	}
	if config.Annotator.BaseURL == "" {
		config.Annotator.BaseURL = constants.DefaultBaseURL
	}
	if config.Annotator.BaseURL != "/" {
		config.Annotator.BaseURL = strings.TrimRight(config.Annotator.BaseURL, "/")
	}
}

var settingsValidator = newSettingsValidator()

func newSettingsValidator() *validator.Validate {
	v := validator.New()
	// Report yaml names so errors match the config file
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateConfig validates that the configuration has all required values
func validateConfig(config *AppConfig) error {
	err := settingsValidator.Struct(config)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		// Namespace is "AppConfig.server.port"; drop the root type name
		field := e.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, getErrorMessage(e)))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// getErrorMessage returns a readable message for a validation error
func getErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "must be set"
	case "min":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(e.Param(), " ", ", "))
	case "startswith":
		return fmt.Sprintf("must start with %q", e.Param())
	default:
		return fmt.Sprintf("failed validation on the '%s' tag", e.Tag())
	}
}

// logConfig logs the current configuration
func logConfig(config *AppConfig) {
	log.Info().
		Str("environment", config.App.Environment).
		Str("annotator_name", config.App.Name).
		Str("version", config.App.Version).
		Str("server", config.Server.ServerAddress()).
		Int("max_threads", config.Server.MaxThreads).
		Str("base_url", config.Annotator.BaseURL).
		Str(constants.LogKeyAnnotator, config.Annotator.Kind).
		Bool("permissive_validation", config.Validation.IsPermissive()).
		Str("log_level", config.Logging.Level).
		Msg("Configuration loaded")
}
