package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DebugModeEnv is the environment variable for debug mode.
	DebugModeEnv = "DEBUG_MODE"

	// ModeEnv is the environment variable selecting how the page is delivered.
	ModeEnv = "SHOWCASE_MODE"

	// OutputPathEnv is the environment variable for the export destination ("-" means stdout).
	OutputPathEnv = "OUTPUT_PATH"

	// HTTPServerPortEnv is the environment variable for HTTP server port.
	HTTPServerPortEnv = "HTTP_SERVER_PORT"

	// MetricsServerPortEnv is the environment variable for metrics server port.
	MetricsServerPortEnv = "METRICS_SERVER_PORT"

	// ProbeImagesEnv is the environment variable enabling server-side image probing.
	ProbeImagesEnv = "PROBE_IMAGES"

	// ProbeTimeoutEnv is the environment variable for the per-image probe timeout in milliseconds.
	ProbeTimeoutEnv = "PROBE_TIMEOUT_MS"

	// CatalogValidationEnv is the environment variable for the catalog validation policy.
	CatalogValidationEnv = "CATALOG_VALIDATION"

	// EnvFilePath is the environment variable for .env file path (only for local/test environment).
	EnvFilePath = "ENV_PATH"

	// DefaultEnvFilePath is the default path to the .env file.
	DefaultEnvFilePath = ".env"

	// StdoutPath writes the exported page to standard output.
	StdoutPath = "-"
)

// Mode selects how the rendered page is delivered.
type Mode string

const (
	// ModeExport renders the page once to OutputPath.
	ModeExport Mode = "export"
	// ModeServe serves the page over HTTP for local preview.
	ModeServe Mode = "serve"
)

var (
	// ErrMissingConfig is returned when required configuration values are missing.
	ErrMissingConfig = errors.New("missing config data")

	// ErrInvalidMode is returned when SHOWCASE_MODE is not a known mode.
	ErrInvalidMode = errors.New("invalid mode")
)

// Config represents the application configuration.
type Config struct {
	DebugMode         bool
	Mode              Mode
	OutputPath        string
	HTTPServer        Server
	MetricsServer     Server
	Images            Images
	CatalogValidation string
}

// Server represents server configuration settings.
type Server struct {
	Port string
}

// Images represents server-side image probing settings.
type Images struct {
	Probe        bool
	ProbeTimeout time.Duration
}

func allNonEmpty(keyValues map[string]string) error {
	for key, value := range keyValues {
		if value == "" {
			slog.Error("configuration validation failed", slog.String("key", key), slog.String("error", "value is empty"))
			return fmt.Errorf("%w for key: %s", ErrMissingConfig, key)
		}
	}
	return nil
}

func allNumbers(keyValues map[string]string) error {
	for key, value := range keyValues {
		_, err := strconv.Atoi(value)
		if err != nil {
			slog.Error("configuration validation failed", slog.String("key", key), slog.String("value", value), slog.String("error", err.Error()))
			return fmt.Errorf("invalid number for key %s: %w", key, err)
		}
	}
	return nil
}

func (c *Config) validate() error {
	switch c.Mode {
	case ModeExport:
		if err := allNonEmpty(map[string]string{
			OutputPathEnv: c.OutputPath,
		}); err != nil {
			return fmt.Errorf("export configuration incomplete: %w", err)
		}
	case ModeServe:
		if err := allNonEmpty(map[string]string{
			HTTPServerPortEnv:    c.HTTPServer.Port,
			MetricsServerPortEnv: c.MetricsServer.Port,
		}); err != nil {
			return fmt.Errorf("server port configuration incomplete: %w", err)
		}

		if err := allNumbers(map[string]string{
			HTTPServerPortEnv:    c.HTTPServer.Port,
			MetricsServerPortEnv: c.MetricsServer.Port,
		}); err != nil {
			return fmt.Errorf("invalid port number: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}

	if c.Images.Probe && c.Images.ProbeTimeout <= 0 {
		return fmt.Errorf("%w for key: %s", ErrMissingConfig, ProbeTimeoutEnv)
	}

	return nil
}

func getEnv(name, defaultValue string) string {
	if val := os.Getenv(name); val != "" {
		return val
	}
	return defaultValue
}

func getEnvAsBool(name string, defaultValue bool) bool {
	if val, err := strconv.ParseBool(os.Getenv(name)); err == nil {
		return val
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultValue int) int {
	if val, err := strconv.Atoi(os.Getenv(name)); err == nil {
		return val
	}
	return defaultValue
}

// ApplyEnvFile loads environment variables from the specified .env files.
func ApplyEnvFile(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables and validates it.
func LoadFromEnv() (*Config, error) {
	envPath := os.Getenv(EnvFilePath)
	if envPath == "" {
		envPath = DefaultEnvFilePath
	}
	err := ApplyEnvFile(envPath)
	if err != nil {
		// just log the error, maybe all envs are set in another way
		slog.Info("failed to load from .env", slog.Any("err", err))
	}

	conf := &Config{
		DebugMode:  getEnvAsBool(DebugModeEnv, false),
		Mode:       Mode(getEnv(ModeEnv, string(ModeExport))),
		OutputPath: getEnv(OutputPathEnv, StdoutPath),
		HTTPServer: Server{
			Port: getEnv(HTTPServerPortEnv, "8080"),
		},
		MetricsServer: Server{
			Port: getEnv(MetricsServerPortEnv, "9090"),
		},
		Images: Images{
			Probe:        getEnvAsBool(ProbeImagesEnv, false),
			ProbeTimeout: time.Duration(getEnvAsInt(ProbeTimeoutEnv, 3000)) * time.Millisecond,
		},
		CatalogValidation: os.Getenv(CatalogValidationEnv),
	}

	if err := conf.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return conf, nil
}
