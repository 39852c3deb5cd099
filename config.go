package monitor

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/golobby/cast"
	"gopkg.in/yaml.v3"
)

// Supported logging backends.
const (
	BackendSlog    = "slog"
	BackendLogrus  = "logrus"
	BackendZap     = "zap"
	BackendZerolog = "zerolog"
	BackendLogr    = "logr"
)

// Supported record formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	knownBackends = []string{BackendSlog, BackendLogrus, BackendZap, BackendZerolog, BackendLogr}
	knownFormats  = []string{FormatText, FormatJSON}
)

// Config selects the logging backend and logger an EventLogger writes to.
type Config struct {
	// Backend names the logging library (slog, logrus, zap, zerolog, logr)
	Backend string `yaml:"backend" toml:"backend" env:"BACKEND" default:"slog" desc:"Logging backend"`

	// LoggerName is the name the monitor's logger is resolved under
	LoggerName string `yaml:"loggerName" toml:"loggerName" env:"LOGGER_NAME" desc:"Logger name (defaults to the EventLogger type name)"`

	// Level is the minimum level the backend emits (debug, info, warn, error)
	Level string `yaml:"level" toml:"level" env:"LEVEL" default:"info" desc:"Minimum log level"`

	// Format is the record encoding (text, json)
	Format string `yaml:"format" toml:"format" env:"FORMAT" default:"text" desc:"Record format"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Backend:    BackendSlog,
		LoggerName: DefaultLoggerName,
		Level:      LevelInfo.String(),
		Format:     FormatText,
	}
}

// LoadConfig reads a YAML or TOML file over DefaultConfig. The format is
// picked from the file extension.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormatType, ext)
	}
	return cfg, nil
}

// ApplyEnv overrides fields of structure from environment variables named
// PREFIX_TAG, where TAG is the field's env tag. Unset or empty variables are
// ignored. structure must be a pointer to a struct.
func ApplyEnv(structure any, prefix string) error {
	rv := reflect.ValueOf(structure)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrEnvInvalidStructure
	}
	rv = rv.Elem()

	prefix = strings.ToUpper(prefix)
	for i := 0; i < rv.NumField(); i++ {
		fieldType := rv.Type().Field(i)
		envTag, ok := fieldType.Tag.Lookup("env")
		if !ok {
			continue
		}

		envName := strings.ToUpper(envTag)
		if prefix != "" {
			envName = prefix + "_" + envName
		}
		envValue := os.Getenv(envName)
		if envValue == "" {
			continue
		}

		if err := setFieldValue(rv.Field(i), envValue); err != nil {
			return fmt.Errorf("error in field '%s': %w", fieldType.Name, err)
		}
	}
	return nil
}

// setFieldValue converts and sets a field value
func setFieldValue(field reflect.Value, strValue string) error {
	convertedValue, err := cast.FromType(strValue, field.Type())
	if err != nil {
		return fmt.Errorf("cannot convert value to type %v: %w", field.Type(), err)
	}

	if !field.CanSet() {
		return fmt.Errorf("field cannot be set")
	}

	field.Set(reflect.ValueOf(convertedValue))
	return nil
}

// Validate checks that the backend, level and format are known.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigNil
	}
	if !slices.Contains(knownBackends, strings.ToLower(c.Backend)) {
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}
	if !slices.Contains(knownFormats, strings.ToLower(c.Format)) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}
	return nil
}

// ParsedLevel returns Level parsed, falling back to info when unset.
func (c *Config) ParsedLevel() (Level, error) {
	if c.Level == "" {
		return LevelInfo, nil
	}
	return ParseLevel(c.Level)
}

// Name returns LoggerName or DefaultLoggerName when unset.
func (c *Config) Name() string {
	if c.LoggerName == "" {
		return DefaultLoggerName
	}
	return c.LoggerName
}
