// FILE: config.go
package daylog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/config"
	"github.com/lixenwraith/daylog/sanitizer"
)

// configPrefix is the TOML table holding daylog settings
const configPrefix = "daylog."

// Config holds all writer configuration values
type Config struct {
	// Fixed at construction
	Directory string `toml:"directory"`  // Root of all output
	TypeLabel string `toml:"type_label"` // Optional file name prefix (flat writer)
	FileName  string `toml:"file_name"`  // Fixed output file (date directory writer)

	// Tunables, may change between writes
	RetentionDays int64  `toml:"retention_days"` // Days to keep output before a sweep deletes it
	Encoding      string `toml:"encoding"`       // Charset of written lines, WHATWG label
	Extension     string `toml:"extension"`      // Extension of daily files, no leading dot
	Append        bool   `toml:"append"`         // Append to the day's file instead of truncating
	Sanitize      string `toml:"sanitize"`       // "raw" or "txt" (hex-encode non-printables)

	// Internal error handling
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"` // Write internal errors to stderr
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Directory: "./log",
	TypeLabel: "",
	FileName:  "log.txt",

	RetentionDays: DefaultRetentionDays,
	Encoding:      "utf-8",
	Extension:     "txt",
	Append:        true,
	Sanitize:      SanitizeRaw,

	InternalErrorsToStderr: false,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from a TOML file and returns a validated Config
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Use lixenwraith/config as a loader
	loader := config.New()

	if err := loader.RegisterStruct(configPrefix, *cfg); err != nil {
		return nil, fmtErrorf("failed to register config struct: %w", err)
	}

	// Load from file (handles file not found gracefully)
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmtErrorf("failed to load config from %s: %w", path, err)
	}

	if err := extractConfig(loader, configPrefix, cfg); err != nil {
		return nil, fmtErrorf("failed to extract config values: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromDefaults creates a Config with default values and applies overrides
func NewConfigFromDefaults(overrides map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, fmtErrorf("failed to apply overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as a [daylog] TOML table
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".daylog-*.toml")
	if err != nil {
		return ioError("create temp config in", dir, err)
	}
	tmpName := tmp.Name()

	enc := toml.NewEncoder(tmp)
	enc.Indent = "  "
	encErr := enc.Encode(map[string]*Config{strings.TrimSuffix(configPrefix, "."): c})
	closeErr := tmp.Close()
	if err := combineErrors(encErr, closeErr); err != nil {
		_ = os.Remove(tmpName)
		return ioError("write config", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return ioError("replace config", path, err)
	}
	return nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue // Use default value
		}

		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// applyOverrides applies a map of overrides to the Config struct
func applyOverrides(cfg *Config, overrides map[string]any) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	fieldMap := make(map[string]reflect.Value)
	for i := 0; i < t.NumField(); i++ {
		tomlTag := t.Field(i).Tag.Get("toml")
		if tomlTag != "" {
			fieldMap[tomlTag] = v.Field(i)
		}
	}

	for key, value := range overrides {
		fieldValue, exists := fieldMap[key]
		if !exists {
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := setFieldValue(fieldValue, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Directory) == "" {
		return configErrorf("directory", "cannot be empty")
	}

	if c.TypeLabel != "" && !sanitizer.IsValidName(c.TypeLabel) {
		return &ConfigError{Field: "type_label", Value: c.TypeLabel, Reason: "contains characters not allowed in a file name"}
	}

	if c.RetentionDays < 0 {
		return &ConfigError{Field: "retention_days", Value: fmt.Sprint(c.RetentionDays), Reason: "cannot be negative"}
	}
	if c.RetentionDays > maxRetentionDays {
		return &ConfigError{Field: "retention_days", Value: fmt.Sprint(c.RetentionDays),
			Reason: fmt.Sprintf("cannot exceed %d", maxRetentionDays)}
	}

	if err := validateExtension(c.Extension); err != nil {
		return err
	}

	if _, err := resolveEncoding(c.Encoding); err != nil {
		return err
	}

	if c.Sanitize != SanitizeRaw && c.Sanitize != SanitizeTxt {
		return &ConfigError{Field: "sanitize", Value: c.Sanitize, Reason: "use raw or txt"}
	}

	return nil
}

// validateExtension accepts "" (no extension) or a dot-less file name fragment
func validateExtension(ext string) error {
	if strings.HasPrefix(ext, ".") {
		return &ConfigError{Field: "extension", Value: ext, Reason: "should not start with dot"}
	}
	if ext != "" && !sanitizer.IsValidName(ext) {
		return &ConfigError{Field: "extension", Value: ext, Reason: "contains characters not allowed in a file name"}
	}
	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}
