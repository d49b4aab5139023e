package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sitegen-labs/sitegen/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyNPX            = "tools.npx"
	KeyNPM            = "tools.npm"
	KeyOutputDir      = "output_dir"
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
	KeyMinNodeVersion = "doctor.min_node_version"
)

var defaultValues = map[string]string{
	KeyNPX:            "npx",
	KeyNPM:            "npm",
	KeyOutputDir:      ".",
	KeyLogLevel:       "info",
	KeyLogFormat:      "text",
	KeyMinNodeVersion: ">=18.18.0",
}

// Settings is a typed snapshot of the loaded configuration.
type Settings struct {
	NPX            string
	NPM            string
	OutputDir      string
	LogLevel       string
	LogFormat      string
	MinNodeVersion string
}

// Dir returns the path to the config directory (~/.sitegen/).
// SITEGEN_HOME overrides the location.
func Dir() string {
	if override := os.Getenv(branding.EnvVar("home")); override != "" {
		return override
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.sitegen/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// Nested keys map to env vars with underscores, e.g. tools.npm → SITEGEN_TOOLS_NPM.
func Load() {
	for key, value := range defaultValues {
		viper.SetDefault(key, value)
	}
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Reset clears all loaded state. Tests call it between cases.
func Reset() {
	viper.Reset()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Current returns the settings currently held by Viper.
func Current() Settings {
	return Settings{
		NPX:            viper.GetString(KeyNPX),
		NPM:            viper.GetString(KeyNPM),
		OutputDir:      viper.GetString(KeyOutputDir),
		LogLevel:       viper.GetString(KeyLogLevel),
		LogFormat:      viper.GetString(KeyLogFormat),
		MinNodeVersion: viper.GetString(KeyMinNodeVersion),
	}
}

// IsKnownKey reports whether key is a setting this tool reads.
func IsKnownKey(key string) bool {
	_, ok := defaultValues[key]
	return ok
}

// Keys returns all known setting keys.
func Keys() []string {
	return []string{KeyNPX, KeyNPM, KeyOutputDir, KeyLogLevel, KeyLogFormat, KeyMinNodeVersion}
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
