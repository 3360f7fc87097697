// Package config provides configuration loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cristianoliveira/shelf/internal/colors"
	"github.com/pelletier/go-toml/v2"
)

// File permission constants
const (
	// FileModeDir is the permission for directories (rwxr-xr-x)
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for data files (rw-r--r--)
	FileModeFile os.FileMode = 0644

	// FileExtTOML is the file extension for TOML configuration files.
	FileExtTOML = ".toml"

	// EnvPrefix prefixes every environment override, e.g. SHELF_USE_API.
	EnvPrefix = "SHELF_"
)

// Storage backends for the local key/value store.
const (
	StorageBackendSQLite = "sqlite"
	StorageBackendFile   = "file"
)

// DefaultAPIBaseURL is the public REST host serving the product catalog.
const DefaultAPIBaseURL = "https://fakestoreapi.com"

var (
	config    map[string]string
	configMap map[string]string
	mu        sync.RWMutex
)

func init() {
	initValidators()
}

// Load initializes configuration.
func Load() {
	mu.Lock()
	defer mu.Unlock()

	config = make(map[string]string)
	configMap = make(map[string]string)

	setDefaults()
	loadFromEnv()
	loadFromFile()
	// Re-apply environment variable overrides so env wins
	loadFromEnv()
	validate()
	createSampleConfig()
}

// setDefaults populates config with default values.
func setDefaults() {
	home, _ := os.UserHomeDir()
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" {
		xdgConfigHome = filepath.Join(home, ".config")
	}
	xdgStateHome := os.Getenv("XDG_STATE_HOME")
	if xdgStateHome == "" {
		xdgStateHome = filepath.Join(home, ".local", "state")
	}

	setDefault("config_dir", filepath.Join(xdgConfigHome, "shelf"))
	setDefault("state_dir", filepath.Join(xdgStateHome, "shelf"))
	setDefault("api_base_url", DefaultAPIBaseURL)
	setDefault("use_api", "true")
	setDefault("request_timeout", "0s")
	setDefault("storage_backend", StorageBackendSQLite)
	setDefault("search_mode", "substring")
	setDefault("debug", "false")
	setDefault("logging_enabled", "false")
	setDefault("logging_level", "info")
	setDefault("logging_max_files", "10")
}

func setDefault(key, value string) {
	config[key] = value
	configMap[key] = value
}

// loadFromFile reads configuration from a file.
func loadFromFile() {
	configPath := os.Getenv(EnvPrefix + "CONFIG_PATH")
	if configPath == "" {
		if configDir, ok := config["config_dir"]; ok {
			configPath = filepath.Join(configDir, "config"+FileExtTOML)
			if _, err := os.Stat(configPath); err != nil {
				configPath = ""
			}
		}
	}
	if configPath == "" {
		return
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		colors.Debug(fmt.Sprintf("unable to read config file %s: %v", configPath, err))
		return
	}
	if strings.ToLower(filepath.Ext(configPath)) != FileExtTOML {
		return
	}

	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		colors.Warning(fmt.Sprintf("unable to parse config file %s: %v", configPath, err))
		return
	}

	for k, v := range raw {
		key := strings.ToLower(k)
		converted, ok := coerceConfigValue(v)
		if !ok {
			colors.Warning(fmt.Sprintf("unsupported config value type for %s: %T", key, v))
			continue
		}
		config[key] = converted
	}
}

// coerceConfigValue converts a configuration value to its string representation.
// Supported types are string, int, int64, float64, and bool.
func coerceConfigValue(value interface{}) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case int:
		return strconv.Itoa(typed), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(typed), true
	default:
		return "", false
	}
}

// loadFromEnv applies environment variable overrides.
func loadFromEnv() {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, EnvPrefix) {
			continue
		}
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(parts[0], EnvPrefix))
		if key == "config_path" {
			continue
		}
		config[key] = parts[1]
	}
}

// validate checks and normalizes configuration values using registered validators.
func validate() {
	for key, value := range config {
		validator := getValidator(key)
		if validator == nil {
			continue
		}
		defaultValue := configMap[key]
		normalizedValue, err := validator(key, value, defaultValue)
		if err != nil {
			colors.Warning(fmt.Sprintf("validation error for %s: %v, using default: %s", key, err, defaultValue))
			config[key] = defaultValue
		} else {
			config[key] = normalizedValue
		}
	}
}

// valueToInterface converts a configuration value to appropriate type for TOML.
func valueToInterface(val string) interface{} {
	if n, err := strconv.Atoi(val); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return val
}

// createSampleConfig creates a sample configuration file if none exists.
func createSampleConfig() {
	configDir := config["config_dir"]
	if configDir == "" {
		return
	}
	samplePath := filepath.Join(configDir, "config"+FileExtTOML)
	if _, err := os.Stat(samplePath); err == nil {
		return
	}
	if err := os.MkdirAll(configDir, FileModeDir); err != nil {
		colors.Debug(fmt.Sprintf("unable to create config dir %s: %v", configDir, err))
		return
	}

	typed := make(map[string]interface{})
	for k, v := range configMap {
		if k == "config_dir" || k == "state_dir" {
			continue
		}
		typed[k] = valueToInterface(v)
	}

	data, err := toml.Marshal(typed)
	if err != nil {
		colors.Warning(fmt.Sprintf("unable to marshal sample config: %v", err))
		return
	}
	header := "# shelf configuration\n# This file is in TOML format.\n# Environment variables (SHELF_<KEY>) take precedence.\n\n"
	if err := os.WriteFile(samplePath, append([]byte(header), data...), FileModeFile); err != nil {
		colors.Warning(fmt.Sprintf("unable to write sample config to %s: %v", samplePath, err))
	}
}

// Get returns a configuration value or default.
func Get(key, defaultValue string) string {
	mu.RLock()
	defer mu.RUnlock()
	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

// GetInt returns a configuration value as integer, or default.
func GetInt(key string, defaultValue int) int {
	mu.RLock()
	defer mu.RUnlock()
	val, ok := config[key]
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return n
}

// GetBool returns a configuration value as boolean, or default.
func GetBool(key string, defaultValue bool) bool {
	mu.RLock()
	defer mu.RUnlock()
	val, ok := config[key]
	if !ok {
		return defaultValue
	}
	switch normalizeBool(val) {
	case "true":
		return true
	case "false":
		return false
	default:
		return defaultValue
	}
}

// GetDuration returns a configuration value as a duration, or default.
func GetDuration(key string, defaultValue time.Duration) time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	val, ok := config[key]
	if !ok {
		return defaultValue
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultValue
	}
	return d
}

// Set overrides a single value for the running process. It is not persisted.
func Set(key, value string) {
	mu.Lock()
	defer mu.Unlock()
	if config == nil {
		config = make(map[string]string)
	}
	config[key] = value
}
