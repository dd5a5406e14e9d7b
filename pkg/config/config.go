package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/JRed1989/ambari/internal/logging"
	"github.com/JRed1989/ambari/pkg/domain"
	"gopkg.in/yaml.v3"
)

// DefaultMetricsNamespace prefixes every metric name.
const DefaultMetricsNamespace = "logsearch_state"

// Config is the configuration of an AppStore host.
type Config struct {
	LogLevel         string `yaml:"log_level" json:"log_level"`
	MetricsNamespace string `yaml:"metrics_namespace" json:"metrics_namespace"`

	// Defaults seed the two object slices before any action.
	AppSettings domain.Params `yaml:"app_settings" json:"app_settings"`
	AppState    domain.Params `yaml:"app_state" json:"app_state"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel:         "info",
		MetricsNamespace: DefaultMetricsNamespace,
		AppSettings: domain.Params{
			"timeZone": "UTC",
			"logsType": "serviceLogs",
			"pageSize": 10,
		},
		AppState: domain.Params{
			"isAuthorized":      false,
			"isInitialLoading":  false,
			"isLoginInProgress": false,
			"activeLogsType":    "serviceLogs",
		},
	}
}

// Load reads a configuration file (YAML or JSON) on top of Default.
// A missing file yields Default.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var file Config
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		if err := json.Unmarshal(data, &file); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &file); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	return cfg.merge(file)
}

func (c Config) merge(file Config) (Config, error) {
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
	}
	if file.MetricsNamespace != "" {
		c.MetricsNamespace = file.MetricsNamespace
	}
	for k, v := range file.AppSettings {
		c.AppSettings[k] = v
	}
	for k, v := range file.AppState {
		c.AppState[k] = v
	}

	if _, err := c.Level(); err != nil {
		return c, err
	}
	return c, nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	return logging.ParseLevel(c.LogLevel)
}
