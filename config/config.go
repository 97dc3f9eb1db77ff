// Package config loads logger settings from a file or the environment and
// applies them to the process-wide threshold.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/huawei-od-man/basic-log/basiclog"
)

// EnvLevel is the environment variable consulted by FromEnv.
const EnvLevel = "BASICLOG_LEVEL"

// Settings holds the configurable logger options.
type Settings struct {
	// Level names the minimum severity ("DEBUG".."FATAL"). Empty leaves the
	// threshold unchanged.
	Level string `yaml:"level" json:"level"`
}

// Load reads settings from a YAML or JSON file, chosen by extension.
func Load(path string) (Settings, error) {
	var s Settings
	data, err := os.ReadFile(path)
	if err != nil {
		return s, errors.Wrap(err, "read config file")
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, errors.Wrap(err, "parse YAML config")
		}
	case ".json":
		if err := json.Unmarshal(data, &s); err != nil {
			return s, errors.Wrap(err, "parse JSON config")
		}
	default:
		return s, errors.Errorf("unsupported config format %q", ext)
	}
	return s, nil
}

// FromEnv reads settings from the environment. A .env file in the working
// directory is loaded first when present; BASICLOG_LEVEL then names the
// threshold, defaulting to DEBUG.
func FromEnv() Settings {
	_ = godotenv.Load()
	return Settings{Level: getString(EnvLevel, "DEBUG")}
}

func getString(key, fallback string) string {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return val
}

// Apply parses the configured level name and installs it as the process
// threshold. An empty level is a no-op.
func (s Settings) Apply() error {
	if s.Level == "" {
		return nil
	}
	level, err := basiclog.ParseLevel(s.Level)
	if err != nil {
		return errors.Wrap(err, "apply log config")
	}
	basiclog.SetLevel(level)
	return nil
}
