package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the small set of machine-local options that live outside the
// database. Everything plan-related (workday hours, prime windows) is stored
// in settings and edited through the CLI instead.
type Config struct {
	// DBPath locates the SQLite database file.
	DBPath string `yaml:"db_path"`
	// LogUseCases enables structured service telemetry on stderr.
	LogUseCases bool `yaml:"log_use_cases"`
}

const (
	envConfig = "FORGEPLAN_CONFIG"
	envDB     = "FORGEPLAN_DB"
)

// DefaultPath returns ~/.forgeplan/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".forgeplan", "config.yaml"), nil
}

// Load reads the config file, falling back to defaults when it does not
// exist. Resolution order for the file path: $FORGEPLAN_CONFIG, then
// ~/.forgeplan/config.yaml. $FORGEPLAN_DB overrides the db path either way.
func Load() (*Config, error) {
	path := os.Getenv(envConfig)
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	if dbPath := os.Getenv(envDB); dbPath != "" {
		cfg.DBPath = dbPath
	}
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".forgeplan", "forgeplan.db")
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}
