package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	configFileName      = "escala_config.yaml"
	defaultAuditLogPath = "logs/confirmacoes.txt"
	defaultSessionDir   = "auth_info"
)

// Config represents the application configuration
type Config struct {
	// HTTPPort is where the keep-alive endpoint listens.
	HTTPPort int `yaml:"httpPort" validate:"required,min=1,max=65535"`

	// AuditBackend selects where confirmation outcomes are recorded.
	AuditBackend string `yaml:"auditBackend" validate:"required,oneof=file postgres"`

	// AuditLogPath is the text log used by the file backend.
	AuditLogPath string `yaml:"auditLogPath,omitempty"`

	// DatabaseURL is the connection string used by the postgres backend.
	DatabaseURL string `yaml:"databaseURL,omitempty" validate:"required_if=AuditBackend postgres"`

	// SessionDir is where the chat provider stores its session state.
	SessionDir string `yaml:"sessionDir,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from escala_config.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.AuditLogPath == "" {
		cfg.AuditLogPath = defaultAuditLogPath
	}
	if cfg.SessionDir == "" {
		cfg.SessionDir = defaultSessionDir
	}
}

// findConfigFile searches for escala_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
