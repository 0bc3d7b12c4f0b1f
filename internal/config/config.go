// Package config loads the process-wide application settings. The value is
// built once at startup and passed by injection; nothing re-reads it per
// request.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const Version = "0.1.0"

type Config struct {
	Addr         string        `yaml:"addr"`
	AppName      string        `yaml:"app_name"`
	Debug        bool          `yaml:"debug"`
	APITimeout   time.Duration `yaml:"timeout"`
	DatabasePath string        `yaml:"database_path"`

	// Field Solutions Manager API access used by integrations.
	FSMAPIKey string `yaml:"fsm_api_key"`
	FSMAPIURL string `yaml:"fsm_api_url"`

	// Optional LLM access for future assisted workflows.
	LLMAPIKey string `yaml:"llm_api_key"`
}

// LoadConfig builds the configuration from defaults, FSB_* environment
// variables and, when path is non-empty, a YAML file (highest precedence).
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:         getEnv("FSB_ADDR", ":8080"),
		AppName:      getEnv("FSB_APP_NAME", "Field Solutions Backend"),
		APITimeout:   15 * time.Second,
		DatabasePath: getEnv("FSB_DATABASE_PATH", "fieldsolutions.db"),
		FSMAPIKey:    getEnv("FSB_FSM_API_KEY", ""),
		FSMAPIURL:    getEnv("FSB_FSM_API_URL", "https://api.fieldsolutionsmanager.com"),
		LLMAPIKey:    getEnv("FSB_LLM_API_KEY", ""),
	}
	if os.Getenv("FSB_DEBUG") == "true" {
		cfg.Debug = true
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must not be empty")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
