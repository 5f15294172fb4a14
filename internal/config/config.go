package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config models visitas360.yml.
type Config struct {
	Services struct {
		// VisitsURL is the auth + visits backend.
		VisitsURL string `yaml:"visits_url"`
		// ProjectsURL serves the project-unit catalog.
		ProjectsURL string `yaml:"projects_url"`
	} `yaml:"services"`
	Auth struct {
		// Provider selects the identity backend: dev or none.
		Provider string `yaml:"provider"`
		// DevSecret signs dev-provider tokens. Never use in production.
		DevSecret string `yaml:"dev_secret"`
	} `yaml:"auth"`
	Operative struct {
		// Author is the default field-staff name recorded on history entries.
		Author string `yaml:"author"`
		Agency string `yaml:"agency"`
	} `yaml:"operative"`
	Snapshot struct {
		// Enabled persists the working set to SQLite between runs.
		Enabled bool `yaml:"enabled"`
	} `yaml:"snapshot"`
}

// Load reads and validates config from workspace.
func Load(workspace string) (*Config, error) {
	path := Path(workspace)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config %s not found; create one with v360 config init", path)
		}
		return nil, err
	}
	return FromYAML(data)
}

// LoadOptional returns nil,nil if the config file does not exist.
func LoadOptional(workspace string) (*Config, error) {
	path := Path(workspace)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return FromYAML(data)
}

// Validate ensures the config meets required structure.
func (c *Config) Validate() error {
	if c.Services.VisitsURL == "" {
		return fmt.Errorf("config.services.visits_url is required")
	}
	if c.Services.ProjectsURL == "" {
		return fmt.Errorf("config.services.projects_url is required")
	}
	switch c.Auth.Provider {
	case "", "dev", "none":
	default:
		return fmt.Errorf("config.auth.provider must be 'dev' or 'none', got %q", c.Auth.Provider)
	}
	if c.Auth.Provider == "dev" && c.Auth.DevSecret == "" {
		return fmt.Errorf("config.auth.dev_secret is required when provider is dev")
	}
	for _, u := range []string{c.Services.VisitsURL, c.Services.ProjectsURL} {
		if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
			return fmt.Errorf("service url %q must start with http:// or https://", u)
		}
	}
	return nil
}

// Path returns the config file path for a workspace.
func Path(workspace string) string {
	if workspace == "" {
		workspace = "."
	}
	return filepath.Join(workspace, "visitas360.yml")
}

// GenerateDefault returns default config YAML.
func GenerateDefault(visitsURL, projectsURL string) string {
	return fmt.Sprintf(defaultTemplate, visitsURL, projectsURL)
}

// Default returns the default Config struct.
func Default(visitsURL, projectsURL string) *Config {
	var cfg Config
	_ = yaml.NewDecoder(bytes.NewBufferString(GenerateDefault(visitsURL, projectsURL))).Decode(&cfg)
	return &cfg
}

// FromYAML parses and validates config from raw YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FromFile reads YAML config from the given path.
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromYAML(data)
}

const defaultTemplate = `services:
  visits_url: %s
  projects_url: %s

auth:
  provider: dev
  dev_secret: dev-secret-change-me

operative:
  author: "Usuario actual"
  agency: ""

snapshot:
  enabled: true
`
