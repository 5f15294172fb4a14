package config

import (
	"os"
	"strings"
	"testing"
)

func TestDefaultTemplateParsesAndValidates(t *testing.T) {
	cfg, err := FromYAML([]byte(GenerateDefault("http://127.0.0.1:8686", "http://127.0.0.1:8686")))
	if err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Services.VisitsURL != "http://127.0.0.1:8686" {
		t.Fatalf("visits url wrong: %q", cfg.Services.VisitsURL)
	}
	if cfg.Auth.Provider != "dev" || cfg.Auth.DevSecret == "" {
		t.Fatalf("auth defaults wrong: %+v", cfg.Auth)
	}
	if cfg.Operative.Author != "Usuario actual" {
		t.Fatalf("default author wrong: %q", cfg.Operative.Author)
	}
	if !cfg.Snapshot.Enabled {
		t.Fatal("snapshot should default on")
	}
}

func TestValidateRejections(t *testing.T) {
	base := func() *Config {
		return Default("http://a", "http://b")
	}

	cfg := base()
	cfg.Services.VisitsURL = ""
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "visits_url") {
		t.Fatalf("missing visits_url not rejected: %v", err)
	}

	cfg = base()
	cfg.Services.ProjectsURL = "ftp://x"
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "http") {
		t.Fatalf("non-http url not rejected: %v", err)
	}

	cfg = base()
	cfg.Auth.Provider = "firebase"
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "provider") {
		t.Fatalf("unknown provider not rejected: %v", err)
	}

	cfg = base()
	cfg.Auth.Provider = "dev"
	cfg.Auth.DevSecret = ""
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "dev_secret") {
		t.Fatalf("dev without secret not rejected: %v", err)
	}

	cfg = base()
	cfg.Auth.Provider = "none"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("provider none should validate: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(dir); err == nil || !strings.Contains(err.Error(), "config init") {
		t.Fatalf("missing config should point at config init: %v", err)
	}
	cfg, err := LoadOptional(dir)
	if err != nil || cfg != nil {
		t.Fatalf("optional load of missing file should be nil,nil: %v %v", cfg, err)
	}
}

func TestLoadFromWorkspace(t *testing.T) {
	dir := t.TempDir()
	yml := GenerateDefault("http://visitas.example", "http://proyectos.example")
	if err := os.WriteFile(Path(dir), []byte(yml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Services.ProjectsURL != "http://proyectos.example" {
		t.Fatalf("loaded config wrong: %+v", cfg.Services)
	}
}

func TestFromYAMLBadSyntax(t *testing.T) {
	if _, err := FromYAML([]byte("services: [")); err == nil {
		t.Fatal("broken yaml should fail")
	}
}
