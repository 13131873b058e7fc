package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries the directory layout and template knobs shared by the three
// tools. Every field has a compiled-in default; fhehub.yaml and FHEHUB_*
// environment variables override it in that order.
type Config struct {
	Paths struct {
		Contracts  string `yaml:"contracts"`
		Tests      string `yaml:"tests"`
		Docs       string `yaml:"docs"`
		Categories string `yaml:"categories"`
	} `yaml:"paths"`
	Network struct {
		APIKeyEnv string `yaml:"api_key_env"` // env var interpolated into hardhat.config.ts
	} `yaml:"network"`
}

// Default returns the configuration used when no fhehub.yaml is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Paths.Contracts = "./contracts"
	cfg.Paths.Tests = "./test"
	cfg.Paths.Docs = "./docs"
	cfg.Paths.Categories = "./docs/categories"
	cfg.Network.APIKeyEnv = "INFURA_API_KEY"
	return cfg
}

// Load reads the YAML config at path, falling back to defaults when the file
// does not exist, then applies .env and environment variable overrides.
func Load(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	// 2. Start from defaults; a partial YAML file keeps them for unset fields
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// 3. Override with environment variables if present
	if v := os.Getenv("FHEHUB_CONTRACTS_DIR"); v != "" {
		cfg.Paths.Contracts = v
	}
	if v := os.Getenv("FHEHUB_TESTS_DIR"); v != "" {
		cfg.Paths.Tests = v
	}
	if v := os.Getenv("FHEHUB_DOCS_DIR"); v != "" {
		cfg.Paths.Docs = v
	}
	if v := os.Getenv("FHEHUB_CATEGORIES_DIR"); v != "" {
		cfg.Paths.Categories = v
	}
	if v := os.Getenv("FHEHUB_API_KEY_ENV"); v != "" {
		cfg.Network.APIKeyEnv = v
	}

	return cfg, nil
}
