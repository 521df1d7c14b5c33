// Package config resolves the forge endpoints and credentials used by prfetch.
//
// Resolution happens once per process. Each setting is taken from the first
// non-empty source in order: the Gitea-specific environment variable, the
// runner-provided GitHub variable, the optional config file, then a
// hard-coded default. The result is read-only for the process lifetime.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults used when neither the environment nor the config file provides a value.
const (
	DefaultAPIBaseURL    = "https://api.github.com"
	DefaultServerBaseURL = "https://github.com"
)

// Config holds the resolved platform settings.
type Config struct {
	// APIBaseURL is the REST API endpoint, e.g. https://api.github.com
	// or https://gitea.example.com/api/v1.
	APIBaseURL string

	// ServerBaseURL is the browser-facing base URL, e.g. https://github.com.
	ServerBaseURL string

	// UseGitea selects Gitea-specific behavior (alternate endpoint paths,
	// Gitea-style branch links). True only when USE_GITEA is exactly "true".
	UseGitea bool

	// Token authenticates API calls. May be empty, in which case the
	// client runs unauthenticated.
	Token string
}

// fileConfig mirrors the optional ~/.config/prfetch/config.yml file.
// File values rank below environment variables and above defaults.
type fileConfig struct {
	APIBaseURL    string `yaml:"api_base_url"`
	ServerBaseURL string `yaml:"server_base_url"`
	Token         string `yaml:"token"`
}

// Load resolves the configuration from the environment and the optional
// config file. A missing file is not an error; a malformed one is.
func Load() (*Config, error) {
	file, err := loadFile()
	if err != nil {
		return nil, err
	}

	return &Config{
		APIBaseURL: firstNonEmpty(
			os.Getenv("GITEA_API_URL"),
			os.Getenv("GITHUB_API_URL"),
			file.APIBaseURL,
			DefaultAPIBaseURL,
		),
		ServerBaseURL: firstNonEmpty(
			os.Getenv("GITEA_SERVER_URL"),
			os.Getenv("GITHUB_SERVER_URL"),
			file.ServerBaseURL,
			DefaultServerBaseURL,
		),
		UseGitea: os.Getenv("USE_GITEA") == "true",
		Token: firstNonEmpty(
			os.Getenv("GITEA_TOKEN"),
			os.Getenv("GITHUB_TOKEN"),
			file.Token,
		),
	}, nil
}

func loadFile() (fileConfig, error) {
	var file fileConfig

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return file, nil
	}

	configPath := filepath.Join(homeDir, ".config", "prfetch", "config.yml")

	// #nosec G304 - Reading config from user's home directory is intentional
	data, err := os.ReadFile(configPath)
	if err != nil {
		return file, nil
	}

	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return file, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
