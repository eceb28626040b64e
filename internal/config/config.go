// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ziyabeey1-ai/mysite/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server contains HTTP server settings
	Server ServerConfig `json:"server"`

	// Site contains the agency identity and contact links
	Site SiteConfig `json:"site"`

	// Database contains lead-store settings
	Database DatabaseConfig `json:"database"`

	// Draft contains the generative draft service settings
	Draft DraftConfig `json:"draft,omitempty"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// UIPath is the static UI directory
	UIPath string `json:"ui_path"`
}

// SiteConfig contains the agency identity
type SiteConfig struct {
	// Name is the agency display name
	Name string `json:"name"`

	// Owner is the person behind the agency
	Owner string `json:"owner"`

	// Title is the owner's professional title
	Title string `json:"title"`

	// Email is the contact address, also the proposal recipient
	Email string `json:"email"`

	// Phone is the contact phone
	Phone string `json:"phone"`

	// LinkedIn profile URL
	LinkedIn string `json:"linkedin"`

	// Behance profile URL
	Behance string `json:"behance"`
}

// DatabaseConfig contains lead-store settings
type DatabaseConfig struct {
	// Path is the SQLite database file
	Path string `json:"path"`
}

// DraftConfig contains the generative email-draft service settings
type DraftConfig struct {
	// Endpoint is the draft service URL; empty disables drafting
	Endpoint string `json:"endpoint,omitempty"`

	// APIKey authenticates against the draft service
	APIKey string `json:"api_key,omitempty"`

	// Model is the generative model identifier
	Model string `json:"model,omitempty"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	dbPath := filepath.Join(homeDir, ".mysite", "leads.db")

	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr:   ":8080",
			UIPath: "./ui",
		},
		Site: SiteConfig{
			Name:     "YZT Digital",
			Owner:    "Yusuf Ziya Terzioğlu",
			Title:    "Dijital Mimar & Full-Stack Developer",
			Email:    "yz.terzioglu@hotmail.com",
			Phone:    "05302149000",
			LinkedIn: "https://www.linkedin.com/in/ziyabey",
			Behance:  "https://www.behance.net/ziyaterzi",
		},
		Database: DatabaseConfig{
			Path: dbPath,
		},
		Draft: DraftConfig{
			Model: "gemini-3-flash-preview",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
