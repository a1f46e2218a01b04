// Package project handles saving and loading project files and application
// configuration as JSON on disk.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/BuildQuote/internal/model"
)

// DefaultConfigDir returns the default directory for application
// configuration. On all platforms this is ~/.buildquote/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".buildquote")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// DefaultDBPath returns the default path for the price database.
func DefaultDBPath() string {
	return filepath.Join(DefaultConfigDir(), "prices.db")
}

// Save persists a project to the given path as indented JSON, creating any
// missing parent directories.
func Save(path string, p model.Project) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid project: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a project from the given path and validates it.
func Load(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, err
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("parse project file: %w", err)
	}
	if err := p.Validate(); err != nil {
		return model.Project{}, fmt.Errorf("invalid project file: %w", err)
	}
	return p, nil
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// RememberProject records a project file as the most recently used one in
// the app config at configPath.
func RememberProject(configPath, projectPath string) error {
	cfg, err := LoadAppConfig(configPath)
	if err != nil {
		return err
	}
	cfg.AddRecentProject(projectPath)
	return SaveAppConfig(configPath, cfg)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	var config model.AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	// Ensure RecentProjects is never nil
	if config.RecentProjects == nil {
		config.RecentProjects = []string{}
	}
	return config, nil
}
