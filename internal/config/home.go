package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnv names the environment variable that overrides the datasearcher home directory.
const HomeEnv = "DATASEARCHER_HOME"

// GetHome returns the datasearcher home directory
// Priority order:
//  1. DATASEARCHER_HOME environment variable (if set)
//  2. .datasearcher under the current working directory
//
// The directory is not created.
func GetHome() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	return filepath.Join(cwd, ".datasearcher"), nil
}

// DefaultConfigPath returns config.yaml inside the home directory.
func DefaultConfigPath() (string, error) {
	home, err := GetHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "config.yaml"), nil
}

// Load reads the configuration at path, or at DefaultConfigPath when path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	} else if _, err := os.Stat(path); err != nil {
		// An explicitly named file must exist
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return LoadConfig(path)
}
