package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetDefaults returns application default paths, checking environment variables first.
// Environment variables:
//   - VC_CONFIG_PATH: config file location (default: ~/.config/vc.toml)
//   - VC_PROJECT_ROOT: project root directory (default: current directory)
func GetDefaults() (map[string]string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	projectRoot, err := getProjectRoot()
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"config_path":  configPath,
		"project_root": projectRoot,
	}, nil
}

// getConfigPath returns the config file path, checking VC_CONFIG_PATH env var first,
// then falling back to the default ~/.config/vc.toml.
func getConfigPath() (string, error) {
	if path := os.Getenv("VC_CONFIG_PATH"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "vc.toml"), nil
}

// getProjectRoot returns the project root, checking VC_PROJECT_ROOT env var first,
// then falling back to the current working directory.
func getProjectRoot() (string, error) {
	if path := os.Getenv("VC_PROJECT_ROOT"); path != "" {
		return filepath.Clean(path), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cannot determine working directory: %w", err)
	}
	return cwd, nil
}
