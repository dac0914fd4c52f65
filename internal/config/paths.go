package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config path constants used by the CLI and loaders.
const (
	ConfigDirName  = ".demoodle"
	ConfigFileName = "config.yml"
	// EnvConfigPath names the environment variable that points at a config file.
	EnvConfigPath = "DEMOODLE_CONFIG"
)

// ErrConfigNotFound is returned when no config file exists up to the root.
var ErrConfigNotFound = errors.New("config not found")

// ConfigDir returns the .demoodle directory under a root.
func ConfigDir(root string) string {
	return filepath.Join(root, ConfigDirName)
}

// ConfigPath returns the full config file path under a root.
func ConfigPath(root string) string {
	return filepath.Join(ConfigDir(root), ConfigFileName)
}

// FindConfigPath searches upward from a directory for a config file.
func FindConfigPath(startDir string) (string, error) {
	dir := strings.TrimSpace(startDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	dir = abs

	for {
		configDir := filepath.Join(dir, ConfigDirName)
		configPath := filepath.Join(configDir, ConfigFileName)
		info, err := os.Stat(configPath)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("config path %q is a directory", configPath)
			}
			return configPath, nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat config path %q: %w", configPath, err)
		}
		if dirInfo, dirErr := os.Stat(configDir); dirErr == nil && dirInfo.IsDir() {
			return "", fmt.Errorf("found %q but %s is missing", configDir, ConfigFileName)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s in %s or parent directories", ErrConfigNotFound, filepath.Join(ConfigDirName, ConfigFileName), abs)
		}
		dir = parent
	}
}

// Resolve picks the config file for a run: an explicit path first, then
// $DEMOODLE_CONFIG, then an upward search from startDir. It returns "" when
// none exists, in which case defaults apply.
func Resolve(explicit, startDir string) (string, error) {
	if path := strings.TrimSpace(explicit); path != "" {
		return filepath.Abs(path)
	}
	if path := strings.TrimSpace(os.Getenv(EnvConfigPath)); path != "" {
		return filepath.Abs(path)
	}
	path, err := FindConfigPath(startDir)
	if errors.Is(err, ErrConfigNotFound) {
		return "", nil
	}
	return path, err
}

// LoadOrDefault loads the resolved config, or the defaults when path is "".
func LoadOrDefault(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
