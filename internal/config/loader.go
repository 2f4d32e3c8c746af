package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/testctl"
	projectConfigDir = ".testctl"
	configFileName   = "config.yaml"
)

// LoadConfig loads the testctl configuration by layering default, user, and
// project settings, then capturing the environment snapshot.
func LoadConfig() (Config, error) {
	// 1. Start with the default configuration
	config := DefaultConfig()

	// 2. Layer the user-specific configuration, if present
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// Log this error but don't fail; user config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = mergeConfigs(config, userConfig)
		}
	}

	// 3. Layer the project-specific configuration, if present
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
			projectConfig, err := loadConfigFromFile(projectConfigPath)
			if err != nil {
				return Config{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
			}
			config = mergeConfigs(config, projectConfig)
		}
	}

	// 4. Snapshot the environment last; it always wins for the values it carries.
	config.Env = CaptureEnv(os.LookupEnv)

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if len(overlay.Engine.Command) > 0 {
		merged.Engine.Command = overlay.Engine.Command
	}
	if overlay.Engine.Workers > 0 {
		merged.Engine.Workers = overlay.Engine.Workers
	}
	if overlay.Docker.Image != "" {
		merged.Docker.Image = overlay.Docker.Image
	}
	if overlay.Docker.Workdir != "" {
		merged.Docker.Workdir = overlay.Docker.Workdir
	}
	if overlay.Coverage.Source != "" {
		merged.Coverage.Source = overlay.Coverage.Source
	}
	if overlay.Coverage.Threshold > 0 {
		merged.Coverage.Threshold = overlay.Coverage.Threshold
	}
	if overlay.Artifacts.Root != "" {
		merged.Artifacts.Root = overlay.Artifacts.Root
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path.
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
