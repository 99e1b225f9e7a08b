package am

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/kbreese-x/cosmograph/errors"
)

var (
	loadMu           sync.Mutex
	globalConfig     *Config
	viperInstance    *viper.Viper
	activeConfigPath string
)

// ConfigSources records which file set each key during the last load.
// Keys absent here came from defaults or the environment.
var ConfigSources = map[string]SourceInfo{}

// Project config file names, in preference order
var projectConfigNames = []string{"am.toml", "cosmograph.toml"}

// Load reads the configuration using Viper. The result is cached until Reset.
func Load() (*Config, error) {
	loadMu.Lock()
	defer loadMu.Unlock()

	if globalConfig != nil {
		return globalConfig, nil
	}

	config, err := LoadWithViper(initViperLocked())
	if err != nil {
		return nil, err
	}

	globalConfig = config
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	loadMu.Lock()
	defer loadMu.Unlock()
	return initViperLocked()
}

// LoadWithViper decodes the configuration held by v. Load and LoadFromFile
// both finish here.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	// Set defaults but don't bind environment variables for this specific load
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", configPath)
	}
	return config, nil
}

// Reset clears the cached configuration (used by reloads and tests)
func Reset() {
	loadMu.Lock()
	defer loadMu.Unlock()

	globalConfig = nil
	viperInstance = nil
	activeConfigPath = ""
	ConfigSources = map[string]SourceInfo{}
}

// ConfigFilePath returns the highest-precedence config file that was merged,
// or "" when only defaults and environment are in effect.
func ConfigFilePath() string {
	loadMu.Lock()
	defer loadMu.Unlock()
	initViperLocked()
	return activeConfigPath
}

// initViperLocked initializes Viper with configuration sources and defaults.
// loadMu must be held.
func initViperLocked() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	// Set up environment variable binding
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	BindPropsEnvVars(v)

	// Set defaults first
	SetDefaults(v)

	// Merge config files in precedence order: user -> project (env vars stay on top)
	mergeConfigFiles(v)

	viperInstance = v
	return v
}

// UserConfigPath returns ~/.cosmograph/am.toml
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cosmograph", "am.toml")
}

// findProjectConfig searches for am.toml or cosmograph.toml by walking up the directory tree
// Returns the path to the first config file found, or empty string if none found
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range projectConfigNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root, stop searching
			break
		}
		dir = parent
	}

	return ""
}

// mergeConfigFiles merges each existing config file into v and records where
// every key came from. Precedence (lowest to highest): user < project.
func mergeConfigFiles(v *viper.Viper) {
	candidates := []SourceInfo{
		{Source: SourceUser, Path: UserConfigPath()},
		{Source: SourceProject, Path: findProjectConfig()},
	}

	for _, c := range candidates {
		if c.Path == "" {
			continue
		}
		if _, err := os.Stat(c.Path); err != nil {
			continue
		}
		// Project search can land on the user file when run from ~/.cosmograph
		if c.Source == SourceProject && c.Path == activeConfigPath {
			continue
		}

		tempViper := viper.New()
		tempViper.SetConfigFile(c.Path)
		tempViper.SetConfigType("toml")
		if err := tempViper.ReadInConfig(); err != nil {
			continue
		}

		if err := v.MergeConfigMap(tempViper.AllSettings()); err != nil {
			continue
		}
		for _, key := range tempViper.AllKeys() {
			ConfigSources[key] = c
		}
		activeConfigPath = c.Path
	}
}

// Get returns a configuration value using dot notation
func Get(key string) interface{} {
	return GetViper().Get(key)
}
