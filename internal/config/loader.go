package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// ConfigName is the base name of the config file searched for when no
// explicit file is given.
const ConfigName = ".grrs"

// EnvPrefix prefixes every environment variable override (GRRS_LOG_LEVEL, ...).
const EnvPrefix = "GRRS"

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	fs         afero.Fs
	file       string
	searchDirs []string
}

// NewLoader creates a configuration loader. When file is non-empty it must
// exist; otherwise .grrs.yaml is looked up in searchDirs, in order, and a
// missing file is not an error.
func NewLoader(fs afero.Fs, file string, searchDirs ...string) Loader {
	return &loader{
		fs:         fs,
		file:       file,
		searchDirs: searchDirs,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (GRRS_*)
// 2. Config file (--config, or .grrs.yaml in the search directories)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()
	v.SetFs(l.fs)

	if l.file != "" {
		v.SetConfigFile(l.file)
		if filepath.Ext(l.file) == "" {
			v.SetConfigType("yaml")
		}
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		for _, dir := range l.searchDirs {
			v.AddConfigPath(dir)
		}
	}

	// Enable environment variable overrides
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., GRRS_LOG_LEVEL)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("log.level")
	v.BindEnv("log.encoding")
	v.BindEnv("log.timestamps")

	setDefaults(v)

	if l.file != "" || len(l.searchDirs) > 0 {
		if err := v.ReadInConfig(); err != nil {
			// Config file not found is acceptable - we'll use defaults + env vars
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.encoding", defaults.Log.Encoding)
	v.SetDefault("log.timestamps", defaults.Log.Timestamps)
}

// DefaultSearchDirs returns the directories searched for .grrs.yaml: the
// working directory first, then the home directory. Directories that
// cannot be determined are skipped.
func DefaultSearchDirs() []string {
	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}
