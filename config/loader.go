package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	// ProjectConfigFile is the name of the project-level config file
	ProjectConfigFile = "namekit.yaml"
	// UserConfigDir is the directory for user-level config
	UserConfigDir = ".config/namekit"
	// UserConfigFile is the name of the user-level config file
	UserConfigFile = "config.yaml"

	// EnvSeparator overrides the naming separator
	EnvSeparator = "NAMEKIT_NAMING_SEPARATOR"
	// EnvTokens overrides the token list (comma-separated)
	EnvTokens = "NAMEKIT_NAMING_TOKENS"
	// EnvSideDefault overrides the default rig side
	EnvSideDefault = "NAMEKIT_RIGGING_SIDE_DEFAULT"
	// EnvConfigPath points at an explicit config file, bypassing discovery
	EnvConfigPath = "NAMEKIT_CONFIG"
)

// Loader handles configuration loading with layered precedence
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new configuration loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. User config (~/.config/namekit/config.yaml)
// 3. Project config (namekit.yaml in current or parent directories)
// 4. Environment variables
//
// An explicit NAMEKIT_CONFIG path replaces steps 2 and 3.
func (l *Loader) Load() (*Config, error) {
	if explicit := os.Getenv(EnvConfigPath); explicit != "" {
		config, err := LoadFromFile(explicit)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("Loaded explicit config", slog.String("path", explicit))
		return l.applyEnvOverrides(config)
	}

	config := DefaultConfig()

	userConfigPath := l.userConfigPath()
	if userConfigPath != "" {
		if userConfig, err := LoadFromFile(userConfigPath); err == nil {
			l.logger.Debug("Loaded user config", slog.String("path", userConfigPath))
			config = userConfig
		} else if !errors.Is(err, os.ErrNotExist) {
			l.logger.Warn("Failed to load user config",
				slog.String("path", userConfigPath),
				slog.String("error", err.Error()))
		}
	}

	projectConfigPath := l.findProjectConfig()
	if projectConfigPath != "" {
		projectConfig, err := LoadFromFile(projectConfigPath)
		if err != nil {
			l.logger.Warn("Failed to load project config",
				slog.String("path", projectConfigPath),
				slog.String("error", err.Error()))
		} else {
			l.logger.Debug("Loaded project config", slog.String("path", projectConfigPath))
			config = projectConfig
		}
	} else {
		l.logger.Debug("No project config found")
	}

	return l.applyEnvOverrides(config)
}

// applyEnvOverrides applies environment variable overrides and revalidates.
func (l *Loader) applyEnvOverrides(config *Config) (*Config, error) {
	if sep := os.Getenv(EnvSeparator); sep != "" {
		config.Naming.Separator = sep
		l.logger.Debug("Override applied", slog.String("var", EnvSeparator), slog.String("value", sep))
	}

	if raw := os.Getenv(EnvTokens); raw != "" {
		var tokens []string
		for _, token := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(token); trimmed != "" {
				tokens = append(tokens, trimmed)
			}
		}
		if len(tokens) > 0 {
			config.Naming.Tokens = tokens
			// Rules and normalizers bound to tokens no longer in the list
			// would fail validation; drop them.
			config.Naming.Rules = filterToTokens(config.Naming.Rules, tokens)
			config.Naming.Normalizers = filterToTokens(config.Naming.Normalizers, tokens)
			l.logger.Debug("Override applied", slog.String("var", EnvTokens), slog.String("value", raw))
		}
	}

	if side := os.Getenv(EnvSideDefault); side != "" {
		config.Rigging.SideDefault = side
		l.logger.Debug("Override applied", slog.String("var", EnvSideDefault), slog.String("value", side))
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func filterToTokens[V any](bindings map[string]V, tokens []string) map[string]V {
	keep := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		keep[token] = struct{}{}
	}
	filtered := make(map[string]V, len(bindings))
	for token, v := range bindings {
		if _, ok := keep[token]; ok {
			filtered[token] = v
		}
	}
	return filtered
}

// EnsureUserConfig creates the user config file with defaults if it doesn't exist
func (l *Loader) EnsureUserConfig() error {
	userConfigPath := l.userConfigPath()
	if userConfigPath == "" {
		return nil
	}

	if _, err := os.Stat(userConfigPath); err == nil {
		return nil
	}

	config := DefaultConfig()
	if err := config.SaveToFile(userConfigPath); err != nil {
		return err
	}

	l.logger.Info("Created default user config", slog.String("path", userConfigPath))
	return nil
}

// userConfigPath returns the path to the user config file
func (l *Loader) userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}

// findProjectConfig searches for namekit.yaml in current and parent directories
func (l *Loader) findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		configPath := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
