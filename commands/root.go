// Package commands implements the namekit CLI commands.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openrig/namekit/config"
	"github.com/openrig/namekit/convention"
)

const Version = "0.1.0"

// rootState carries flag values and the lazily loaded manager shared by
// all subcommands.
type rootState struct {
	configPath string
	logLevel   string

	manager *convention.Manager
	config  *config.Config
}

// Manager loads the configuration on first use and materializes the
// naming manager from it.
func (s *rootState) Manager() (*convention.Manager, error) {
	if s.manager != nil {
		return s.manager, nil
	}

	cfg, err := s.Config()
	if err != nil {
		return nil, err
	}

	manager, err := cfg.BuildManager()
	if err != nil {
		return nil, err
	}
	s.manager = manager
	return manager, nil
}

// Config loads the effective configuration: the --config file when given,
// otherwise the layered default/user/project lookup.
func (s *rootState) Config() (*config.Config, error) {
	if s.config != nil {
		return s.config, nil
	}

	var cfg *config.Config
	var err error
	if s.configPath != "" {
		cfg, err = config.LoadFromFile(s.configPath)
	} else {
		cfg, err = config.NewLoader(slog.Default()).Load()
	}
	if err != nil {
		return nil, err
	}
	s.config = cfg
	return cfg, nil
}

// NewRootCommand builds the namekit command tree.
func NewRootCommand() *cobra.Command {
	state := &rootState{}

	cmd := &cobra.Command{
		Use:   "namekit",
		Short: "Convention-driven name builder and validator",
		Long: `Namekit builds, validates, parses, and rewrites structured names
like "upperArm_l_jnt" against a configurable naming convention.

The convention is defined by an ordered token list, a separator,
per-token validation rules, and per-token normalizers, loaded from
namekit.yaml (project), ~/.config/namekit/config.yaml (user), or the
built-in defaults.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(state.logLevel)
		},
	}

	cmd.PersistentFlags().StringVarP(&state.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&state.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newBuildCommand(state),
		newCheckCommand(state),
		newParseCommand(state),
		newUpdateCommand(state),
		newResolveCommand(state),
		newMirrorCommand(state),
		newTokensCommand(state),
		newInitConfigCommand(),
		newVersionCommand(),
	)

	return cmd
}

func configureLogging(logLevel string) {
	level := slog.LevelWarn
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "namekit version %s\n", Version)
		},
	}
}

// parseAssignments splits key=value arguments into a token value map.
func parseAssignments(args []string) (map[string]string, error) {
	values := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("expected token=value, got %q", arg)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("empty token name in %q", arg)
		}
		values[key] = value
	}
	return values, nil
}
