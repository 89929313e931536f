package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newBuildCommand(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "build token=value [token=value...]",
		Short: "Build a name from token values",
		Example: `  namekit build descriptor=upper_arm side=l usage=jnt
  namekit build descriptor=arm`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseAssignments(args)
			if err != nil {
				return err
			}

			manager, err := state.Manager()
			if err != nil {
				return err
			}

			name, err := manager.BuildName(values)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}

func newUpdateCommand(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "update <name> token=value [token=value...]",
		Short: "Replace token values in an existing name",
		Example: `  namekit update arm_l_jnt side=r
  namekit update arm_l_jnt descriptor=leg usage=ctl`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := parseAssignments(args[1:])
			if err != nil {
				return err
			}

			manager, err := state.Manager()
			if err != nil {
				return err
			}

			name, err := manager.UpdateName(args[0], overrides)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}

func newResolveCommand(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <value>...",
		Short: "Resolve flexible input into a name",
		Long: `Resolve converts flexible input into a name string.

A single value without '=' passes through unchanged. token=value pairs
build a name from a value map. Multiple bare values are assigned to
tokens in order.`,
		Example: `  namekit resolve arm_l_jnt
  namekit resolve descriptor=arm side=l usage=jnt
  namekit resolve arm l jnt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := state.Manager()
			if err != nil {
				return err
			}

			var input any
			switch {
			case hasAssignments(args):
				values, err := parseAssignments(args)
				if err != nil {
					return err
				}
				input = values
			case len(args) == 1:
				input = args[0]
			default:
				input = args
			}

			name, err := manager.ResolveName(input)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}

func newMirrorCommand(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:     "mirror <name>",
		Short:   "Swap a name's side token to the opposite side",
		Example: `  namekit mirror arm_l_jnt`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := state.Manager()
			if err != nil {
				return err
			}

			name, err := manager.MirrorName(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}

func hasAssignments(args []string) bool {
	for _, arg := range args {
		if strings.IndexByte(arg, '=') > 0 {
			return true
		}
	}
	return false
}
