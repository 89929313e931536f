package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openrig/namekit/config"
)

func newParseCommand(state *rootState) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "parse <name>",
		Short: "Extract token values from a name",
		Example: `  namekit parse arm_l_jnt
  namekit parse arm_l_jnt --token side`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := state.Manager()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if token != "" {
				value, err := manager.GetTokenValue(args[0], token)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, value)
				return nil
			}

			data := manager.GetData(args[0])
			for _, name := range manager.Tokens() {
				fmt.Fprintf(out, "%s: %s\n", name, data[name])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&token, "token", "t", "", "Print only this token's value")
	return cmd
}

func newTokensCommand(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens",
		Short: "Show the convention's tokens, rules, and normalizers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := state.Config()
			if err != nil {
				return err
			}
			manager, err := state.Manager()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "separator: %q\n", manager.Separator())
			for _, token := range manager.Tokens() {
				fmt.Fprintf(out, "- %s", token)
				if rc, ok := cfg.Naming.Rules[token]; ok {
					switch rc.Type {
					case "regex":
						fmt.Fprintf(out, "  rule=regex(%s)", rc.Pattern)
					case "list":
						fmt.Fprintf(out, "  rule=list%v", rc.Values)
					case "from_enums":
						fmt.Fprintf(out, "  rule=from_enums%v", rc.Sources)
					default:
						fmt.Fprintf(out, "  rule=%s", rc.Type)
					}
				}
				if norm, ok := cfg.Naming.Normalizers[token]; ok {
					fmt.Fprintf(out, "  normalizer=%s", norm)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

func newInitConfigCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write the default configuration to a file",
		Long: `Init-config writes the built-in default convention to a YAML file
(namekit.yaml by default) as a starting point for customization.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "namekit.yaml"
			if len(args) == 1 {
				path = args[0]
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}

			if err := config.DefaultConfig().SaveToFile(path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}
