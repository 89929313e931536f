package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func newCheckCommand(state *rootState) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check <name>...",
		Short: "Validate names against the convention",
		Long: `Check validates each name as written, without normalization, and
prints every violation. The exit status is non-zero when any name
is invalid.`,
		Example: `  namekit check arm_l_jnt
  namekit check arm_l_jnt Arm_x_jnt spine_c_ctl`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := state.Manager()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			invalid := 0
			for _, name := range args {
				errs := manager.GetErrors(name)
				if len(errs) == 0 {
					if !quiet {
						fmt.Fprintf(out, "%s %s\n", okStyle.Render("✓"), name)
					}
					continue
				}

				invalid++
				fmt.Fprintf(out, "%s %s\n", errorStyle.Render("✗"), name)
				for _, msg := range errs {
					fmt.Fprintf(out, "  %s\n", dimStyle.Render(msg))
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d names invalid", invalid, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print invalid names")
	return cmd
}
