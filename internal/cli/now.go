package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/obskit/tempo"
)

// nowFunc supplies the wall clock; tests swap in a manual clock.
var nowFunc = time.Now

// NewNowCommand creates the now command.
func NewNowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current instant in every representation",
		Long: `Read the system clock once and print the current instant in every
supported representation, assuming the system clock carries UTC.

Example:
  tempo now --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := buildReport(tempo.FromTime(nowFunc()))
			if err != nil {
				return WrapExitError(ExitFailure, "conversion failed", err)
			}
			formatter := &OutputFormatter{
				Format:    rootOpts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   rootOpts.Verbose,
			}
			return formatter.Success(rep)
		},
	}
	return cmd
}
