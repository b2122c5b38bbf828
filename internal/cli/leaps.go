package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/obskit/tempo/internal/leap"
)

// LeapsOptions holds flags for the leaps command.
type LeapsOptions struct {
	*RootOptions
	Extra string
	Since float64
}

// NewLeapsCommand creates the leaps command.
func NewLeapsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LeapsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "leaps",
		Short: "Print the TAI-UTC offset history",
		Long: `Print the TAI-UTC offset history: one row per entry with its
effective UTC MJD, the offset in seconds, and the pre-1972 drift
reference MJD and rate (zero for whole-second entries).

Newly announced leap seconds can be merged from a YAML file of
Bulletin C style entries before printing:

  - mjd: 63249
    offset: 38

Examples:
  tempo leaps
  tempo leaps --since 50000
  tempo leaps --extra announced.yaml --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLeaps(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Extra, "extra", "", "YAML file of announced leap seconds to merge")
	cmd.Flags().Float64Var(&opts.Since, "since", 0, "only entries effective at or after this UTC MJD")

	return cmd
}

func runLeaps(opts *LeapsOptions, cmd *cobra.Command) error {
	tbl := leap.Default().Clone()

	if opts.Extra != "" {
		f, err := os.Open(opts.Extra)
		if err != nil {
			return WrapExitError(ExitCommandError, "cannot read leap file", err)
		}
		defer f.Close()
		if err := tbl.MergeYAML(f); err != nil {
			return WrapExitError(ExitCommandError, "cannot merge leap file", err)
		}
	}

	entries := tbl.Entries()
	if opts.Since > 0 {
		kept := entries[:0]
		for _, e := range entries {
			if e.MJD >= opts.Since {
				kept = append(kept, e)
			}
		}
		entries = kept
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	if opts.Format == "json" {
		return formatter.Success(entries)
	}
	return formatter.Success(leapRows(entries))
}

// leapRows renders entries as tab-separated rows, one entry per line.
func leapRows(entries []leap.Entry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%.1f\t%.7f\t%.1f\t%.7f", e.MJD, e.Offset, e.DriftMJD, e.DriftRate)
	}
	return b.String()
}
