package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/obskit/tempo"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	Nsec   int64
	Date   float64
	System string
	Scale  string
}

// Report is the full rendering of one instant across every supported
// timescale and date system.
type Report struct {
	ISO         string  `json:"iso"`
	NsecTAI     int64   `json:"nsec_tai"`
	NsecUTC     int64   `json:"nsec_utc"`
	MJDUTC      float64 `json:"mjd_utc"`
	MJDTAI      float64 `json:"mjd_tai"`
	MJDTT       float64 `json:"mjd_tt"`
	JDUTC       float64 `json:"jd_utc"`
	EpochTT     float64 `json:"epoch_tt"`
	TAIMinusUTC float64 `json:"tai_minus_utc"`
}

// String renders the report as aligned key/value text.
func (r Report) String() string {
	day := func(v float64) string { return strconv.FormatFloat(v, 'f', 9, 64) }
	var b strings.Builder
	fmt.Fprintf(&b, "iso:           %s\n", r.ISO)
	fmt.Fprintf(&b, "nsec_tai:      %d\n", r.NsecTAI)
	fmt.Fprintf(&b, "nsec_utc:      %d\n", r.NsecUTC)
	fmt.Fprintf(&b, "mjd_utc:       %s\n", day(r.MJDUTC))
	fmt.Fprintf(&b, "mjd_tai:       %s\n", day(r.MJDTAI))
	fmt.Fprintf(&b, "mjd_tt:        %s\n", day(r.MJDTT))
	fmt.Fprintf(&b, "jd_utc:        %s\n", day(r.JDUTC))
	fmt.Fprintf(&b, "epoch_tt:      %s\n", strconv.FormatFloat(r.EpochTT, 'f', 12, 64))
	fmt.Fprintf(&b, "tai_minus_utc: %s", strconv.FormatFloat(r.TAIMinusUTC, 'f', 9, 64))
	return b.String()
}

// buildReport expands one instant into every representation the kernel
// supports.
func buildReport(dt tempo.DateTime) (Report, error) {
	nsTAI, err := dt.Nsecs(tempo.TAI)
	if err != nil {
		return Report{}, err
	}
	nsUTC, err := dt.Nsecs(tempo.UTC)
	if err != nil {
		return Report{}, err
	}
	mjdUTC, err := dt.Get(tempo.MJD, tempo.UTC)
	if err != nil {
		return Report{}, err
	}
	mjdTAI, err := dt.Get(tempo.MJD, tempo.TAI)
	if err != nil {
		return Report{}, err
	}
	mjdTT, err := dt.Get(tempo.MJD, tempo.TT)
	if err != nil {
		return Report{}, err
	}
	jdUTC, err := dt.Get(tempo.JD, tempo.UTC)
	if err != nil {
		return Report{}, err
	}
	epochTT, err := dt.Get(tempo.Epoch, tempo.TT)
	if err != nil {
		return Report{}, err
	}

	return Report{
		ISO:         dt.String(),
		NsecTAI:     nsTAI,
		NsecUTC:     nsUTC,
		MJDUTC:      mjdUTC,
		MJDTAI:      mjdTAI,
		MJDTT:       mjdTT,
		JDUTC:       jdUTC,
		EpochTT:     epochTT,
		TAIMinusUTC: float64(nsTAI-nsUTC) / 1e9,
	}, nil
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert [iso-8601-text]",
		Short: "Convert one instant across timescales and date systems",
		Long: `Convert a single instant and print it in every supported
representation: ISO-8601 UTC text, TAI and UTC epoch-nanoseconds,
MJD on each timescale, JD, and the Julian epoch.

The instant is given exactly one way:
  as a positional ISO-8601 argument (always read as UTC),
  as --nsec with --scale, or
  as --date with --system and --scale.

Examples:
  tempo convert 2009-04-02T07:26:39.314159265Z
  tempo convert --nsec 1192755506000000000 --scale tai
  tempo convert --date 45205.125 --system mjd --scale utc`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, cmd, args)
		},
	}

	cmd.Flags().Int64Var(&opts.Nsec, "nsec", 0, "instant as epoch-nanoseconds on --scale")
	cmd.Flags().Float64Var(&opts.Date, "date", 0, "instant as a floating date in --system on --scale")
	cmd.Flags().StringVar(&opts.System, "system", "mjd", "date system for --date (jd|mjd|epoch)")
	cmd.Flags().StringVar(&opts.Scale, "scale", "utc", "timescale for --nsec and --date (tai|utc|tt)")

	return cmd
}

func runConvert(opts *ConvertOptions, cmd *cobra.Command, args []string) error {
	dt, err := resolveInstant(opts, cmd, args)
	if err != nil {
		return err
	}

	rep, err := buildReport(dt)
	if err != nil {
		return WrapExitError(ExitFailure, "conversion failed", err)
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	return formatter.Success(rep)
}

// resolveInstant maps the mutually exclusive input forms to a DateTime.
func resolveInstant(opts *ConvertOptions, cmd *cobra.Command, args []string) (tempo.DateTime, error) {
	sources := 0
	if len(args) == 1 {
		sources++
	}
	if cmd.Flags().Changed("nsec") {
		sources++
	}
	if cmd.Flags().Changed("date") {
		sources++
	}
	if sources != 1 {
		return tempo.DateTime{}, NewExitError(ExitCommandError,
			"give the instant exactly one way: an ISO-8601 argument, --nsec, or --date")
	}

	if len(args) == 1 {
		if cmd.Flags().Changed("scale") {
			return tempo.DateTime{}, NewExitError(ExitCommandError,
				"--scale does not apply to ISO-8601 input, which is always UTC")
		}
		dt, err := tempo.Parse(args[0])
		if err != nil {
			return tempo.DateTime{}, WrapExitError(ExitFailure, "conversion failed", err)
		}
		return dt, nil
	}

	scale, err := tempo.TimescaleOf(opts.Scale)
	if err != nil {
		return tempo.DateTime{}, WrapExitError(ExitCommandError, "invalid --scale", err)
	}

	if cmd.Flags().Changed("nsec") {
		dt, err := tempo.FromNanos(opts.Nsec, scale)
		if err != nil {
			return tempo.DateTime{}, WrapExitError(ExitFailure, "conversion failed", err)
		}
		return dt, nil
	}

	system, err := tempo.DateSystemOf(opts.System)
	if err != nil {
		return tempo.DateTime{}, WrapExitError(ExitCommandError, "invalid --system", err)
	}
	dt, err := tempo.FromDate(opts.Date, system, scale)
	if err != nil {
		return tempo.DateTime{}, WrapExitError(ExitFailure, "conversion failed", err)
	}
	return dt, nil
}
