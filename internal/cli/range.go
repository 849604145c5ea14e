package cli

import (
	"context"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartaxis/pkg/axis"
)

// rangeOpts holds the command-line flags for the range command.
type rangeOpts struct {
	min         float64
	max         float64
	direction   string
	logarithmic bool
}

// rangeCommand creates the range command, which shows how the axis range of
// a categorical chart is adjusted before labels are formatted.
func (c *CLI) rangeCommand() *cobra.Command {
	opts := rangeOpts{direction: axis.Horizontal.String()}

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Apply the axis range adjustment to a min/max pair",
		Long: `Apply the axis range adjustment to a min/max pair.

Vertical axes whose values are all positive start at zero, and axes whose
values are all negative end at zero. With --log the minimum snaps down to
the nearest power of ten.`,
		Example: `  chartaxis range --min 3 --max 10 --direction vertical
  chartaxis range --min 250 --max 900 --log`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRange(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().Float64Var(&opts.min, "min", 0, "axis minimum")
	cmd.Flags().Float64Var(&opts.max, "max", 0, "axis maximum")
	cmd.Flags().StringVarP(&opts.direction, "direction", "d", opts.direction, "axis direction: horizontal, vertical")
	cmd.Flags().BoolVar(&opts.logarithmic, "log", false, "snap the minimum to a power of ten")

	_ = cmd.RegisterFlagCompletionFunc("direction", completeDirections)

	return cmd
}

func runRange(ctx context.Context, opts rangeOpts, out io.Writer) error {
	dir, err := axis.ParseDirection(opts.direction)
	if err != nil {
		return err
	}
	lo, hi, err := axis.Adjust(dir, opts.min, opts.max, opts.logarithmic)
	if err != nil {
		return err
	}

	loggerFromContext(ctx).Debug("adjusted range",
		"direction", dir,
		"min", opts.min, "max", opts.max,
		"adjusted_min", lo, "adjusted_max", hi)

	printKeyValue(out, "direction", dir.String())
	printKeyValue(out, "min", formatBound(opts.min, lo))
	printKeyValue(out, "max", formatBound(opts.max, hi))
	return nil
}

// formatBound shows a bound and, when the adjustment moved it, its new value.
func formatBound(before, after float64) string {
	s := strconv.FormatFloat(after, 'g', -1, 64)
	if before == after {
		return s
	}
	return strconv.FormatFloat(before, 'g', -1, 64) + " " + iconArrow + " " + StyleHighlight.Render(s)
}
