package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	chartio "github.com/matzehuels/chartaxis/pkg/io"
	"github.com/matzehuels/chartaxis/pkg/pipeline"
)

// ticksOpts holds the command-line flags for the ticks command.
type ticksOpts struct {
	output    string  // output file; its extension picks the format unless --format is set
	formats   string  // export formats: json, toml, csv (comma-separated)
	direction string  // overrides the chart direction
	width     float64 // overrides the chart working space
	style     string  // style file replacing the chart's [style] table
}

// ticksCommand creates the ticks command.
//
// Without --format or --output the ticks are shown as a table. With --format
// the encoded ticks go to stdout, with --output to a file.
func (c *CLI) ticksCommand() *cobra.Command {
	var opts ticksOpts

	cmd := &cobra.Command{
		Use:   "ticks [chart]",
		Short: "Compute tick labels and locations for a chart file",
		Long: `Compute the ticks of a chart's categorical axis.

The chart file is TOML or JSON and names the axis type, its series and
the style used to format labels. The working space and direction stored
in the file can be overridden with --width and --direction.`,
		Example: `  chartaxis ticks revenue.toml
  chartaxis ticks revenue.toml --width 1200 --direction vertical
  chartaxis ticks revenue.toml -f json,csv
  chartaxis ticks revenue.toml -o axis.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTicks(cmd.Context(), args[0], opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write ticks to this file (.json, .toml or .csv)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "print ticks as json, toml or csv (comma-separated)")
	cmd.Flags().StringVarP(&opts.direction, "direction", "d", "", "axis direction: horizontal, vertical (default from chart)")
	cmd.Flags().Float64VarP(&opts.width, "width", "w", 0, "axis working space in pixels (default from chart)")
	cmd.Flags().StringVarP(&opts.style, "style", "s", "", "style file replacing the chart style")

	_ = cmd.RegisterFlagCompletionFunc("direction", completeDirections)
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

func (c *CLI) runTicks(ctx context.Context, path string, opts ticksOpts, out io.Writer) error {
	logger := loggerFromContext(ctx)

	popts := pipeline.Options{
		ChartPath:    path,
		StylePath:    opts.style,
		Direction:    opts.direction,
		WorkingSpace: opts.width,
		Formats:      parseFormats(opts.formats),
	}
	if opts.output != "" && len(popts.Formats) == 0 {
		format, err := chartio.FormatFor(opts.output)
		if err != nil {
			return err
		}
		popts.Formats = []string{format}
	}
	if opts.output != "" && len(popts.Formats) != 1 {
		return fmt.Errorf("--output takes exactly one format, got %d", len(popts.Formats))
	}

	prog := newProgress(logger)
	result, err := c.newRunner().Execute(ctx, popts)
	if err != nil {
		prog.fail("Tick computation failed", err)
		return err
	}
	prog.done(fmt.Sprintf("Computed %d ticks", result.Stats.TickCount), "chart", path)

	switch {
	case opts.output != "":
		if err := os.WriteFile(opts.output, result.Artifacts[popts.Formats[0]], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.output, err)
		}
		printSuccess("Wrote %d ticks", result.Stats.TickCount)
		printFile(opts.output)
	case len(popts.Formats) > 0:
		for _, format := range popts.Formats {
			if _, err := out.Write(result.Artifacts[format]); err != nil {
				return err
			}
		}
	default:
		title := result.Chart.Title
		if title == "" {
			title = path
		}
		fmt.Fprintln(out, StyleTitle.Render(title))
		fmt.Fprintln(out, renderTicksTable(result.Ticks))
		fmt.Fprintln(out, renderGeometry(result.Ticks))
		printStats(result.Stats.SeriesCount, result.Stats.TickCount, result.Stats.CalculateTime)
		printNextStep("Preview interactively", appName+" preview "+path)
	}
	return nil
}

// completeDirections offers the axis directions for shell completion.
func completeDirections(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return []string{"horizontal", "vertical"}, cobra.ShellCompDirectiveNoFileComp
}

// completeFormats offers the export formats for shell completion.
func completeFormats(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return chartio.Formats, cobra.ShellCompDirectiveNoFileComp
}
