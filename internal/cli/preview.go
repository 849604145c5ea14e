package cli

import (
	"context"
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartaxis/pkg/axis"
	"github.com/matzehuels/chartaxis/pkg/chart"
	"github.com/matzehuels/chartaxis/pkg/pipeline"
)

// Preview styles
var (
	previewTickStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	previewBandStyle  = lipgloss.NewStyle().Foreground(colorGray)
	previewLabelStyle = lipgloss.NewStyle().Foreground(colorWhite)
	previewDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	previewErrStyle   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	// previewMinWidth is the smallest working space the preview shrinks to.
	previewMinWidth = 10.0

	// previewCoarseStep and previewFineStep are the resize increments in pixels.
	previewCoarseStep = 50.0
	previewFineStep   = 5.0

	// previewColumns is the ruler width used until the terminal reports its size.
	previewColumns = 80
)

// previewCommand creates the preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "preview [chart]",
		Short: "Preview tick placement interactively",
		Long: `Show the chart's axis as a terminal ruler.

Use left/right to shrink or grow the working space by 50px (shift for
5px), d to flip the direction and q to quit. Ticks are recomputed on
every change.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd.Context(), args[0], style)
		},
	}

	cmd.Flags().StringVarP(&style, "style", "s", "", "style file replacing the chart style")

	return cmd
}

func (c *CLI) runPreview(ctx context.Context, path, style string) error {
	ch, err := c.newRunner().Load(ctx, pipeline.Options{ChartPath: path, StylePath: style})
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(NewPreviewModel(ch), tea.WithContext(ctx)).Run()
	return err
}

// =============================================================================
// PreviewModel - Interactive tick ruler
// =============================================================================

// PreviewModel is the bubbletea model for the tick ruler.
type PreviewModel struct {
	Chart        *chart.Chart
	Direction    axis.Direction
	WorkingSpace float64
	Columns      int

	Ticks axis.Ticks
	Err   error
}

// NewPreviewModel creates a preview model starting from the chart's own
// direction and working space.
func NewPreviewModel(c *chart.Chart) PreviewModel {
	m := PreviewModel{
		Chart:        c,
		Direction:    c.Direction,
		WorkingSpace: c.WorkingSpace,
		Columns:      previewColumns,
	}
	return m.recompute()
}

func (m PreviewModel) recompute() PreviewModel {
	m.Ticks, m.Err = m.Chart.TicksAt(m.Direction, m.WorkingSpace)
	return m
}

func (m PreviewModel) resize(delta float64) PreviewModel {
	m.WorkingSpace = math.Max(previewMinWidth, m.WorkingSpace+delta)
	return m.recompute()
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "+":
			return m.resize(previewCoarseStep), nil
		case "left", "h", "-":
			return m.resize(-previewCoarseStep), nil
		case "shift+right", "L":
			return m.resize(previewFineStep), nil
		case "shift+left", "H":
			return m.resize(-previewFineStep), nil
		case "d":
			if m.Direction == axis.Horizontal {
				m.Direction = axis.Vertical
			} else {
				m.Direction = axis.Horizontal
			}
			return m.recompute(), nil
		}
	case tea.WindowSizeMsg:
		m.Columns = max(20, msg.Width-4)
	}
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	title := m.Chart.Title
	if title == "" {
		title = "Axis preview"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(previewDimStyle.Render(fmt.Sprintf("%s · %s · %gpx", m.Chart.Kind, m.Direction, m.WorkingSpace)))
	b.WriteString("\n\n")

	if m.Err != nil {
		b.WriteString(previewErrStyle.Render(iconError + " " + m.Err.Error()))
		b.WriteString("\n\n")
	} else {
		b.WriteString(m.ruler())
		b.WriteString("\n")
		b.WriteString(renderGeometry(m.Ticks))
		b.WriteString("\n\n")
	}

	b.WriteString(previewDimStyle.Render("←/→ resize  shift ←/→ fine  d direction  q quit"))
	return b.String()
}

// ruler draws the working space scaled to the terminal width, with the tick
// band, one mark per tick and the labels listed underneath.
func (m PreviewModel) ruler() string {
	cols := m.Columns
	scale := float64(cols-1) / m.WorkingSpace
	column := func(px float64) int {
		return min(cols-1, max(0, int(math.Round(px*scale))))
	}

	line := []rune(strings.Repeat("·", cols))
	bandStart := column(m.Ticks.Margin)
	bandEnd := column(m.Ticks.Margin + m.Ticks.TickSpace)
	for i := bandStart; i <= bandEnd; i++ {
		line[i] = '─'
	}
	line[bandStart], line[bandEnd] = '├', '┤'

	marks := make(map[int]bool, m.Ticks.Len())
	for _, loc := range m.Ticks.Locations {
		col := column(loc)
		line[col] = '┼'
		marks[col] = true
	}

	var rendered strings.Builder
	for i, r := range line {
		switch {
		case marks[i]:
			rendered.WriteString(previewTickStyle.Render(string(r)))
		case i >= bandStart && i <= bandEnd:
			rendered.WriteString(previewBandStyle.Render(string(r)))
		default:
			rendered.WriteString(previewDimStyle.Render(string(r)))
		}
	}
	rendered.WriteString("\n\n")

	for i, label := range m.Ticks.Labels {
		fmt.Fprintf(&rendered, "%s %s %s\n",
			previewDimStyle.Render(fmt.Sprintf("%3d", i)),
			previewTickStyle.Render(fmt.Sprintf("%8s", formatPixels(m.Ticks.Locations[i]))),
			previewLabelStyle.Render(label))
	}
	return rendered.String()
}
