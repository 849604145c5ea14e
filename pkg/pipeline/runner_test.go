package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartaxis/pkg/category"
	"github.com/matzehuels/chartaxis/pkg/chart"
	"github.com/matzehuels/chartaxis/pkg/errors"
	"github.com/matzehuels/chartaxis/pkg/observability"
)

const monthsTOML = `
title = "Visits"
axis = "textual"
working_space = 300

[style]
tick_space_percentage = 1.0

[[series]]
name = "visits"
categories = ["Jan", "Feb", "Mar"]
values = [120, 80, 95]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func quietRunner() *Runner {
	return NewRunner(log.NewWithOptions(&bytes.Buffer{}, log.Options{}))
}

func TestExecute(t *testing.T) {
	path := writeFile(t, "visits.toml", monthsTOML)

	result, err := quietRunner().Execute(context.Background(), Options{
		ChartPath: path,
		Formats:   []string{"json", "csv"},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !slices.Equal(result.Ticks.Locations, []float64{50, 150, 250}) {
		t.Errorf("Locations = %v", result.Ticks.Locations)
	}
	if result.Stats.SeriesCount != 1 || result.Stats.TickCount != 3 {
		t.Errorf("Stats = %+v", result.Stats)
	}
	if result.Chart.Title != "Visits" {
		t.Errorf("Chart.Title = %q", result.Chart.Title)
	}
	if len(result.Artifacts) != 2 {
		t.Fatalf("Artifacts = %d formats, want 2", len(result.Artifacts))
	}
	if !strings.Contains(string(result.Artifacts["csv"]), "1,Feb,150") {
		t.Errorf("csv artifact = %q", result.Artifacts["csv"])
	}
}

func TestExecuteOverrides(t *testing.T) {
	path := writeFile(t, "visits.toml", monthsTOML)

	result, err := quietRunner().Execute(context.Background(), Options{
		ChartPath:    path,
		Direction:    "vertical",
		WorkingSpace: 600,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !slices.Equal(result.Ticks.Locations, []float64{100, 300, 500}) {
		t.Errorf("Locations = %v", result.Ticks.Locations)
	}
	// Vertical all-positive values clamp min to zero.
	if result.Ticks.Min != 0 || result.Ticks.Max != 120 {
		t.Errorf("range = (%v, %v), want (0, 120)", result.Ticks.Min, result.Ticks.Max)
	}
	if result.Chart.WorkingSpace != 300 {
		t.Error("overrides should not modify the chart")
	}
}

func TestExecuteStyleOverride(t *testing.T) {
	chartPath := writeFile(t, "visits.toml", monthsTOML)
	stylePath := writeFile(t, "narrow.toml", "tick_space_percentage = 0.5\n")

	result, err := quietRunner().Execute(context.Background(), Options{
		ChartPath: chartPath,
		StylePath: stylePath,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Ticks.TickSpace != 150 || result.Ticks.Margin != 75 {
		t.Errorf("TickSpace = %v, Margin = %v", result.Ticks.TickSpace, result.Ticks.Margin)
	}
}

func TestExecuteStyleOverrideKeepsCallerChart(t *testing.T) {
	c := chart.New(category.Textual)
	c.WorkingSpace = 300
	c.Style.TickSpacePercentage = 1
	_ = c.AddSeries("s", category.Texts("a", "b", "c"), nil)
	stylePath := writeFile(t, "narrow.toml", "tick_space_percentage = 0.5\n")

	result, err := quietRunner().Execute(context.Background(), Options{Chart: c, StylePath: stylePath})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Ticks.TickSpace != 150 {
		t.Errorf("TickSpace = %v, want 150", result.Ticks.TickSpace)
	}
	if c.Style.TickSpacePercentage != 1 {
		t.Errorf("caller chart style changed to %v", c.Style.TickSpacePercentage)
	}
	if result.Chart == c {
		t.Error("result should carry a copy of the chart")
	}
}

func TestExecuteInMemoryChart(t *testing.T) {
	c := chart.New(category.Instant)
	c.WorkingSpace = 200
	_ = c.AddSeries("s", category.List{category.EpochMillis(0), category.EpochMillis(1000)}, nil)

	_, err := quietRunner().Execute(context.Background(), Options{Chart: c})
	if !errors.Is(err, errors.ErrCodeMissingFormatPattern) {
		t.Fatalf("Execute() error = %v, want MISSING_FORMAT_PATTERN", err)
	}
	if !strings.HasPrefix(err.Error(), "calculate: ") {
		t.Errorf("error should name the failing stage: %v", err)
	}
}

func TestExecuteMissingFile(t *testing.T) {
	_, err := quietRunner().Execute(context.Background(), Options{
		ChartPath: filepath.Join(t.TempDir(), "nope.toml"),
	})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Execute() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestExecuteCancelled(t *testing.T) {
	path := writeFile(t, "visits.toml", monthsTOML)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := quietRunner().Execute(ctx, Options{ChartPath: path}); err == nil {
		t.Error("Execute() with cancelled context should fail")
	}
}

func TestCalculateLogs(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(log.NewWithOptions(&buf, log.Options{}))

	c := chart.New(category.Textual)
	_ = c.AddSeries("s", category.Texts("A", "B"), nil)

	if _, err := r.Calculate(context.Background(), c, Options{}); err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "computed ticks") || !strings.Contains(out, "categories=2") {
		t.Errorf("log output = %q", out)
	}
}

func TestCalculateHooks(t *testing.T) {
	rec := &recordingHooks{}
	observability.SetTickHooks(rec)
	t.Cleanup(observability.Reset)

	c := chart.New(category.Textual)
	_ = c.AddSeries("s", category.Texts("A", "B", "C"), nil)
	r := quietRunner()

	ticks, err := r.Calculate(context.Background(), c, Options{})
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if _, err := r.Export(context.Background(), ticks, Options{Formats: []string{"toml"}}); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	want := []string{"start textual 3", "complete textual 3 ok", "export toml"}
	if !slices.Equal(rec.events, want) {
		t.Errorf("hook events = %v, want %v", rec.events, want)
	}
}

type recordingHooks struct {
	observability.NoopTickHooks
	mu     sync.Mutex
	events []string
}

func (h *recordingHooks) OnCalculateStart(_ context.Context, kind string, n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, fmt.Sprintf("start %s %d", kind, n))
}

func (h *recordingHooks) OnCalculateComplete(_ context.Context, kind string, n int, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	status := "ok"
	if err != nil {
		status = "error"
	}
	h.events = append(h.events, fmt.Sprintf("complete %s %d %s", kind, n, status))
}

func (h *recordingHooks) OnExport(_ context.Context, format string, _ int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, "export "+format)
}
