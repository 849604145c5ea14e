// Package cli implements the chartaxis command-line interface.
//
// This package provides commands for computing categorical axis ticks from
// chart files, adjusting axis ranges, previewing tick placement in the
// terminal and serving the calculator over HTTP. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - ticks: Compute tick labels and locations for a chart file
//   - range: Apply the axis range adjustment to a min/max pair
//   - preview: Interactive terminal ruler showing tick placement
//   - serve: HTTP API for tick computation
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/chartaxis/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartaxis/pkg/errors"
)

// newLogger returns the CLI logger: timestamps as "15:04:05.00" and messages
// below level dropped.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one command step and reports it when the step finishes.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time rounded to the millisecond, e.g.
// "Computed 12 ticks (3ms)". Extra keyvals are attached as structured
// fields.
func (p *progress) done(msg string, keyvals ...any) {
	p.logger.Info(fmt.Sprintf("%s (%s)", msg, p.elapsed()), keyvals...)
}

// fail logs the step as failed with its error code when it has one.
func (p *progress) fail(msg string, err error) {
	keyvals := []any{"err", errors.UserMessage(err)}
	if code := errors.GetCode(err); code != "" {
		keyvals = append(keyvals, "code", code)
	}
	p.logger.Error(fmt.Sprintf("%s (%s)", msg, p.elapsed()), keyvals...)
}

func (p *progress) elapsed() time.Duration {
	return time.Since(p.start).Round(time.Millisecond)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() when commands run without the root command's setup.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
