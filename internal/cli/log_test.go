package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartaxis/pkg/errors"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("Computed 4 ticks") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("adjusted range") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("adjusted range") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if gotLog := buf.Len() > 0; gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestNewLoggerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, log.InfoLevel).Info("Computed 4 ticks")

	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).MatchString(buf.String()) {
		t.Errorf("output %q does not start with a 15:04:05.00 timestamp", buf.String())
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("Computed 4 ticks", "chart", "quarterly.toml")

	out := buf.String()
	if !regexp.MustCompile(`Computed 4 ticks \(\d+m?s\)`).MatchString(out) {
		t.Errorf("output %q missing message with elapsed time", out)
	}
	if !strings.Contains(out, "chart=quarterly.toml") {
		t.Errorf("output %q missing chart field", out)
	}
}

func TestProgressFail(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.fail("Tick computation failed", errors.New(errors.ErrCodeMissingFormatPattern, "date pattern is empty"))

	out := buf.String()
	for _, want := range []string{"Tick computation failed", "date pattern is empty", "code=MISSING_FORMAT_PATTERN"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	if got := loggerFromContext(withLogger(context.Background(), logger)); got != logger {
		t.Error("loggerFromContext should return the attached logger")
	}
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}
}

func TestRunTicksLogsProgress(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	ctx := withLogger(context.Background(), c.Logger)

	if err := c.runTicks(ctx, writeChart(t, quartersTOML), ticksOpts{formats: "json"}, &bytes.Buffer{}); err != nil {
		t.Fatalf("runTicks() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Computed 4 ticks") {
		t.Errorf("log %q missing tick count", buf.String())
	}
}
