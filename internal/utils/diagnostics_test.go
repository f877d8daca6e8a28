package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosticLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   DiagnosticLevel
		want    []string
		notWant []string
	}{
		{
			name:    "quiet shows only errors",
			level:   DiagnosticError,
			want:    []string{"[ERROR] boom"},
			notWant: []string{"[WARN]", "[INFO]", "[VERBOSE]"},
		},
		{
			name:    "info hides verbose",
			level:   DiagnosticInfo,
			want:    []string{"[ERROR] boom", "[WARN] careful", "[INFO] hello"},
			notWant: []string{"[VERBOSE]", "[DEBUG]"},
		},
		{
			name:  "verbose",
			level: DiagnosticVerbose,
			want:  []string{"[INFO] hello", "[VERBOSE] details"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			d := NewDiagnosticSystem(tt.level).WithWriter(&buf)

			d.Error("boom")
			d.Warn("careful")
			d.Info("hello")
			d.Verbose("details")
			d.Debug("internals")

			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, buf.String(), w)
			}
		})
	}
}

func TestDiagnosticSummaryAndList(t *testing.T) {
	var buf bytes.Buffer
	d := NewDiagnosticSystem(DiagnosticInfo).WithWriter(&buf)

	d.Section("Skipped fields")
	d.Indent()
	d.List("%s: %s", "tags", "malformed")
	d.Unindent()
	d.Unindent()
	d.Summary("Done", Stat{"records", 3}, Stat{"target", "go"})

	assert.Equal(t, "\nSkipped fields:\n  - tags: malformed\n\nDone\n   records: 3\n   target: go\n", buf.String())
}

func TestSilentDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	d := NewDiagnosticSystem(DiagnosticSilent).WithWriter(&buf)

	d.Error("boom")
	d.Header("hi")
	d.Done("ok")

	assert.Empty(t, buf.String())
}
