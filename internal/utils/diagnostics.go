package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

// DiagnosticLevel represents the level of diagnostic output
type DiagnosticLevel int

const (
	DiagnosticSilent DiagnosticLevel = iota
	DiagnosticError
	DiagnosticWarn
	DiagnosticInfo
	DiagnosticVerbose
	DiagnosticDebug
)

// DiagnosticSystem provides structured, user-friendly output.
// Results go to stdout; all diagnostics go to the error writer so that
// generated data can be piped.
type DiagnosticSystem struct {
	level     DiagnosticLevel
	useColors bool
	showTime  bool
	errorOut  io.Writer
	indent    int
	now       func() time.Time
}

// NewDiagnosticSystem creates a new diagnostic system writing to stderr
func NewDiagnosticSystem(level DiagnosticLevel) *DiagnosticSystem {
	return &DiagnosticSystem{
		level:     level,
		useColors: shouldUseColors(),
		showTime:  level >= DiagnosticVerbose,
		errorOut:  os.Stderr,
		now:       time.Now,
	}
}

// NewQuietDiagnostics creates a diagnostic system that only shows errors
func NewQuietDiagnostics() *DiagnosticSystem {
	return NewDiagnosticSystem(DiagnosticError)
}

// NewVerboseDiagnostics creates a diagnostic system with full output
func NewVerboseDiagnostics() *DiagnosticSystem {
	return NewDiagnosticSystem(DiagnosticVerbose)
}

// WithWriter redirects diagnostics and disables colors and timestamps
func (d *DiagnosticSystem) WithWriter(w io.Writer) *DiagnosticSystem {
	d.errorOut = w
	d.useColors = false
	d.showTime = false
	return d
}

// Level returns the configured level
func (d *DiagnosticSystem) Level() DiagnosticLevel {
	return d.level
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warnColor    = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	verboseColor = color.New(color.FgHiBlack)
	debugColor   = color.New(color.FgMagenta)
	headerColor  = color.New(color.FgCyan)
)

// Error outputs error messages (always shown unless silent)
func (d *DiagnosticSystem) Error(format string, args ...interface{}) {
	if d.level >= DiagnosticError {
		d.writeMessage("ERROR", errorColor, format, args...)
	}
}

// Warn outputs warning messages
func (d *DiagnosticSystem) Warn(format string, args ...interface{}) {
	if d.level >= DiagnosticWarn {
		d.writeMessage("WARN", warnColor, format, args...)
	}
}

// Info outputs informational messages
func (d *DiagnosticSystem) Info(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		d.writeMessage("INFO", infoColor, format, args...)
	}
}

// Success outputs success messages with emphasis
func (d *DiagnosticSystem) Success(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		d.writeMessage("SUCCESS", successColor, format, args...)
	}
}

// Verbose outputs detailed messages (verbose mode only)
func (d *DiagnosticSystem) Verbose(format string, args ...interface{}) {
	if d.level >= DiagnosticVerbose {
		d.writeMessage("VERBOSE", verboseColor, format, args...)
	}
}

// Debug outputs debug messages (highest verbosity)
func (d *DiagnosticSystem) Debug(format string, args ...interface{}) {
	if d.level >= DiagnosticDebug {
		d.writeMessage("DEBUG", debugColor, format, args...)
	}
}

// Header outputs the tool header
func (d *DiagnosticSystem) Header(message string) {
	if d.level >= DiagnosticInfo {
		d.paint(headerColor, "fakegen: %s\n", message)
	}
}

// Section creates a prominent section header
func (d *DiagnosticSystem) Section(title string) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.errorOut, "\n%s:\n", title)
	}
}

// List outputs a bulleted list item
func (d *DiagnosticSystem) List(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.errorOut, "%s- %s\n", d.getIndent(), fmt.Sprintf(format, args...))
	}
}

// Indent increases the indentation level
func (d *DiagnosticSystem) Indent() {
	d.indent++
}

// Unindent decreases the indentation level
func (d *DiagnosticSystem) Unindent() {
	if d.indent > 0 {
		d.indent--
	}
}

// Stat is one line of a Summary
type Stat struct {
	Key   string
	Value interface{}
}

// Summary outputs a final summary with statistics in the given order
func (d *DiagnosticSystem) Summary(title string, stats ...Stat) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.errorOut, "\n%s\n", title)
		for _, s := range stats {
			fmt.Fprintf(d.errorOut, "   %s: %v\n", s.Key, s.Value)
		}
	}
}

// Done outputs the completion message
func (d *DiagnosticSystem) Done(message string) {
	if d.level >= DiagnosticInfo {
		d.paint(successColor, "✓ ")
		fmt.Fprintf(d.errorOut, "%s\n", message)
	}
}

func (d *DiagnosticSystem) writeMessage(level string, c *color.Color, format string, args ...interface{}) {
	var output strings.Builder
	output.WriteString(d.getIndent())

	if d.showTime {
		output.WriteString(d.now().Format("15:04:05 "))
	}

	tag := fmt.Sprintf("[%s]", level)
	if d.useColors {
		tag = c.Sprint(tag)
	}
	output.WriteString(tag)
	output.WriteString(" ")
	output.WriteString(fmt.Sprintf(format, args...))
	output.WriteString("\n")

	fmt.Fprint(d.errorOut, output.String())
}

func (d *DiagnosticSystem) paint(c *color.Color, format string, args ...interface{}) {
	if d.useColors {
		c.Fprintf(d.errorOut, format, args...)
		return
	}
	fmt.Fprintf(d.errorOut, format, args...)
}

func (d *DiagnosticSystem) getIndent() string {
	return strings.Repeat("  ", d.indent)
}

// shouldUseColors determines if colors should be used
func shouldUseColors() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	return !color.NoColor
}
