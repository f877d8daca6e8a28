package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	crdb "github.com/cockroachdb/errors"
	"github.com/fatih/color"

	"github.com/toyz/fakegen/internal/errors"
	"github.com/toyz/fakegen/internal/models"
)

// DiagnosticReporter provides user-friendly error reporting and diagnostics
type DiagnosticReporter struct {
	out     io.Writer
	verbose bool
}

// NewDiagnosticReporter creates a new diagnostic reporter writing to out
func NewDiagnosticReporter(out io.Writer, verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		out:     out,
		verbose: verbose,
	}
}

// ReportSkipped warns about every field chunk the parser skipped
func (r *DiagnosticReporter) ReportSkipped(def *models.InterfaceDefinition) {
	warn := color.New(color.FgYellow, color.Bold)
	for _, d := range def.Diagnostics {
		warn.Fprint(r.out, "! ")
		where := def.Name
		if d.Path != "" {
			where += "." + d.Path
		}
		fmt.Fprintf(r.out, "skipped %q in %s: %s\n", d.Chunk, where, d.Reason)
	}
}

// ReportError provides comprehensive error reporting with user-friendly output
func (r *DiagnosticReporter) ReportError(err error) {
	red := color.New(color.FgRed, color.Bold)

	var fe errors.FakegenError
	if !crdb.As(err, &fe) {
		red.Fprint(r.out, "ERROR: ")
		fmt.Fprintf(r.out, "%s\n", err.Error())
		r.printSuggestions(crdb.GetAllHints(err))
		return
	}

	red.Fprint(r.out, "ERROR: ")
	fmt.Fprintf(r.out, "%s\n", errorTitle(fe.ErrorCode()))
	fmt.Fprintf(r.out, "Message: %s\n", err.Error())

	var defErr *errors.DefinitionError
	if crdb.As(err, &defErr) && defErr.Snippet != "" {
		fmt.Fprintf(r.out, "Input: %s\n", defErr.Snippet)
	}

	if r.verbose && len(fe.Context()) > 0 {
		r.printContext(fe.Context())
	}

	hints := append([]string{}, fe.Suggestions()...)
	r.printSuggestions(append(hints, crdb.GetAllHints(err)...))

	if r.verbose {
		r.printChain(err)
	}
}

func errorTitle(code errors.ErrorCode) string {
	switch code {
	case errors.NameNotFoundCode:
		return "Definition Name Not Found"
	case errors.BodyNotFoundCode:
		return "Definition Body Not Found"
	case errors.GenerationErrorCode, errors.TemplateErrorCode:
		return "Mock Generation Failed"
	case errors.InputErrorCode:
		return "Invalid Input"
	case errors.ConfigurationErrorCode:
		return "Invalid Configuration"
	default:
		return "Unknown Error"
	}
}

func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	keys := make([]string, 0, len(context))
	for k := range context {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintf(r.out, "Context:\n")
	for _, k := range keys {
		fmt.Fprintf(r.out, "   %s: %v\n", formatContextKey(k), context[k])
	}
}

// formatContextKey converts snake_case keys to Title Case
func formatContextKey(key string) string {
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}

func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		return
	}

	seen := make(map[string]bool, len(suggestions))
	fmt.Fprintf(r.out, "Suggestions:\n")
	n := 0
	for _, s := range suggestions {
		if seen[s] {
			continue
		}
		seen[s] = true
		n++
		fmt.Fprintf(r.out, "   %d. %s\n", n, s)
	}
}

func (r *DiagnosticReporter) printChain(err error) {
	fmt.Fprintf(r.out, "Error Chain:\n")
	for level := 1; err != nil; level++ {
		fmt.Fprintf(r.out, "   %d. %T\n", level, err)
		err = crdb.UnwrapOnce(err)
	}
}
