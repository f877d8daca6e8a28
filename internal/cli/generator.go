package cli

import (
	"io"
	"time"

	crdb "github.com/cockroachdb/errors"

	"github.com/toyz/fakegen/internal/config"
	"github.com/toyz/fakegen/internal/synth"
	"github.com/toyz/fakegen/internal/utils"
	"github.com/toyz/fakegen/pkg/fakegen"
)

// Generator coordinates one CLI generation run
type Generator struct {
	cfg         *config.Config
	synth       *synth.Synthesizer
	target      synth.Target
	diagnostics *utils.DiagnosticSystem
	reporter    *DiagnosticReporter
	summary     GenerationSummary
}

// GenerationSummary contains information about the generation process
type GenerationSummary struct {
	Definition string
	Fields     int
	Skipped    int
	Records    int
	Target     synth.Target
	Output     string
	Elapsed    time.Duration
}

// NewGenerator creates a generator for cfg
func NewGenerator(cfg *config.Config, diagnostics *utils.DiagnosticSystem, reporter *DiagnosticReporter) (*Generator, error) {
	target, err := synth.ParseTarget(cfg.Target)
	if err != nil {
		return nil, err
	}

	return &Generator{
		cfg:         cfg,
		synth:       synth.New(synth.WithSeed(cfg.Seed), synth.WithGoPackage(cfg.GoPackage)),
		target:      target,
		diagnostics: diagnostics,
		reporter:    reporter,
	}, nil
}

// Run reads the definition, generates what the mode asks for and writes it
func (g *Generator) Run(opts *Options, stdin io.Reader, stdout io.Writer) error {
	start := time.Now()

	text, name, err := readDefinition(opts, stdin)
	if err != nil {
		return err
	}
	g.diagnostics.Verbose("Read %d bytes from %s", len(text), describeInput(name))

	res, err := fakegen.Generate(g.synth, fakegen.Request{
		Definition: text,
		Filename:   name,
		Count:      g.cfg.Count,
		Data:       g.cfg.Mode != config.ModeSource,
		Source:     g.cfg.Mode != config.ModeData,
		Target:     g.target,
	})
	if err != nil {
		return err
	}

	def := res.Definition
	g.diagnostics.Info("Parsed %s %s with %d fields", def.Kind, def.Name, len(def.Properties))
	if def.HasDiagnostics() {
		g.reporter.ReportSkipped(def)
	}

	out, err := g.render(res)
	if err != nil {
		return err
	}
	if err := writeOutput(opts.Output, stdout, out); err != nil {
		return err
	}
	if opts.Output != "" {
		g.diagnostics.Success("Wrote %s", opts.Output)
	}

	g.summary = GenerationSummary{
		Definition: def.Name,
		Fields:     len(def.Properties),
		Skipped:    len(def.Diagnostics),
		Target:     g.target,
		Output:     opts.Output,
		Elapsed:    time.Since(start),
	}
	if res.Data != nil {
		g.summary.Records = max(g.cfg.Count, 1)
	}
	return nil
}

func (g *Generator) render(res *fakegen.Result) ([]byte, error) {
	switch g.cfg.Mode {
	case config.ModeSource:
		return []byte(res.Source), nil
	case config.ModeBoth:
		doc, err := res.Markdown(g.target)
		if err != nil {
			return nil, crdb.Wrap(err, "failed to render result")
		}
		return []byte(doc), nil
	default:
		return encode(res.Data, g.cfg.Format)
	}
}

// GetSummary returns the generation summary
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

func describeInput(name string) string {
	if name == "" {
		return "--interface"
	}
	return name
}
