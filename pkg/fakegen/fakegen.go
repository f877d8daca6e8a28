// Package fakegen turns TypeScript-style interface definitions into mock data
// and into mock factory source code.
//
//	def, err := fakegen.Parse(`interface User { id: string; email: string }`)
//	users := fakegen.NewSynthesizer(fakegen.WithSeed(42)).Records(def, 10)
package fakegen

import (
	"github.com/toyz/fakegen/internal/errors"
	"github.com/toyz/fakegen/internal/models"
	"github.com/toyz/fakegen/internal/parser"
	"github.com/toyz/fakegen/internal/synth"
)

type (
	// InterfaceDefinition is the parsed form of one definition
	InterfaceDefinition = models.InterfaceDefinition
	// PropertyNode is one field of a definition
	PropertyNode = models.PropertyNode
	// Diagnostic records a field chunk the parser skipped
	Diagnostic = models.Diagnostic
	// DefinitionError is returned when no definition can be located at all
	DefinitionError = errors.DefinitionError

	// Record is one synthesized instance with fields in declaration order
	Record = synth.Record
	// Synthesizer generates mock data and mock source
	Synthesizer = synth.Synthesizer
	// Option configures a Synthesizer
	Option = synth.Option
	// Target is a mock source language
	Target = synth.Target
	// RuleSet is the leaf generator rule table
	RuleSet = synth.RuleSet
	// Rule maps field names or declared types to a Generator
	Rule = synth.Rule
	// Generator produces one kind of leaf value
	Generator = synth.Generator
	// Source is the randomness and clock used for data generation
	Source = synth.Source
)

const (
	TypeScript = synth.TypeScript
	Go         = synth.Go
)

var (
	ErrNameNotFound = errors.ErrNameNotFound
	ErrBodyNotFound = errors.ErrBodyNotFound
)

var (
	WithSeed      = synth.WithSeed
	WithSource    = synth.WithSource
	WithClock     = synth.WithClock
	WithRules     = synth.WithRules
	WithGoPackage = synth.WithGoPackage
	DefaultRules  = synth.DefaultRules
	NewSource     = synth.NewSource
	ParseTarget   = synth.ParseTarget
)

// Parse parses one interface or object type alias definition
func Parse(text string) (*InterfaceDefinition, error) {
	return parser.Parse(text)
}

// ParseFile parses a definition read from filename; error locations carry the name
func ParseFile(filename, text string) (*InterfaceDefinition, error) {
	return parser.NewParser().ParseSource(filename, text)
}

// NewSynthesizer creates a Synthesizer
func NewSynthesizer(opts ...Option) *Synthesizer {
	return synth.New(opts...)
}

// Synthesize parses text and returns a single *Record for count 1 and a
// []*Record otherwise.
func Synthesize(text string, count int, opts ...Option) (interface{}, error) {
	def, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return synth.New(opts...).Synthesize(def, count), nil
}

// EmitMockSource parses text and renders the mock factory in target
func EmitMockSource(text string, target Target, opts ...Option) (string, error) {
	def, err := Parse(text)
	if err != nil {
		return "", err
	}
	return synth.New(opts...).EmitMockSource(def, target)
}
