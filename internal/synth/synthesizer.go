package synth

import (
	"strings"
	"sync"
	"time"

	"github.com/toyz/fakegen/internal/errors"
	"github.com/toyz/fakegen/internal/models"
	"github.com/toyz/fakegen/internal/templates"
)

// Target is a language the mock source can be emitted in
type Target string

const (
	TypeScript Target = "typescript"
	Go         Target = "go"
)

// Targets lists the supported source targets
var Targets = []Target{TypeScript, Go}

// ParseTarget resolves a target name, accepting the common short forms
func ParseTarget(name string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "typescript", "ts", "":
		return TypeScript, nil
	case "go", "golang":
		return Go, nil
	default:
		return "", errors.InvalidSetting("target", name, string(TypeScript), string(Go))
	}
}

// Synthesizer generates mock data and mock source from parsed definitions.
// Data generation draws from one Source and is serialized; source emission is
// deterministic and needs no randomness.
type Synthesizer struct {
	mu        sync.Mutex
	source    *Source
	now       func() time.Time
	rules     *RuleSet
	templates *templates.TemplateRegistry
	goPackage string
}

// Option configures a Synthesizer
type Option func(*Synthesizer)

// WithSeed seeds the randomness source; zero picks a random seed
func WithSeed(seed uint64) Option {
	return func(s *Synthesizer) {
		s.source = NewSource(seed)
	}
}

// WithSource uses src for all randomness
func WithSource(src *Source) Option {
	return func(s *Synthesizer) {
		s.source = src
	}
}

// WithClock fixes the time that temporal generators count back from
func WithClock(now func() time.Time) Option {
	return func(s *Synthesizer) {
		s.now = now
	}
}

// WithRules replaces the leaf rule table
func WithRules(rules *RuleSet) Option {
	return func(s *Synthesizer) {
		s.rules = rules
	}
}

// WithGoPackage sets the package clause of emitted Go source
func WithGoPackage(pkg string) Option {
	return func(s *Synthesizer) {
		if pkg != "" {
			s.goPackage = pkg
		}
	}
}

// New creates a Synthesizer. A source without a clock counts back from time.Now.
func New(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		source:    NewSource(0),
		rules:     DefaultRules(),
		templates: templates.DefaultTemplateRegistry,
		goPackage: "mocks",
	}
	for _, opt := range opts {
		opt(s)
	}

	switch {
	case s.now != nil:
		s.source.Now = s.now
	case s.source.Now == nil:
		s.source.Now = time.Now
	}
	return s
}

// Rules returns the leaf rule table in use
func (s *Synthesizer) Rules() *RuleSet {
	return s.rules
}

// Value synthesizes one value for node
func (s *Synthesizer) Value(node *models.PropertyNode) interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Walk[interface{}](node, s.rules, valueEmitter{src: s.source})
}

// Record synthesizes one instance of def with every declared field populated
func (s *Synthesizer) Record(def *models.InterfaceDefinition) *Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record(def)
}

// Records synthesizes count independent instances; count below 1 yields one
func (s *Synthesizer) Records(def *models.InterfaceDefinition, count int) []*Record {
	if count < 1 {
		count = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Record, count)
	for i := range out {
		out[i] = s.record(def)
	}
	return out
}

// Synthesize returns a single *Record when count is 1 (or less) and a
// []*Record of exactly count instances otherwise.
func (s *Synthesizer) Synthesize(def *models.InterfaceDefinition, count int) interface{} {
	if count <= 1 {
		return s.Record(def)
	}
	return s.Records(def, count)
}

func (s *Synthesizer) record(def *models.InterfaceDefinition) *Record {
	e := valueEmitter{src: s.source}
	return e.Object(nil, Fields[interface{}](def.Properties, s.rules, e)).(*Record)
}

// EmitMockSource renders a restated declaration and a mock factory for def in
// the target language. Every declared field appears in the factory.
func (s *Synthesizer) EmitMockSource(def *models.InterfaceDefinition, target Target) (string, error) {
	switch target {
	case TypeScript, "":
		return s.emitTypeScript(def)
	case Go:
		return s.emitGo(def)
	default:
		return "", errors.InvalidSetting("target", target, string(TypeScript), string(Go))
	}
}
