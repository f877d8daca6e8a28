package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/toyz/fakegen/internal/errors"
	"github.com/toyz/fakegen/internal/models"
)

var (
	// fieldStart matches text that begins a new `name:` or `name?:` declaration
	fieldStart = regexp.MustCompile(`^\s*(readonly\s+)?([A-Za-z_$][\w$]*|'[^']*'|"[^"]*"|\d+)\s*\??\s*:`)
	// openEnded matches type text that must continue on the next line
	openEnded = regexp.MustCompile(`(\||&|=>|:|<|,)\s*$`)
	// continuation matches a line that carries on the type of the previous one
	continuation = regexp.MustCompile(`^\s*(\||&|=>|\.|\[|<|\{)`)
)

// Parser turns definition text into an InterfaceDefinition.
// A Parser holds no per-call state and may be shared between goroutines.
type Parser struct {
	signatures *participle.Parser[fieldSignature]
}

// NewParser creates a new definition parser
func NewParser() *Parser {
	return &Parser{signatures: newSignatureParser()}
}

var defaultParser = NewParser()

// Parse parses definition text with the package parser
func Parse(text string) (*models.InterfaceDefinition, error) {
	return defaultParser.Parse(text)
}

// Parse parses one definition. It fails with a *errors.DefinitionError when no
// type name or no field body can be found; malformed fields are skipped and
// listed in the result's Diagnostics.
func (p *Parser) Parse(text string) (*models.InterfaceDefinition, error) {
	return p.ParseSource("", text)
}

// ParseSource parses one definition read from filename, which is only used in error locations
func (p *Parser) ParseSource(filename, text string) (*models.InterfaceDefinition, error) {
	cleaned := stripComments(text)

	h, ok := findHeader(cleaned)
	if !ok {
		err := errors.NewNameNotFoundError(strings.TrimSpace(normalize(cleaned)))
		err.Loc.File = filename
		return nil, err
	}

	body, err := extractBody(cleaned, h)
	if err != nil {
		if defErr, ok := err.(*errors.DefinitionError); ok {
			defErr.Loc.File = filename
		}
		return nil, err
	}

	s := &state{signatures: p.signatures}
	def := &models.InterfaceDefinition{
		Name:       h.name,
		Kind:       h.kind,
		Properties: s.fields(normalize(body), ""),
	}
	def.Diagnostics = s.diagnostics
	return def, nil
}

// state carries the diagnostics of a single parse call
type state struct {
	signatures  *participle.Parser[fieldSignature]
	diagnostics []models.Diagnostic
}

// fields parses a brace body into its ordered property list
func (s *state) fields(body, path string) []*models.PropertyNode {
	props := make([]*models.PropertyNode, 0)
	seen := make(map[string]bool)

	for _, chunk := range splitFields(body) {
		sig, err := parseSignature(s.signatures, chunk)
		if err != nil {
			s.skip(path, chunk, fmt.Sprintf("not a 'name: type' declaration: %v", err))
			continue
		}
		if seen[sig.name] {
			s.skip(path, chunk, fmt.Sprintf("duplicate field '%s'", sig.name))
			continue
		}
		seen[sig.name] = true

		node := s.classify(sig.name, sig.typeText, path)
		node.IsOptional = sig.optional
		props = append(props, node)
	}
	return props
}

func (s *state) skip(path, chunk, reason string) {
	s.diagnostics = append(s.diagnostics, models.Diagnostic{
		Path:   path,
		Chunk:  chunk,
		Reason: reason,
	})
}

// splitFields cuts a body into field chunks at depth-zero separators. A newline
// separates too when the text before it is a complete declaration and the next
// line does not continue its type.
func splitFields(body string) []string {
	var chunks []string
	start := 0
	cut := func(end int) {
		if chunk := strings.TrimSpace(body[start:end]); chunk != "" {
			chunks = append(chunks, chunk)
		}
		start = end + 1
	}

	walkDepth(body, allPairs, func(i, depth int) bool {
		if depth != 0 {
			return true
		}
		switch body[i] {
		case ';', ',':
			cut(i)
		case '\n':
			if !continuation.MatchString(body[i+1:]) && isCompleteField(body[start:i]) {
				cut(i)
			}
		}
		return true
	})
	if start < len(body) {
		cut(len(body))
	}
	return chunks
}

func isCompleteField(text string) bool {
	loc := fieldStart.FindStringIndex(text)
	if loc == nil {
		return false
	}
	rest := strings.TrimSpace(text[loc[1]:])
	return rest != "" && !openEnded.MatchString(rest)
}
