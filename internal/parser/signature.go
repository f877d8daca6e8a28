package parser

import (
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/fakegen/internal/models"
)

// fieldSignature is the `name?: type` shape of one field declaration
type fieldSignature struct {
	Name     string    `parser:"@(Ident | String | Number)"`
	Optional bool      `parser:"@'?'?"`
	Type     *typeText `parser:"':' @@"`
}

// typeText captures everything after the colon; only its starting offset is used
type typeText struct {
	Pos    lexer.Position
	Tokens []string `parser:"@(Ident | String | Number | Punct)+"`
}

var readonlyModifier = regexp.MustCompile(`^readonly\s+([A-Za-z_$'"])`)

// newSignatureParser builds the participle grammar for field declarations
func newSignatureParser() *participle.Parser[fieldSignature] {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "String", Pattern: `'(\\.|[^'\\])*'|"(\\.|[^"\\])*"|` + "`[^`]*`"},
		{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*`},
		{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?`},
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "Punct", Pattern: `[^\sa-zA-Z0-9_$]`},
	})

	return participle.MustBuild[fieldSignature](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
	)
}

// signature is a successfully matched field declaration
type signature struct {
	name     string
	optional bool
	typeText string
}

// parseSignature matches one field chunk against the declaration grammar
func parseSignature(p *participle.Parser[fieldSignature], chunk string) (signature, error) {
	chunk = readonlyModifier.ReplaceAllString(strings.TrimSpace(chunk), "$1")

	sig, err := p.ParseString("", chunk)
	if err != nil {
		return signature{}, err
	}

	return signature{
		name:     models.UnquoteLiteral(sig.Name),
		optional: sig.Optional,
		typeText: strings.TrimSpace(chunk[sig.Type.Pos.Offset:]),
	}, nil
}
