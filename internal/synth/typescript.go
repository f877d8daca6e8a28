package synth

import (
	"strings"

	"github.com/toyz/fakegen/internal/models"
	"github.com/toyz/fakegen/internal/templates"
)

// tsValueEmitter renders faker.js expressions. Multi-line output is indented
// relative to its first line.
type tsValueEmitter struct{}

func (tsValueEmitter) Array(_ *models.PropertyNode, element func() string) string {
	return "Array.from({ length: faker.number.int({ min: 1, max: 5 }) }, " + arrow(element()) + ")"
}

func (tsValueEmitter) Union(node *models.PropertyNode, variants []func() string) string {
	exprs := make([]string, len(variants))
	for i, variant := range variants {
		exprs[i] = variant()
	}
	if allLiteral(node) {
		return "faker.helpers.arrayElement([" + strings.Join(exprs, ", ") + "])"
	}
	for i, expr := range exprs {
		exprs[i] = arrow(expr)
	}
	return "faker.helpers.arrayElement([" + strings.Join(exprs, ", ") + "])()"
}

func (tsValueEmitter) Object(_ *models.PropertyNode, fields []Field[string]) string {
	var b strings.Builder
	b.WriteString("{\n")
	for _, f := range fields {
		b.WriteString("  " + templates.TSPropertyKey(f.Node.Name) + ": " + templates.Indent(1, f.Build()) + ",\n")
	}
	b.WriteString("}")
	return b.String()
}

func (tsValueEmitter) Enum(_ *models.PropertyNode, values []string) string {
	return "faker.helpers.arrayElement([" + quoteAll(values, ", ") + "])"
}

func (tsValueEmitter) Literal(node *models.PropertyNode) string {
	return node.DeclaredType
}

func (tsValueEmitter) Leaf(_ *models.PropertyNode, gen Generator) string {
	return gen.TypeScript
}

// tsTypeEmitter restates the declared type from the tree
type tsTypeEmitter struct{}

func (tsTypeEmitter) Array(node *models.PropertyNode, element func() string) string {
	elem := node.Element()
	if !elem.IsArray && (elem.IsUnion || elem.IsEnum) {
		return "(" + element() + ")[]"
	}
	return element() + "[]"
}

func (tsTypeEmitter) Union(_ *models.PropertyNode, variants []func() string) string {
	types := make([]string, len(variants))
	for i, variant := range variants {
		types[i] = variant()
	}
	return strings.Join(types, " | ")
}

func (tsTypeEmitter) Object(_ *models.PropertyNode, fields []Field[string]) string {
	var b strings.Builder
	b.WriteString("{\n")
	for _, f := range fields {
		optional := ""
		if f.Node.IsOptional {
			optional = "?"
		}
		b.WriteString("  " + templates.TSPropertyKey(f.Node.Name) + optional + ": " + templates.Indent(1, f.Build()) + ";\n")
	}
	b.WriteString("}")
	return b.String()
}

func (tsTypeEmitter) Enum(_ *models.PropertyNode, values []string) string {
	if len(values) == 0 {
		return "string"
	}
	return quoteAll(values, " | ")
}

func (tsTypeEmitter) Literal(node *models.PropertyNode) string {
	return node.DeclaredType
}

func (tsTypeEmitter) Leaf(node *models.PropertyNode, gen Generator) string {
	if models.IsPrimitiveTypeName(node.DeclaredType) {
		return node.DeclaredType
	}
	return gen.TSType
}

// arrow wraps expr in a zero-argument arrow function; object literals need parentheses
func arrow(expr string) string {
	if strings.HasPrefix(expr, "{") {
		return "() => (" + expr + ")"
	}
	return "() => " + expr
}

func allLiteral(node *models.PropertyNode) bool {
	for _, variant := range node.Variants() {
		if variant.IsArray || !variant.IsLiteral {
			return false
		}
	}
	return true
}

func quoteAll(values []string, sep string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = models.QuoteLiteral(v)
	}
	return strings.Join(quoted, sep)
}

// emitTypeScript renders the faker.js mock module for def
func (s *Synthesizer) emitTypeScript(def *models.InterfaceDefinition) (string, error) {
	data := templates.MockSource{
		Name: def.Name,
		Kind: def.Kind,
	}
	for _, prop := range def.Properties {
		data.Fields = append(data.Fields, templates.MockField{
			Name:     prop.Name,
			Optional: prop.IsOptional,
			Type:     Walk[string](prop, s.rules, tsTypeEmitter{}),
			Value:    Walk[string](prop, s.rules, tsValueEmitter{}),
		})
	}
	return s.templates.Execute(templates.TypeScriptMock, data)
}
