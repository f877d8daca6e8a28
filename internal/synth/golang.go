package synth

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/toyz/fakegen/internal/models"
	"github.com/toyz/fakegen/internal/templates"
	"github.com/toyz/fakegen/internal/utils"
)

// goTypeEmitter restates the tree as Go types
type goTypeEmitter struct{}

func (goTypeEmitter) Array(_ *models.PropertyNode, element func() string) string {
	return "[]" + element()
}

func (goTypeEmitter) Union(_ *models.PropertyNode, variants []func() string) string {
	common := ""
	for i, variant := range variants {
		t := variant()
		if i == 0 {
			common = t
		} else if t != common {
			return "any"
		}
	}
	if common == "" {
		return "any"
	}
	return common
}

func (goTypeEmitter) Object(_ *models.PropertyNode, fields []Field[string]) string {
	names := goFieldNames(fields)
	var b strings.Builder
	b.WriteString("struct {\n")
	for i, f := range fields {
		fmt.Fprintf(&b, "%s %s `json:\"%s\"`\n", names[i], f.Build(), jsonTag(f.Node))
	}
	b.WriteString("}")
	return b.String()
}

func (goTypeEmitter) Enum(_ *models.PropertyNode, _ []string) string {
	return "string"
}

func (goTypeEmitter) Literal(node *models.PropertyNode) string {
	switch node.LiteralValue().(type) {
	case string:
		return "string"
	case int64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	default:
		return "any"
	}
}

func (goTypeEmitter) Leaf(_ *models.PropertyNode, gen Generator) string {
	return gen.GoType
}

// goValueEmitter renders gofakeit expressions over a *gofakeit.Faker named f
type goValueEmitter struct {
	rules *RuleSet
}

func (g goValueEmitter) typeOf(node *models.PropertyNode) string {
	return Walk[string](node, g.rules, goTypeEmitter{})
}

func (g goValueEmitter) Array(node *models.PropertyNode, element func() string) string {
	elemType := g.typeOf(node.Element())
	return fmt.Sprintf("func() []%[1]s {\nout := make([]%[1]s, f.IntRange(1, 5))\nfor i := range out {\nout[i] = %[2]s\n}\nreturn out\n}()",
		elemType, element())
}

func (g goValueEmitter) Union(node *models.PropertyNode, variants []func() string) string {
	typ := g.typeOf(node)
	last := len(variants) - 1

	exprs := make([]string, len(variants))
	for i, variant := range variants {
		exprs[i] = variant()
	}
	if allLiteral(node) {
		return fmt.Sprintf("[]%s{%s}[f.IntRange(0, %d)]", typ, strings.Join(exprs, ", "), last)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[]func() %s{\n", typ)
	for _, expr := range exprs {
		fmt.Fprintf(&b, "func() %s { return %s },\n", typ, expr)
	}
	fmt.Fprintf(&b, "}[f.IntRange(0, %d)]()", last)
	return b.String()
}

func (g goValueEmitter) Object(node *models.PropertyNode, fields []Field[string]) string {
	names := goFieldNames(fields)
	var b strings.Builder
	b.WriteString(g.typeOf(node) + "{\n")
	for i, f := range fields {
		fmt.Fprintf(&b, "%s: %s,\n", names[i], f.Build())
	}
	b.WriteString("}")
	return b.String()
}

func (g goValueEmitter) Enum(_ *models.PropertyNode, values []string) string {
	if len(values) == 0 {
		return `""`
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return fmt.Sprintf("[]string{%s}[f.IntRange(0, %d)]", strings.Join(quoted, ", "), len(values)-1)
}

func (g goValueEmitter) Literal(node *models.PropertyNode) string {
	switch v := node.LiteralValue().(type) {
	case string:
		return strconv.Quote(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return "nil"
	}
}

func (g goValueEmitter) Leaf(_ *models.PropertyNode, gen Generator) string {
	return gen.Go
}

// goTimeEmitter reports whether the Go rendering of a tree refers to package time
type goTimeEmitter struct{}

func (goTimeEmitter) Array(_ *models.PropertyNode, element func() bool) bool {
	return element()
}

func (goTimeEmitter) Union(_ *models.PropertyNode, variants []func() bool) bool {
	uses := false
	for _, variant := range variants {
		uses = variant() || uses
	}
	return uses
}

func (goTimeEmitter) Object(_ *models.PropertyNode, fields []Field[bool]) bool {
	uses := false
	for _, f := range fields {
		uses = f.Build() || uses
	}
	return uses
}

func (goTimeEmitter) Enum(_ *models.PropertyNode, _ []string) bool { return false }

func (goTimeEmitter) Literal(_ *models.PropertyNode) bool { return false }

func (goTimeEmitter) Leaf(_ *models.PropertyNode, gen Generator) bool {
	return gen.GoTime
}

// goFieldNames returns the struct field names for fields, in order
func goFieldNames[T any](fields []Field[T]) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Node.Name
	}
	return templates.UniqueExportedNames(names)
}

func jsonTag(node *models.PropertyNode) string {
	if node.IsOptional {
		return node.Name + ",omitempty"
	}
	return node.Name
}

// emitGo renders a gofmt-formatted Go file with a struct and a gofakeit factory for def
func (s *Synthesizer) emitGo(def *models.InterfaceDefinition) (string, error) {
	values := goValueEmitter{rules: s.rules}
	data := templates.MockSource{
		Name:     templates.ExportedName(def.Name),
		Kind:     def.Kind,
		Package:  s.goPackage,
		UsesTime: goTimeEmitter{}.Object(nil, Fields[bool](def.Properties, s.rules, goTimeEmitter{})),
	}

	fields := Fields[string](def.Properties, s.rules, values)
	names := goFieldNames(fields)
	for i, prop := range def.Properties {
		data.Fields = append(data.Fields, templates.MockField{
			Name:     prop.Name,
			GoName:   names[i],
			Optional: prop.IsOptional,
			Type:     values.typeOf(prop),
			Value:    fields[i].Build(),
		})
	}

	src, err := s.templates.Execute(templates.GoMock, data)
	if err != nil {
		return "", err
	}
	return utils.FormatGoSource(strings.ToLower(data.Name)+"_mock.go", src)
}
