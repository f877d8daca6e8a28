package templates

import (
	"bytes"
	"text/template"

	"github.com/toyz/fakegen/internal/errors"
)

// Template names
const (
	TypeScriptMock = "typescript.mock"
	GoMock         = "go.mock"
)

// TemplateRegistry provides a centralized way to access all templates
type TemplateRegistry struct {
	templates map[string]string
}

// NewTemplateRegistry creates a new template registry with all templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerTypeScriptTemplates()
	registry.registerGoTemplates()

	return registry
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	text, exists := tr.templates[name]
	return text, exists
}

// Execute renders the named template with data
func (tr *TemplateRegistry) Execute(name string, data interface{}) (string, error) {
	text, ok := tr.Get(name)
	if !ok {
		return "", errors.New(errors.TemplateErrorCode, "template not found: "+name).
			WithContext("template", name)
	}

	tmpl, err := template.New(name).Funcs(funcMap).Parse(text)
	if err != nil {
		return "", errors.WrapTemplateError(name, "parse", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.WrapTemplateError(name, "execute", err)
	}
	return buf.String(), nil
}

var funcMap = template.FuncMap{
	"tsKey":  TSPropertyKey,
	"indent": Indent,
}

// registerTypeScriptTemplates registers the faker.js mock layout
func (tr *TemplateRegistry) registerTypeScriptTemplates() {
	tr.templates[TypeScriptMock] = `import { faker } from '@faker-js/faker';

{{if eq .Kind "type"}}export type {{.Name}} = {
{{else}}export interface {{.Name}} {
{{end}}{{range .Fields}}  {{tsKey .Name}}{{if .Optional}}?{{end}}: {{indent 1 .Type}};
{{end}}}{{if eq .Kind "type"}};{{end}}

/**
 * Generates mock {{.Name}} data.
 * @param count number of records, defaults to 1
 * @returns one record when count is 1, otherwise an array of records
 */
export function generate{{.Name}}Mock(count: number = 1): {{.Name}} | {{.Name}}[] {
  const generateSingle = (): {{.Name}} => {
    return {
{{range .Fields}}      {{tsKey .Name}}: {{indent 3 .Value}},
{{end}}    };
  };

  if (count <= 1) {
    return generateSingle();
  }

  return Array.from({ length: count }, () => generateSingle());
}
`
}

// registerGoTemplates registers the gofakeit mock layout
func (tr *TemplateRegistry) registerGoTemplates() {
	tr.templates[GoMock] = `// Code generated by fakegen. DO NOT EDIT.

package {{.Package}}

import (
{{if .UsesTime}}	"time"

{{end}}	"github.com/brianvoe/gofakeit/v7"
)

// {{.Name}} mirrors the {{.Name}} {{.Kind}} definition
type {{.Name}} struct {
{{range .Fields}}	{{.GoName}} {{.Type}} ` + "`" + `json:"{{.Name}}{{if .Optional}},omitempty{{end}}"` + "`" + `
{{end}}}

// Generate{{.Name}}Mock returns count mock {{.Name}} values drawn from f
func Generate{{.Name}}Mock(f *gofakeit.Faker, count int) []{{.Name}} {
	if count < 1 {
		count = 1
	}
	out := make([]{{.Name}}, count)
	for i := range out {
		out[i] = {{.Name}}{
{{range .Fields}}			{{.GoName}}: {{.Value}},
{{end}}		}
	}
	return out
}
`
}

// DefaultTemplateRegistry is the registry used by the source emitters
var DefaultTemplateRegistry = NewTemplateRegistry()
