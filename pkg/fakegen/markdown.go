package fakegen

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Markdown renders the result as a document with the mock source and the
// example data in fenced blocks, the layout returned by the MCP tool
func (r *Result) Markdown(target Target) (string, error) {
	var b strings.Builder

	if r.Source != "" {
		lang := "typescript"
		if target == Go {
			lang = "go"
		}
		fmt.Fprintf(&b, "## Mock function\n\n```%s\n%s\n```\n", lang, strings.TrimRight(r.Source, "\n"))
	}

	if r.Data != nil {
		data, err := json.MarshalIndent(r.Data, "", "  ")
		if err != nil {
			return "", err
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## Example data\n\n```json\n%s\n```\n", data)
	}

	return b.String(), nil
}
