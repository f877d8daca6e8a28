package parser

import (
	"regexp"
	"strings"

	"github.com/toyz/fakegen/internal/errors"
	"github.com/toyz/fakegen/internal/models"
)

var headerPattern = regexp.MustCompile(`\b(interface|type)\s+([A-Za-z_$][\w$]*)`)

// header is the located introducer of a definition
type header struct {
	kind models.DeclarationKind
	name string
	end  int // offset just past the name and any generic parameter list
}

// stripComments removes block and line comments that sit outside string literals
func stripComments(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	var quote byte
	for i := 0; i < len(text); i++ {
		c := text[i]

		if quote != 0 {
			b.WriteByte(c)
			if c == '\\' && i+1 < len(text) {
				i++
				b.WriteByte(text[i])
			} else if c == quote {
				quote = 0
			}
			continue
		}

		switch {
		case c == '\'' || c == '"' || c == '`':
			quote = c
			b.WriteByte(c)
		case c == '/' && i+1 < len(text) && text[i+1] == '/':
			for i < len(text) && text[i] != '\n' {
				i++
			}
			if i < len(text) {
				b.WriteByte('\n')
			}
		case c == '/' && i+1 < len(text) && text[i+1] == '*':
			end := strings.Index(text[i+2:], "*/")
			if end < 0 {
				return b.String()
			}
			// keep line structure so locations stay meaningful
			b.WriteString(strings.Repeat("\n", strings.Count(text[i:i+2+end], "\n")))
			b.WriteByte(' ')
			i += end + 3
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// normalize trims every line and drops blank ones
func normalize(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// findHeader locates the first `interface Name` or `type Name =` introducer
func findHeader(text string) (header, bool) {
	for _, m := range headerPattern.FindAllStringSubmatchIndex(text, -1) {
		h := header{
			kind: models.DeclarationKind(text[m[2]:m[3]]),
			name: text[m[4]:m[5]],
			end:  m[5],
		}

		rest := strings.TrimLeft(text[h.end:], " \t\n")
		h.end = len(text) - len(rest)
		if strings.HasPrefix(rest, "<") {
			if close := matchClose(text, h.end, allPairs...); close >= 0 {
				h.end = close + 1
				rest = strings.TrimLeft(text[h.end:], " \t\n")
			}
		}

		if h.kind == models.TypeAliasDeclaration {
			if !strings.HasPrefix(rest, "=") {
				continue
			}
			h.end = len(text) - len(rest) + 1
		}
		return h, true
	}
	return header{}, false
}

// extractBody returns the text between the first '{' after the header and its matching '}'
func extractBody(text string, h header) (string, error) {
	open := strings.IndexByte(text[h.end:], '{')
	if open < 0 {
		return "", errors.NewBodyNotFoundError(h.name, errors.LocationOf(text, h.end))
	}
	open += h.end

	close := matchClose(text, open, braces)
	if close < 0 {
		return "", errors.NewBodyNotFoundError(h.name, errors.LocationOf(text, open))
	}
	return text[open+1 : close], nil
}
