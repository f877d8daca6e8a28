package templates

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/toyz/fakegen/internal/models"
)

// MockSource is the data handed to the mock layouts
type MockSource struct {
	Name     string
	Kind     models.DeclarationKind
	Package  string // Go target only
	UsesTime bool   // Go target only
	Fields   []MockField
}

// MockField is one top-level field of a mock layout
type MockField struct {
	Name     string
	GoName   string // Go target only, unique within the struct
	Optional bool
	Type     string // restated type in the target language
	Value    string // generator expression in the target language
}

var tsIdentifier = regexp.MustCompile(`^[A-Za-z_$][\w$]*$`)

// TSPropertyKey returns name as a TypeScript property key, quoting it when needed
func TSPropertyKey(name string) string {
	if tsIdentifier.MatchString(name) {
		return name
	}
	return models.QuoteLiteral(name)
}

var commonInitialisms = map[string]bool{
	"api": true, "css": true, "dns": true, "html": true, "http": true,
	"https": true, "id": true, "ip": true, "json": true, "sql": true,
	"ssh": true, "tcp": true, "ttl": true, "ui": true, "uid": true,
	"uri": true, "url": true, "uuid": true, "xml": true,
}

// ExportedName converts a field name such as "user_id" or "x-request-id" to a Go identifier
func ExportedName(name string) string {
	var b strings.Builder
	for _, word := range splitWords(name) {
		lower := strings.ToLower(word)
		if commonInitialisms[lower] {
			b.WriteString(strings.ToUpper(word))
			continue
		}
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}

	out := b.String()
	if out == "" {
		return "Field"
	}
	if unicode.IsDigit([]rune(out)[0]) {
		return "F" + out
	}
	return out
}

// UniqueExportedNames converts names with ExportedName and suffixes a number
// to any result already taken, so "user_id" and "userId" become UserID and UserID2
func UniqueExportedNames(names []string) []string {
	used := make(map[string]bool, len(names))
	out := make([]string, len(names))
	for i, name := range names {
		base := ExportedName(name)
		candidate := base
		for n := 2; used[candidate]; n++ {
			candidate = base + strconv.Itoa(n)
		}
		used[candidate] = true
		out[i] = candidate
	}
	return out
}

// splitWords splits on non-alphanumerics and on lower-to-upper case changes
func splitWords(name string) []string {
	var words []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	runes := []rune(name)
	for i, r := range runes {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && i > 0 && unicode.IsLower(runes[i-1]):
			flush()
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()
	return words
}

// Indent prefixes every line after the first with two spaces per level
func Indent(levels int, s string) string {
	if levels <= 0 || !strings.Contains(s, "\n") {
		return s
	}
	return strings.ReplaceAll(s, "\n", "\n"+strings.Repeat("  ", levels))
}
