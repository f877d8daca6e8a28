package parser

import (
	"regexp"
	"strings"

	"github.com/toyz/fakegen/internal/models"
)

var (
	arrayWrapper = regexp.MustCompile(`^(Readonly)?Array\s*<`)
	readonlyType = regexp.MustCompile(`^readonly\s+`)
	enumPattern  = regexp.MustCompile(`\benum\s*\{([^}]*)\}`)
)

// classify builds the node for one field from its type text. Array wrappers are
// removed first; the remaining checks apply to the element text in the order
// union, object, enum, literal, scalar.
func (s *state) classify(name, typeText, path string) *models.PropertyNode {
	node := &models.PropertyNode{Name: name}

	text := cleanType(typeText)
	for {
		inner, ok := unwrapArray(text)
		if !ok {
			break
		}
		node.Dimensions++
		text = inner
	}
	node.IsArray = node.Dimensions > 0
	node.DeclaredType = text

	if members := unionMembers(text); len(members) > 1 {
		node.IsUnion = true
		for _, member := range members {
			node.UnionMembers = append(node.UnionMembers, models.UnquoteLiteral(member))
			node.UnionVariants = append(node.UnionVariants, s.classify(name, member, path))
		}
		return node
	}

	if wrapsWhole(text, braces) {
		node.IsObject = true
		node.ObjectChildren = s.fields(text[1:len(text)-1], joinPath(path, name))
		return node
	}

	if m := enumPattern.FindStringSubmatch(text); m != nil {
		node.IsEnum = true
		node.EnumValues = enumValues(m[1])
		return node
	}

	node.IsLiteral = models.IsLiteralText(text)
	return node
}

// cleanType trims separators, a leading union pipe and redundant grouping
// parentheses
func cleanType(text string) string {
	text = strings.TrimSpace(text)
	for {
		trimmed := strings.TrimSpace(strings.TrimRight(text, ";,"))
		trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "|"))
		trimmed = readonlyType.ReplaceAllString(trimmed, "")
		if wrapsWhole(trimmed, parens) {
			trimmed = strings.TrimSpace(trimmed[1 : len(trimmed)-1])
		}
		if trimmed == text {
			return text
		}
		text = trimmed
	}
}

// unwrapArray removes one sequence wrapper when it spans the whole expression
func unwrapArray(text string) (string, bool) {
	if len(unionMembers(text)) > 1 {
		return "", false
	}

	if strings.HasSuffix(text, "[]") {
		inner := cleanType(text[:len(text)-2])
		if inner != "" {
			return inner, true
		}
		return "", false
	}

	if loc := arrayWrapper.FindStringIndex(text); loc != nil {
		open := loc[1] - 1
		if matchClose(text, open, allPairs...) == len(text)-1 {
			inner := cleanType(text[open+1 : len(text)-1])
			if inner != "" {
				return inner, true
			}
		}
	}
	return "", false
}

// unionMembers splits text on '|' at depth zero, dropping empty alternatives
func unionMembers(text string) []string {
	parts := splitTopLevel(text, "|", allPairs...)
	if len(parts) == 1 {
		return nil
	}

	members := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = cleanType(part); part != "" {
			members = append(members, part)
		}
	}
	return members
}

// enumValues reads `A, B = 'b'` style members; an initializer replaces the member name
func enumValues(body string) []string {
	var values []string
	for _, member := range splitTopLevel(body, ",", allPairs...) {
		member = strings.TrimSpace(member)
		if member == "" {
			continue
		}
		if eq := strings.IndexByte(member, '='); eq >= 0 {
			if rhs := strings.TrimSpace(member[eq+1:]); rhs != "" {
				member = rhs
			}
		}
		values = append(values, models.UnquoteLiteral(member))
	}
	return values
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
