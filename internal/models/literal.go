package models

import (
	"regexp"
	"strconv"
	"strings"
)

var numberLiteral = regexp.MustCompile(`^-?(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?$`)

var primitiveTypeNames = map[string]bool{
	"string":    true,
	"number":    true,
	"boolean":   true,
	"bigint":    true,
	"symbol":    true,
	"object":    true,
	"any":       true,
	"unknown":   true,
	"never":     true,
	"void":      true,
	"undefined": true,
	"Date":      true,
}

// IsPrimitiveTypeName reports whether s names a built-in type rather than a value
func IsPrimitiveTypeName(s string) bool {
	return primitiveTypeNames[strings.TrimSpace(s)]
}

// IsQuoted reports whether s is wrapped in matching single, double or back quotes
func IsQuoted(s string) bool {
	if len(s) < 2 {
		return false
	}
	first, last := s[0], s[len(s)-1]
	return first == last && (first == '\'' || first == '"' || first == '`')
}

// IsLiteralText reports whether s is a quoted string, number, boolean or null literal
func IsLiteralText(s string) bool {
	s = strings.TrimSpace(s)
	switch {
	case IsQuoted(s):
		return true
	case s == "true" || s == "false" || s == "null":
		return true
	default:
		return numberLiteral.MatchString(s)
	}
}

// UnquoteLiteral strips one layer of matching quotes from s
func UnquoteLiteral(s string) string {
	s = strings.TrimSpace(s)
	if !IsQuoted(s) {
		return s
	}
	inner := s[1 : len(s)-1]
	quote := s[:1]
	return strings.ReplaceAll(inner, `\`+quote, quote)
}

// QuoteLiteral wraps s in single quotes, the form the restated declarations use
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

// ParseLiteral converts literal text to its Go value: string, int64, float64, bool or nil.
// Text that is not a literal is returned unchanged as a string.
func ParseLiteral(s string) interface{} {
	s = strings.TrimSpace(s)
	switch {
	case IsQuoted(s):
		return UnquoteLiteral(s)
	case s == "true":
		return true
	case s == "false":
		return false
	case s == "null":
		return nil
	case numberLiteral.MatchString(s):
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}
