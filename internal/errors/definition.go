package errors

import "fmt"

// DefinitionError is returned when the definition text cannot be parsed at all.
// Malformed individual fields never produce one; they are skipped instead.
type DefinitionError struct {
	*BaseError
	Snippet string // leading part of the offending text
}

// Is reports whether target is a DefinitionError with the same code, so the
// sentinels below can be matched with errors.Is.
func (e *DefinitionError) Is(target error) bool {
	t, ok := target.(*DefinitionError)
	return ok && t.Code == e.Code
}

var (
	// ErrNameNotFound matches any definition without a locatable type name
	ErrNameNotFound = &DefinitionError{BaseError: New(NameNotFoundCode, "type name not found")}
	// ErrBodyNotFound matches any definition whose name has no brace-delimited body
	ErrBodyNotFound = &DefinitionError{BaseError: New(BodyNotFoundCode, "definition body not found")}
)

const snippetLength = 40

// NewNameNotFoundError creates the error for text with no `interface Name` or `type Name =` introducer
func NewNameNotFoundError(text string) *DefinitionError {
	err := &DefinitionError{
		BaseError: New(NameNotFoundCode, "type name not found"),
		Snippet:   snippet(text),
	}
	err.WithSuggestion("Start the definition with 'interface Name {' or 'type Name = {'")
	if err.Snippet != "" {
		err.WithContext("input", err.Snippet)
	}
	return err
}

// NewBodyNotFoundError creates the error for a named definition without a balanced { ... } body
func NewBodyNotFoundError(name string, loc SourceLocation) *DefinitionError {
	err := &DefinitionError{
		BaseError: New(BodyNotFoundCode, fmt.Sprintf("body of %s not found", name)),
	}
	err.WithLocation(loc)
	err.WithContext("name", name)
	err.WithSuggestion(fmt.Sprintf("Follow '%s' with a field block such as '{ id: string; }'", name))
	err.WithSuggestion("Check that every '{' has a matching '}'")
	return err
}

func snippet(text string) string {
	runes := []rune(text)
	if len(runes) <= snippetLength {
		return string(runes)
	}
	return string(runes[:snippetLength]) + "..."
}
