package utils

import (
	"go/parser"
	"go/token"

	"golang.org/x/tools/imports"

	"github.com/toyz/fakegen/internal/errors"
)

// FormatGoSource formats generated Go code the way goimports does without
// resolving packages. filename is only used in error messages.
func FormatGoSource(filename, source string) (string, error) {
	formatted, err := imports.Process(filename, []byte(source), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		// report the syntax error against the unformatted source when there is one
		if parseErr := ValidateGoCode(source); parseErr != nil {
			err = parseErr
		}
		return source, errors.Wrap(errors.GenerationErrorCode, "invalid generated Go source", err).
			WithContext("file", filename)
	}
	return string(formatted), nil
}

// ValidateGoCode checks if the provided code is valid Go syntax
func ValidateGoCode(code string) error {
	fset := token.NewFileSet()
	_, err := parser.ParseFile(fset, "", code, parser.ParseComments)
	return err
}
