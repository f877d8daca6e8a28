package cli

import (
	"io"
	"os"
	"strings"

	crdb "github.com/cockroachdb/errors"

	"github.com/toyz/fakegen/internal/errors"
)

// readDefinition resolves the definition text from --interface, --file or,
// when stdin is not a terminal, standard input. It returns the text and the
// name to report locations against.
func readDefinition(opts *Options, stdin io.Reader) (string, string, error) {
	switch {
	case opts.Interface != "" && opts.File != "":
		return "", "", errors.InputError("both --interface and --file given",
			"Pass the definition inline with --interface or from a file with --file, not both")

	case opts.Interface != "":
		return opts.Interface, "", nil

	case opts.File == "-":
		return readAll(stdin, "<stdin>")

	case opts.File != "":
		data, err := os.ReadFile(opts.File)
		if err != nil {
			return "", "", crdb.WithHintf(crdb.Wrapf(err, "failed to read %s", opts.File),
				"Check that %s exists and is readable", opts.File)
		}
		return string(data), opts.File, nil

	case stdin != nil && !isTerminal(stdin):
		text, name, err := readAll(stdin, "<stdin>")
		if err == nil || errors.CodeOf(err) != errors.InputErrorCode {
			return text, name, err
		}
	}

	return "", "", errors.InputError("no definition given",
		"Specify the definition with --interface or --file")
}

func readAll(r io.Reader, name string) (string, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", "", crdb.Wrapf(err, "failed to read %s", name)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", "", errors.InputError(name+" is empty",
			"Specify the definition with --interface or --file")
	}
	return string(data), name, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return true
	}
	return info.Mode()&os.ModeCharDevice != 0
}
