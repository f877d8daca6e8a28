package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	crdb "github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/toyz/fakegen/internal/config"
	"github.com/toyz/fakegen/internal/errors"
)

// encode renders v in the configured data format
func encode(v interface{}, format string) ([]byte, error) {
	switch format {
	case config.FormatJSON, "":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, crdb.Wrap(err, "failed to encode JSON")
		}
		return append(data, '\n'), nil

	case config.FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, crdb.Wrap(err, "failed to encode YAML")
		}
		if err := enc.Close(); err != nil {
			return nil, crdb.Wrap(err, "failed to encode YAML")
		}
		return buf.Bytes(), nil

	default:
		return nil, errors.InvalidSetting("format", format, config.FormatJSON, config.FormatYAML)
	}
}

// writeOutput writes data to path, or to stdout when path is empty
func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return crdb.Wrapf(err, "failed to create output directory %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return crdb.WithHint(crdb.Wrapf(err, "failed to write %s", path),
			"Check that the output directory is writable")
	}
	return nil
}
