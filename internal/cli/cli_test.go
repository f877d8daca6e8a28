package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const userDefinition = `interface User {
  id: string;
  email: string;
  age: number;
}`

func run(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestGenerateInline(t *testing.T) {
	code, stdout, stderr := run(t, "", "generate", "-i", userDefinition, "-c", "3", "--seed", "1")
	require.Equal(t, 0, code, stderr)

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &records))
	require.Len(t, records, 3)
	for _, r := range records {
		assert.Contains(t, r, "id")
		assert.Contains(t, r["email"], "@")
		assert.IsType(t, float64(0), r["age"])
	}

	assert.Contains(t, stderr, "Parsed interface User with 3 fields")
	assert.Contains(t, stderr, "Records: 3")
}

func TestGenerateSingleRecordIsObject(t *testing.T) {
	code, stdout, stderr := run(t, "", "generate", "-i", userDefinition, "-q")
	require.Equal(t, 0, code, stderr)

	assert.True(t, strings.HasPrefix(stdout, "{\n  \"id\": "), stdout)
	assert.Empty(t, stderr)
}

func TestGenerateFromFileToOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "user.ts")
	out := filepath.Join(dir, "out", "users.yaml")
	require.NoError(t, os.WriteFile(in, []byte(userDefinition), 0o644))

	code, stdout, stderr := run(t, "", "generate", "-f", in, "-o", out, "-c", "2", "--format", "yaml")
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var records []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &records))
	assert.Len(t, records, 2)
	assert.True(t, strings.HasPrefix(string(data), "- id: "), string(data))
}

func TestGenerateFromStdin(t *testing.T) {
	code, stdout, stderr := run(t, userDefinition, "generate", "-f", "-", "--seed", "4")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, `"email"`)
}

func TestGenerateSourceModes(t *testing.T) {
	code, stdout, stderr := run(t, "", "generate", "-i", userDefinition, "--mode", "source")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "export function generateUserMock(")

	code, stdout, stderr = run(t, "", "generate", "-i", userDefinition, "--mode", "source", "-t", "go", "--go-package", "fixtures")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "package fixtures")

	code, stdout, stderr = run(t, "", "generate", "-i", userDefinition, "--mode", "both")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "## Mock function")
	assert.Contains(t, stdout, "## Example data")
}

func TestGenerateReportsSkippedFields(t *testing.T) {
	code, _, stderr := run(t, "", "generate", "-i", "interface A { ok: string; : broken; }")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, `skipped ": broken" in A`)
	assert.Contains(t, stderr, "Skipped fields: 1")
}

func TestGenerateEnvironmentConfig(t *testing.T) {
	t.Setenv("FAKEGEN_COUNT", "2")
	code, stdout, stderr := run(t, "", "generate", "-i", userDefinition)
	require.Equal(t, 0, code, stderr)

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &records))
	assert.Len(t, records, 2)
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "no input",
			args: []string{"generate"},
			want: []string{"ERROR: Invalid Input", "no definition given", "--interface or --file"},
		},
		{
			name: "both inputs",
			args: []string{"generate", "-i", userDefinition, "-f", "user.ts"},
			want: []string{"both --interface and --file given"},
		},
		{
			name: "missing file",
			args: []string{"generate", "-f", "absent.ts"},
			want: []string{"failed to read absent.ts", "Check that absent.ts exists"},
		},
		{
			name: "no type name",
			args: []string{"generate", "-i", "hello world"},
			want: []string{"ERROR: Definition Name Not Found", "Input: hello world", "interface Name {"},
		},
		{
			name: "no body",
			args: []string{"generate", "-i", "interface User"},
			want: []string{"ERROR: Definition Body Not Found", "matching '}'"},
		},
		{
			name: "bad mode",
			args: []string{"generate", "-i", userDefinition, "--mode", "fast"},
			want: []string{"ERROR: Invalid Configuration", "invalid mode fast"},
		},
		{
			name: "verbose and quiet",
			args: []string{"generate", "-i", userDefinition, "-v", "-q"},
			want: []string{"verbose and quiet cannot be combined"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := run(t, "", tt.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			for _, w := range tt.want {
				assert.Contains(t, stderr, w)
			}
		})
	}
}

func TestParseCommand(t *testing.T) {
	code, stdout, stderr := run(t, "", "parse", "-i", "type Point = { x: number; tags?: string[] }")
	require.Equal(t, 0, code, stderr)

	var def map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &def))
	assert.Equal(t, "Point", def["name"])
	assert.Equal(t, "type", def["kind"])
	assert.Len(t, def["properties"], 2)
}

func TestParseCommandYAML(t *testing.T) {
	code, stdout, stderr := run(t, "", "parse", "-i", "type Point = { x: number; tags?: string[] }", "--format", "yaml")
	require.Equal(t, 0, code, stderr)

	assert.True(t, strings.HasPrefix(stdout, "name: Point\nkind: type\n"), stdout)
	assert.Contains(t, stdout, "declaredType: number")
	assert.Contains(t, stdout, "isArray: true")
	assert.NotContains(t, stdout, "unionvariants")
}

func TestInvalidGoPackage(t *testing.T) {
	code, _, stderr := run(t, "", "generate", "-i", userDefinition, "--mode", "source", "--target", "go", "--go-package", "my-mocks")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid go_package my-mocks")
	assert.Contains(t, stderr, "must be a valid Go identifier")
}

func TestConfigFileFlag(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("count: 4\n"), 0o644))

	code, stdout, stderr := run(t, "", "--config", cfgPath, "generate", "-i", userDefinition)
	require.Equal(t, 0, code, stderr)

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &records))
	assert.Len(t, records, 4)

	// flags win over the file
	code, stdout, stderr = run(t, "", "--config", cfgPath, "generate", "-i", userDefinition, "-c", "2")
	require.Equal(t, 0, code, stderr)
	require.NoError(t, json.Unmarshal([]byte(stdout), &records))
	assert.Len(t, records, 2)
}
