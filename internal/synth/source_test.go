package synth

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/fakegen/internal/utils"
)

const productDefinition = `
interface Product {
  id: string;
  category: 'electronics' | 'clothing';
  tags: string[];
  nickname?: string;
  dims: { w: number; h: number };
}`

func TestEmitMockSource_TypeScript(t *testing.T) {
	def := mustParse(t, productDefinition)

	src, err := New().EmitMockSource(def, TypeScript)
	require.NoError(t, err)

	for _, want := range []string{
		"import { faker } from '@faker-js/faker';",
		"export interface Product {",
		"  id: string;",
		"  category: 'electronics' | 'clothing';",
		"  tags: string[];",
		"  nickname?: string;",
		"  dims: {\n    w: number;\n    h: number;\n  };",
		"export function generateProductMock(count: number = 1): Product | Product[] {",
		"      id: faker.string.uuid(),",
		"      category: faker.helpers.arrayElement(['electronics', 'clothing']),",
		"      tags: Array.from({ length: faker.number.int({ min: 1, max: 5 }) }, () => faker.string.sample()),",
		"      nickname: faker.person.fullName(),",
		"      dims: {\n        w: faker.number.int({ min: 1, max: 1000 }),\n        h: faker.number.int({ min: 1, max: 1000 }),\n      },",
		"return Array.from({ length: count }, () => generateSingle());",
	} {
		assert.Contains(t, src, want)
	}
}

func TestEmitMockSource_TypeScriptNesting(t *testing.T) {
	def := mustParse(t, `
type Feed = {
  entries: { title: string; kind: 'a' | 'b' }[];
  value: string | number;
  'x-trace': string;
  levels: ('low' | 'high')[];
}`)

	src, err := New().EmitMockSource(def, TypeScript)
	require.NoError(t, err)

	assert.Contains(t, src, "export type Feed = {")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(strings.Split(src, "/**")[0]), "};"))
	assert.Contains(t, src, "() => ({\n")
	assert.Contains(t, src, "value: faker.helpers.arrayElement([() => faker.string.sample(), () => faker.number.int({ min: 1, max: 1000 })])(),")
	assert.Contains(t, src, "'x-trace': string;")
	assert.Contains(t, src, "'x-trace': faker.string.sample(),")
	assert.Contains(t, src, "levels: ('low' | 'high')[];")
}

func TestEmitMockSource_Go(t *testing.T) {
	def := mustParse(t, productDefinition)

	src, err := New(WithGoPackage("fixtures")).EmitMockSource(def, Go)
	require.NoError(t, err)
	require.NoError(t, utils.ValidateGoCode(src))

	for _, want := range []string{
		"// Code generated by fakegen. DO NOT EDIT.",
		"package fixtures",
		`"github.com/brianvoe/gofakeit/v7"`,
		"type Product struct {",
		"func GenerateProductMock(f *gofakeit.Faker, count int) []Product {",
		`json:"nickname,omitempty"`,
		"out := make([]string, f.IntRange(1, 5))",
	} {
		assert.Contains(t, src, want)
	}
	// gofmt aligns keyed values, so match the spacing loosely
	assert.Regexp(t, `ID:\s+f\.UUID\(\),`, src)
	assert.Regexp(t, `Category:\s+\[\]string\{"electronics", "clothing"\}\[f\.IntRange\(0, 1\)\],`, src)
	assert.Regexp(t, `W:\s+f\.IntRange\(1, 1000\),`, src)
	assert.NotContains(t, src, `"time"`)
}

func TestEmitMockSource_GoTemporalAndUnions(t *testing.T) {
	def := mustParse(t, `
interface Audit {
  createdAt: Date;
  timestamp: number;
  value: string | number;
  state: enum { Open, Closed };
  note: 'x' | null;
}`)

	src, err := New().EmitMockSource(def, Go)
	require.NoError(t, err)
	require.NoError(t, utils.ValidateGoCode(src))

	assert.Contains(t, src, `"time"`)
	assert.Contains(t, src, "time.Time")
	assert.Contains(t, src, ".UnixMilli()")
	assert.Contains(t, src, "[]func() any{")
	assert.Contains(t, src, `[]string{"Open", "Closed"}[f.IntRange(0, 1)]`)
	assert.Contains(t, src, `[]any{"x", nil}[f.IntRange(0, 1)]`)
}

func TestEmitMockSource_GoFieldNameCollisions(t *testing.T) {
	def := mustParse(t, `
interface P {
  user_id: string;
  userId: number;
  meta: { a_b: string; aB: boolean };
}`)

	src, err := New().EmitMockSource(def, Go)
	require.NoError(t, err)
	require.NoError(t, utils.ValidateGoCode(src))

	assert.Regexp(t, "UserID\\s+string\\s+`json:\"user_id\"`", src)
	assert.Regexp(t, "UserID2\\s+int\\s+`json:\"userId\"`", src)
	assert.Regexp(t, "AB\\s+string\\s+`json:\"a_b\"`", src)
	assert.Regexp(t, "AB2\\s+bool\\s+`json:\"aB\"`", src)
	assert.Len(t, regexp.MustCompile(`\bUserID:`).FindAllString(src, -1), 1)
	assert.Len(t, regexp.MustCompile(`\bUserID2:`).FindAllString(src, -1), 1)
	assert.Regexp(t, `AB2:\s+f\.Bool\(\),`, src)
}

func TestEmitMockSource_GoTimeImportFollowsGenerators(t *testing.T) {
	def := mustParse(t, `interface P { zone: 'time.UTC'; label: string }`)

	src, err := New().EmitMockSource(def, Go)
	require.NoError(t, err)
	assert.NotContains(t, src, `"time"`)
	assert.Contains(t, src, `"time.UTC"`)

	def = mustParse(t, `interface P { updated: string }`)
	src, err = New().EmitMockSource(def, Go)
	require.NoError(t, err)
	assert.Contains(t, src, `"time"`)
	assert.Contains(t, src, "time.RFC3339")
}

func TestEmitMockSource_UnknownTarget(t *testing.T) {
	def := mustParse(t, productDefinition)

	_, err := New().EmitMockSource(def, Target("rust"))
	assert.Error(t, err)
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in      string
		want    Target
		wantErr bool
	}{
		{"typescript", TypeScript, false},
		{"TS", TypeScript, false},
		{"", TypeScript, false},
		{"go", Go, false},
		{"golang", Go, false},
		{"rust", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTarget(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
