package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchClose(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		open  int
		pairs []bracketPair
		want  int
	}{
		{"simple braces", "{ a }", 0, []bracketPair{braces}, 4},
		{"nested braces", "{ a: { b: c } } tail", 0, []bracketPair{braces}, 14},
		{"generic argument", "Array<Map<string, number>>", 5, allPairs, 25},
		{"object inside generic", "Array<{ a: string }>", 5, allPairs, 19},
		{"arrow is not a closer", "(a: number) => void", 0, allPairs, 10},
		{"brace inside string ignored", "{ a: '}' }", 0, []bracketPair{braces}, 9},
		{"unclosed", "{ a: { b }", 0, []bracketPair{braces}, -1},
		{"not an opener", "abc", 1, allPairs, -1},
		{"out of range", "{}", 5, allPairs, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchClose(tt.text, tt.open, tt.pairs...))
		})
	}
}

func TestSplitTopLevel(t *testing.T) {
	tests := []struct {
		name string
		text string
		seps string
		want []string
	}{
		{"flat", "a|b|c", "|", []string{"a", "b", "c"}},
		{"nested object kept whole", "{ a: x | y } | z", "|", []string{"{ a: x | y } ", " z"}},
		{"generic kept whole", "Map<a, b>, c", ",", []string{"Map<a, b>", " c"}},
		{"quoted separator ignored", "'a|b' | c", "|", []string{"'a|b' ", " c"}},
		{"no separator", "string", "|", []string{"string"}},
		{"several separators", "a; b, c", ";,", []string{"a", " b", " c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitTopLevel(tt.text, tt.seps, allPairs...))
		})
	}
}

func TestWrapsWhole(t *testing.T) {
	assert.True(t, wrapsWhole("{ a: string }", braces))
	assert.True(t, wrapsWhole("(a | b)", parens))
	assert.False(t, wrapsWhole("{ a: string }[]", braces))
	assert.False(t, wrapsWhole("(a: number) => void", parens))
	assert.False(t, wrapsWhole("{", braces))
}
