package parser

// bracketPair is an opening and closing bracket character
type bracketPair struct {
	open  byte
	close byte
}

var (
	braces   = bracketPair{open: '{', close: '}'}
	angles   = bracketPair{open: '<', close: '>'}
	parens   = bracketPair{open: '(', close: ')'}
	brackets = bracketPair{open: '[', close: ']'}

	// allPairs is the nesting tracked when splitting type text
	allPairs = []bracketPair{braces, angles, parens, brackets}
)

// walkDepth visits every byte of s outside string literals together with the
// bracket depth after that byte is applied. Closers that do not match the
// innermost open bracket are ignored, as is the '>' of an arrow ("=>").
// Returning false from visit stops the walk.
func walkDepth(s string, pairs []bracketPair, visit func(i, depth int) bool) {
	var stack []byte
	var quote byte

	for i := 0; i < len(s); i++ {
		c := s[i]

		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		if c == '\'' || c == '"' || c == '`' {
			quote = c
			continue
		}

		if closer, ok := closerFor(pairs, c); ok {
			stack = append(stack, closer)
		} else if isCloser(pairs, c) && !(c == '>' && i > 0 && s[i-1] == '=') {
			if n := len(stack); n > 0 && stack[n-1] == c {
				stack = stack[:n-1]
			}
		}

		if !visit(i, len(stack)) {
			return
		}
	}
}

// matchClose returns the index of the bracket closing the one at s[open], or -1
// when s[open] is not a tracked opener or the bracket is never closed.
func matchClose(s string, open int, pairs ...bracketPair) int {
	if open < 0 || open >= len(s) {
		return -1
	}
	if _, ok := closerFor(pairs, s[open]); !ok {
		return -1
	}

	match := -1
	walkDepth(s[open:], pairs, func(i, depth int) bool {
		if depth == 0 {
			match = open + i
			return false
		}
		return true
	})
	return match
}

// splitTopLevel splits s at every separator byte that sits at depth zero
// outside string literals. Parts are returned untrimmed.
func splitTopLevel(s string, seps string, pairs ...bracketPair) []string {
	var parts []string
	start := 0
	walkDepth(s, pairs, func(i, depth int) bool {
		if depth == 0 && containsByte(seps, s[i]) {
			parts = append(parts, s[start:i])
			start = i + 1
		}
		return true
	})
	return append(parts, s[start:])
}

// wrapsWhole reports whether s starts with an opener whose matching closer is the last byte
func wrapsWhole(s string, pair bracketPair) bool {
	if len(s) < 2 || s[0] != pair.open {
		return false
	}
	return matchClose(s, 0, allPairs...) == len(s)-1
}

func closerFor(pairs []bracketPair, c byte) (byte, bool) {
	for _, p := range pairs {
		if p.open == c {
			return p.close, true
		}
	}
	return 0, false
}

func isCloser(pairs []bracketPair, c byte) bool {
	for _, p := range pairs {
		if p.close == c {
			return true
		}
	}
	return false
}

func containsByte(s string, c byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return true
		}
	}
	return false
}
