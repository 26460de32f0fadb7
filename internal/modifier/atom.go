package modifier

import (
	"strings"
	"unicode/utf8"

	"go.dw1.io/rex/regexp"
)

var codePoint = regexp.MustCompile(`^\\(?:x\{[0-9A-Fa-f]{1,6}\}|x[0-9A-Fa-f]{2}|u[0-9A-Fa-f]{4}|u\{[0-9A-Fa-f]{1,6}\})$`)

// IsAnchor reports whether fragment is one of the zero-width anchors
// ^ $ \b \B.
func IsAnchor(fragment string) bool {
	switch fragment {
	case "^", "$", `\b`, `\B`:
		return true
	}

	return false
}

// IsAtom reports whether fragment can take a quantifier without a wrapping
// group: a single character, a two-character escape, a code point escape, a
// character class, or a group that is not a lookaround.
func IsAtom(fragment string) bool {
	switch {
	case utf8.RuneCountInString(fragment) == 1:
		return true
	case isEscapePair(fragment), IsCodePoint(fragment), IsClass(fragment):
		return true
	case IsGroup(fragment):
		return !isLookaround(fragment)
	}

	return false
}

// IsCodePoint reports whether fragment is a single code point escape such as
// \x{1F600}, \x41, \u0041 or \u{41}.
func IsCodePoint(fragment string) bool {
	return codePoint.MatchString(fragment)
}

// IsClass reports whether fragment is exactly one bracket expression.
func IsClass(fragment string) bool {
	return strings.HasPrefix(fragment, "[") && classEnd(fragment, 0) == len(fragment)-1
}

// IsGroup reports whether fragment is exactly one parenthesized group.
func IsGroup(fragment string) bool {
	return strings.HasPrefix(fragment, "(") && parenEnd(fragment, 0) == len(fragment)-1
}

func isEscapePair(fragment string) bool {
	return len(fragment) >= 2 && fragment[0] == '\\' && utf8.RuneCountInString(fragment) == 2
}

func isLookaround(fragment string) bool {
	for _, p := range []string{"(?=", "(?!", "(?<=", "(?<!"} {
		if strings.HasPrefix(fragment, p) {
			return true
		}
	}

	return false
}

// parenEnd returns the index of the ')' closing the '(' at s[open], or -1.
// Escapes and bracket expressions are skipped.
func parenEnd(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '[':
			end := classEnd(s, i)
			if end < 0 {
				return -1
			}
			i = end
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// classEnd returns the index of the ']' closing the bracket expression at
// s[open], or -1. A ']' right after the opening bracket closes an empty
// class.
func classEnd(s string, open int) int {
	i := open + 1
	if i < len(s) && s[i] == '^' {
		i++
	}

	for ; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case ']':
			return i
		}
	}

	return -1
}

// trailingBackslashes counts the backslashes at the end of s.
func trailingBackslashes(s string) int {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}

	return n
}
