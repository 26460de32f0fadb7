package modifier

import (
	"strings"
	"unicode/utf8"
)

// Class builds a bracket expression from its options. A string option is an
// escape sequence kept verbatim, a three-character range such as "a-z", or
// literal text whose characters are escaped for class context. A [Member]
// option is written as is.
type Class struct {
	Negated bool
}

// Member is class body text taken from a rendered pattern, see [ClassMember].
type Member string

// ClassMember converts a rendered pattern into class body text. It accepts a
// single character, an escape that stands for characters, a code point, or a
// non-negated bracket expression, whose body is unwrapped. Anchors, the dot,
// negated bracket expressions and multi-atom fragments have no class form.
func ClassMember(fragment string) (Member, bool) {
	switch {
	case fragment == "", fragment == ".", IsAnchor(fragment):
		return "", false
	case IsCodePoint(fragment):
		return Member(fragment), true
	case isEscapePair(fragment):
		switch fragment[1] {
		case 'A', 'z', 'Z', 'G':
			return "", false
		}
		return Member(fragment), true
	case utf8.RuneCountInString(fragment) == 1:
		var b strings.Builder
		r, _ := utf8.DecodeRuneInString(fragment)
		writeClassRune(&b, r)
		return Member(b.String()), true
	case IsClass(fragment) && !strings.HasPrefix(fragment, "[^"):
		return classBody(fragment[1 : len(fragment)-1]), true
	}

	return "", false
}

// classBody escapes a bare hyphen at either end of body so the body can sit
// next to other members without forming a range.
func classBody(body string) Member {
	if strings.HasPrefix(body, "-") {
		body = `\` + body
	}

	if strings.HasSuffix(body, "-") && trailingBackslashes(body[:len(body)-1])%2 == 0 {
		body = body[:len(body)-1] + `\-`
	}

	return Member(body)
}

// Build renders the bracket expression. Options are strings or [Member]
// values; anything else is ignored.
func (c Class) Build(options ...any) string {
	open := "["
	if c.Negated {
		open = "[^"
	}

	var (
		b           strings.Builder
		lead, trail bool
	)

	last := len(options) - 1
	for i, o := range options {
		if m, ok := o.(Member); ok {
			b.WriteString(string(m))
			continue
		}

		opt, ok := o.(string)
		if !ok {
			continue
		}

		switch {
		case len(opt) > 1 && opt[0] == '\\':
			b.WriteString(opt)
		case isClassRange(opt):
			lo, size := utf8.DecodeRuneInString(opt)
			hi, _ := utf8.DecodeRuneInString(opt[size+1:])
			writeClassRune(&b, lo)
			b.WriteByte('-')
			writeClassRune(&b, hi)
		default:
			n := utf8.RuneCountInString(opt)
			j := 0
			for _, r := range opt {
				switch {
				case r != '-':
					writeClassRune(&b, r)
				case i == 0 && j == 0:
					lead = true
				case i == last && j == n-1:
					trail = true
				default:
					b.WriteString(`\-`)
				}
				j++
			}
		}
	}

	body := b.String()
	if trail && trailingBackslashes(body)%2 == 1 {
		// The dangling backslash escapes the hyphen in place.
		body += "-"
		trail = false
	}

	if trailingBackslashes(body)%2 == 1 {
		body += `\`
	}

	if lead {
		body = "-" + body
	}

	if trail {
		body += "-"
	}

	return open + body + "]"
}

func isClassRange(opt string) bool {
	if utf8.RuneCountInString(opt) != 3 {
		return false
	}

	lo, size := utf8.DecodeRuneInString(opt)

	return lo != '\\' && opt[size] == '-'
}

func writeClassRune(b *strings.Builder, r rune) {
	switch r {
	case '\\', ']', '[', '^', '-':
		b.WriteByte('\\')
	}

	b.WriteRune(r)
}

// Alternation joins options into a non-capturing alternation group.
type Alternation struct{}

// Build renders the alternation. With no options the result is the empty
// group, which matches the empty string.
func (Alternation) Build(options ...string) string {
	return "(?:" + strings.Join(options, "|") + ")"
}
