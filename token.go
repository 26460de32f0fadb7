package rex

import (
	"fmt"
	"strings"

	"go.dw1.io/rex/internal/literal"
	"go.dw1.io/rex/internal/modifier"
	"go.dw1.io/rex/regexp"
)

// Template is a literal with interpolated values. It is joined positionally
// before escaping, so the values are matched literally by [Exactly] and
// injected verbatim by [Raw].
type Template = literal.Template

// Token is an immutable, partially built expression. The zero value is an
// empty expression ready for use.
type Token struct {
	fragment string
	caps     Capability

	// Staged prefix operations, applied to the next appended piece.
	pending modifier.Modifier
	need    Capability
	wraps   bool

	err error
}

// New returns an empty Token.
func New() Token {
	return Token{}
}

func token(fragment string, caps Capability) Token {
	return Token{fragment: fragment, caps: caps}
}

func failed(err error) Token {
	return Token{err: err}
}

func (t Token) fail(err error) Token {
	if t.err != nil {
		return t
	}

	return Token{err: err}
}

// stage composes m inside the already pending modifiers. need is the set of
// capabilities the next piece must carry; wraps marks modifiers whose output
// is a group or a repetition rather than the piece itself.
func (t Token) stage(m modifier.Modifier, need Capability, wraps bool) Token {
	if t.err != nil {
		return t
	}

	t.pending = modifier.Chain(t.pending, m)
	t.need |= need
	t.wraps = t.wraps || wraps

	return t
}

// add appends one piece, applying and clearing the pending modifiers.
func (t Token) add(fragment string, caps Capability) Token {
	if t.err != nil {
		return t
	}

	if t.pending != nil {
		if missing := t.need &^ caps; missing != 0 {
			if missing.Has(Negatable) {
				return t.fail(fmt.Errorf("%w: %q", ErrNotNegatable, fragment))
			}

			return t.fail(fmt.Errorf("%w: %q", ErrNotQuantifiable, fragment))
		}

		s, err := t.pending.Apply(fragment)
		if err != nil {
			return t.fail(err)
		}

		fragment = s
		if t.wraps {
			caps = Quantifiable
		}
	}

	switch {
	case fragment == "":
		caps = t.caps
	case t.fragment != "":
		caps = Quantifiable
	}

	return Token{fragment: t.fragment + fragment, caps: caps}
}

func (t Token) addPattern(p Pattern) Token {
	if t.err != nil {
		return t
	}

	if err := p.Err(); err != nil {
		return t.fail(err)
	}

	return t.add(p.String(), p.Capabilities())
}

func (t Token) addArgs(args []any) Token {
	if t.err != nil {
		return t
	}

	s, caps, err := render(args)
	if err != nil {
		return t.fail(err)
	}

	return t.add(s, caps)
}

// render reduces builder arguments to one piece. Patterns are inserted as
// rendered; runs of other values are normalized and escaped.
func render(args []any) (string, Capability, error) {
	var (
		b     strings.Builder
		caps  Capability
		n     int
		plain []any
	)

	flush := func() error {
		if len(plain) == 0 {
			return nil
		}

		s, err := literal.Normalize(plain...)
		plain = plain[:0]
		if err != nil {
			return err
		}

		if s != "" {
			b.WriteString(literal.Escape(s))
			caps = Quantifiable
			n++
		}

		return nil
	}

	for _, a := range args {
		p, ok := a.(Pattern)
		if !ok {
			plain = append(plain, a)
			continue
		}

		if err := flush(); err != nil {
			return "", 0, err
		}

		if err := p.Err(); err != nil {
			return "", 0, err
		}

		if s := p.String(); s != "" {
			b.WriteString(s)
			caps = p.Capabilities()
			n++
		}
	}

	if err := flush(); err != nil {
		return "", 0, err
	}

	if n > 1 {
		caps = Quantifiable
	}

	return b.String(), caps, nil
}

// String returns the rendered pattern, or "" if the Token holds an error.
// Modifiers staged without a following piece are not rendered.
func (t Token) String() string {
	if t.err != nil {
		return ""
	}

	return t.fragment
}

// Err returns the first error recorded while building the Token.
func (t Token) Err() error {
	return t.err
}

// Capabilities returns the capability set of the Token when used as a
// single piece. A sequence of several pieces is only quantifiable.
func (t Token) Capabilities() Capability {
	return t.caps
}

// Source returns the rendered pattern or the recorded error.
func (t Token) Source() (string, error) {
	if t.err != nil {
		return "", t.err
	}

	return t.fragment, nil
}

// Regexp compiles the Token with the given flag string, drawn from the
// alphabet "dgimsuy".
func (t Token) Regexp(flags string, opts ...regexp.Option) (*regexp.Regexp, error) {
	src, err := t.Source()
	if err != nil {
		return nil, err
	}

	return regexp.Compile(src, append([]regexp.Option{regexp.WithFlags(flags)}, opts...)...)
}

// MustRegexp is like Regexp but panics on error.
func (t Token) MustRegexp(flags string, opts ...regexp.Option) *regexp.Regexp {
	re, err := t.Regexp(flags, opts...)
	if err != nil {
		panic(err)
	}

	return re
}

// Exactly appends its arguments as escaped literal text.
func (t Token) Exactly(v ...any) Token {
	if t.err != nil {
		return t
	}

	s, err := literal.Normalize(v...)
	if err != nil {
		return t.fail(err)
	}

	return t.add(literal.Escape(s), Quantifiable)
}

// Raw appends its arguments without escaping.
func (t Token) Raw(v ...any) Token {
	if t.err != nil {
		return t
	}

	s, err := literal.Normalize(v...)
	if err != nil {
		return t.fail(err)
	}

	return t.add(s, Quantifiable)
}

// Then appends the given patterns as one piece.
func (t Token) Then(p ...Pattern) Token {
	args := make([]any, 0, len(p))
	for _, v := range p {
		if v != nil {
			args = append(args, v)
		}
	}

	return t.addArgs(args)
}

// Not stages a negation of the next piece.
func (t Token) Not() Negation {
	return Negation{tok: t.stage(modifier.Negate{}, Negatable, false)}
}

func (t Token) quantify(q modifier.Quantity) Quantifier {
	if err := q.Validate(); err != nil {
		return Quantifier{tok: t.fail(err)}
	}

	return Quantifier{tok: t, q: q}
}

// OneOrMore stages a + quantifier.
func (t Token) OneOrMore() Quantifier { return t.quantify(modifier.OneOrMore()) }

// ZeroOrMore stages a * quantifier.
func (t Token) ZeroOrMore() Quantifier { return t.quantify(modifier.ZeroOrMore()) }

// Maybe stages a ? quantifier.
func (t Token) Maybe() Quantifier { return t.quantify(modifier.Optional()) }

// Times stages an exact repeat.
func (t Token) Times(n int) Quantifier { return t.quantify(modifier.Exactly(n)) }

// Between stages a bounded repeat.
func (t Token) Between(min, max int) Quantifier { return t.quantify(modifier.Between(min, max)) }

// AtLeast stages an open-ended repeat.
func (t Token) AtLeast(n int) Quantifier { return t.quantify(modifier.AtLeast(n)) }

// AtMost stages a repeat bounded from above.
func (t Token) AtMost(n int) Quantifier { return t.quantify(modifier.AtMost(n)) }

// Repeat stages a repeat from zero, one or two bounds: no bound fails with
// ErrMissingBound, one bound repeats exactly, two bounds repeat between them.
func (t Token) Repeat(bounds ...int) Quantifier {
	switch len(bounds) {
	case 0:
		return t.quantify(modifier.Quantity{})
	case 1:
		return t.Times(bounds[0])
	case 2:
		return t.Between(bounds[0], bounds[1])
	}

	return Quantifier{tok: t.fail(fmt.Errorf("%w: %d bounds", ErrInvalidRange, len(bounds)))}
}

// Capture stages an unnamed capture group around the next piece.
func (t Token) Capture() Token {
	return t.stage(modifier.Capture{}, 0, true)
}

// CaptureAs stages a named capture group around the next piece.
func (t Token) CaptureAs(name string) Token {
	if !modifier.ValidGroupName(name) {
		return t.fail(fmt.Errorf("%w: %q", ErrInvalidGroupName, name))
	}

	return t.stage(modifier.Capture{Name: name}, 0, true)
}

// Group stages a non-capturing group around the next piece.
func (t Token) Group() Token {
	return t.stage(modifier.Group{Kind: modifier.NonCapturing}, 0, true)
}

// FollowedBy stages a lookahead around the next piece.
func (t Token) FollowedBy() Token {
	return t.stage(modifier.Group{Kind: modifier.Lookahead}, 0, true)
}

// NotFollowedBy stages a negative lookahead around the next piece.
func (t Token) NotFollowedBy() Token {
	return t.stage(modifier.Group{Kind: modifier.NegativeLookahead}, 0, true)
}

// PrecededBy stages a lookbehind around the next piece.
func (t Token) PrecededBy() Token {
	return t.stage(modifier.Group{Kind: modifier.Lookbehind}, 0, true)
}

// NotPrecededBy stages a negative lookbehind around the next piece.
func (t Token) NotPrecededBy() Token {
	return t.stage(modifier.Group{Kind: modifier.NegativeLookbehind}, 0, true)
}
