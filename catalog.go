package rex

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"go.dw1.io/rex/internal/cast"
	"go.dw1.io/rex/internal/modifier"
)

// Class is a catalog pattern matching one character from a predefined set.
// Classes are both quantifiable and negatable.
type Class struct{ Token }

func (Class) quantifiable()           {}
func (Class) negatable()              {}
func (Class) rebuild(t Token) Pattern { return Class{t} }

// Anchor is a zero-width catalog pattern. Anchors are negatable but not
// quantifiable.
type Anchor struct{ Token }

func (Anchor) negatable()              {}
func (Anchor) rebuild(t Token) Pattern { return Anchor{t} }

// Literal is a quantifiable catalog pattern: escaped text, groups,
// alternations, bracket expressions and back-references.
type Literal struct{ Token }

func (Literal) quantifiable() {}

const classCaps = Quantifiable | Negatable

var (
	Digit          = Class{token(`\d`, classCaps)}
	WordChar       = Class{token(`\w`, classCaps)}
	Whitespace     = Class{token(`\s`, classCaps)}
	NonDigit       = Class{token(`\D`, classCaps)}
	NonWordChar    = Class{token(`\W`, classCaps)}
	NonWhitespace  = Class{token(`\S`, classCaps)}
	Tab            = Class{token(`\t`, classCaps)}
	Newline        = Class{token(`\n`, classCaps)}
	CarriageReturn = Class{token(`\r`, classCaps)}
	VerticalTab    = Class{token(`\v`, classCaps)}
	NullChar       = Class{token(`\0`, classCaps)}

	// AnyChar matches any character but a line terminator, or any
	// character at all under the s flag.
	AnyChar = Literal{token(".", Quantifiable)}

	LineStart       = Anchor{token("^", Negatable)}
	LineEnd         = Anchor{token("$", Negatable)}
	WordBoundary    = Anchor{token(`\b`, Negatable)}
	NonWordBoundary = Anchor{token(`\B`, Negatable)}
)

// Unicode matches the code point r, rendered as a \x{...} escape.
func Unicode(r rune) Class {
	if r < 0 || r > utf8.MaxRune {
		return Class{failed(fmt.Errorf("%w: code point %#x", ErrInvalidLiteral, r))}
	}

	return Class{token(fmt.Sprintf(`\x{%04x}`, r), classCaps)}
}

// OneOf matches any of the options, tried left to right. Plain values are
// escaped; patterns are inserted as rendered.
func OneOf(options ...any) Literal {
	opts, err := renderEach(options)
	if err != nil {
		return Literal{failed(err)}
	}

	return Literal{token(modifier.Alternation{}.Build(opts...), Quantifiable)}
}

// AnyOf matches one character listed by the options. A plain option is
// either a three-character range such as "a-z" or a run of literal
// characters; a rune is one literal character. A pattern option must stand
// for one character: a class such as [Digit], a one-character literal, or a
// non-negated bracket expression such as a [Range], whose members are merged
// in. Other patterns fail with [ErrInvalidLiteral].
func AnyOf(options ...any) Literal {
	return class(false, options)
}

// NoneOf matches one character not listed by the options.
func NoneOf(options ...any) Literal {
	return class(true, options)
}

func class(negated bool, options []any) Literal {
	opts := make([]any, 0, len(options))
	for _, o := range options {
		switch v := o.(type) {
		case Pattern:
			if err := v.Err(); err != nil {
				return Literal{failed(err)}
			}

			m, ok := modifier.ClassMember(v.String())
			if !ok {
				return Literal{failed(fmt.Errorf("%w: %q has no character class form", ErrInvalidLiteral, v.String()))}
			}
			opts = append(opts, m)
			continue
		case rune:
			opts = append(opts, string(v))
			continue
		}

		s, err := cast.String(o)
		if err != nil {
			return Literal{failed(fmt.Errorf("%w: %v", ErrInvalidLiteral, err))}
		}
		opts = append(opts, s)
	}

	return Literal{token(modifier.Class{Negated: negated}.Build(opts...), Quantifiable)}
}

// Range matches one character between from and to inclusive. Both ends must
// convert to single characters.
func Range(from, to any) Literal {
	lo, err := endpoint(from)
	if err != nil {
		return Literal{failed(err)}
	}

	hi, err := endpoint(to)
	if err != nil {
		return Literal{failed(err)}
	}

	if lo > hi {
		return Literal{failed(fmt.Errorf("%w: %q-%q", ErrInvalidRange, lo, hi))}
	}

	return Literal{token(modifier.Class{}.Build(string(lo)+"-"+string(hi)), Quantifiable)}
}

func endpoint(v any) (rune, error) {
	if r, ok := v.(rune); ok {
		return r, nil
	}

	s, err := cast.String(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidLiteral, err)
	}

	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: range endpoint %q is not one character", ErrInvalidRange, s)
	}

	r, _ := utf8.DecodeRuneInString(s)

	return r, nil
}

// Backreference matches the text of capture group n, counted from 1.
func Backreference(n int) Literal {
	if n < 1 {
		return Literal{failed(fmt.Errorf("%w: group %d", ErrInvalidGroupName, n))}
	}

	return Literal{token(`\k<`+strconv.Itoa(n)+`>`, Quantifiable)}
}

// NamedBackreference matches the text of the named capture group.
func NamedBackreference(name string) Literal {
	if !modifier.ValidGroupName(name) {
		return Literal{failed(fmt.Errorf("%w: %q", ErrInvalidGroupName, name))}
	}

	return Literal{token(`\k<`+name+`>`, Quantifiable)}
}

func renderEach(options []any) ([]string, error) {
	out := make([]string, len(options))
	for i, o := range options {
		s, _, err := render([]any{o})
		if err != nil {
			return nil, err
		}
		out[i] = s
	}

	return out, nil
}

func (t Token) Digit() Token          { return t.addPattern(Digit) }
func (t Token) WordChar() Token       { return t.addPattern(WordChar) }
func (t Token) Whitespace() Token     { return t.addPattern(Whitespace) }
func (t Token) NonDigit() Token       { return t.addPattern(NonDigit) }
func (t Token) NonWordChar() Token    { return t.addPattern(NonWordChar) }
func (t Token) NonWhitespace() Token  { return t.addPattern(NonWhitespace) }
func (t Token) Tab() Token            { return t.addPattern(Tab) }
func (t Token) Newline() Token        { return t.addPattern(Newline) }
func (t Token) CarriageReturn() Token { return t.addPattern(CarriageReturn) }
func (t Token) VerticalTab() Token    { return t.addPattern(VerticalTab) }
func (t Token) NullChar() Token       { return t.addPattern(NullChar) }
func (t Token) Unicode(r rune) Token  { return t.addPattern(Unicode(r)) }

func (t Token) AnyChar() Token { return t.addPattern(AnyChar) }

func (t Token) LineStart() Token       { return t.addPattern(LineStart) }
func (t Token) LineEnd() Token         { return t.addPattern(LineEnd) }
func (t Token) WordBoundary() Token    { return t.addPattern(WordBoundary) }
func (t Token) NonWordBoundary() Token { return t.addPattern(NonWordBoundary) }

func (t Token) OneOf(options ...any) Token  { return t.addPattern(OneOf(options...)) }
func (t Token) AnyOf(options ...any) Token  { return t.addPattern(AnyOf(options...)) }
func (t Token) NoneOf(options ...any) Token { return t.addPattern(NoneOf(options...)) }
func (t Token) Range(from, to any) Token    { return t.addPattern(Range(from, to)) }

func (t Token) Backreference(n int) Token { return t.addPattern(Backreference(n)) }

func (t Token) NamedBackreference(name string) Token {
	return t.addPattern(NamedBackreference(name))
}
