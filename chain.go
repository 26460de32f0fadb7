package rex

import (
	"fmt"

	"go.dw1.io/rex/internal/modifier"
)

// Negation is a Token with a staged negation. Only negatable members can
// follow.
type Negation struct {
	tok Token
}

// Not stages another negation, inside the current one.
func (n Negation) Not() Negation {
	return n.tok.Not()
}

// Then appends p negated.
func (n Negation) Then(p NegatablePattern) Token { return n.tok.addPattern(p) }

// Call appends the custom token negated. The custom token must declare the
// Negatable capability.
func (n Negation) Call(c *Custom, args ...any) Token { return n.tok.Call(c, args...) }

// Use appends the custom token registered in r as name, negated.
func (n Negation) Use(r *Registry, name string, args ...any) Token {
	return n.tok.Use(r, name, args...)
}

func (n Negation) Digit() Token          { return n.tok.Digit() }
func (n Negation) WordChar() Token       { return n.tok.WordChar() }
func (n Negation) Whitespace() Token     { return n.tok.Whitespace() }
func (n Negation) NonDigit() Token       { return n.tok.NonDigit() }
func (n Negation) NonWordChar() Token    { return n.tok.NonWordChar() }
func (n Negation) NonWhitespace() Token  { return n.tok.NonWhitespace() }
func (n Negation) Tab() Token            { return n.tok.Tab() }
func (n Negation) Newline() Token        { return n.tok.Newline() }
func (n Negation) CarriageReturn() Token { return n.tok.CarriageReturn() }
func (n Negation) VerticalTab() Token    { return n.tok.VerticalTab() }
func (n Negation) NullChar() Token       { return n.tok.NullChar() }
func (n Negation) Unicode(r rune) Token  { return n.tok.Unicode(r) }

func (n Negation) LineStart() Token       { return n.tok.LineStart() }
func (n Negation) LineEnd() Token         { return n.tok.LineEnd() }
func (n Negation) WordBoundary() Token    { return n.tok.WordBoundary() }
func (n Negation) NonWordBoundary() Token { return n.tok.NonWordBoundary() }

// Quantifier is a Token with a staged repetition. Only quantifiable members
// can follow.
type Quantifier struct {
	tok Token
	q   modifier.Quantity

	// Modifiers staged after the repetition, applied before it.
	inner modifier.Modifier
}

func (q Quantifier) token() Token {
	return q.tok.stage(modifier.Chain(q.q, q.inner), Quantifiable, true)
}

func (q Quantifier) within(m modifier.Modifier) Quantifier {
	q.inner = modifier.Chain(q.inner, m)
	return q
}

// Lazy makes the staged repetition match as few times as possible.
func (q Quantifier) Lazy() Quantifier {
	q.q = q.q.Lazy()
	return q
}

// Capture repeats an unnamed capture group.
func (q Quantifier) Capture() Quantifier {
	return q.within(modifier.Capture{})
}

// CaptureAs repeats a named capture group.
func (q Quantifier) CaptureAs(name string) Quantifier {
	if !modifier.ValidGroupName(name) {
		q.tok = q.tok.fail(fmt.Errorf("%w: %q", ErrInvalidGroupName, name))
		return q
	}

	return q.within(modifier.Capture{Name: name})
}

// Group repeats a non-capturing group.
func (q Quantifier) Group() Quantifier {
	return q.within(modifier.Group{Kind: modifier.NonCapturing})
}

// Not repeats the negation of the next piece.
func (q Quantifier) Not() QuantifiedNegation {
	return QuantifiedNegation{tok: q.token().stage(modifier.Negate{}, Negatable, false)}
}

// Then appends p repeated.
func (q Quantifier) Then(p QuantifiablePattern) Token { return q.token().addPattern(p) }

// Call appends the custom token repeated. The custom token must declare the
// Quantifiable capability.
func (q Quantifier) Call(c *Custom, args ...any) Token { return q.token().Call(c, args...) }

// Use appends the custom token registered in r as name, repeated.
func (q Quantifier) Use(r *Registry, name string, args ...any) Token {
	return q.token().Use(r, name, args...)
}

func (q Quantifier) Digit() Token          { return q.token().Digit() }
func (q Quantifier) WordChar() Token       { return q.token().WordChar() }
func (q Quantifier) Whitespace() Token     { return q.token().Whitespace() }
func (q Quantifier) NonDigit() Token       { return q.token().NonDigit() }
func (q Quantifier) NonWordChar() Token    { return q.token().NonWordChar() }
func (q Quantifier) NonWhitespace() Token  { return q.token().NonWhitespace() }
func (q Quantifier) Tab() Token            { return q.token().Tab() }
func (q Quantifier) Newline() Token        { return q.token().Newline() }
func (q Quantifier) CarriageReturn() Token { return q.token().CarriageReturn() }
func (q Quantifier) VerticalTab() Token    { return q.token().VerticalTab() }
func (q Quantifier) NullChar() Token       { return q.token().NullChar() }
func (q Quantifier) Unicode(r rune) Token  { return q.token().Unicode(r) }

func (q Quantifier) AnyChar() Token                       { return q.token().AnyChar() }
func (q Quantifier) Exactly(v ...any) Token               { return q.token().Exactly(v...) }
func (q Quantifier) OneOf(options ...any) Token           { return q.token().OneOf(options...) }
func (q Quantifier) AnyOf(options ...any) Token           { return q.token().AnyOf(options...) }
func (q Quantifier) NoneOf(options ...any) Token          { return q.token().NoneOf(options...) }
func (q Quantifier) Range(from, to any) Token             { return q.token().Range(from, to) }
func (q Quantifier) Backreference(n int) Token            { return q.token().Backreference(n) }
func (q Quantifier) NamedBackreference(name string) Token { return q.token().NamedBackreference(name) }

// QuantifiedNegation is a Token with a staged repetition of a negation. Only
// members that are both quantifiable and negatable can follow.
type QuantifiedNegation struct {
	tok Token
}

// Not stages another negation, inside the current one.
func (qn QuantifiedNegation) Not() QuantifiedNegation {
	return QuantifiedNegation{tok: qn.tok.stage(modifier.Negate{}, Negatable, false)}
}

// Then appends p negated and repeated.
func (qn QuantifiedNegation) Then(p ClassPattern) Token { return qn.tok.addPattern(p) }

// Call appends the custom token negated and repeated.
func (qn QuantifiedNegation) Call(c *Custom, args ...any) Token { return qn.tok.Call(c, args...) }

// Use appends the custom token registered in r as name, negated and repeated.
func (qn QuantifiedNegation) Use(r *Registry, name string, args ...any) Token {
	return qn.tok.Use(r, name, args...)
}

func (qn QuantifiedNegation) Digit() Token          { return qn.tok.Digit() }
func (qn QuantifiedNegation) WordChar() Token       { return qn.tok.WordChar() }
func (qn QuantifiedNegation) Whitespace() Token     { return qn.tok.Whitespace() }
func (qn QuantifiedNegation) NonDigit() Token       { return qn.tok.NonDigit() }
func (qn QuantifiedNegation) NonWordChar() Token    { return qn.tok.NonWordChar() }
func (qn QuantifiedNegation) NonWhitespace() Token  { return qn.tok.NonWhitespace() }
func (qn QuantifiedNegation) Tab() Token            { return qn.tok.Tab() }
func (qn QuantifiedNegation) Newline() Token        { return qn.tok.Newline() }
func (qn QuantifiedNegation) CarriageReturn() Token { return qn.tok.CarriageReturn() }
func (qn QuantifiedNegation) VerticalTab() Token    { return qn.tok.VerticalTab() }
func (qn QuantifiedNegation) NullChar() Token       { return qn.tok.NullChar() }
func (qn QuantifiedNegation) Unicode(r rune) Token  { return qn.tok.Unicode(r) }
