// Package rex builds regular expressions from named, composable tokens.
//
// A [Token] is an immutable value: every chain call returns a new Token and
// leaves its receiver untouched, so partial expressions can be shared and
// extended in several directions.
//
//	proto := rex.CaptureAs("protocol", rex.OneOf(rex.Exactly("http").Maybe().Exactly("s"), "smtp", "ftp"))
//	re, err := rex.New().LineStart().Then(proto).Exactly("://").OneOrMore().NoneOf("/").Regexp("i")
//
// Prefix operators such as [Token.Not] and [Token.OneOrMore] stage a modifier
// that is applied to the next appended piece. They return restricted chain
// types ([Negation], [Quantifier], [QuantifiedNegation]) that only offer the
// members the staged modifier accepts, so negating a literal or quantifying
// an anchor does not compile.
//
// Errors are sticky: the first failing call is recorded on the Token, every
// later call is a no-op, [Token.String] renders "" and [Token.Source] and
// [Token.Regexp] report the error.
package rex
