package rex

// Free constructors start a new expression. Their arguments form one piece:
// patterns are inserted as rendered, other values are escaped literal text.

// Exactly matches its arguments literally.
func Exactly(v ...any) Literal { return Literal{New().Exactly(v...)} }

// Raw inserts its arguments as pattern syntax, without escaping.
func Raw(v ...any) Token { return New().Raw(v...) }

// Not negates a negatable catalog pattern, keeping its kind.
func Not[P NegatablePattern](p P) P {
	t := New().Not().Then(p)
	return p.rebuild(t).(P)
}

// OneOrMore matches its arguments one or more times.
func OneOrMore(args ...any) Literal { return Literal{New().OneOrMore().token().addArgs(args)} }

// ZeroOrMore matches its arguments any number of times.
func ZeroOrMore(args ...any) Literal { return Literal{New().ZeroOrMore().token().addArgs(args)} }

// Maybe matches its arguments zero or one time.
func Maybe(args ...any) Literal { return Literal{New().Maybe().token().addArgs(args)} }

// Times matches its arguments exactly n times.
func Times(n int, args ...any) Literal { return Literal{New().Times(n).token().addArgs(args)} }

// Between matches its arguments from min to max times.
func Between(min, max int, args ...any) Literal {
	return Literal{New().Between(min, max).token().addArgs(args)}
}

// AtLeast matches its arguments n or more times.
func AtLeast(n int, args ...any) Literal { return Literal{New().AtLeast(n).token().addArgs(args)} }

// AtMost matches its arguments up to n times.
func AtMost(n int, args ...any) Literal { return Literal{New().AtMost(n).token().addArgs(args)} }

// Capture captures its arguments in an unnamed group.
func Capture(args ...any) Literal { return Literal{New().Capture().addArgs(args)} }

// CaptureAs captures its arguments in a named group.
func CaptureAs(name string, args ...any) Literal {
	return Literal{New().CaptureAs(name).addArgs(args)}
}

// Group wraps its arguments in a non-capturing group.
func Group(args ...any) Literal { return Literal{New().Group().addArgs(args)} }

// FollowedBy asserts that its arguments match ahead.
func FollowedBy(args ...any) Token { return New().FollowedBy().addArgs(args) }

// NotFollowedBy asserts that its arguments do not match ahead.
func NotFollowedBy(args ...any) Token { return New().NotFollowedBy().addArgs(args) }

// PrecededBy asserts that its arguments match behind.
func PrecededBy(args ...any) Token { return New().PrecededBy().addArgs(args) }

// NotPrecededBy asserts that its arguments do not match behind.
func NotPrecededBy(args ...any) Token { return New().NotPrecededBy().addArgs(args) }
