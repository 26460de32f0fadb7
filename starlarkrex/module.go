// Package starlarkrex exposes the rex builder to Starlark scripts.
//
//	predeclared := starlark.StringDict{"rex": starlarkrex.NewModule()}
//
// Scripts then build expressions with the same vocabulary as the Go API:
//
//	ip = rex.capture_as("octet", rex.between(1, 3, rex.digit))
//	ok = rex.exactly("v").then(rex.one_or_more(rex.digit)).matches("v12")
package starlarkrex

import (
	"fmt"
	"unicode/utf8"

	"go.starlark.net/starlark"

	"go.dw1.io/rex"
	"go.dw1.io/rex/internal/cast"
)

// Module is the Starlark value of the rex module. Custom tokens defined by a
// script are kept in the module's own registry.
type Module struct {
	members  starlark.StringDict
	registry *rex.Registry
}

// NewModule returns a module backed by a fresh registry.
func NewModule() *Module {
	return NewModuleWithRegistry(rex.NewRegistry())
}

// NewModuleWithRegistry returns a module whose define and use builtins work
// on r, so that scripts can share custom tokens with Go code. Custom token
// functions called through use receive the calling *starlark.Thread as their
// first argument, followed by the Starlark arguments.
func NewModuleWithRegistry(r *rex.Registry) *Module {
	members := starlark.StringDict{
		"digit":             newExpr(rex.Digit),
		"word_char":         newExpr(rex.WordChar),
		"whitespace":        newExpr(rex.Whitespace),
		"non_digit":         newExpr(rex.NonDigit),
		"non_word_char":     newExpr(rex.NonWordChar),
		"non_whitespace":    newExpr(rex.NonWhitespace),
		"tab":               newExpr(rex.Tab),
		"newline":           newExpr(rex.Newline),
		"carriage_return":   newExpr(rex.CarriageReturn),
		"vertical_tab":      newExpr(rex.VerticalTab),
		"null_char":         newExpr(rex.NullChar),
		"any_char":          newExpr(rex.AnyChar),
		"line_start":        newExpr(rex.LineStart),
		"line_end":          newExpr(rex.LineEnd),
		"word_boundary":     newExpr(rex.WordBoundary),
		"non_word_boundary": newExpr(rex.NonWordBoundary),

		"exactly":         starlark.NewBuiltin("exactly", variadic(func(v ...any) rex.Pattern { return rex.Exactly(v...) })),
		"raw":             starlark.NewBuiltin("raw", variadic(func(v ...any) rex.Pattern { return rex.Raw(v...) })),
		"one_or_more":     starlark.NewBuiltin("one_or_more", variadic(func(v ...any) rex.Pattern { return rex.OneOrMore(v...) })),
		"zero_or_more":    starlark.NewBuiltin("zero_or_more", variadic(func(v ...any) rex.Pattern { return rex.ZeroOrMore(v...) })),
		"maybe":           starlark.NewBuiltin("maybe", variadic(func(v ...any) rex.Pattern { return rex.Maybe(v...) })),
		"capture":         starlark.NewBuiltin("capture", variadic(func(v ...any) rex.Pattern { return rex.Capture(v...) })),
		"group":           starlark.NewBuiltin("group", variadic(func(v ...any) rex.Pattern { return rex.Group(v...) })),
		"followed_by":     starlark.NewBuiltin("followed_by", variadic(func(v ...any) rex.Pattern { return rex.FollowedBy(v...) })),
		"not_followed_by": starlark.NewBuiltin("not_followed_by", variadic(func(v ...any) rex.Pattern { return rex.NotFollowedBy(v...) })),
		"preceded_by":     starlark.NewBuiltin("preceded_by", variadic(func(v ...any) rex.Pattern { return rex.PrecededBy(v...) })),
		"not_preceded_by": starlark.NewBuiltin("not_preceded_by", variadic(func(v ...any) rex.Pattern { return rex.NotPrecededBy(v...) })),
		"one_of":          starlark.NewBuiltin("one_of", variadic(func(v ...any) rex.Pattern { return rex.OneOf(v...) })),
		"any_of":          starlark.NewBuiltin("any_of", variadic(func(v ...any) rex.Pattern { return rex.AnyOf(v...) })),
		"none_of":         starlark.NewBuiltin("none_of", variadic(func(v ...any) rex.Pattern { return rex.NoneOf(v...) })),

		"times":    starlark.NewBuiltin("times", bounded(func(n int, v ...any) rex.Pattern { return rex.Times(n, v...) })),
		"at_least": starlark.NewBuiltin("at_least", bounded(func(n int, v ...any) rex.Pattern { return rex.AtLeast(n, v...) })),
		"at_most":  starlark.NewBuiltin("at_most", bounded(func(n int, v ...any) rex.Pattern { return rex.AtMost(n, v...) })),
		"between":  starlark.NewBuiltin("between", between),
		"repeat":   starlark.NewBuiltin("repeat", repeat),

		"capture_as":    starlark.NewBuiltin("capture_as", captureAs),
		"negate":        starlark.NewBuiltin("negate", negate),
		"range":         starlark.NewBuiltin("range", charRange),
		"unicode":       starlark.NewBuiltin("unicode", unicode),
		"backreference": starlark.NewBuiltin("backreference", backreference),

		"define": starlark.NewBuiltin("define", define),
		"use":    starlark.NewBuiltin("use", use),
	}

	return &Module{members: members, registry: r}
}

var (
	_ starlark.Value    = (*Module)(nil)
	_ starlark.HasAttrs = (*Module)(nil)
)

func (m *Module) Freeze()               { m.members.Freeze() }
func (m *Module) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable: %s", m.Type()) }
func (m *Module) String() string        { return "<module rex>" }
func (m *Module) Truth() starlark.Bool  { return true }
func (m *Module) Type() string          { return "module" }

func (m *Module) Attr(name string) (starlark.Value, error) {
	if v, ok := m.members[name]; ok {
		if b, ok := v.(*starlark.Builtin); ok {
			return b.BindReceiver(m), nil
		}

		return v, nil
	}

	return nil, nil
}

func (m *Module) AttrNames() []string { return m.members.Keys() }

type builtinFunc = func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error)

// variadic adapts a free constructor taking builder arguments.
func variadic(fn func(v ...any) rex.Pattern) builtinFunc {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if len(kwargs) > 0 {
			return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
		}

		v, err := fromStarlark(b.Name(), args)
		if err != nil {
			return nil, err
		}

		return result(b.Name(), fn(v...))
	}
}

// bounded adapts a free constructor taking one repeat bound first.
func bounded(fn func(n int, v ...any) rex.Pattern) builtinFunc {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if len(kwargs) > 0 {
			return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
		}

		if len(args) == 0 {
			return nil, fmt.Errorf("%s: missing bound: %w", b.Name(), rex.ErrMissingBound)
		}

		n, err := toInt(b.Name(), args[0])
		if err != nil {
			return nil, err
		}

		v, err := fromStarlark(b.Name(), args[1:])
		if err != nil {
			return nil, err
		}

		return result(b.Name(), fn(n, v...))
	}
}

func between(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) > 0 {
		return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
	}

	if len(args) < 2 {
		return nil, fmt.Errorf("%s: missing bound: %w", b.Name(), rex.ErrMissingBound)
	}

	lo, err := toInt(b.Name(), args[0])
	if err != nil {
		return nil, err
	}

	hi, err := toInt(b.Name(), args[1])
	if err != nil {
		return nil, err
	}

	v, err := fromStarlark(b.Name(), args[2:])
	if err != nil {
		return nil, err
	}

	return result(b.Name(), rex.Between(lo, hi, v...))
}

// repeat takes the bounds as keywords: repeat(rex.digit, min=1, max=3).
func repeat(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var lo, hi starlark.Value = starlark.None, starlark.None
	if err := starlark.UnpackArgs(b.Name(), nil, kwargs, "min?", &lo, "max?", &hi); err != nil {
		return nil, err
	}

	v, err := fromStarlark(b.Name(), args)
	if err != nil {
		return nil, err
	}

	var p rex.Pattern
	switch {
	case lo == starlark.None && hi == starlark.None:
		return nil, fmt.Errorf("%s: %w", b.Name(), rex.ErrMissingBound)
	case hi == starlark.None:
		n, err := toInt(b.Name(), lo)
		if err != nil {
			return nil, err
		}
		p = rex.AtLeast(n, v...)
	case lo == starlark.None:
		n, err := toInt(b.Name(), hi)
		if err != nil {
			return nil, err
		}
		p = rex.AtMost(n, v...)
	default:
		n, err := toInt(b.Name(), lo)
		if err != nil {
			return nil, err
		}
		m, err := toInt(b.Name(), hi)
		if err != nil {
			return nil, err
		}
		p = rex.Between(n, m, v...)
	}

	return result(b.Name(), p)
}

func captureAs(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) > 0 {
		return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("%s: missing group name", b.Name())
	}

	name, ok := starlark.AsString(args[0])
	if !ok {
		return nil, fmt.Errorf("%s: group name must be a string, not %s", b.Name(), args[0].Type())
	}

	v, err := fromStarlark(b.Name(), args[1:])
	if err != nil {
		return nil, err
	}

	return result(b.Name(), rex.CaptureAs(name, v...))
}

func negate(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var e *Expr
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &e); err != nil {
		return nil, err
	}

	var p rex.Pattern
	switch v := e.p.(type) {
	case rex.Class:
		p = rex.Not(v)
	case rex.Anchor:
		p = rex.Not(v)
	default:
		return nil, fmt.Errorf("%s: %w: %s", b.Name(), rex.ErrNotNegatable, e.p)
	}

	return result(b.Name(), p)
}

func charRange(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var from, to string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &from, &to); err != nil {
		return nil, err
	}

	return result(b.Name(), rex.Range(from, to))
}

// unicode accepts a code point number or a one-character string.
func unicode(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var v starlark.Value
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &v); err != nil {
		return nil, err
	}

	if s, ok := starlark.AsString(v); ok {
		r := []rune(s)
		if len(r) != 1 {
			return nil, fmt.Errorf("%s: %w: %q is not one character", b.Name(), rex.ErrInvalidLiteral, s)
		}

		return result(b.Name(), rex.Unicode(r[0]))
	}

	i, ok := v.(starlark.Int)
	if !ok {
		return nil, fmt.Errorf("%s: got %s, want int or string", b.Name(), v.Type())
	}

	i64, ok := i.Int64()
	if !ok || i64 > utf8.MaxRune {
		return nil, fmt.Errorf("%s: %w: code point %s out of range", b.Name(), rex.ErrInvalidLiteral, i)
	}

	n, err := cast.NonNegative(i64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", b.Name(), rex.ErrInvalidLiteral, err)
	}

	return result(b.Name(), rex.Unicode(rune(n)))
}

// backreference accepts a group number or a group name.
func backreference(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var v starlark.Value
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &v); err != nil {
		return nil, err
	}

	g, err := toGo(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}

	if cast.IsInteger(g) {
		n, err := cast.Int(g)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}

		return result(b.Name(), rex.Backreference(n))
	}

	name, ok := g.(string)
	if !ok {
		return nil, fmt.Errorf("%s: got %s, want int or string", b.Name(), v.Type())
	}

	return result(b.Name(), rex.NamedBackreference(name))
}

// define registers a custom token. A callable pattern is called by use with
// the use arguments and must return a string or an expr.
func define(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		name                    string
		pattern                 starlark.Value
		quantifiable, negatable bool
	)
	if err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"name", &name, "pattern", &pattern, "quantifiable?", &quantifiable, "negatable?", &negatable); err != nil {
		return nil, err
	}

	var def rex.Definition
	if quantifiable {
		def.Capabilities |= rex.Quantifiable
	}
	if negatable {
		def.Capabilities |= rex.Negatable
	}

	if fn, ok := pattern.(starlark.Callable); ok {
		def.Func = callable(fn)
	} else {
		v, err := toGo(pattern)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %q: %w", b.Name(), rex.ErrInvalidTokenDefinition, name, err)
		}
		def.Pattern = v
	}

	m := b.Receiver().(*Module)
	if _, err := m.registry.Define(name, def); err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}

	return starlark.None, nil
}

// callable wraps a Starlark function as a custom token function. Calls made
// through use pass the calling thread as the first argument; calls from Go
// run on a fresh thread with their arguments converted to Starlark values.
func callable(fn starlark.Callable) func(args ...any) any {
	return func(args ...any) any {
		thread, ok := firstThread(args)
		if ok {
			args = args[1:]
		} else {
			thread = &starlark.Thread{Name: "rex " + fn.Name()}
		}

		tuple := make(starlark.Tuple, 0, len(args))
		for _, a := range args {
			v, err := toStarlark(a)
			if err != nil {
				return err
			}
			tuple = append(tuple, v)
		}

		out, err := starlark.Call(thread, fn, tuple, nil)
		if err != nil {
			return err
		}

		v, err := toGo(out)
		if err != nil {
			return err
		}

		return v
	}
}

func use(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) > 0 {
		return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("%s: missing token name", b.Name())
	}

	name, ok := starlark.AsString(args[0])
	if !ok {
		return nil, fmt.Errorf("%s: token name must be a string, not %s", b.Name(), args[0].Type())
	}

	callArgs := make([]any, 0, len(args))
	callArgs = append(callArgs, thread)
	for _, a := range args[1:] {
		callArgs = append(callArgs, a)
	}

	m := b.Receiver().(*Module)

	return result(b.Name(), rex.New().Use(m.registry, name, callArgs...))
}

func result(name string, p rex.Pattern) (starlark.Value, error) {
	if err := p.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return newExpr(p), nil
}

func toInt(name string, v starlark.Value) (int, error) {
	g, err := toGo(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}

	if !cast.IsInteger(g) {
		return 0, fmt.Errorf("%s: got %s, want int", name, v.Type())
	}

	n, err := cast.Int(g)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}

	return n, nil
}

func fromStarlark(name string, args starlark.Tuple) ([]any, error) {
	out := make([]any, len(args))
	for i, a := range args {
		v, err := toGo(a)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", name, i+1, err)
		}
		out[i] = v
	}

	return out, nil
}

func firstThread(args []any) (*starlark.Thread, bool) {
	if len(args) == 0 {
		return nil, false
	}

	thread, ok := args[0].(*starlark.Thread)

	return thread, ok && thread != nil
}

// toStarlark converts a custom token argument to a Starlark value.
func toStarlark(v any) (starlark.Value, error) {
	switch v := v.(type) {
	case starlark.Value:
		return v, nil
	case rex.Pattern:
		return newExpr(v), nil
	case string:
		return starlark.String(v), nil
	case bool:
		return starlark.Bool(v), nil
	case float64:
		return starlark.Float(v), nil
	}

	if cast.IsInteger(v) {
		n, err := cast.Int(v)
		if err != nil {
			return nil, err
		}
		return starlark.MakeInt(n), nil
	}

	return nil, fmt.Errorf("%w: unsupported argument %T", rex.ErrInvalidLiteral, v)
}

// toGo converts a Starlark value to a builder argument.
func toGo(v starlark.Value) (any, error) {
	switch v := v.(type) {
	case *Expr:
		return v.p, nil
	case starlark.String:
		return string(v), nil
	case starlark.Int:
		if i, ok := v.Int64(); ok {
			return i, nil
		}
		return nil, fmt.Errorf("%w: integer %s out of range", rex.ErrInvalidLiteral, v)
	case starlark.Bool:
		return bool(v), nil
	case starlark.Float:
		return float64(v), nil
	}

	return nil, fmt.Errorf("%w: unsupported %s", rex.ErrInvalidLiteral, v.Type())
}
