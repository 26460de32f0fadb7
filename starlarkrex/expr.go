package starlarkrex

import (
	"fmt"
	"slices"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"go.dw1.io/rex"
)

// Expr is the Starlark value of a built expression.
type Expr struct {
	p rex.Pattern
}

func newExpr(p rex.Pattern) *Expr {
	return &Expr{p: p}
}

// Pattern returns the wrapped pattern.
func (e *Expr) Pattern() rex.Pattern { return e.p }

var (
	_ starlark.Value      = (*Expr)(nil)
	_ starlark.HasAttrs   = (*Expr)(nil)
	_ starlark.Comparable = (*Expr)(nil)
)

func (e *Expr) String() string        { return fmt.Sprintf("rex.expr(%q)", e.p.String()) }
func (e *Expr) Type() string          { return "rex.expr" }
func (e *Expr) Freeze()               {}
func (e *Expr) Truth() starlark.Bool  { return e.p.String() != "" }
func (e *Expr) Hash() (uint32, error) { return starlark.String(e.p.String()).Hash() }

var exprMethods = map[string]*starlark.Builtin{
	"then":    starlark.NewBuiltin("then", exprThen),
	"exactly": starlark.NewBuiltin("exactly", exprExactly),
	"raw":     starlark.NewBuiltin("raw", exprRaw),
	"matches": starlark.NewBuiltin("matches", exprMatches),
	"find":    starlark.NewBuiltin("find", exprFind),
}

var exprMembers = map[string]func(e *Expr) starlark.Value{
	"pattern":      func(e *Expr) starlark.Value { return starlark.String(e.p.String()) },
	"quantifiable": func(e *Expr) starlark.Value { return starlark.Bool(e.p.Capabilities().Has(rex.Quantifiable)) },
	"negatable":    func(e *Expr) starlark.Value { return starlark.Bool(e.p.Capabilities().Has(rex.Negatable)) },
}

func (e *Expr) Attr(name string) (starlark.Value, error) {
	if o, ok := exprMethods[name]; ok {
		return o.BindReceiver(e), nil
	}

	if o, ok := exprMembers[name]; ok {
		return o(e), nil
	}

	return nil, nil
}

func (e *Expr) AttrNames() []string {
	names := make([]string, 0, len(exprMethods)+len(exprMembers))
	for name := range exprMethods {
		names = append(names, name)
	}
	for name := range exprMembers {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

func (e *Expr) CompareSameType(op syntax.Token, y starlark.Value, _ int) (bool, error) {
	o := y.(*Expr)

	switch op {
	case syntax.EQL:
		return e.p.String() == o.p.String(), nil
	case syntax.NEQ:
		return e.p.String() != o.p.String(), nil
	default:
		return false, fmt.Errorf("%s %s %s not implemented", e.Type(), op, o.Type())
	}
}

// token returns the expression as a chainable Token.
func (e *Expr) token() rex.Token {
	switch p := e.p.(type) {
	case rex.Token:
		return p
	case rex.Class:
		return p.Token
	case rex.Anchor:
		return p.Token
	case rex.Literal:
		return p.Token
	}

	return rex.New().Then(e.p)
}

// exprThen appends expressions; plain strings match literally.
func exprThen(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) > 0 {
		return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
	}

	v, err := fromStarlark(b.Name(), args)
	if err != nil {
		return nil, err
	}

	patterns := make([]rex.Pattern, len(v))
	for i, a := range v {
		if p, ok := a.(rex.Pattern); ok {
			patterns[i] = p
			continue
		}
		patterns[i] = rex.Exactly(a)
	}

	return result(b.Name(), b.Receiver().(*Expr).token().Then(patterns...))
}

func exprExactly(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) > 0 {
		return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
	}

	v, err := fromStarlark(b.Name(), args)
	if err != nil {
		return nil, err
	}

	return result(b.Name(), b.Receiver().(*Expr).token().Exactly(v...))
}

func exprRaw(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) > 0 {
		return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
	}

	v, err := fromStarlark(b.Name(), args)
	if err != nil {
		return nil, err
	}

	return result(b.Name(), b.Receiver().(*Expr).token().Raw(v...))
}

func exprMatches(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var s, flags string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "s", &s, "flags?", &flags); err != nil {
		return nil, err
	}

	re, err := b.Receiver().(*Expr).token().Regexp(flags)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}

	return starlark.Bool(re.MatchString(s)), nil
}

// exprFind returns the leftmost match, or None.
func exprFind(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var s, flags string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "s", &s, "flags?", &flags); err != nil {
		return nil, err
	}

	re, err := b.Receiver().(*Expr).token().Regexp(flags)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}

	loc := re.FindStringIndex(s)
	if loc == nil {
		return starlark.None, nil
	}

	return starlark.String(s[loc[0]:loc[1]]), nil
}
