package rex

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"go.dw1.io/rex/internal/literal"
)

// Definition describes a custom token. Exactly one of Pattern and Func must
// be set. Pattern is a constant inserted verbatim: a string, a [Template] or
// a [Pattern]. Func computes the pattern from call arguments and is
// validated on every call; it may return an error to reject the arguments.
type Definition struct {
	Pattern      any
	Func         func(args ...any) any
	Capabilities Capability
}

// Custom is a registered custom token. Append one with [Token.Call].
type Custom struct {
	name     string
	def      Definition
	constant string
}

// Name returns the registered name.
func (c *Custom) Name() string { return c.name }

// Capabilities returns the declared capability set.
func (c *Custom) Capabilities() Capability { return c.def.Capabilities }

func (c *Custom) render(args ...any) (string, error) {
	if c.def.Func == nil {
		return c.constant, nil
	}

	s, err := customFragment(c.def.Func(args...))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrInvalidTokenDefinition, c.name, err)
	}

	return s, nil
}

func customFragment(v any) (string, error) {
	switch p := v.(type) {
	case nil:
		return "", ErrInvalidLiteral
	case error:
		return "", p
	case Pattern:
		if err := p.Err(); err != nil {
			return "", err
		}

		return p.String(), nil
	}

	return literal.Normalize(v)
}

// Registry holds custom tokens by name. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	tokens map[string]*Custom
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{tokens: make(map[string]*Custom)}
}

// Define registers a custom token. Constant patterns are rendered once, here.
func (r *Registry) Define(name string, def Definition) (*Custom, error) {
	switch {
	case name == "":
		return nil, fmt.Errorf("%w: empty name", ErrInvalidTokenDefinition)
	case def.Pattern == nil && def.Func == nil:
		return nil, fmt.Errorf("%w: %q", ErrNoValidConfiguration, name)
	case def.Pattern != nil && def.Func != nil:
		return nil, fmt.Errorf("%w: %q: both pattern and func set", ErrInvalidTokenDefinition, name)
	}

	c := &Custom{name: name, def: def}
	if def.Func == nil {
		s, err := customFragment(def.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidTokenDefinition, name, err)
		}

		if s == "" {
			return nil, fmt.Errorf("%w: %q: empty pattern", ErrInvalidTokenDefinition, name)
		}

		c.constant = s
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tokens[name]; ok {
		return nil, fmt.Errorf("%w: %q already defined", ErrInvalidTokenDefinition, name)
	}

	r.tokens[name] = c

	return c, nil
}

// Lookup returns the custom token registered as name.
func (r *Registry) Lookup(name string) (*Custom, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.tokens[name]

	return c, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.tokens))
}

// Call appends the custom token rendered with args.
func (t Token) Call(c *Custom, args ...any) Token {
	if t.err != nil {
		return t
	}

	if c == nil {
		return t.fail(fmt.Errorf("%w: nil custom token", ErrUnknownToken))
	}

	s, err := c.render(args...)
	if err != nil {
		return t.fail(err)
	}

	return t.add(s, c.def.Capabilities)
}

// Use appends the custom token registered in r as name.
func (t Token) Use(r *Registry, name string, args ...any) Token {
	if t.err != nil {
		return t
	}

	var (
		c  *Custom
		ok bool
	)
	if r != nil {
		c, ok = r.Lookup(name)
	}

	if !ok {
		return t.fail(fmt.Errorf("%w: %q", ErrUnknownToken, name))
	}

	return t.Call(c, args...)
}
