// Package modifier implements the transformations applied to pattern
// fragments: quantifiers, negation, capture and group wrappers, and the
// character-class and alternation builders.
//
// A fragment is a syntactically complete, already-escaped piece of a pattern.
// Every modifier is an immutable value, so one may be shared freely between
// diverging builder chains.
package modifier

import "errors"

var (
	// ErrNotQuantifiable indicates an attempt to quantify a zero-width anchor.
	ErrNotQuantifiable = errors.New("not quantifiable")

	// ErrNotNegatable indicates a fragment with no known inverse.
	ErrNotNegatable = errors.New("not negatable")

	// ErrInvalidRange indicates repeat bounds with min > max or a negative
	// bound.
	ErrInvalidRange = errors.New("invalid repeat range")

	// ErrMissingBound indicates a bounded repeat without any bound.
	ErrMissingBound = errors.New("missing repeat bound")

	// ErrUnknownGroupType indicates a group kind outside the known set.
	ErrUnknownGroupType = errors.New("unknown group type")

	// ErrInvalidGroupName indicates a capture name that the engines reject.
	ErrInvalidGroupName = errors.New("invalid group name")
)

// Modifier transforms one fragment into another.
type Modifier interface {
	Apply(fragment string) (string, error)
}

// Chain composes two modifiers. The result applies inner first and wraps the
// outcome with outer. A nil side is dropped.
func Chain(outer, inner Modifier) Modifier {
	switch {
	case outer == nil:
		return inner
	case inner == nil:
		return outer
	}

	return chain{outer: outer, inner: inner}
}

type chain struct {
	outer, inner Modifier
}

func (c chain) Apply(fragment string) (string, error) {
	s, err := c.inner.Apply(fragment)
	if err != nil {
		return "", err
	}

	return c.outer.Apply(s)
}
