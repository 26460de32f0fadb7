package modifier

import (
	"fmt"
	"strconv"
)

// Kind identifies the shape of a [Quantity].
type Kind uint8

const (
	// Bounded repeats between explicit bounds. The zero Quantity is an
	// unbounded Bounded quantity and fails with ErrMissingBound.
	Bounded Kind = iota
	// OneOrMoreKind renders +.
	OneOrMoreKind
	// ZeroOrMoreKind renders *.
	ZeroOrMoreKind
	// OptionalKind renders ?.
	OptionalKind
)

// Quantity is a quantifier modifier. Non-atomic fragments are wrapped in a
// non-capturing group before the suffix is appended.
type Quantity struct {
	kind   Kind
	min    int
	max    int
	hasMin bool
	hasMax bool
	lazy   bool
}

// OneOrMore returns the + quantifier.
func OneOrMore() Quantity { return Quantity{kind: OneOrMoreKind} }

// ZeroOrMore returns the * quantifier.
func ZeroOrMore() Quantity { return Quantity{kind: ZeroOrMoreKind} }

// Optional returns the ? quantifier.
func Optional() Quantity { return Quantity{kind: OptionalKind} }

// Exactly returns the {n} quantifier.
func Exactly(n int) Quantity {
	return Quantity{min: n, max: n, hasMin: true, hasMax: true}
}

// Between returns the {min,max} quantifier.
func Between(min, max int) Quantity {
	return Quantity{min: min, max: max, hasMin: true, hasMax: true}
}

// AtLeast returns the {min,} quantifier.
func AtLeast(min int) Quantity {
	return Quantity{min: min, hasMin: true}
}

// AtMost returns a quantifier bounded only from above.
func AtMost(max int) Quantity {
	return Quantity{max: max, hasMax: true}
}

// Kind returns the quantifier shape.
func (q Quantity) Kind() Kind { return q.kind }

// IsLazy reports whether the quantifier is non-greedy.
func (q Quantity) IsLazy() bool { return q.lazy }

// Lazy returns a copy of q that matches as few repetitions as possible.
func (q Quantity) Lazy() Quantity {
	q.lazy = true
	return q
}

// Validate reports whether the bounds of q are usable.
func (q Quantity) Validate() error {
	if q.kind != Bounded {
		return nil
	}

	switch {
	case !q.hasMin && !q.hasMax:
		return ErrMissingBound
	case q.hasMin && q.min < 0, q.hasMax && q.max < 0:
		return fmt.Errorf("%w: negative bound", ErrInvalidRange)
	case q.hasMin && q.hasMax && q.min > q.max:
		return fmt.Errorf("%w: min %d exceeds max %d", ErrInvalidRange, q.min, q.max)
	}

	return nil
}

// Apply implements [Modifier].
func (q Quantity) Apply(fragment string) (string, error) {
	if err := q.Validate(); err != nil {
		return "", err
	}

	if IsAnchor(fragment) {
		return "", fmt.Errorf("%w: %q", ErrNotQuantifiable, fragment)
	}

	if !IsAtom(fragment) {
		fragment = "(?:" + fragment + ")"
	}

	return fragment + q.suffix(), nil
}

// String returns the quantifier suffix.
func (q Quantity) String() string {
	return q.suffix()
}

func (q Quantity) suffix() string {
	var s string
	switch q.kind {
	case OneOrMoreKind:
		s = "+"
	case ZeroOrMoreKind:
		s = "*"
	case OptionalKind:
		s = "?"
	default:
		switch {
		case q.hasMin && q.hasMax && q.min == q.max:
			s = "{" + strconv.Itoa(q.min) + "}"
		case q.hasMin && q.hasMax:
			s = "{" + strconv.Itoa(q.min) + "," + strconv.Itoa(q.max) + "}"
		case q.hasMin:
			s = "{" + strconv.Itoa(q.min) + ",}"
		default:
			s = "{0," + strconv.Itoa(q.max) + "}"
		}
	}

	if q.lazy {
		s += "?"
	}

	return s
}
