// Package literal reduces builder arguments to flat pattern text.
package literal

import (
	"errors"
	"fmt"
	"strings"

	"go.dw1.io/rex/internal/cast"
	"go.dw1.io/rex/regexp"
)

// ErrInvalidLiteral indicates an argument that has no string form.
var ErrInvalidLiteral = errors.New("invalid literal")

// Template is a literal with interpolated values: Segments[0] + Values[0] +
// Segments[1] + ... + Segments[n]. Surplus values are appended after the last
// segment; missing values leave the remaining segments adjacent.
type Template struct {
	Segments []string
	Values   []any
}

// String joins the template. Values that cannot be converted render through
// fmt's %v verb.
func (t Template) String() string {
	s, err := t.join()
	if err != nil {
		s, _ = t.interleave(func(v any) (string, error) { return fmt.Sprint(v), nil })
	}

	return s
}

func (t Template) join() (string, error) {
	return t.interleave(cast.String)
}

func (t Template) interleave(conv func(any) (string, error)) (string, error) {
	var b strings.Builder

	n := max(len(t.Segments), len(t.Values))
	for i := range n {
		if i < len(t.Segments) {
			b.WriteString(t.Segments[i])
		}

		if i < len(t.Values) {
			s, err := conv(t.Values[i])
			if err != nil {
				return "", fmt.Errorf("%w: value %d: %v", ErrInvalidLiteral, i, err)
			}
			b.WriteString(s)
		}
	}

	return b.String(), nil
}

// Normalize concatenates the string form of every argument. No escaping is
// performed.
func Normalize(v ...any) (string, error) {
	if len(v) == 1 {
		return normalize(v[0])
	}

	var b strings.Builder
	for _, a := range v {
		s, err := normalize(a)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}

	return b.String(), nil
}

func normalize(v any) (string, error) {
	switch t := v.(type) {
	case Template:
		return t.join()
	case *Template:
		if t == nil {
			return "", nil
		}
		return t.join()
	}

	s, err := cast.String(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidLiteral, err)
	}

	return s, nil
}

// Escape escapes every regular expression metacharacter in s.
func Escape(s string) string {
	return regexp.QuoteMeta(s)
}
