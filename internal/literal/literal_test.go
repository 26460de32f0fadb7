package literal

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   []any
		want string
	}{
		{"empty", nil, ""},
		{"plain", []any{"foo"}, "foo"},
		{"many", []any{"a", 1, true}, "a1true"},
		{"template", []any{Template{Segments: []string{"id-", "-", ""}, Values: []any{7, "x"}}}, "id-7-x"},
		{"templatePtr", []any{&Template{Segments: []string{"v"}}}, "v"},
		{"surplusValues", []any{Template{Segments: []string{"a"}, Values: []any{1, 2}}}, "a12"},
		{"noEscaping", []any{`\d+`}, `\d+`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.in...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNormalizeRejectsComposites(t *testing.T) {
	_, err := Normalize(map[string]int{"a": 1})
	if !errors.Is(err, ErrInvalidLiteral) {
		t.Fatalf("expected ErrInvalidLiteral, got %v", err)
	}

	_, err = Normalize(Template{Segments: []string{"a", "b"}, Values: []any{[]int{1}}})
	if !errors.Is(err, ErrInvalidLiteral) {
		t.Fatalf("expected ErrInvalidLiteral from template value, got %v", err)
	}
}

func TestEscape(t *testing.T) {
	if got := Escape("a.b*c"); got != `a\.b\*c` {
		t.Fatalf("Escape: got %q", got)
	}

	if got := Escape("plain"); got != "plain" {
		t.Fatalf("Escape: got %q", got)
	}
}

func TestTemplateString(t *testing.T) {
	cases := []struct {
		name string
		in   Template
		want string
	}{
		{"converted", Template{Segments: []string{"a", "c"}, Values: []any{"b"}}, "abc"},
		{"surplusValues", Template{Segments: []string{"a"}, Values: []any{1, 2}}, "a12"},
		{"fallback", Template{Segments: []string{"a", "b"}, Values: []any{[]int{1}}}, "a[1]b"},
		{"fallbackSurplus", Template{Segments: []string{"a"}, Values: []any{[]int{1}, "z"}}, "a[1]z"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.String(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
