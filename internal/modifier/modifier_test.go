package modifier

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"
)

func TestIsAtom(t *testing.T) {
	cases := map[string]bool{
		"a":           true,
		"é":           true,
		`\d`:          true,
		`\.`:          true,
		`\x{1F600}`:   true,
		`\u0041`:      true,
		"[abc]":       true,
		`[a\]]`:       true,
		"[]":          true,
		"(?:ab)":      true,
		"(ab)":        true,
		"(?<n>ab)":    true,
		"ab":          false,
		"(a)(b)":      false,
		"[a][b]":      false,
		"(?=a)":       false,
		"(?<!a)":      false,
		`(a\)`:        false,
		"(?:[)])":     true,
		"":            false,
		`\d\d`:        false,
		"(?:a|b)c":    false,
		"(?:a)|(?:b)": false,
	}

	for frag, want := range cases {
		if got := IsAtom(frag); got != want {
			t.Fatalf("IsAtom(%q) = %v, want %v", frag, got, want)
		}
	}
}

func TestQuantity(t *testing.T) {
	cases := []struct {
		q    Quantity
		in   string
		want string
	}{
		{OneOrMore(), "foo", "(?:foo)+"},
		{OneOrMore(), "a", "a+"},
		{OneOrMore(), `\d`, `\d+`},
		{ZeroOrMore(), "[a-z]", "[a-z]*"},
		{Optional(), "s", "s?"},
		{Optional().Lazy(), "ab", "(?:ab)??"},
		{Exactly(3), `\d`, `\d{3}`},
		{Between(2, 4), "x", "x{2,4}"},
		{Between(2, 2), "x", "x{2}"},
		{AtLeast(1), "(ab)", "(ab){1,}"},
		{AtMost(5), "x", "x{0,5}"},
		{OneOrMore().Lazy(), "x", "x+?"},
		{Exactly(0), "x", "x{0}"},
		{OneOrMore(), "(?=a)", "(?:(?=a))+"},
	}

	for _, tc := range cases {
		got, err := tc.q.Apply(tc.in)
		if err != nil {
			t.Fatalf("%q%s: unexpected error %v", tc.in, tc.q, err)
		}
		if got != tc.want {
			t.Fatalf("%q%s: got %q, want %q", tc.in, tc.q, got, tc.want)
		}
	}
}

func TestQuantityErrors(t *testing.T) {
	for _, anchor := range []string{"^", "$", `\b`, `\B`} {
		if _, err := OneOrMore().Apply(anchor); !errors.Is(err, ErrNotQuantifiable) {
			t.Fatalf("%q: expected ErrNotQuantifiable, got %v", anchor, err)
		}
	}

	if _, err := Between(5, 2).Apply("a"); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}

	if _, err := AtLeast(-1).Apply("a"); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange for negative bound, got %v", err)
	}

	if _, err := (Quantity{}).Apply("a"); !errors.Is(err, ErrMissingBound) {
		t.Fatalf("expected ErrMissingBound, got %v", err)
	}
}

func TestNegate(t *testing.T) {
	cases := map[string]string{
		`\d`:        `\D`,
		`\D`:        `\d`,
		`\w`:        `\W`,
		`\S`:        `\s`,
		`\b`:        `\B`,
		`\B`:        `\b`,
		`\t`:        `[^\t]`,
		`\n`:        `[^\n]`,
		`\0`:        `[^\0]`,
		"^":         "(?!^)",
		"$":         "(?!$)",
		`\x{41}`:    `[^\x{41}]`,
		`[^\t]`:     `\t`,
		`[^\x{41}]`: `\x{41}`,
		"(?!^)":     "^",
	}

	for in, want := range cases {
		got, err := Negate{}.Apply(in)
		if err != nil {
			t.Fatalf("Negate(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("Negate(%q) = %q, want %q", in, got, want)
		}

		back, err := Negate{}.Apply(got)
		if err != nil || back != in {
			t.Fatalf("Negate(Negate(%q)) = %q, %v", in, back, err)
		}
	}

	for _, in := range []string{"a", "foo", "[abc]", "(?:a)", "."} {
		if _, err := (Negate{}).Apply(in); !errors.Is(err, ErrNotNegatable) {
			t.Fatalf("Negate(%q): expected ErrNotNegatable, got %v", in, err)
		}
	}
}

func TestCapture(t *testing.T) {
	cases := []struct {
		c    Capture
		in   string
		want string
	}{
		{Capture{}, "abc", "(abc)"},
		{Capture{}, `\d+`, `(\d+)`},
		{Capture{}, "(?:a|b)", "(a|b)"},
		{Capture{}, "(?:a)(?:b)", "((?:a)(?:b))"},
		{Capture{}, "(?:a)+", "((?:a)+)"},
		{Capture{Name: "proto"}, "(?:https?|ftp)", "(?<proto>https?|ftp)"},
		{Capture{Name: "_x1"}, "a", "(?<_x1>a)"},
	}

	for _, tc := range cases {
		got, err := tc.c.Apply(tc.in)
		assert.NilError(t, err)
		assert.Equal(t, got, tc.want)
	}

	for _, name := range []string{"1a", "a-b", "a b"} {
		_, err := Capture{Name: name}.Apply("x")
		assert.ErrorIs(t, err, ErrInvalidGroupName)
	}
}

func TestGroup(t *testing.T) {
	cases := map[GroupKind]string{
		NonCapturing:       "(?:x)",
		Lookahead:          "(?=x)",
		NegativeLookahead:  "(?!x)",
		Lookbehind:         "(?<=x)",
		NegativeLookbehind: "(?<!x)",
	}

	for kind, want := range cases {
		got, err := Group{Kind: kind}.Apply("x")
		assert.NilError(t, err)
		assert.Equal(t, got, want)
	}

	_, err := Group{}.Apply("x")
	assert.ErrorIs(t, err, ErrUnknownGroupType)
}

func TestClass(t *testing.T) {
	cases := []struct {
		negated bool
		opts    []any
		want    string
	}{
		{false, []any{"abc"}, "[abc]"},
		{true, []any{"abc"}, "[^abc]"},
		{false, nil, "[]"},
		{true, nil, "[^]"},
		{false, []any{"a-z", "0-9"}, "[a-z0-9]"},
		{false, []any{`\d`, "_"}, `[\d_]`},
		{false, []any{"a", "-"}, "[a-]"},
		{false, []any{"-", "a"}, "[-a]"},
		{false, []any{"-a", "b-"}, "[-ab-]"},
		{false, []any{"a-b-c"}, `[a\-b\-c]`},
		{false, []any{`\`}, `[\\]`},
		{false, []any{"]^["}, `[\]\^\[]`},
		{false, []any{`\\\`}, `[\\\\]`},
		{false, []any{`\\\`, "-"}, `[\\\-]`},
		{true, []any{"-"}, "[^-]"},
		{false, []any{"é-ü"}, "[é-ü]"},
		{false, []any{Member("a-f"), Member(`\d`)}, `[a-f\d]`},
		{true, []any{Member("0-9"), "-"}, "[^0-9-]"},
		{false, []any{"-", Member(`\x{0041}`)}, `[-\x{0041}]`},
	}

	for _, tc := range cases {
		got := Class{Negated: tc.negated}.Build(tc.opts...)
		if got != tc.want {
			t.Fatalf("Class%v: got %q, want %q", tc.opts, got, tc.want)
		}
	}
}

func TestClassMember(t *testing.T) {
	valid := map[string]Member{
		"a":        "a",
		"]":        `\]`,
		`\d`:       `\d`,
		`\.`:       `\.`,
		`\D`:       `\D`,
		`\x{0041}`: `\x{0041}`,
		"[a-f]":    "a-f",
		`[a-z\d_]`: `a-z\d_`,
		"[-ab-]":   `\-ab\-`,
		`[\\-]`:    `\\\-`,
		`[a\-]`:    `a\-`,
		"[]":       "",
	}

	for fragment, want := range valid {
		got, ok := ClassMember(fragment)
		assert.Assert(t, ok, fragment)
		assert.Equal(t, got, want, fragment)
	}

	for _, fragment := range []string{"", ".", "^", "$", `\b`, `\B`, `\A`, `\z`, `[^\t]`, `a\.b`, "(?:a|b)", `\k<1>`} {
		_, ok := ClassMember(fragment)
		assert.Assert(t, !ok, fragment)
	}
}

func TestAlternation(t *testing.T) {
	assert.Equal(t, Alternation{}.Build("foo", "bar", "baz"), "(?:foo|bar|baz)")
	assert.Equal(t, Alternation{}.Build(), "(?:)")
	assert.Equal(t, Alternation{}.Build("a"), "(?:a)")
}

func TestChain(t *testing.T) {
	// Inner applies first.
	m := Chain(Capture{}, OneOrMore())
	got, err := m.Apply(`\d`)
	assert.NilError(t, err)
	assert.Equal(t, got, `(\d+)`)

	m = Chain(OneOrMore(), Negate{})
	got, err = m.Apply(`\d`)
	assert.NilError(t, err)
	assert.Equal(t, got, `\D+`)

	m = Chain(OneOrMore(), Negate{})
	_, err = m.Apply("a")
	assert.ErrorIs(t, err, ErrNotNegatable)

	assert.Equal(t, Chain(nil, Negate{}), Modifier(Negate{}))
	assert.Equal(t, Chain(Negate{}, nil), Modifier(Negate{}))
}
