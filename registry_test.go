package rex

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
)

func TestRegistryDefine(t *testing.T) {
	r := NewRegistry()

	hex, err := r.Define("hex", Definition{Pattern: "[0-9a-fA-F]", Capabilities: Quantifiable})
	assert.NilError(t, err)
	assert.Equal(t, hex.Name(), "hex")
	assert.Equal(t, hex.Capabilities(), Quantifiable)

	_, err = r.Define("word", Definition{Pattern: OneOrMore(WordChar), Capabilities: Quantifiable})
	assert.NilError(t, err)

	_, err = r.Define("version", Definition{
		Pattern: Template{Segments: []string{`v\d+\.`, ""}, Values: []any{`\d+`}},
	})
	assert.NilError(t, err)

	_, err = r.Define("repeat", Definition{
		Func: func(args ...any) any {
			parts := make([]string, len(args))
			for i, a := range args {
				parts[i] = fmt.Sprint(a)
			}
			return strings.Join(parts, "|")
		},
		Capabilities: Quantifiable,
	})
	assert.NilError(t, err)

	if diff := cmp.Diff([]string{"hex", "repeat", "version", "word"}, r.Names()); diff != "" {
		t.Fatalf("Names (-want +got):\n%s", diff)
	}

	cases := []struct {
		tok  Token
		want string
	}{
		{New().Call(hex), "[0-9a-fA-F]"},
		{New().OneOrMore().Call(hex), "[0-9a-fA-F]+"},
		{New().Exactly("#").Times(6).Call(hex), "#[0-9a-fA-F]{6}"},
		{New().Use(r, "word"), `\w+`},
		{New().Use(r, "version"), `v\d+\.\d+`},
		{New().Use(r, "repeat", "a", "b"), "a|b"},
		{New().OneOrMore().Call(lookup(t, r, "repeat"), "a", "b"), "(?:a|b)+"},
	}

	for _, tc := range cases {
		src, err := tc.tok.Source()
		assert.NilError(t, err)
		assert.Equal(t, src, tc.want)
	}
}

func lookup(t *testing.T, r *Registry, name string) *Custom {
	t.Helper()

	c, ok := r.Lookup(name)
	if !ok {
		t.Fatalf("custom token %q not registered", name)
	}

	return c
}

func TestRegistryErrors(t *testing.T) {
	r := NewRegistry()

	cases := []struct {
		name string
		def  Definition
		want error
	}{
		{"", Definition{Pattern: "a"}, ErrInvalidTokenDefinition},
		{"none", Definition{}, ErrNoValidConfiguration},
		{"both", Definition{Pattern: "a", Func: func(...any) any { return "a" }}, ErrInvalidTokenDefinition},
		{"empty", Definition{Pattern: ""}, ErrInvalidTokenDefinition},
		{"composite", Definition{Pattern: map[string]int{}}, ErrInvalidTokenDefinition},
		{"failed", Definition{Pattern: Backreference(0)}, ErrInvalidTokenDefinition},
	}

	for _, tc := range cases {
		if _, err := r.Define(tc.name, tc.def); !errors.Is(err, tc.want) {
			t.Fatalf("Define(%q): got %v, want %v", tc.name, err, tc.want)
		}
	}

	_, err := r.Define("dup", Definition{Pattern: "a"})
	assert.NilError(t, err)
	_, err = r.Define("dup", Definition{Pattern: "b"})
	assert.ErrorIs(t, err, ErrInvalidTokenDefinition)

	bad, err := r.Define("bad", Definition{Func: func(args ...any) any { return args }})
	assert.NilError(t, err)
	assert.ErrorIs(t, New().Call(bad, 1).Err(), ErrInvalidTokenDefinition)

	lit, err := r.Define("lit", Definition{Pattern: "ab", Capabilities: Quantifiable})
	assert.NilError(t, err)
	assert.ErrorIs(t, New().Not().Call(lit).Err(), ErrNotNegatable)

	anchor, err := r.Define("start", Definition{Pattern: "^", Capabilities: Negatable})
	assert.NilError(t, err)
	assert.ErrorIs(t, New().OneOrMore().Call(anchor).Err(), ErrNotQuantifiable)
	assert.Equal(t, New().Not().Call(anchor).String(), "(?!^)")

	assert.ErrorIs(t, New().Use(r, "missing").Err(), ErrUnknownToken)
	assert.ErrorIs(t, New().Call(nil).Err(), ErrUnknownToken)
}

func TestRegistryConcurrent(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			name := fmt.Sprintf("t%02d", i)
			if _, err := r.Define(name, Definition{Pattern: name}); err != nil {
				t.Errorf("Define(%q): %v", name, err)
				return
			}

			if got := New().Use(r, name).String(); got != name {
				t.Errorf("Use(%q): got %q", name, got)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, len(r.Names()), 16)
}
