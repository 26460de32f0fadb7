package regexp

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Flags is a set of compile flags.
type Flags uint8

const (
	// Indices makes [Regexp.Matches] report submatch index pairs ("d").
	Indices Flags = 1 << iota
	// Global makes [Regexp.Matches] report every match instead of the first
	// ("g").
	Global
	// IgnoreCase enables case-insensitive matching ("i").
	IgnoreCase
	// Multiline lets ^ and $ match at line boundaries ("m").
	Multiline
	// DotAll lets . match newlines ("s").
	DotAll
	// Unicode enables full Unicode matching ("u").
	Unicode
	// Sticky anchors the match at the start of the input ("y").
	Sticky
)

var flagChars = [...]struct {
	flag Flags
	char byte
}{
	{Indices, 'd'},
	{Global, 'g'},
	{IgnoreCase, 'i'},
	{Multiline, 'm'},
	{DotAll, 's'},
	{Unicode, 'u'},
	{Sticky, 'y'},
}

// ParseFlags parses a flag string such as "gi". Every character must belong
// to the alphabet "dgimsuy" and may appear at most once.
func ParseFlags(s string) (Flags, error) {
	var f Flags

	for i := 0; i < len(s); i++ {
		flag, ok := lookupFlag(s[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q in %q", ErrUnrecognizedFlag, s[i], s)
		}

		if f&flag != 0 {
			return 0, fmt.Errorf("%w: duplicate %q in %q", ErrUnrecognizedFlag, s[i], s)
		}

		f |= flag
	}

	return f, nil
}

func lookupFlag(c byte) (Flags, bool) {
	for _, fc := range flagChars {
		if fc.char == c {
			return fc.flag, true
		}
	}

	return 0, false
}

// Has reports whether every flag in x is set in f.
func (f Flags) Has(x Flags) bool {
	return f&x == x
}

// String returns the canonical flag string, in alphabetical order.
func (f Flags) String() string {
	var b strings.Builder
	for _, fc := range flagChars {
		if f&fc.flag != 0 {
			b.WriteByte(fc.char)
		}
	}

	return b.String()
}

// inlinePrefix returns the RE2 inline flag group for the flags coregex
// understands.
func (f Flags) inlinePrefix() string {
	var b strings.Builder
	if f.Has(IgnoreCase) {
		b.WriteByte('i')
	}
	if f.Has(Multiline) {
		b.WriteByte('m')
	}
	if f.Has(DotAll) {
		b.WriteByte('s')
	}

	if b.Len() == 0 {
		return ""
	}

	return "(?" + b.String() + ")"
}

// pcreOptions maps f onto regexp2 options.
func (f Flags) pcreOptions() regexp2.RegexOptions {
	opts := regexp2.None
	if f.Has(IgnoreCase) {
		opts |= regexp2.IgnoreCase
	}
	if f.Has(Multiline) {
		opts |= regexp2.Multiline
	}
	if f.Has(DotAll) {
		opts |= regexp2.Singleline
	}
	if f.Has(Unicode) {
		opts |= regexp2.Unicode
	}

	return opts
}
