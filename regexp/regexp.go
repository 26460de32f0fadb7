package regexp

import (
	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"

	"go.dw1.io/rex/internal/json"
)

// Regexp is a compiled regular expression that delegates to either coregex
// (fast, RE2-compatible) or regexp2 (PCRE-compatible) depending on the
// pattern features detected at compile time.
//
// A Regexp is safe for concurrent use and may be shared through the compile
// cache, so none of its methods mutate it.
type Regexp struct {
	pattern string
	flags   Flags
	eng     engine
}

// Match is one match reported by [Regexp.Matches].
type Match struct {
	// Text is the matched text.
	Text string
	// Groups holds the text of every capture group; unmatched groups are
	// empty.
	Groups []string
	// Indices holds the byte index pairs of the match and its groups, with -1
	// for unmatched groups. It is only set when the Indices flag is present.
	Indices []int
}

// Compile parses a regular expression and returns a compiled Regexp. Patterns
// that require PCRE/Perl-only features (detected by needsPCRE) are compiled
// with regexp2; everything else uses coregex for speed.
func Compile(pattern string, opts ...Option) (*Regexp, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.noCache {
		return compile(pattern, cfg)
	}

	key := cfg.cacheKey(pattern)
	cache := getCache()
	if re, ok := cache.Get(key); ok {
		return re, nil
	}

	re, err := compile(pattern, cfg)
	if err != nil {
		return nil, err
	}

	cache.Set(key, re)

	return re, nil
}

func compile(pattern string, cfg config) (*Regexp, error) {
	expr := pattern
	if cfg.flags.Has(Sticky) {
		expr = `\A(?:` + expr + `)`
	}

	if needsPCRE(expr) {
		re, err := regexp2.Compile(rewriteEmptyClasses(expr), cfg.flags.pcreOptions())
		if err != nil {
			return nil, err
		}

		if cfg.timeout > 0 {
			re.MatchTimeout = cfg.timeout
		}

		return &Regexp{pattern: pattern, flags: cfg.flags, eng: &pcreEngine{re: re}}, nil
	}

	re, err := coregex.Compile(cfg.flags.inlinePrefix() + expr)
	if err != nil {
		return nil, err
	}

	return &Regexp{pattern: pattern, flags: cfg.flags, eng: &coreEngine{re: re}}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(pattern string, opts ...Option) *Regexp {
	re, err := Compile(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return re
}

// MatchString reports whether the string s matches the regular expression
// pattern. This mirrors regexp.MatchString.
func MatchString(pattern, s string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

// QuoteMeta escapes all regular expression metacharacters in s.
func QuoteMeta(s string) string {
	return coregex.QuoteMeta(s)
}

// String returns the source pattern used to compile the Regexp, without the
// flag prefix or sticky anchor added at compile time.
func (r *Regexp) String() string {
	return r.pattern
}

// Flags returns the flag set the Regexp was compiled with.
func (r *Regexp) Flags() Flags {
	return r.flags
}

// MatchString reports whether the string s contains any match of the Regexp.
func (r *Regexp) MatchString(s string) bool {
	return r.eng.MatchString(s)
}

// FindString returns the leftmost match of the Regexp in s.
func (r *Regexp) FindString(s string) string {
	loc := r.eng.FindStringSubmatchIndex(s)
	if loc == nil {
		return ""
	}

	return s[loc[0]:loc[1]]
}

// FindStringIndex returns a two-element slice with the start and end index of
// the leftmost match in s.
func (r *Regexp) FindStringIndex(s string) []int {
	loc := r.eng.FindStringSubmatchIndex(s)
	if loc == nil {
		return nil
	}

	return loc[:2:2]
}

// FindStringSubmatch returns the leftmost match of the Regexp in s and its
// submatches as strings.
func (r *Regexp) FindStringSubmatch(s string) []string {
	loc := r.eng.FindStringSubmatchIndex(s)
	if loc == nil {
		return nil
	}

	return indexesToStrings(s, loc)
}

// FindStringSubmatchIndex returns the index pairs identifying the leftmost
// match of the Regexp in s and its submatches.
func (r *Regexp) FindStringSubmatchIndex(s string) []int {
	return r.eng.FindStringSubmatchIndex(s)
}

// FindAllString returns a slice of all successive matches of the Regexp in s.
func (r *Regexp) FindAllString(s string, n int) []string {
	locs := r.eng.FindAllStringSubmatchIndex(s, n)
	if locs == nil {
		return nil
	}

	out := make([]string, len(locs))
	for i, loc := range locs {
		out[i] = s[loc[0]:loc[1]]
	}

	return out
}

// FindAllStringIndex returns a slice of all successive match indices of the
// Regexp in s.
func (r *Regexp) FindAllStringIndex(s string, n int) [][]int {
	locs := r.eng.FindAllStringSubmatchIndex(s, n)
	if locs == nil {
		return nil
	}

	out := make([][]int, len(locs))
	for i, loc := range locs {
		out[i] = loc[:2:2]
	}

	return out
}

// ReplaceAllString returns a copy of src, replacing matches of the Regexp with
// repl.
func (r *Regexp) ReplaceAllString(src, repl string) string {
	return r.eng.ReplaceAllString(src, repl)
}

// Split slices s into substrings separated by the Regexp.
func (r *Regexp) Split(s string, n int) []string {
	return r.eng.Split(s, n)
}

// NumSubexp returns the number of parenthesized subexpressions in this Regexp.
func (r *Regexp) NumSubexp() int {
	return r.eng.NumSubexp()
}

// SubexpNames returns the names of the parenthesized subexpressions in this
// Regexp. The name for the first sub-expression is names[1].
func (r *Regexp) SubexpNames() []string {
	return r.eng.SubexpNames()
}

// SubexpIndex returns the index of the first subexpression with the given
// name, or -1 if there is none.
func (r *Regexp) SubexpIndex(name string) int {
	if name == "" {
		return -1
	}

	for i, n := range r.eng.SubexpNames() {
		if n == name {
			return i
		}
	}

	return -1
}

// Matches returns the first match of the Regexp in s, or every match when the
// Global flag is set. Index pairs are included when the Indices flag is set.
func (r *Regexp) Matches(s string) []Match {
	var locs [][]int
	if r.flags.Has(Global) {
		locs = r.eng.FindAllStringSubmatchIndex(s, -1)
	} else if loc := r.eng.FindStringSubmatchIndex(s); loc != nil {
		locs = [][]int{loc}
	}

	if len(locs) == 0 {
		return nil
	}

	out := make([]Match, len(locs))
	for i, loc := range locs {
		out[i] = Match{
			Text:   s[loc[0]:loc[1]],
			Groups: indexesToStrings(s, loc)[1:],
		}

		if r.flags.Has(Indices) {
			out[i].Indices = loc
		}
	}

	return out
}

type encoded struct {
	Pattern string `json:"pattern"`
	Flags   string `json:"flags,omitempty"`
}

// MarshalJSON encodes the Regexp as its source pattern and flag string.
func (r *Regexp) MarshalJSON() ([]byte, error) {
	return json.Marshal(encoded{Pattern: r.pattern, Flags: r.flags.String()})
}

// UnmarshalJSON compiles the pattern and flags produced by MarshalJSON.
func (r *Regexp) UnmarshalJSON(data []byte) error {
	var e encoded
	if err := json.Unmarshal(data, &e); err != nil {
		return err
	}

	re, err := Compile(e.Pattern, WithFlags(e.Flags))
	if err != nil {
		return err
	}

	*r = *re

	return nil
}

func indexesToStrings(s string, loc []int) []string {
	out := make([]string, len(loc)/2)
	for i := range out {
		start, end := loc[2*i], loc[2*i+1]
		if start < 0 || end < 0 {
			continue
		}
		out[i] = s[start:end]
	}

	return out
}
