package regexp

import (
	"strconv"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// engine is the common surface of the two backends. Index results are byte
// offsets into the input, as in the standard library.
type engine interface {
	MatchString(s string) bool
	FindStringSubmatchIndex(s string) []int
	FindAllStringSubmatchIndex(s string, n int) [][]int
	ReplaceAllString(src, repl string) string
	Split(s string, n int) []string
	NumSubexp() int
	SubexpNames() []string
}

var (
	_ engine = (*coreEngine)(nil)
	_ engine = (*pcreEngine)(nil)
)

// coreEngine runs RE2-compatible patterns on coregex.
type coreEngine struct {
	re *coregex.Regex
}

func (e *coreEngine) MatchString(s string) bool { return e.re.MatchString(s) }

func (e *coreEngine) FindStringSubmatchIndex(s string) []int {
	return e.re.FindStringSubmatchIndex(s)
}

func (e *coreEngine) FindAllStringSubmatchIndex(s string, n int) [][]int {
	return e.re.FindAllStringSubmatchIndex(s, n)
}

func (e *coreEngine) ReplaceAllString(src, repl string) string {
	return e.re.ReplaceAllString(src, repl)
}

func (e *coreEngine) Split(s string, n int) []string { return e.re.Split(s, n) }

func (e *coreEngine) NumSubexp() int { return e.re.NumSubexp() }

func (e *coreEngine) SubexpNames() []string { return e.re.SubexpNames() }

// pcreEngine runs patterns that need PCRE features on regexp2. regexp2
// reports rune offsets, which are converted to byte offsets here.
type pcreEngine struct {
	re *regexp2.Regexp
}

func (e *pcreEngine) MatchString(s string) bool {
	matched, err := e.re.MatchString(s)
	return err == nil && matched
}

func (e *pcreEngine) FindStringSubmatchIndex(s string) []int {
	m, err := e.re.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	return groupsToIndexes(s, m.Groups())
}

func (e *pcreEngine) FindAllStringSubmatchIndex(s string, n int) [][]int {
	if n == 0 {
		return nil
	}

	var matches [][]int
	m, err := e.re.FindStringMatch(s)
	for err == nil && m != nil {
		if n > 0 && len(matches) >= n {
			break
		}

		matches = append(matches, groupsToIndexes(s, m.Groups()))
		m, err = e.re.FindNextMatch(m)
	}

	return matches
}

func (e *pcreEngine) ReplaceAllString(src, repl string) string {
	replaced, err := e.re.Replace(src, repl, -1, -1)
	if err != nil {
		return src
	}

	return replaced
}

func (e *pcreEngine) Split(s string, n int) []string {
	if n == 0 {
		return nil
	}

	parts := make([]string, 0)
	last := 0

	m, err := e.re.FindStringMatch(s)
	for err == nil && m != nil {
		if n > 0 && len(parts)+1 >= n {
			break
		}

		start, end := runeRangeToByte(s, m.Index, m.Length)
		parts = append(parts, s[last:start])
		last = end

		m, err = e.re.FindNextMatch(m)
	}

	return append(parts, s[last:])
}

func (e *pcreEngine) NumSubexp() int {
	highest := 0
	for _, v := range e.re.GetGroupNumbers() {
		highest = max(highest, v)
	}

	return highest
}

func (e *pcreEngine) SubexpNames() []string {
	names := make([]string, e.NumSubexp()+1)
	for i := range names {
		name := e.re.GroupNameFromNumber(i)
		// regexp2 names unnamed groups by their number; the standard
		// library leaves them empty.
		if name != strconv.Itoa(i) {
			names[i] = name
		}
	}

	return names
}

func groupsToIndexes(s string, groups []regexp2.Group) []int {
	out := make([]int, 0, len(groups)*2)
	for _, g := range groups {
		if len(g.Captures) == 0 {
			out = append(out, -1, -1)
			continue
		}

		start, end := runeRangeToByte(s, g.Index, g.Length)
		out = append(out, start, end)
	}

	return out
}

func runeRangeToByte(s string, startRune, length int) (int, int) {
	if startRune < 0 || length < 0 {
		return -1, -1
	}

	start := runeToByteOffset(s, startRune)
	end := runeToByteOffset(s, startRune+length)
	return start, end
}

func runeToByteOffset(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}

	count := 0
	for i := range s {
		if count == runeIndex {
			return i
		}
		count++
	}

	return len(s)
}
