package regexp

// Match reports whether the byte slice b contains any match of the Regexp.
func (r *Regexp) Match(b []byte) bool {
	return r.eng.MatchString(string(b))
}

// Find returns the leftmost match of the Regexp in b.
func (r *Regexp) Find(b []byte) []byte {
	loc := r.eng.FindStringSubmatchIndex(string(b))
	if loc == nil {
		return nil
	}

	return b[loc[0]:loc[1]:loc[1]]
}

// FindIndex returns a two-element slice with the start and end index of the
// leftmost match in b.
func (r *Regexp) FindIndex(b []byte) []int {
	return r.FindStringIndex(string(b))
}

// FindSubmatch returns the leftmost match of the Regexp in b and its
// submatches. Unmatched groups are nil.
func (r *Regexp) FindSubmatch(b []byte) [][]byte {
	loc := r.eng.FindStringSubmatchIndex(string(b))
	if loc == nil {
		return nil
	}

	return indexesToBytes(b, loc)
}

// FindSubmatchIndex returns the index pairs identifying the leftmost match of
// the Regexp in b and its submatches.
func (r *Regexp) FindSubmatchIndex(b []byte) []int {
	return r.eng.FindStringSubmatchIndex(string(b))
}

// FindAll returns a slice of all successive matches of the Regexp in b.
func (r *Regexp) FindAll(b []byte, n int) [][]byte {
	locs := r.eng.FindAllStringSubmatchIndex(string(b), n)
	if locs == nil {
		return nil
	}

	out := make([][]byte, len(locs))
	for i, loc := range locs {
		out[i] = b[loc[0]:loc[1]:loc[1]]
	}

	return out
}

// FindAllIndex returns a slice of all successive match indices of the Regexp
// in b.
func (r *Regexp) FindAllIndex(b []byte, n int) [][]int {
	return r.FindAllStringIndex(string(b), n)
}

// FindAllSubmatch returns a slice of all successive matches of the Regexp in b
// and their submatches.
func (r *Regexp) FindAllSubmatch(b []byte, n int) [][][]byte {
	locs := r.eng.FindAllStringSubmatchIndex(string(b), n)
	if locs == nil {
		return nil
	}

	out := make([][][]byte, len(locs))
	for i, loc := range locs {
		out[i] = indexesToBytes(b, loc)
	}

	return out
}

// FindAllSubmatchIndex returns a slice of all successive match index pairs of
// the Regexp in b and their submatches.
func (r *Regexp) FindAllSubmatchIndex(b []byte, n int) [][]int {
	return r.eng.FindAllStringSubmatchIndex(string(b), n)
}

// FindAllStringSubmatch returns a slice of all successive matches of the
// Regexp in s and their submatches.
func (r *Regexp) FindAllStringSubmatch(s string, n int) [][]string {
	locs := r.eng.FindAllStringSubmatchIndex(s, n)
	if locs == nil {
		return nil
	}

	out := make([][]string, len(locs))
	for i, loc := range locs {
		out[i] = indexesToStrings(s, loc)
	}

	return out
}

// FindAllStringSubmatchIndex returns a slice of all successive match index
// pairs of the Regexp in s and their submatches.
func (r *Regexp) FindAllStringSubmatchIndex(s string, n int) [][]int {
	return r.eng.FindAllStringSubmatchIndex(s, n)
}

// ReplaceAll returns a copy of src, replacing matches of the Regexp with repl.
func (r *Regexp) ReplaceAll(src, repl []byte) []byte {
	return []byte(r.eng.ReplaceAllString(string(src), string(repl)))
}

func indexesToBytes(b []byte, loc []int) [][]byte {
	out := make([][]byte, len(loc)/2)
	for i := range out {
		start, end := loc[2*i], loc[2*i+1]
		if start < 0 || end < 0 {
			continue
		}
		out[i] = b[start:end:end]
	}

	return out
}
