package oniguru

// Split returns the substrings of input separated by non-overlapping
// matches of re. A pattern with no match returns a single-element slice
// containing input unchanged; adjacent matches produce empty-string
// segments between them.
func (re *Regexp) Split(input string) []string {
	var result []string
	prev := 0
	matched := false
	for m := range re.AllMatches(input, 0) {
		matched = true
		result = append(result, input[prev:m.start])
		prev = m.end
	}
	if !matched {
		return []string{input}
	}
	result = append(result, input[prev:])
	return result
}
