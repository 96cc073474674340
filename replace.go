package oniguru

import (
	"strconv"
	"strings"
)

// ReplaceAll expands template against every non-overlapping match in
// input and rebuilds the result in a single left-to-right pass. Adapted
// from the teacher's replace() (replace.go): the teacher assembles its
// output through a right-to-left segment list to support RightToLeft-mode
// patterns, an option this engine never defines, so spans are instead
// collected up front via AllMatches and stitched together in matched
// order.
func (re *Regexp) ReplaceAll(input, template string) string {
	return replaceN(re, input, template, -1)
}

// ReplaceFirst expands template against only the first match.
func (re *Regexp) ReplaceFirst(input, template string) string {
	return replaceN(re, input, template, 1)
}

func replaceN(re *Regexp, input, template string, count int) string {
	type span struct {
		start, end int
		text       string
	}
	var spans []span
	n := 0
	for m := range re.AllMatches(input, 0) {
		spans = append(spans, span{m.start, m.end, expandTemplate(template, m)})
		n++
		if count >= 0 && n >= count {
			break
		}
	}
	if len(spans) == 0 {
		return input
	}

	buf := &strings.Builder{}
	prev := 0
	for _, s := range spans {
		buf.WriteString(input[prev:s.start])
		buf.WriteString(s.text)
		prev = s.end
	}
	buf.WriteString(input[prev:])
	return buf.String()
}

// expandTemplate expands $&, $0, $N, ${name}, and $$ against m. Template
// expansion never fails: a reference to a group that didn't participate
// expands to empty, per the error-handling design's run-time stratum.
func expandTemplate(template string, m *Match) string {
	buf := &strings.Builder{}
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '$' || i+1 >= len(template) {
			buf.WriteByte(c)
			continue
		}

		next := template[i+1]
		switch {
		case next == '$':
			buf.WriteByte('$')
			i++
		case next == '&':
			buf.WriteString(m.String())
			i++
		case next == '{':
			end := strings.IndexByte(template[i+2:], '}')
			if end < 0 {
				buf.WriteByte(c)
				continue
			}
			name := template[i+2 : i+2+end]
			if g := m.NamedGroup(name); g != nil {
				buf.WriteString(*g)
			}
			i += 2 + end
		case next >= '0' && next <= '9':
			j := i + 1
			for j < len(template) && template[j] >= '0' && template[j] <= '9' {
				j++
			}
			num, _ := strconv.Atoi(template[i+1 : j])
			if g := m.GroupAt(num); g != nil {
				buf.WriteString(*g)
			}
			i = j - 1
		default:
			buf.WriteByte(c)
		}
	}
	return buf.String()
}
