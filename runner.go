package oniguru

import (
	"iter"

	"github.com/dazemc/oniguru/runecacher"
	"github.com/dazemc/oniguru/syntax"
)

// tryMatchAt attempts the whole pattern at exactly pos, honoring
// find_longest: by default the first root result wins (the ordering the
// executor's candidate sequence already guarantees); with find_longest
// set, every root result is enumerated and the one with the greatest end
// is kept.
func tryMatchAt(tree *syntax.RegexTree, input string, pos int) *Match {
	ctx := newMatchContext(input, tree)

	if tree.Options&syntax.FindLongest == 0 {
		var result *Match
		matchNode(ctx, tree.Root, pos, func(end int) bool {
			result = buildMatch(ctx, pos, end)
			return true
		})
		return result
	}

	var best *Match
	matchNode(ctx, tree.Root, pos, func(end int) bool {
		if best == nil || end > best.end {
			best = buildMatch(ctx, pos, end)
		}
		return false
	})
	return best
}

// advanceOneRune returns the byte offset immediately after the code point
// at pos, or pos+1 at the very end of input (guaranteeing scan progress).
func advanceOneRune(input string, pos int) int {
	if pos >= len(input) {
		return pos + 1
	}
	next := runecacher.NewFromString(input).NextPos(pos)
	if next == pos {
		return pos + 1
	}
	return next
}

// scanFrom advances a scan position forward from `from`, trying the root
// at each position, honoring find_not_empty (skip zero-width results) and
// using the compiled pattern's FindOptimizations to jump ahead when a
// leading-literal prefilter is available.
func scanFrom(tree *syntax.RegexTree, input string, from int) *Match {
	notEmpty := tree.Options&syntax.FindNotEmpty != 0
	pos := from
	for pos <= len(input) {
		if tree.FindOpt != nil && tree.FindOpt.Automaton != nil {
			next := tree.FindOpt.NextCandidate([]byte(input), pos)
			if next < 0 {
				return nil
			}
			pos = next
		}
		if m := tryMatchAt(tree, input, pos); m != nil {
			if notEmpty && m.start == m.end {
				pos = advanceOneRune(input, pos)
				continue
			}
			return m
		}
		pos = advanceOneRune(input, pos)
	}
	return nil
}

// FirstMatch returns the first match at or after start, or nil if none.
func (re *Regexp) FirstMatch(input string, start int) (*Match, error) {
	if start < 0 || start > len(input) {
		return nil, newRuntimeError(re.pattern, "start index out of range")
	}
	return scanFrom(re.tree, input, start), nil
}

// HasMatch reports whether input contains any match.
func (re *Regexp) HasMatch(input string) bool {
	return scanFrom(re.tree, input, 0) != nil
}

// StringMatch returns the first match's text, or nil if there is none.
func (re *Regexp) StringMatch(input string) *string {
	m := scanFrom(re.tree, input, 0)
	if m == nil {
		return nil
	}
	s := m.String()
	return &s
}

// AllMatches returns a lazy, restartable sequence of every non-overlapping
// match from start onward. Each call produces a fresh sequence: nothing is
// shared or mutated between iterations of different calls.
func (re *Regexp) AllMatches(input string, start int) iter.Seq[*Match] {
	return func(yield func(*Match) bool) {
		pos := start
		for pos <= len(input) {
			m := scanFrom(re.tree, input, pos)
			if m == nil {
				return
			}
			if !yield(m) {
				return
			}
			if m.start == m.end {
				pos = advanceOneRune(input, m.end)
			} else {
				pos = m.end
			}
		}
	}
}

// AllStringMatches is AllMatches projected down to matched text.
func (re *Regexp) AllStringMatches(input string, start int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for m := range re.AllMatches(input, start) {
			if !yield(m.String()) {
				return
			}
		}
	}
}

func newRuntimeError(pattern, msg string) *Error {
	return &Error{Kind: Runtime, Message: msg, Pattern: pattern, Pos: -1}
}
