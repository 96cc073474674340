package syntax

import (
	"github.com/coregx/ahocorasick"
)

// FindOptimizations is a pure performance layer over a compiled pattern: a
// scan accelerator that must never change which matches are found, only
// how fast the scan loop gets there. Grounded loosely on the teacher's
// FindOptimizations (syntax/findOptimizations.go) in shape -- MinLength,
// MaxLength, a leading-literal hint -- but rebuilt from scratch rather than
// adapted, since the teacher's version is inseparable from its deleted
// prefix/optimizations/writer cluster. The multi-literal case is new: when
// every top-level alternative starts with a required literal, those
// literals feed a github.com/coregx/ahocorasick automaton so the scan loop
// can jump straight to the next plausible start instead of probing every
// position.
type FindOptimizations struct {
	MinLength int // lower bound on any match's length
	MaxLength int // upper bound, -1 if unbounded

	// LeadingLiteral is set when every match must begin with this exact
	// rune sequence: the pattern's first element (through any enclosing
	// sequence or group) is a case-sensitive literal. Alternations are not
	// analysed, so it stays nil for a top-level alternation even when every
	// branch starts with the same literal.
	LeadingLiteral []rune

	// Automaton prefilters scan positions when the pattern is a top-level
	// alternation of distinct literal-prefixed branches. Nil when not
	// applicable; the scan loop must fall back to the naive per-position
	// probe whenever it is nil.
	Automaton *ahocorasick.Automaton
}

func newFindOptimizations(tree *RegexTree) *FindOptimizations {
	fo := &FindOptimizations{
		MinLength: tree.Root.ComputeMinLength(),
		MaxLength: tree.Root.ComputeMaxLength(),
	}

	body := tree.Root
	if len(body.Children) == 1 {
		body = body.Children[0]
	}

	if lit := leadingLiteralOf(body); lit != nil {
		fo.LeadingLiteral = lit
	}

	prefixes := collectAlternativePrefixes(body)
	if len(prefixes) > 1 {
		b := ahocorasick.NewBuilder()
		for _, p := range prefixes {
			b.AddPattern(p)
		}
		if automaton, err := b.Build(); err == nil {
			fo.Automaton = automaton
		}
	}
	return fo
}

// leadingLiteralOf returns the rune sequence every match of n must start
// with, or nil if none can be determined cheaply.
func leadingLiteralOf(n *RegexNode) []rune {
	switch n.T {
	case NtLiteral:
		if !n.CaseInsensitive {
			return n.Str
		}
	case NtSequence:
		if len(n.Children) > 0 {
			return leadingLiteralOf(n.Children[0])
		}
	case NtCapture, NtGroup, NtAtomic:
		if len(n.Children) > 0 {
			return leadingLiteralOf(n.Children[0])
		}
	}
	return nil
}

// collectAlternativePrefixes returns the leading literal of every branch
// of a top-level alternation, or nil if n isn't an alternation or any
// branch lacks a determinable literal prefix (in which case the prefilter
// would risk a false negative and must not be used at all).
func collectAlternativePrefixes(n *RegexNode) [][]byte {
	if n.T != NtAlternate {
		return nil
	}
	out := make([][]byte, 0, len(n.Children))
	for _, c := range n.Children {
		lit := leadingLiteralOf(c)
		if lit == nil {
			return nil
		}
		out = append(out, []byte(string(lit)))
	}
	return out
}

// NextCandidate returns the next byte offset at or after pos where input
// could plausibly begin a match, or -1 if no further occurrence of any
// leading literal exists. When Automaton is nil, callers should not call
// this and must fall back to scanning every position.
func (fo *FindOptimizations) NextCandidate(input []byte, pos int) int {
	if fo.Automaton == nil {
		return pos
	}
	m := fo.Automaton.Find(input, pos)
	if m == nil {
		return -1
	}
	return m.Start
}
