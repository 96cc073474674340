package oniguru

import (
	"unicode/utf8"

	"github.com/dazemc/oniguru/syntax"
)

// cont is the continuation a node's match attempt reports its end position
// to. It returns whether the overall search should stop (true) or keep
// exploring this node's remaining candidate results (false). Every match*
// function must leave matchContext exactly as it found it whenever it
// returns false -- that's the "mutate before calling cont, restore only on
// failure" contract the capture-state snapshotting design note asks for;
// it's what lets Sequence/Alternate/Quantifier compose without each one
// re-deriving a full snapshot of its own.
type cont func(end int) bool

// matchNode dispatches on node type and drives the continuation-passing
// backtracking search described by the executor semantics: each node
// yields its candidate results in a specific order by calling k with each
// candidate end position in turn, stopping as soon as k accepts.
func matchNode(ctx *matchContext, n *syntax.RegexNode, pos int, k cont) bool {
	switch n.T {
	case syntax.NtLiteral:
		return matchLiteral(ctx, n, pos, k)
	case syntax.NtClass:
		return matchClass(ctx, n, pos, k)
	case syntax.NtDot:
		return matchDot(ctx, n, pos, k)
	case syntax.NtBol:
		return matchBol(ctx, pos, k)
	case syntax.NtEol:
		return matchEol(ctx, pos, k)
	case syntax.NtSequence:
		return matchSequence(ctx, n.Children, 0, pos, k)
	case syntax.NtAlternate:
		return matchAlternate(ctx, n.Children, pos, k)
	case syntax.NtQuantifier:
		return matchQuantifier(ctx, n, pos, k)
	case syntax.NtCapture:
		return matchCapture(ctx, n, pos, k)
	case syntax.NtGroup:
		return matchNode(ctx, n.Children[0], pos, k)
	case syntax.NtAtomic:
		return matchAtomic(ctx, n, pos, k)
	case syntax.NtLookaround:
		return matchLookaround(ctx, n, pos, k)
	case syntax.NtBackref:
		return matchBackref(ctx, n, pos, k)
	case syntax.NtSubroutine:
		return matchSubroutine(ctx, n, pos, k)
	case syntax.NtEmpty:
		return k(pos)
	case syntax.NtNothing:
		return false
	}
	return false
}

func matchLiteral(ctx *matchContext, n *syntax.RegexNode, pos int, k cont) bool {
	lit := string(n.Str)
	end := pos + len(lit)
	if end > len(ctx.input) {
		return false
	}
	cand := ctx.input[pos:end]
	if n.CaseInsensitive {
		if !asciiEqualFold(cand, lit) {
			return false
		}
	} else if cand != lit {
		return false
	}
	return k(end)
}

func matchClass(ctx *matchContext, n *syntax.RegexNode, pos int, k cont) bool {
	r, size := ctx.runes.RuneAt(pos)
	if size == 0 {
		return false
	}
	if !n.Set.Contains(r) {
		return false
	}
	return k(pos + size)
}

func matchDot(ctx *matchContext, n *syntax.RegexNode, pos int, k cont) bool {
	r, size := ctx.runes.RuneAt(pos)
	if size == 0 {
		return false
	}
	if r == '\n' && ctx.tree.Options&syntax.Singleline == 0 {
		return false
	}
	return k(pos + size)
}

func matchBol(ctx *matchContext, pos int, k cont) bool {
	if pos == 0 {
		return k(pos)
	}
	if ctx.tree.Options&syntax.Multiline != 0 && ctx.input[pos-1] == '\n' {
		return k(pos)
	}
	return false
}

func matchEol(ctx *matchContext, pos int, k cont) bool {
	if pos == len(ctx.input) {
		return k(pos)
	}
	if ctx.tree.Options&syntax.Multiline != 0 && ctx.input[pos] == '\n' {
		return k(pos)
	}
	return false
}

func matchSequence(ctx *matchContext, children []*syntax.RegexNode, idx, pos int, k cont) bool {
	if idx == len(children) {
		return k(pos)
	}
	return matchNode(ctx, children[idx], pos, func(end int) bool {
		return matchSequence(ctx, children, idx+1, end, k)
	})
}

// matchAlternate yields each alternative's results in order -- the first
// alternative's successes precede the second's, which is the tie-break
// rule when no surrounding quantifier mode otherwise constrains ordering.
func matchAlternate(ctx *matchContext, children []*syntax.RegexNode, pos int, k cont) bool {
	for _, c := range children {
		if matchNode(ctx, c, pos, k) {
			return true
		}
	}
	return false
}

// matchCapture runs the child and, for each candidate the child yields,
// records the capture under this group's number before calling k; if k
// rejects, only this capture assignment is undone (the child manages its
// own internal state when it moves on to its next candidate).
func matchCapture(ctx *matchContext, n *syntax.RegexNode, pos int, k cont) bool {
	return matchNode(ctx, n.Children[0], pos, func(end int) bool {
		capMark := ctx.mark()
		ctx.setCapture(n.GroupNum, pos, end, ctx.input[pos:end])
		if k(end) {
			return true
		}
		ctx.restoreTo(capMark)
		return false
	})
}

// matchAtomic runs the child, commits to its first successful candidate,
// and never tries another -- failure of k fails the whole atomic group
// rather than backtracking into the child's interior.
func matchAtomic(ctx *matchContext, n *syntax.RegexNode, pos int, k cont) bool {
	mark := ctx.mark()
	matched := false
	var firstEnd int
	matchNode(ctx, n.Children[0], pos, func(end int) bool {
		firstEnd = end
		matched = true
		return true
	})
	if !matched {
		ctx.restoreTo(mark)
		return false
	}
	if k(firstEnd) {
		return true
	}
	ctx.restoreTo(mark)
	return false
}

// matchLookaround probes the child without ever letting its effect on
// position or captures escape: lookahead runs at pos, lookbehind probes
// every valid candidate start in the child's length-bound window looking
// for one that lands exactly on pos. Captures made inside either are not
// observable outside, so the journal is always rolled back before k runs.
func matchLookaround(ctx *matchContext, n *syntax.RegexNode, pos int, k cont) bool {
	mark := ctx.mark()
	var found bool
	if !n.Behind {
		matchNode(ctx, n.Children[0], pos, func(end int) bool {
			found = true
			return true
		})
	} else {
		found = matchLookbehindCandidates(ctx, n.Children[0], pos)
	}
	ctx.restoreTo(mark)

	if found == n.Negate {
		return false
	}
	return k(pos)
}

func matchLookbehindCandidates(ctx *matchContext, child *syntax.RegexNode, pos int) bool {
	lo, hi := child.LookbehindBound()
	start := pos - hi
	if start < 0 {
		start = 0
	}
	end := pos - lo
	for cand := end; cand >= start; cand-- {
		if cand < 0 || cand > len(ctx.input) {
			continue
		}
		if cand > 0 && !utf8.RuneStart(ctx.input[cand]) {
			continue
		}
		ok := matchNode(ctx, child, cand, func(e int) bool { return e == pos })
		if ok {
			return true
		}
	}
	return false
}

func matchBackref(ctx *matchContext, n *syntax.RegexNode, pos int, k cont) bool {
	var cap *capture
	if n.RefName != "" {
		cap = ctx.currentByName(n.RefName)
	} else {
		cap = ctx.currentByNumber(n.RefNum)
	}
	if cap == nil {
		return false
	}
	end := pos + len(cap.text)
	if end > len(ctx.input) {
		return false
	}
	cand := ctx.input[pos:end]
	if n.CaseInsensitive {
		if !asciiEqualFold(cand, cap.text) {
			return false
		}
	} else if cand != cap.text {
		return false
	}
	return k(end)
}

// matchSubroutine re-executes the target group's sub-AST at pos without
// letting its captures overwrite the caller's: it temporarily restores the
// journal to the pre-call mark before invoking k (so the caller never sees
// the call's internal captures, win or lose at the outer level), then
// replays them if k rejects so the callee's own backtracking can resume
// correctly.
func matchSubroutine(ctx *matchContext, n *syntax.RegexNode, pos int, k cont) bool {
	target := syntax.SubroutineTarget(ctx.tree, n)
	if target == nil {
		return false
	}
	if ctx.recursionDepth >= syntax.RecursionCap {
		return false
	}

	mark := ctx.mark()
	ctx.recursionDepth++
	ok := matchNode(ctx, target.Children[0], pos, func(end int) bool {
		hidden := ctx.restoreTo(mark)
		result := k(end)
		if !result {
			ctx.reapply(hidden)
		}
		return result
	})
	ctx.restoreTo(mark)
	ctx.recursionDepth--
	return ok
}

// matchQuantifier dispatches to the mode-specific repetition strategy. A
// repetition whose body can match zero characters must never be retried
// at the same position -- each strategy below enforces that directly
// rather than relying on an outer visited-position set.
func matchQuantifier(ctx *matchContext, n *syntax.RegexNode, pos int, k cont) bool {
	child := n.Children[0]
	switch n.Mode {
	case syntax.Possessive:
		return matchPossessive(ctx, child, pos, n.Min, n.Max, k)
	case syntax.Lazy:
		return matchLazy(ctx, child, pos, n.Min, n.Max, 0, k)
	default:
		return matchGreedy(ctx, child, pos, n.Min, n.Max, 0, k)
	}
}

// matchGreedy enumerates match counts from as many as possible down to
// min: try one more iteration first, and only fall back to calling k at
// the current count if taking another iteration can't be made to work.
func matchGreedy(ctx *matchContext, child *syntax.RegexNode, pos, min, max, count int, k cont) bool {
	if max < 0 || count < max {
		mark := ctx.mark()
		took := matchNode(ctx, child, pos, func(end int) bool {
			if end == pos {
				if count+1 < min {
					return false
				}
				return k(end)
			}
			return matchGreedy(ctx, child, end, min, max, count+1, k)
		})
		if took {
			return true
		}
		ctx.restoreTo(mark)
	}
	if count >= min {
		return k(pos)
	}
	return false
}

// matchLazy enumerates match counts from min upward: below min it must
// take another iteration; at or above min it offers k the current count
// first before trying for one more.
func matchLazy(ctx *matchContext, child *syntax.RegexNode, pos, min, max, count int, k cont) bool {
	if count < min {
		return matchNode(ctx, child, pos, func(end int) bool {
			if end == pos {
				if count+1 < min {
					return false
				}
				return k(end)
			}
			return matchLazy(ctx, child, end, min, max, count+1, k)
		})
	}
	if k(pos) {
		return true
	}
	if max < 0 || count < max {
		mark := ctx.mark()
		took := matchNode(ctx, child, pos, func(end int) bool {
			if end == pos {
				return false
			}
			return matchLazy(ctx, child, end, min, max, count+1, k)
		})
		if took {
			return true
		}
		ctx.restoreTo(mark)
	}
	return false
}

// matchPossessive takes the first successful child result at each
// iteration until max is reached or the child fails, committing as it
// goes; there is no backtracking into a possessive iteration afterward.
func matchPossessive(ctx *matchContext, child *syntax.RegexNode, pos, min, max int, k cont) bool {
	count := 0
	cur := pos
	for max < 0 || count < max {
		mark := ctx.mark()
		matched := false
		var next int
		matchNode(ctx, child, cur, func(end int) bool {
			next = end
			matched = true
			return true
		})
		if !matched {
			ctx.restoreTo(mark)
			break
		}
		zeroWidth := next == cur
		cur = next
		count++
		if zeroWidth {
			break
		}
	}
	if count < min {
		return false
	}
	return k(cur)
}

// asciiEqualFold compares a and b under ASCII case folding only, per the
// pattern surface's ASCII-only ignore_case semantics (literals/backrefs
// fold, character classes never do).
func asciiEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca == cb {
			continue
		}
		if asciiLower(ca) != asciiLower(cb) {
			return false
		}
	}
	return true
}

func asciiLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
