package oniguru

import (
	"github.com/dazemc/oniguru/runecacher"
	"github.com/dazemc/oniguru/syntax"
)

// capture is the (start, end, text) triple a capturing group's success
// produces, plus an order stamp used to answer "rightmost captured group".
type capture struct {
	start, end int
	text       string
	order      int
}

// journalEntry records one capture assignment so it can be undone (on
// backtrack) or redone (after a subroutine call hides it from the caller
// and the caller then rejects) without copying the whole capture table.
// This is the "journaled update" the backtracking-without-call-stack-
// blowup design note asks for, in place of a persistent map or a full
// table snapshot on every branch.
type journalEntry struct {
	num       int
	prev, cur *capture
}

// matchContext is the mutable per-evaluation state: the current capture
// for each group number, a journal of the capture assignments still in
// effect (restoreTo truncates it on rollback; used to roll back or replay
// captures across backtracking and subroutine calls), and the recursion
// depth counter for subroutine/recursive calls.
type matchContext struct {
	input string
	tree  *syntax.RegexTree
	runes *runecacher.RuneCacher

	byNumber map[int]*capture
	journal  []journalEntry
	order    int

	recursionDepth int
}

func newMatchContext(input string, tree *syntax.RegexTree) *matchContext {
	return &matchContext{
		input:    input,
		tree:     tree,
		runes:    runecacher.NewFromString(input),
		byNumber: map[int]*capture{},
	}
}

// mark returns a position in the journal that restoreTo can later roll
// back to.
func (c *matchContext) mark() int {
	return len(c.journal)
}

// setCapture records a new capture for group num, pushing the previous
// value onto the journal so it can be restored later.
func (c *matchContext) setCapture(num, start, end int, text string) {
	c.order++
	prev := c.byNumber[num]
	cur := &capture{start: start, end: end, text: text, order: c.order}
	c.journal = append(c.journal, journalEntry{num: num, prev: prev, cur: cur})
	c.byNumber[num] = cur
}

// restoreTo undoes every capture assignment back to mark, in reverse
// order, and returns the undone entries (oldest first) so a caller that
// needs to redo them later (see the subroutine executor) can.
func (c *matchContext) restoreTo(mark int) []journalEntry {
	if mark >= len(c.journal) {
		return nil
	}
	undone := append([]journalEntry(nil), c.journal[mark:]...)
	for i := len(c.journal) - 1; i >= mark; i-- {
		e := c.journal[i]
		c.byNumber[e.num] = e.prev
	}
	c.journal = c.journal[:mark]
	return undone
}

// reapply redoes a set of journal entries previously undone by restoreTo,
// in their original order. Used by the subroutine executor to let a
// callee's own internal backtracking resume from a consistent state after
// its captures were temporarily hidden from the caller.
func (c *matchContext) reapply(entries []journalEntry) {
	for _, e := range entries {
		c.byNumber[e.num] = e.cur
		c.journal = append(c.journal, e)
	}
}

// currentByNumber returns group num's most recent capture, or nil if it
// has never captured.
func (c *matchContext) currentByNumber(num int) *capture {
	return c.byNumber[num]
}

// currentByName resolves name to its group number via the compiled
// pattern's immutable name table, then looks up its current capture.
func (c *matchContext) currentByName(name string) *capture {
	num, ok := c.tree.Capnames[name]
	if !ok {
		return nil
	}
	return c.currentByNumber(num)
}
