package syntax

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// LookbehindCeiling bounds lookbehind reach, in input units. A variable-
// length lookbehind whose maximum-length analysis would otherwise be
// unbounded saturates here instead, per the resource model's reach cap.
const LookbehindCeiling = 100

// RecursionCap bounds subroutine/recursive call depth. Exceeding it fails
// the branch attempting the call, not the whole match.
const RecursionCap = 100

// RegexTree is the parser's output: an immutable AST plus the numbered-
// and named-group tables built while parsing.
type RegexTree struct {
	Root        *RegexNode
	Caps        map[int]*RegexNode // group number -> capturing-group node (0 = whole pattern)
	Capnames    map[string]int     // group name -> group number
	Caplist     []string           // names in declaration order
	Options     RegexOptions
	MayDelegate bool
	FindOpt     *FindOptimizations
}

// NodeType tags the variant a RegexNode belongs to. Kept flat and closed:
// one entry per construct the pattern surface names. There is no bytecode
// peephole layer here to justify the teacher's larger node-type explosion
// (Oneloop/Onelazy/Setloop and friends existed solely to feed its opcode
// emitter, which has no home in this engine).
type NodeType int

const (
	NtUnknown NodeType = iota
	NtLiteral
	NtClass
	NtDot
	NtBol
	NtEol
	NtSequence
	NtAlternate
	NtQuantifier
	NtCapture
	NtGroup
	NtAtomic
	NtLookaround
	NtBackref
	NtSubroutine
	NtEmpty
	NtNothing
)

// QuantMode is the repetition strategy a Quantifier node uses.
type QuantMode int

const (
	Greedy QuantMode = iota
	Lazy
	Possessive
)

// RegexNode is the single node type for the whole AST.
type RegexNode struct {
	T        NodeType
	Children []*RegexNode

	Str             []rune // NtLiteral
	CaseInsensitive bool   // NtLiteral, NtBackref

	Set *CharSet // NtClass

	Min, Max int       // NtQuantifier (Max < 0 means unbounded)
	Mode     QuantMode // NtQuantifier

	GroupNum  int    // NtCapture
	GroupName string // NtCapture, "" if unnamed

	Behind bool // NtLookaround: true = lookbehind, false = lookahead
	Negate bool // NtLookaround: true = negative assertion

	RefNum    int    // NtBackref (0 means refer by name), NtSubroutine
	RefName   string // NtBackref, NtSubroutine
	Recursive bool   // NtSubroutine: whole-pattern recursion, (?R)

	minLen, maxLen int // cached by ensureBounds; maxLen < 0 means unbounded
	boundsDone     bool
}

func newNode(t NodeType) *RegexNode {
	return &RegexNode{T: t, minLen: -1, maxLen: -1}
}

func (n *RegexNode) addChild(c *RegexNode) {
	n.Children = append(n.Children, c)
}

// ComputeMinLength returns a lower bound on the length of any string the
// node could match, in input units.
func (n *RegexNode) ComputeMinLength() int {
	n.ensureBounds()
	return n.minLen
}

// ComputeMaxLength returns an upper bound, or -1 if unbounded.
func (n *RegexNode) ComputeMaxLength() int {
	n.ensureBounds()
	return n.maxLen
}

func (n *RegexNode) ensureBounds() {
	if n.boundsDone {
		return
	}
	n.boundsDone = true
	n.minLen, n.maxLen = computeBounds(n)
}

func computeBounds(n *RegexNode) (min, max int) {
	switch n.T {
	case NtLiteral:
		return len(string(n.Str)), len(string(n.Str))
	case NtClass, NtDot:
		return 1, utf8.UTFMax
	case NtBol, NtEol, NtLookaround, NtEmpty, NtNothing:
		return 0, 0
	case NtBackref:
		// Length depends on the captured text at match time.
		return 0, -1
	case NtSubroutine:
		return 0, -1
	case NtSequence:
		sumMin, sumMax := 0, 0
		for _, c := range n.Children {
			cMin, cMax := c.ComputeMinLength(), c.ComputeMaxLength()
			sumMin += cMin
			if sumMax < 0 || cMax < 0 {
				sumMax = -1
			} else {
				sumMax += cMax
			}
		}
		return sumMin, sumMax
	case NtAlternate:
		if len(n.Children) == 0 {
			return 0, 0
		}
		min = n.Children[0].ComputeMinLength()
		max = n.Children[0].ComputeMaxLength()
		for _, c := range n.Children[1:] {
			cMin, cMax := c.ComputeMinLength(), c.ComputeMaxLength()
			if cMin < min {
				min = cMin
			}
			if max >= 0 {
				if cMax < 0 {
					max = -1
				} else if cMax > max {
					max = cMax
				}
			}
		}
		return min, max
	case NtQuantifier:
		cMin, cMax := n.Children[0].ComputeMinLength(), n.Children[0].ComputeMaxLength()
		min = n.Min * cMin
		if n.Max < 0 || cMax < 0 {
			max = -1
		} else {
			max = n.Max * cMax
		}
		return min, max
	case NtCapture, NtGroup, NtAtomic:
		return n.Children[0].ComputeMinLength(), n.Children[0].ComputeMaxLength()
	}
	return 0, -1
}

// LookbehindBound returns (min, max) length bounds for use as a
// lookbehind's candidate-start window, with max saturated at
// LookbehindCeiling.
func (n *RegexNode) LookbehindBound() (min, max int) {
	min = n.ComputeMinLength()
	max = n.ComputeMaxLength()
	if max < 0 || max > LookbehindCeiling {
		max = LookbehindCeiling
	}
	if min > max {
		min = max
	}
	return min, max
}

var typeStr = map[NodeType]string{
	NtUnknown: "Unknown", NtLiteral: "Literal", NtClass: "Class", NtDot: "Dot",
	NtBol: "Bol", NtEol: "Eol", NtSequence: "Sequence", NtAlternate: "Alternate",
	NtQuantifier: "Quantifier", NtCapture: "Capture", NtGroup: "Group",
	NtAtomic: "Atomic", NtLookaround: "Lookaround", NtBackref: "Backref",
	NtSubroutine: "Subroutine", NtEmpty: "Empty", NtNothing: "Nothing",
}

// Description renders a one-line human description of the node, used by
// Dump and by test assertions.
func (n *RegexNode) Description() string {
	buf := &bytes.Buffer{}
	buf.WriteString(typeStr[n.T])

	switch n.T {
	case NtLiteral:
		fmt.Fprintf(buf, "(%q)", string(n.Str))
	case NtClass:
		buf.WriteString("(" + n.Set.String() + ")")
	case NtCapture:
		fmt.Fprintf(buf, "(num=%d, name=%q)", n.GroupNum, n.GroupName)
	case NtBackref:
		if n.RefName != "" {
			fmt.Fprintf(buf, "(name=%q)", n.RefName)
		} else {
			fmt.Fprintf(buf, "(num=%d)", n.RefNum)
		}
	case NtSubroutine:
		switch {
		case n.Recursive:
			buf.WriteString("(R)")
		case n.RefName != "":
			fmt.Fprintf(buf, "(&%s)", n.RefName)
		default:
			fmt.Fprintf(buf, "(%d)", n.RefNum)
		}
	case NtQuantifier:
		modeStr := [...]string{"greedy", "lazy", "possessive"}[n.Mode]
		maxStr := strconv.Itoa(n.Max)
		if n.Max < 0 {
			maxStr = "inf"
		}
		fmt.Fprintf(buf, "(min=%d, max=%s, %s)", n.Min, maxStr, modeStr)
	case NtLookaround:
		dir := "ahead"
		if n.Behind {
			dir = "behind"
		}
		pol := "pos"
		if n.Negate {
			pol = "neg"
		}
		fmt.Fprintf(buf, "(%s, %s)", dir, pol)
	}
	return buf.String()
}

// Dump renders the whole tree depth-first, one line per node, indented by
// depth. Used behind the Debug option instead of a step-trace log.
func (t *RegexTree) Dump() string {
	buf := &bytes.Buffer{}
	var walk func(n *RegexNode, depth int)
	walk = func(n *RegexNode, depth int) {
		fmt.Fprintf(buf, "%*s%s\n", depth*2, "", n.Description())
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(t.Root, 0)
	return buf.String()
}
