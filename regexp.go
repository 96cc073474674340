// Package oniguru implements an Oniguruma-flavoured backtracking regular
// expression engine: possessive quantifiers, atomic groups, lookaround
// (including variable-length lookbehind), named backreferences, subroutine
// calls by number or name, whole-pattern recursion, and conditional
// alternatives recognized and rejected with a pointer toward alternation.
//
// A compiled Regexp is immutable and safe to share for read-only use
// across goroutines; each match call builds its own private match state,
// so concurrent matches against the same compiled pattern never interfere.
package oniguru

import (
	"strconv"

	"github.com/dazemc/oniguru/syntax"
)

// Regexp is a compiled pattern, safe for concurrent use by multiple
// goroutines. Trimmed from the teacher's Regexp (regexp.go): no
// MatchTimeout, no mutex-guarded runner pool -- there is no cancellation
// channel in this engine's resource model, and match state lives entirely
// in the per-call matchContext instead of a pooled mutable runner.
type Regexp struct {
	pattern string
	options RegexOptions
	tree    *syntax.RegexTree
}

// Compile parses pattern and returns a compiled Regexp, or a compile-time
// *Error.
func Compile(pattern string, options RegexOptions) (*Regexp, error) {
	tree, err := syntax.Parse(pattern, options)
	if err != nil {
		return nil, err
	}
	return &Regexp{pattern: pattern, options: options, tree: tree}, nil
}

// MustCompile is like Compile but panics if pattern cannot be parsed.
func MustCompile(pattern string, options RegexOptions) *Regexp {
	re, err := Compile(pattern, options)
	if err != nil {
		panic(`oniguru: Compile(` + quote(pattern) + `): ` + err.Error())
	}
	return re
}

func quote(s string) string {
	if strconv.CanBackquote(s) {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}

// String returns the source text used to compile the pattern.
func (re *Regexp) String() string { return re.pattern }

func (re *Regexp) MultilineOption() bool { return re.options&Multiline != 0 }
func (re *Regexp) DebugOption() bool     { return re.options&Debug != 0 }

// Dump renders the compiled AST, one line per node. Intended for use
// behind the Debug option rather than as a general-purpose API.
func (re *Regexp) Dump() string { return re.tree.Dump() }

// MayDelegate reports whether this pattern uses only the common subset a
// host-native regex engine could also run -- the fallback-eligibility bit
// a delegating façade would consult. This engine never performs the
// delegation itself; see the design notes on fallback delegation.
func (re *Regexp) MayDelegate() bool { return re.tree.MayDelegate }

// GetGroupNames returns the names of every capturing group, with unnamed
// groups represented by the decimal string of their number.
func (re *Regexp) GetGroupNames() []string {
	count := 0
	for num := range re.tree.Caps {
		if num > count {
			count = num
		}
	}
	result := make([]string, count+1)
	for i := range result {
		result[i] = strconv.Itoa(i)
	}
	for name, num := range re.tree.Capnames {
		if num >= 0 && num < len(result) {
			result[num] = name
		}
	}
	return result
}

// GetGroupNumbers returns every declared group number, including 0.
func (re *Regexp) GetGroupNumbers() []int {
	result := make([]int, 0, len(re.tree.Caps))
	for num := range re.tree.Caps {
		result = append(result, num)
	}
	return result
}

// GroupNameFromNumber returns i's name, or its decimal string if unnamed,
// or "" if i isn't a declared group.
func (re *Regexp) GroupNameFromNumber(i int) string {
	if _, ok := re.tree.Caps[i]; !ok {
		return ""
	}
	for name, num := range re.tree.Capnames {
		if num == i {
			return name
		}
	}
	return strconv.Itoa(i)
}

// GroupNumberFromName returns name's group number, or -1 if unknown.
// Purely numeric names resolve to that number if it's a declared group.
func (re *Regexp) GroupNumberFromName(name string) int {
	if num, ok := re.tree.Capnames[name]; ok {
		return num
	}
	num, err := strconv.Atoi(name)
	if err != nil {
		return -1
	}
	if _, ok := re.tree.Caps[num]; ok {
		return num
	}
	return -1
}
