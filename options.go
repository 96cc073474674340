package oniguru

import "github.com/dazemc/oniguru/syntax"

// RegexOptions holds the compile-time flags accepted by Compile, in the
// bit positions the pattern surface names: ignore-case, multiline,
// single-line (dot-all), extended, find-longest, find-not-empty. Trimmed
// from the teacher's RegexOptions (regexp.go): no RightToLeft, Compiled,
// or ECMAScript -- none of those have a home in this pattern surface.
type RegexOptions = syntax.RegexOptions

const (
	IgnoreCase              = syntax.IgnoreCase
	Multiline                            = syntax.Multiline
	Singleline                           = syntax.Singleline
	IgnorePatternWhitespace              = syntax.IgnorePatternWhitespace // "extended"; recognized, inert
	FindLongest                          = syntax.FindLongest
	FindNotEmpty                         = syntax.FindNotEmpty
	Debug                                = syntax.Debug
)
