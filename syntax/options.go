package syntax

// RegexOptions mirrors the option flags of the façade's RegexOptions, in
// the bit positions the pattern surface names: ignore-case, multiline,
// single-line (dot-all), extended, find-longest, find-not-empty.
type RegexOptions int32

const (
	IgnoreCase              RegexOptions = 1 << 0
	Multiline                            = 1 << 1
	Singleline                           = 1 << 2
	IgnorePatternWhitespace              = 1 << 3
	FindLongest                          = 1 << 4
	FindNotEmpty                         = 1 << 5
	Debug                                = 1 << 6
)
