package oniguru

import "github.com/dazemc/oniguru/syntax"

// Error is the structured value every compile-time failure (and the rare
// run-time failure) is reported through. See syntax.Error for field docs.
type Error = syntax.Error

const (
	Compilation        = syntax.Compilation
	InvalidPattern     = syntax.InvalidPattern
	UnsupportedFeature = syntax.UnsupportedFeature
	Runtime            = syntax.Runtime
)
