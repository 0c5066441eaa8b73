package assert

import "github.com/google/go-cmp/cmp"

// Matcher decides whether an actual value matches an expected one.
// The two sides may have different types, which is what makes
// cross-type comparisons possible with a fitting matcher.
type Matcher[T, U any] func(got T, want U) bool

// Structural is the default matcher: go-cmp structural equality.
// Values of differing dynamic types never match. Types with
// unexported fields need a custom matcher, same as they need cmp
// options anywhere else.
func Structural[T, U any](got T, want U) bool {
	return cmp.Equal(got, want)
}
