package assert

import (
	"fmt"

	"github.com/abdul-hamid-achik/tapir/packages/tap"
)

// Is records whether got matches want. With no matcher given the
// comparison is Structural; passing one matcher overrides it, which
// also unlocks comparisons across types:
//
//	assert.Is(s, "55", 55, "fitting matcher", func(s string, i int) bool {
//		return s == strconv.Itoa(i)
//	})
//
// On failure, each side with a text form gets a "Got:" / "Expected:"
// diagnostic line.
func Is[T, U any](s *tap.Session, got T, want U, message string, matchers ...Matcher[T, U]) bool {
	match := Matcher[T, U](Structural[T, U])
	if len(matchers) > 0 {
		match = matchers[0]
	}
	ok := s.OK(match(got, want), message)
	if !ok {
		diagValue(s, "Got", got)
		diagValue(s, "Expected", want)
	}
	return ok
}

// Isnt is the negation of Is: it records success when got does not
// match want. Failure diagnostics label the expected side
// "Unexpected:".
func Isnt[T, U any](s *tap.Session, got T, want U, message string, matchers ...Matcher[T, U]) bool {
	match := Matcher[T, U](Structural[T, U])
	if len(matchers) > 0 {
		match = matchers[0]
	}
	ok := s.OK(!match(got, want), message)
	if !ok {
		diagValue(s, "Got", got)
		diagValue(s, "Unexpected", want)
	}
	return ok
}

// diagValue emits one labelled diagnostic line when v renders.
func diagValue(s *tap.Session, label string, v any) {
	if text, ok := Render(v); ok {
		s.Diag(fmt.Sprintf("%s: %s", label, text))
	}
}
