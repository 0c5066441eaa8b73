package assert

import (
	"fmt"
	"regexp"

	"github.com/abdul-hamid-achik/tapir/packages/tap"
)

// Like records whether pattern matches anywhere in the default text
// form of value (fmt.Sprint). An invalid pattern records a failure
// with a diagnostic naming the compile error; it never panics, the
// pattern is assertion content rather than session misuse.
func Like(s *tap.Session, value any, pattern, message string) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		s.Fail(message)
		s.Diag(fmt.Sprintf("invalid pattern %q: %v", pattern, err))
		return false
	}
	return LikeRx(s, value, re, message)
}

// LikeRx is Like with a pre-compiled pattern.
func LikeRx(s *tap.Session, value any, re *regexp.Regexp, message string) bool {
	text := fmt.Sprint(value)
	ok := s.OK(re.MatchString(text), message)
	if !ok {
		s.Diag(fmt.Sprintf("Got: %q", text))
		s.Diag(fmt.Sprintf("Expected: match for %q", re.String()))
	}
	return ok
}

// Unlike records whether pattern does not match the text form of
// value.
func Unlike(s *tap.Session, value any, pattern, message string) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		s.Fail(message)
		s.Diag(fmt.Sprintf("invalid pattern %q: %v", pattern, err))
		return false
	}
	return UnlikeRx(s, value, re, message)
}

// UnlikeRx is Unlike with a pre-compiled pattern.
func UnlikeRx(s *tap.Session, value any, re *regexp.Regexp, message string) bool {
	text := fmt.Sprint(value)
	ok := s.OK(!re.MatchString(text), message)
	if !ok {
		s.Diag(fmt.Sprintf("Got: %q", text))
		s.Diag(fmt.Sprintf("Unexpected: match for %q", re.String()))
	}
	return ok
}

// LikeFunc records whether pred holds for value. The predicate sees
// the value directly; nothing is stringified.
func LikeFunc[T any](s *tap.Session, value T, pred func(T) bool, message string) bool {
	ok := s.OK(pred(value), message)
	if !ok {
		diagValue(s, "Got", value)
	}
	return ok
}

// UnlikeFunc records whether pred does not hold for value.
func UnlikeFunc[T any](s *tap.Session, value T, pred func(T) bool, message string) bool {
	ok := s.OK(!pred(value), message)
	if !ok {
		diagValue(s, "Got", value)
	}
	return ok
}
