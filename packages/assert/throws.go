package assert

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/abdul-hamid-achik/tapir/packages/tap"
)

// trap runs thunk with a panic guard, so nothing the computation
// raises can escape the assertion that invoked it. A recovered panic
// becomes the returned error.
func trap(thunk func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("panic: %w", e)
			} else {
				err = fmt.Errorf("panic: %v", r)
			}
		}
	}()
	return thunk()
}

// Throws records whether thunk raises an error (returned or panicked)
// whose description matches every given pattern. With no patterns any
// raise passes. When nothing is raised the failure diagnostic says so.
func Throws(s *tap.Session, thunk func() error, message string, patterns ...string) bool {
	err := trap(thunk)
	if err == nil {
		s.Fail(message)
		s.Diag("no error was raised")
		return false
	}
	return checkDescription(s, err, message, patterns)
}

// ThrowsAs records whether thunk raises an error satisfying
// errors.As for the kind E, wrapped errors included, optionally with
// a description matching every given pattern. An error of the wrong
// kind fails the assertion and is reported, never propagated.
func ThrowsAs[E error](s *tap.Session, thunk func() error, message string, patterns ...string) bool {
	err := trap(thunk)
	if err == nil {
		s.Fail(message)
		s.Diag("no error was raised")
		return false
	}
	var want E
	if !errors.As(err, &want) {
		s.Fail(message)
		s.Diag(fmt.Sprintf("Got: %T: %v", err, err))
		s.Diag(fmt.Sprintf("Expected: error of kind %T", want))
		return false
	}
	return checkDescription(s, err, message, patterns)
}

// Lives records whether thunk completes without raising. The caught
// description shows up as a diagnostic on failure.
func Lives(s *tap.Session, thunk func() error, message string) bool {
	err := trap(thunk)
	ok := s.OK(err == nil, message)
	if !ok {
		s.Diag("Got: " + err.Error())
	}
	return ok
}

func checkDescription(s *tap.Session, err error, message string, patterns []string) bool {
	for _, pattern := range patterns {
		re, compileErr := regexp.Compile(pattern)
		if compileErr != nil {
			s.Fail(message)
			s.Diag(fmt.Sprintf("invalid pattern %q: %v", pattern, compileErr))
			return false
		}
		if !re.MatchString(err.Error()) {
			s.Fail(message)
			s.Diag("Got: " + err.Error())
			s.Diag(fmt.Sprintf("Expected: match for %q", pattern))
			return false
		}
	}
	return s.Pass(message)
}
