package tap

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Session holds a TAP producer's state: the test plan, the result
// numbering, the pending TODO directive and the output writer. Its
// methods update that state and write protocol lines directly to the
// writer. A Session is strictly sequential and not safe for concurrent
// use; protocol order is call order.
type Session struct {
	out     io.Writer
	planned uint
	run     uint
	passed  uint
	todo    string
	hasPlan bool
	closed  bool
}

type options struct {
	out     io.Writer
	version int
	plan    *uint
	skipAll *string
}

// Option is a functional option for configuring a Session.
type Option func(*options)

// WithWriter directs protocol lines to w instead of os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithPlan declares the test plan during construction, emitting the
// plan line immediately.
func WithPlan(n uint) Option {
	return func(o *options) {
		o.plan = &n
	}
}

// WithVersion emits a "TAP version <v>" header line before anything
// else in the stream.
func WithVersion(v int) Option {
	return func(o *options) {
		o.version = v
	}
}

// WithSkipAll declares a zero-length plan annotated with a skip
// reason and closes the session in one step. Use it for sessions
// whose preconditions (environment, network) are not met.
func WithSkipAll(reason string) Option {
	return func(o *options) {
		o.skipAll = &reason
	}
}

// New creates a Session writing to os.Stdout unless configured
// otherwise. Without WithPlan you either call Plan before the first
// result or DoneTesting after the last one.
func New(opts ...Option) *Session {
	cfg := options{out: os.Stdout}
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Session{out: cfg.out}
	if cfg.version > 0 {
		fmt.Fprintf(s.out, "TAP version %d\n", cfg.version)
	}
	switch {
	case cfg.skipAll != nil:
		s.SkipAll(*cfg.skipAll)
	case cfg.plan != nil:
		s.Plan(*cfg.plan)
	}
	return s
}

// Plan sets up the test plan and emits the plan line. Panics with
// ErrAlreadyPlanned, ErrSessionClosed or ErrLatePlan on misuse.
func (s *Session) Plan(n uint) {
	if s.hasPlan {
		panic(ErrAlreadyPlanned)
	}
	if s.closed {
		panic(ErrSessionClosed)
	}
	if s.run > 0 {
		panic(ErrLatePlan)
	}
	fmt.Fprintf(s.out, "1..%d\n", n)
	s.planned = n
	s.hasPlan = true
}

// SkipAll emits a "1..0 # SKIP" plan line and closes the session.
// Valid only on a fresh session; panics like Plan otherwise.
func (s *Session) SkipAll(reason string) {
	if s.hasPlan {
		panic(ErrAlreadyPlanned)
	}
	if s.closed {
		panic(ErrSessionClosed)
	}
	if s.run > 0 {
		panic(ErrLatePlan)
	}
	line := "1..0 # SKIP"
	if reason != "" {
		line += " " + reason
	}
	fmt.Fprintln(s.out, line)
	s.hasPlan = true
	s.closed = true
}

// OK writes an "ok" or "not ok" result line depending on ok, consuming
// a pending TODO directive if one was set. It returns ok unchanged so
// callers can chain on the outcome. Panics with ErrSessionClosed after
// DoneTesting or Bail.
func (s *Session) OK(ok bool, message string) bool {
	if s.closed {
		panic(ErrSessionClosed)
	}
	s.run++
	status := "ok"
	if !ok {
		status = "not ok"
	}
	line := fmt.Sprintf("%s %d - %s", status, s.run, message)
	if s.todo != "" {
		if message != "" {
			line += " "
		}
		line += "# TODO " + s.todo
		s.todo = ""
	}
	fmt.Fprintln(s.out, line)
	if ok {
		s.passed++
	}
	return ok
}

// NOK is OK with the condition negated first.
func (s *Session) NOK(notOK bool, message string) bool {
	return s.OK(!notOK, message)
}

// Pass records an unconditionally successful result.
func (s *Session) Pass(message string) bool {
	return s.OK(true, message)
}

// Fail records an unconditionally failed result.
func (s *Session) Fail(message string) bool {
	return s.OK(false, message)
}

// Todo marks the next result as "to-do": exactly the next OK call
// prints the TODO directive. An empty reason is recorded as "-".
func (s *Session) Todo(reason string) {
	if s.closed {
		panic(ErrSessionClosed)
	}
	if reason == "" {
		reason = "-"
	}
	s.todo = reason
}

// Skip records a passing result carrying a SKIP annotation in its
// message. An empty reason yields "# SKIP" with nothing appended.
func (s *Session) Skip(reason string) bool {
	msg := "# SKIP"
	if reason != "" {
		msg += " " + reason
	}
	return s.Pass(msg)
}

// SkipN records n skipped results. Each message carries its 1-based
// position out of n, so repeated skips stay distinguishable:
// "# SKIP no net 1/2", "# SKIP no net 2/2".
func (s *Session) SkipN(n uint, reason string) {
	sep := ""
	if reason != "" {
		sep = " "
	}
	for i := uint(1); i <= n; i++ {
		s.Skip(fmt.Sprintf("%s%s%d/%d", reason, sep, i, n))
	}
}

// DoneTesting closes the session. Without a prior plan it emits the
// trailing "1..<run>" plan line; with one, a planned/ran mismatch gets
// a single diagnostic. Panics with ErrSessionClosed when called twice.
func (s *Session) DoneTesting() {
	if s.closed {
		panic(ErrSessionClosed)
	}
	if !s.hasPlan {
		fmt.Fprintf(s.out, "1..%d\n", s.run)
	} else if s.planned != s.run {
		s.Diag(fmt.Sprintf("Looks like you planned %d tests but ran %d", s.planned, s.run))
	}
	s.closed = true
}

// Bail prints a "Bail out!" line and closes the session. It does not
// exit the process; callers decide how to unwind after cleanup.
func (s *Session) Bail(reason string) {
	if s.closed {
		panic(ErrSessionClosed)
	}
	line := "Bail out!"
	if reason != "" {
		line += " " + reason
	}
	fmt.Fprintln(s.out, line)
	s.closed = true
}

// Summary reports whether the whole session is good: every planned
// test passed, or, without a plan, every run test passed. It is
// defined before close, which is what lets a sub-session fold its
// tally into its parent.
func (s *Session) Summary() bool {
	if s.hasPlan {
		return s.passed == s.planned
	}
	return s.passed == s.run
}

// Diag prints a "# ..." diagnostic line. It never fails, never touches
// the counters, and is legal even after close.
func (s *Session) Diag(message string) {
	fmt.Fprintln(s.out, "# "+message)
}

// DiagYAML prints v as a TAP v13 YAML diagnostic block, two-space
// indented between "---" and "..." markers. Like Diag it carries no
// state transition.
func (s *Session) DiagYAML(v any) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal yaml diagnostic: %w", err)
	}
	fmt.Fprintln(s.out, "  ---")
	doc := strings.TrimRight(string(b), "\n")
	for _, line := range strings.Split(doc, "\n") {
		fmt.Fprintln(s.out, "  "+line)
	}
	fmt.Fprintln(s.out, "  ...")
	return nil
}
