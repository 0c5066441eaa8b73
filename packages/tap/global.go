package tap

// std is the process-wide Session behind the procedural surface.
// Lazily created; single-threaded use is part of the contract, so no
// locking is needed.
var std *Session

// Default returns the process-wide Session, creating it on first use
// with default options (protocol lines to os.Stdout).
func Default() *Session {
	if std == nil {
		std = New()
	}
	return std
}

// Reset replaces the process-wide Session with a freshly configured
// one and returns it.
func Reset(opts ...Option) *Session {
	std = New(opts...)
	return std
}

// Plan declares the default session's test plan.
func Plan(n uint) { Default().Plan(n) }

// SkipAll declares a zero-length plan on the default session and
// closes it.
func SkipAll(reason string) { Default().SkipAll(reason) }

// OK records a result on the default session.
func OK(ok bool, message string) bool { return Default().OK(ok, message) }

// NOK records a negated result on the default session.
func NOK(notOK bool, message string) bool { return Default().NOK(notOK, message) }

// Pass records an unconditional success on the default session.
func Pass(message string) bool { return Default().Pass(message) }

// Fail records an unconditional failure on the default session.
func Fail(message string) bool { return Default().Fail(message) }

// Todo marks the default session's next result as to-do.
func Todo(reason string) { Default().Todo(reason) }

// Skip records a skipped result on the default session.
func Skip(reason string) bool { return Default().Skip(reason) }

// SkipN records n skipped results on the default session.
func SkipN(n uint, reason string) { Default().SkipN(n, reason) }

// DoneTesting closes the default session.
func DoneTesting() { Default().DoneTesting() }

// Bail bails out of the default session.
func Bail(reason string) { Default().Bail(reason) }

// Summary reports whether the default session is good.
func Summary() bool { return Default().Summary() }

// Diag prints a diagnostic line on the default session.
func Diag(message string) { Default().Diag(message) }

// DiagYAML prints a YAML diagnostic block on the default session.
func DiagYAML(v any) error { return Default().DiagYAML(v) }

// Subtest runs a sub-session of the default session.
func Subtest(title string, fn func(sub *Session)) bool {
	return Default().Subtest(title, fn)
}

// SubtestN runs a pre-planned sub-session of the default session.
func SubtestN(n uint, title string, fn func(sub *Session)) bool {
	return Default().SubtestN(n, title, fn)
}
