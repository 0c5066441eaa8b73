package tap

// subtestIndent nests a sub-session's lines beneath its parent.
const subtestIndent = "    "

// Subtest runs fn against a fresh child Session whose protocol lines
// are written indented into this session's stream, then records the
// child's Summary as a single result under title. The child is not
// closed automatically: fn either plans up front or calls DoneTesting
// before returning.
func (s *Session) Subtest(title string, fn func(sub *Session)) bool {
	if s.closed {
		panic(ErrSessionClosed)
	}
	sub := New(WithWriter(&lineWriter{w: s.out, prefix: subtestIndent}))
	fn(sub)
	return s.OK(sub.Summary(), title)
}

// SubtestN is Subtest with the child pre-planned to n results, for
// grouping n replicate checks of identical shape.
func (s *Session) SubtestN(n uint, title string, fn func(sub *Session)) bool {
	if s.closed {
		panic(ErrSessionClosed)
	}
	sub := New(WithWriter(&lineWriter{w: s.out, prefix: subtestIndent}), WithPlan(n))
	fn(sub)
	return s.OK(sub.Summary(), title)
}
