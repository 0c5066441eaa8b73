// Package assert provides assertion functions layered on a tap.Session.
//
// Supported assertions:
//   - Equality checks with a pluggable matcher (Is, Isnt)
//   - Regexp matching over a value's text form (Like, Unlike)
//   - Arbitrary predicates (LikeFunc, UnlikeFunc)
//   - Error-raising checks over deferred computations (Throws,
//     ThrowsAs, Lives)
//
// Every assertion records exactly one result on the given session and
// returns the recorded outcome. Failed equality checks add "Got:" and
// "Expected:" diagnostic lines for each side that has a human-readable
// text form (see Render); sides without one are silently omitted.
// Error-raising assertions trap whatever the deferred computation
// raises, panics included, and never let it escape the assertion call.
package assert
