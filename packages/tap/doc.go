// Package tap produces Test Anything Protocol streams.
//
// A Session owns the producer state for one TAP stream:
//   - the test plan ("1..N"), declared up front or emitted at close
//   - strictly increasing result numbering ("ok 3 - message")
//   - one-shot TODO directives and SKIP result helpers
//   - diagnostics ("# ..."), including TAP v13 YAML blocks
//   - bail-out ("Bail out!") and nested sub-sessions
//
// Everything funnels through Session.OK, the universal record
// primitive. Misusing a Session (planning twice, recording after
// close) is a defect in the calling test program and panics with one
// of the exported usage errors; a failing assertion is never an error,
// only a "not ok" line.
//
// The package also keeps a process-wide default Session behind
// free-standing functions mirroring the Session methods, for programs
// that want a procedural surface.
package tap
