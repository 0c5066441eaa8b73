// Package cmd implements the tapir CLI commands using Cobra.
//
// Available commands:
//   - demo: Emit a showcase TAP stream exercising the producer
//   - version: Show tapir version information
//
// The demo command doubles as a smoke test of the library surface;
// its exit code follows the emitted session's summary the way a TAP
// harness would map it.
package cmd
