package cmd

// Exit codes for tapir CLI
const (
	// ExitSuccess indicates the emitted session summarized good
	ExitSuccess = 0

	// ExitTestFailure indicates the session summarized bad or bailed out
	ExitTestFailure = 1

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
